package note

import "time"

// DefaultColor is the dark shade applied when a note is saved without an
// explicit color.
const DefaultColor = "#1c1c1e"

// Palette lists the colors the editor offers. Free-form values are still
// accepted and stored verbatim.
var Palette = []string{
	DefaultColor,
	"#E74C3C",
	"#8E44AD",
	"#3498DB",
	"#27AE60",
	"#F1C40F",
	"#ffffff",
}

// Note is a user-authored record. ID doubles as the creation timestamp in
// unix milliseconds and as the descending sort key. Date tracks the last
// save, not creation. Image is an opaque URI produced by the platform
// image picker; the core stores it verbatim and never touches the
// underlying file.
type Note struct {
	ID    int64     `json:"id"`
	Owner string    `json:"owner"`
	Title string    `json:"title"`
	Body  string    `json:"body"`
	Image *string   `json:"image"`
	Color string    `json:"color"`
	Date  time.Time `json:"date"`
}

// Draft carries the fields the editor controls. ID zero means a new note.
type Draft struct {
	ID    int64
	Title string
	Body  string
	Image *string
	Color string
}
