// cmd/pronotes/cmd/note/render.go
package note

import (
	"fmt"

	"github.com/fatih/color"

	"pronotes/internal/domain/note"
)

// swatches maps the editor palette to terminal colors for the list view.
var swatches = map[string]*color.Color{
	"#1c1c1e": color.New(color.FgWhite),
	"#E74C3C": color.New(color.FgRed),
	"#8E44AD": color.New(color.FgMagenta),
	"#3498DB": color.New(color.FgBlue),
	"#27AE60": color.New(color.FgGreen),
	"#F1C40F": color.New(color.FgYellow),
	"#ffffff": color.New(color.FgHiWhite),
}

func swatch(c string) *color.Color {
	if sw, ok := swatches[c]; ok {
		return sw
	}
	return color.New(color.FgWhite)
}

// RenderNotes prints the visible note list, newest first.
func RenderNotes(notes []note.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes yet.")
		return
	}

	fmt.Printf("Notes: %d\n\n", len(notes))

	for i, n := range notes {
		sw := swatch(n.Color)
		fmt.Printf("%d. %s %s\n", i+1, sw.Sprint("●"), color.New(color.Bold).Sprint(n.Title))
		if n.Body != "" {
			fmt.Printf("   %s\n", truncate(n.Body, 60))
		}
		if n.Image != nil {
			fmt.Printf("   image: %s\n", *n.Image)
		}
		fmt.Printf("   ID: %d | Modified: %s\n", n.ID, n.Date.Format("2006-01-02 15:04"))
		fmt.Println()
	}
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
