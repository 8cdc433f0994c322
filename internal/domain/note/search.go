package note

import "strings"

// Search filters notes by a case-insensitive substring match over title
// and body. An empty query returns the input unchanged.
func Search(notes []Note, query string) []Note {
	if query == "" {
		return notes
	}

	q := strings.ToLower(query)
	matched := make([]Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Body), q) {
			matched = append(matched, n)
		}
	}

	return matched
}
