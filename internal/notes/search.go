package notes

import "strings"

// NoteMatch pairs a note with the query that matched it.
type NoteMatch struct {
	Note Note
}

// FilterNotes returns the notes whose title or content contains the query,
// case-insensitively, preserving the input order. An empty query matches
// everything.
func FilterNotes(all []Note, query string) []NoteMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	var matches []NoteMatch
	for _, n := range all {
		if q == "" ||
			strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			matches = append(matches, NoteMatch{Note: n})
		}
	}
	return matches
}

// ExactTitleMatch reports whether the note's title equals the query,
// ignoring case and surrounding whitespace.
func ExactTitleMatch(query string, n Note) bool {
	return strings.EqualFold(strings.TrimSpace(query), strings.TrimSpace(n.Title))
}

// FindExactTitleMatch returns the first note whose title exactly matches
// the query, or nil.
func FindExactTitleMatch(all []Note, query string) *Note {
	for i := range all {
		if ExactTitleMatch(query, all[i]) {
			return &all[i]
		}
	}
	return nil
}
