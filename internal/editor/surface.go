package editor

import "github.com/marcus/ticknote/internal/selection"

// Surface is the live editing widget as the controller sees it: a value in
// display form plus a selection in rune offsets. The controller is the only
// component allowed to mutate a bound surface.
type Surface interface {
	// Value returns the current display text.
	Value() string
	// SetValue replaces the display text.
	SetValue(string)
	// Selection returns the current selection tuple.
	Selection() selection.Selection
	// SetSelection imperatively reapplies a selection tuple.
	SetSelection(selection.Selection)
	// ReplaceRange substitutes the rune range [start, end) with text.
	ReplaceRange(start, end int, text string)
	// Focus restores input focus to the surface.
	Focus()
}

// NoteStore is the slice of the note store the controller needs.
type NoteStore interface {
	GetNote(id string) (string, error)
	EditNote(id, content string) error
}

// Settings exposes the one setting the controller consults.
type Settings interface {
	KeyboardShortcutsEnabled() bool
}

// ClipboardFunc writes text to the system clipboard, trying whatever
// fallback chain the implementation provides.
type ClipboardFunc func(text string) error
