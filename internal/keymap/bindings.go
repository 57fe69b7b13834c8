// Package keymap maps key chords to named commands per UI context, with
// user overrides from config layered on top of the defaults.
package keymap

// Binding associates a key chord with a command in a UI context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "ctrl+h", Command: "toggle-footer", Context: "global"},
		{Key: "esc", Command: "back", Context: "global"},

		// Note list context
		{Key: "j", Command: "cursor-down", Context: "list"},
		{Key: "down", Command: "cursor-down", Context: "list"},
		{Key: "k", Command: "cursor-up", Context: "list"},
		{Key: "up", Command: "cursor-up", Context: "list"},
		{Key: "g g", Command: "cursor-top", Context: "list"},
		{Key: "G", Command: "cursor-bottom", Context: "list"},
		{Key: "enter", Command: "open-note", Context: "list"},
		{Key: "tab", Command: "switch-pane", Context: "list"},
		{Key: "n", Command: "new-note", Context: "list"},
		{Key: "/", Command: "search", Context: "list"},
		{Key: "p", Command: "toggle-pin", Context: "list"},
		{Key: "A", Command: "toggle-archive", Context: "list"},
		{Key: "a", Command: "show-archived", Context: "list"},
		{Key: "X", Command: "delete-note", Context: "list"},
		{Key: "x", Command: "show-deleted", Context: "list"},
		{Key: "u", Command: "restore-note", Context: "list"},
		{Key: "y", Command: "yank-note", Context: "list"},
		{Key: "r", Command: "refresh", Context: "list"},
		{Key: "<", Command: "narrow-list", Context: "list"},
		{Key: ">", Command: "widen-list", Context: "list"},
		{Key: "q", Command: "quit", Context: "list"},

		// Editor context
		{Key: "tab", Command: "switch-pane", Context: "editor"},
		{Key: "ctrl+shift+c", Command: "insert-checklist", Context: "editor"},
		{Key: "alt+c", Command: "copy-selection", Context: "editor"},
		{Key: "ctrl+p", Command: "toggle-preview", Context: "editor"},
		{Key: "ctrl+w", Command: "toggle-wrap", Context: "editor"},

		// Preview context
		{Key: "j", Command: "scroll-down", Context: "preview"},
		{Key: "k", Command: "scroll-up", Context: "preview"},
		{Key: "ctrl+d", Command: "page-down", Context: "preview"},
		{Key: "ctrl+u", Command: "page-up", Context: "preview"},
		{Key: "ctrl+p", Command: "toggle-preview", Context: "preview"},
		{Key: "q", Command: "back", Context: "preview"},

		// Search context
		{Key: "enter", Command: "select", Context: "search"},
		{Key: "esc", Command: "cancel", Context: "search"},
		{Key: "up", Command: "cursor-up", Context: "search"},
		{Key: "down", Command: "cursor-down", Context: "search"},
		{Key: "ctrl+p", Command: "cursor-up", Context: "search"},
		{Key: "ctrl+n", Command: "cursor-down", Context: "search"},
	}
}
