package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Notes  NotesConfig  `json:"notes"`
	Editor EditorConfig `json:"editor"`
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`
}

// NotesConfig configures note storage.
type NotesConfig struct {
	DBPath string `json:"dbPath"` // sqlite database path (supports ~ expansion)
}

// EditorConfig configures editing behavior.
type EditorConfig struct {
	// KeyboardShortcuts enables editor key chords (insert-checklist etc).
	KeyboardShortcuts bool `json:"keyboardShortcuts"`
	// AutoSaveInterval is the debounce window between the last keystroke
	// and the commit to the store.
	AutoSaveInterval time.Duration `json:"autoSaveInterval"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter    bool   `json:"showFooter"`
	MarkdownTheme string `json:"markdownTheme"` // glamour style name for the preview pane
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Notes: NotesConfig{},
		Editor: EditorConfig{
			KeyboardShortcuts: true,
			AutoSaveInterval:  750 * time.Millisecond,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter:    true,
			MarkdownTheme: "auto",
		},
	}
}

// KeyboardShortcutsEnabled reports whether editor key chords are active.
func (c *Config) KeyboardShortcutsEnabled() bool {
	return c.Editor.KeyboardShortcuts
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Editor.AutoSaveInterval <= 0 {
		c.Editor.AutoSaveInterval = 750 * time.Millisecond
	}
	if c.UI.MarkdownTheme == "" {
		c.UI.MarkdownTheme = "auto"
	}
	return nil
}
