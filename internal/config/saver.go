package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Notes  saveNotesConfig  `json:"notes,omitempty"`
	Editor saveEditorConfig `json:"editor"`
	Keymap KeymapConfig     `json:"keymap"`
	UI     UIConfig         `json:"ui"`
}

type saveNotesConfig struct {
	DBPath string `json:"dbPath,omitempty"`
}

type saveEditorConfig struct {
	KeyboardShortcuts *bool  `json:"keyboardShortcuts,omitempty"`
	AutoSaveInterval  string `json:"autoSaveInterval,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Notes: saveNotesConfig{
			DBPath: cfg.Notes.DBPath,
		},
		Editor: saveEditorConfig{
			KeyboardShortcuts: &cfg.Editor.KeyboardShortcuts,
			AutoSaveInterval:  cfg.Editor.AutoSaveInterval.String(),
		},
		Keymap: cfg.Keymap,
		UI:     cfg.UI,
	}
}

// Save writes the config to ~/.config/ticknote/config.json
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
