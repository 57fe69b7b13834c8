package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/ticknote"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Notes  rawNotesConfig  `json:"notes"`
	Editor rawEditorConfig `json:"editor"`
	Keymap KeymapConfig    `json:"keymap"`
	UI     rawUIConfig     `json:"ui"`
}

type rawNotesConfig struct {
	DBPath string `json:"dbPath"`
}

type rawEditorConfig struct {
	KeyboardShortcuts *bool  `json:"keyboardShortcuts"`
	AutoSaveInterval  string `json:"autoSaveInterval"`
}

type rawUIConfig struct {
	ShowFooter    *bool  `json:"showFooter"`
	MarkdownTheme string `json:"markdownTheme"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/ticknote/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// Merge raw config into defaults
	mergeConfig(cfg, &raw)

	cfg.Notes.DBPath = ExpandPath(cfg.Notes.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Notes
	if raw.Notes.DBPath != "" {
		cfg.Notes.DBPath = raw.Notes.DBPath
	}

	// Editor
	if raw.Editor.KeyboardShortcuts != nil {
		cfg.Editor.KeyboardShortcuts = *raw.Editor.KeyboardShortcuts
	}
	if raw.Editor.AutoSaveInterval != "" {
		if d, err := time.ParseDuration(raw.Editor.AutoSaveInterval); err == nil {
			cfg.Editor.AutoSaveInterval = d
		}
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.MarkdownTheme != "" {
		cfg.UI.MarkdownTheme = raw.UI.MarkdownTheme
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
