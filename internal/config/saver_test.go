package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveTo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.Editor.KeyboardShortcuts = false
	cfg.Editor.AutoSaveInterval = 3 * time.Second
	cfg.Notes.DBPath = "/tmp/tick.db"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.Editor.KeyboardShortcuts {
		t.Error("keyboardShortcuts should round-trip as false")
	}
	if loaded.Editor.AutoSaveInterval != 3*time.Second {
		t.Errorf("got auto-save %v, want 3s", loaded.Editor.AutoSaveInterval)
	}
	if loaded.Notes.DBPath != "/tmp/tick.db" {
		t.Errorf("got dbPath %q", loaded.Notes.DBPath)
	}
}

func TestSaveTo_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "config.json")

	if err := SaveTo(Default(), path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["editor"]; !ok {
		t.Error("missing 'editor' key")
	}
	if _, ok := raw["ui"]; !ok {
		t.Error("missing 'ui' key")
	}
}
