package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	// Use InitWithDir to avoid reading real user state
	err := InitWithDir(filepath.Join(tmpDir, ".config", "ticknote"))
	if err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}

	if current == nil {
		t.Error("current state should be initialized")
	}
	if !current.LineWrap {
		t.Error("default LineWrap should be true")
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestLoad_NonExistent(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	path = filepath.Join(tmpDir, "nonexistent", "state.json")

	err := Load()
	if err != nil {
		t.Fatalf("Load() for non-existent file should return nil, got %v", err)
	}

	if current == nil {
		t.Error("current should be initialized with defaults")
	}
	if current.ListWidth != 0 {
		t.Errorf("default ListWidth = %d, want 0", current.ListWidth)
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestLoad_ExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	stateFile := filepath.Join(tmpDir, "state.json")
	path = stateFile

	testState := State{ListWidth: 40, LastNoteID: "nt-a1b2"}
	data, _ := json.Marshal(testState)
	if err := os.WriteFile(stateFile, data, 0644); err != nil {
		t.Fatalf("failed to write test state file: %v", err)
	}

	err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if current.ListWidth != 40 {
		t.Errorf("ListWidth = %d, want 40", current.ListWidth)
	}
	if current.LastNoteID != "nt-a1b2" {
		t.Errorf("LastNoteID = %q, want nt-a1b2", current.LastNoteID)
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	stateFile := filepath.Join(tmpDir, "state.json")
	path = stateFile

	if err := os.WriteFile(stateFile, []byte("invalid json"), 0644); err != nil {
		t.Fatalf("failed to write invalid JSON: %v", err)
	}

	err := Load()
	if err == nil {
		t.Error("Load() should return error for invalid JSON")
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestSave_CreateDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current

	stateFile := filepath.Join(tmpDir, "deep", "nested", "config", "ticknote", "state.json")
	path = stateFile

	current = &State{ListWidth: 35}

	err := Save()
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if _, err := os.Stat(stateFile); err != nil {
		t.Fatalf("state file not created: %v", err)
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestSave_NilCurrent(t *testing.T) {
	originalPath := path
	originalCurrent := current

	current = nil
	path = "/tmp/nonexistent/state.json"

	// Should not error when current is nil
	err := Save()
	if err != nil {
		t.Fatalf("Save() with nil current should not error, got %v", err)
	}

	// Cleanup
	path = originalPath
	current = originalCurrent
}

func TestGetListWidth_Default(t *testing.T) {
	originalCurrent := current
	defer func() { current = originalCurrent }()

	current = nil
	if w := GetListWidth(); w != 0 {
		t.Errorf("GetListWidth() with nil current = %d, want 0", w)
	}
}

func TestSetListWidth(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current
	defer func() {
		path = originalPath
		current = originalCurrent
	}()

	stateFile := filepath.Join(tmpDir, "state.json")
	path = stateFile
	current = &State{}

	err := SetListWidth(45)
	if err != nil {
		t.Fatalf("SetListWidth() failed: %v", err)
	}

	if current.ListWidth != 45 {
		t.Errorf("current.ListWidth = %d, want 45", current.ListWidth)
	}

	// Verify saved to disk
	data, _ := os.ReadFile(stateFile)
	var loaded State
	_ = json.Unmarshal(data, &loaded)
	if loaded.ListWidth != 45 {
		t.Errorf("saved ListWidth = %d, want 45", loaded.ListWidth)
	}
}

func TestGetLineWrap_Default(t *testing.T) {
	originalCurrent := current
	defer func() { current = originalCurrent }()

	current = nil
	if !GetLineWrap() {
		t.Error("GetLineWrap() with nil current should default to true")
	}
}

func TestSetLineWrap(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current
	defer func() {
		path = originalPath
		current = originalCurrent
	}()

	stateFile := filepath.Join(tmpDir, "state.json")
	path = stateFile
	current = &State{LineWrap: true}

	err := SetLineWrap(false)
	if err != nil {
		t.Fatalf("SetLineWrap() failed: %v", err)
	}

	if current.LineWrap {
		t.Error("current.LineWrap should be false")
	}
}

func TestSetLastNoteID_InitializesNilState(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current
	defer func() {
		path = originalPath
		current = originalCurrent
	}()

	path = filepath.Join(tmpDir, "state.json")
	current = nil

	err := SetLastNoteID("nt-ff00")
	if err != nil {
		t.Fatalf("SetLastNoteID() failed: %v", err)
	}

	if current == nil {
		t.Fatal("SetLastNoteID() should initialize current state")
	}
	if GetLastNoteID() != "nt-ff00" {
		t.Errorf("LastNoteID = %q, want nt-ff00", GetLastNoteID())
	}
}

func TestConcurrentAccess(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current
	defer func() {
		path = originalPath
		current = originalCurrent
	}()

	stateFile := filepath.Join(tmpDir, "state.json")
	path = stateFile

	current = &State{}

	var wg sync.WaitGroup
	errors := make(chan error, 10)

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if err := SetListWidth(30 + n); err != nil {
				errors <- err
			}
		}(i)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = GetListWidth()
		}()
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		if err != nil {
			t.Errorf("concurrent access error: %v", err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	originalPath := path
	originalCurrent := current
	defer func() {
		path = originalPath
		current = originalCurrent
	}()

	stateFile := filepath.Join(tmpDir, "state.json")
	path = stateFile

	current = &State{ListWidth: 28, LineWrap: false, LastNoteID: "nt-beef"}
	if err := Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	current = nil
	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if current.ListWidth != 28 {
		t.Errorf("round-trip ListWidth = %d, want 28", current.ListWidth)
	}
	if current.LineWrap {
		t.Error("round-trip LineWrap should be false")
	}
	if current.LastNoteID != "nt-beef" {
		t.Errorf("round-trip LastNoteID = %q, want nt-beef", current.LastNoteID)
	}
}
