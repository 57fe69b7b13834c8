package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences.
type State struct {
	// List pane width preference (percentage of total width, 0 = use default)
	ListWidth int `json:"listWidth,omitempty"`

	// LineWrap toggles soft wrapping in the editor pane.
	LineWrap bool `json:"lineWrap"`

	// LastNoteID is the note that was open when the app exited.
	LastNoteID string `json:"lastNoteId,omitempty"`
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "ticknote"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{
		LineWrap: true, // default
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, current)
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetListWidth returns the saved list pane width.
// Returns 0 if no preference is saved (use default).
func GetListWidth() int {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.ListWidth
}

// SetListWidth saves the list pane width preference.
func SetListWidth(width int) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ListWidth = width
	mu.Unlock()
	return Save()
}

// GetLineWrap returns the saved line wrap preference.
func GetLineWrap() bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return true
	}
	return current.LineWrap
}

// SetLineWrap saves the line wrap preference.
func SetLineWrap(wrap bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.LineWrap = wrap
	mu.Unlock()
	return Save()
}

// GetLastNoteID returns the note that was open when the app exited.
func GetLastNoteID() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.LastNoteID
}

// SetLastNoteID saves the active note for the next session.
func SetLastNoteID(id string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.LastNoteID = id
	mu.Unlock()
	return Save()
}
