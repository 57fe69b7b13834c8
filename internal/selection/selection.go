// Package selection tracks the cursor/selection tuple for each note so it
// survives note switches and content re-renders.
package selection

import "sync"

// Direction indicates which end of a selection holds the active caret.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

// String returns the wire name for the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Selection is a (start, end, direction) tuple in rune offsets. The zero
// value (caret at the start, no selection) is the state of a note opened
// for the first time.
type Selection struct {
	Start int
	End   int
	Dir   Direction
}

// IsCaret reports whether the selection is zero-width.
func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

// Equal reports whether two selections match in all three fields.
func (s Selection) Equal(o Selection) bool {
	return s.Start == o.Start && s.End == o.End && s.Dir == o.Dir
}

// Store holds the last-known selection per note ID. It is owned by the
// application; the editor controller reads the active note's tuple and
// writes updates on user-driven selection events. Selections are not
// persisted across sessions.
type Store struct {
	mu     sync.RWMutex
	byNote map[string]Selection
}

// NewStore returns an empty selection store.
func NewStore() *Store {
	return &Store{byNote: make(map[string]Selection)}
}

// Get returns the stored selection for a note, defaulting to the zero
// selection for notes never seen before.
func (st *Store) Get(noteID string) Selection {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.byNote[noteID]
}

// Set unconditionally records the selection as authoritative for the note.
func (st *Store) Set(noteID string, sel Selection) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.byNote[noteID] = sel
}

// Forget drops the stored selection for a note, e.g. after deletion.
func (st *Store) Forget(noteID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.byNote, noteID)
}
