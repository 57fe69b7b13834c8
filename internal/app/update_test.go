package app

import (
	"log/slog"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/marcus/ticknote/internal/editor"
	"github.com/marcus/ticknote/internal/notes"
	"github.com/marcus/ticknote/internal/selection"
)

type stubNoteStore struct{}

func (stubNoteStore) GetNote(id string) (string, error) { return "", nil }
func (stubNoteStore) EditNote(id, content string) error { return nil }

func newLoadTestModel(lastNoteID string) *Model {
	surface := newEditorSurface(textarea.New())
	ctrl := editor.New(stubNoteStore{}, selection.NewStore(), nil, nil, nil)
	ctrl.Bind(surface)
	return &Model{
		logger:     slog.New(slog.DiscardHandler),
		ctrl:       ctrl,
		surface:    surface,
		height:     20,
		lastNoteID: lastNoteID,
	}
}

func TestNoteIndexByID(t *testing.T) {
	list := []notes.Note{{ID: "nt-a"}, {ID: "nt-b"}, {ID: "nt-c"}}

	if idx := noteIndexByID(list, "nt-b"); idx != 1 {
		t.Errorf("got %d, want 1", idx)
	}
	if idx := noteIndexByID(list, "nt-zz"); idx != -1 {
		t.Errorf("got %d, want -1 for unknown id", idx)
	}
	if idx := noteIndexByID(nil, "nt-a"); idx != -1 {
		t.Errorf("got %d, want -1 for empty list", idx)
	}
}

func TestHandleNotesLoadedRestoresLastOpenNote(t *testing.T) {
	m := newLoadTestModel("nt-b")

	m.handleNotesLoaded(NotesLoadedMsg{Notes: []notes.Note{
		{ID: "nt-a", Title: "first"},
		{ID: "nt-b", Title: "second"},
	}})

	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (previous session's note)", m.cursor)
	}
	if got := m.ctrl.NoteID(); got != "nt-b" {
		t.Errorf("open note = %q, want nt-b", got)
	}
	if m.lastNoteID != "" {
		t.Error("restore should be consumed by the first load")
	}
}

func TestHandleNotesLoadedUnknownLastNoteFallsBackToFirst(t *testing.T) {
	m := newLoadTestModel("nt-gone")

	m.handleNotesLoaded(NotesLoadedMsg{Notes: []notes.Note{
		{ID: "nt-a", Title: "first"},
	}})

	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
	if got := m.ctrl.NoteID(); got != "nt-a" {
		t.Errorf("open note = %q, want nt-a", got)
	}
}

func TestHandleNotesLoadedRestoreIsOneShot(t *testing.T) {
	m := newLoadTestModel("nt-b")
	list := []notes.Note{{ID: "nt-a"}, {ID: "nt-b"}}

	m.handleNotesLoaded(NotesLoadedMsg{Notes: list})
	m.ctrl.CloseNote()
	m.cursor = 0
	m.handleNotesLoaded(NotesLoadedMsg{Notes: list})

	if got := m.ctrl.NoteID(); got != "nt-a" {
		t.Errorf("open note = %q, want nt-a on later loads", got)
	}
}
