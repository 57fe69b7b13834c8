package app

import (
	"time"

	"github.com/marcus/ticknote/internal/event"
	"github.com/marcus/ticknote/internal/notes"
)

// NotesLoadedMsg carries the result of a note list load.
type NotesLoadedMsg struct {
	Notes []notes.Note
	Err   error
}

// NoteSavedMsg carries the result of a note create.
type NoteSavedMsg struct {
	Note *notes.Note
	Err  error
}

// NoteContentSavedMsg carries the result of a content commit.
type NoteContentSavedMsg struct {
	ID  string
	Err error
}

// NoteDeletedMsg carries the result of a soft delete.
type NoteDeletedMsg struct {
	ID  string
	Err error
}

// NotePinToggledMsg carries the result of a pin toggle.
type NotePinToggledMsg struct {
	ID  string
	Err error
}

// NoteArchiveToggledMsg carries the result of an archive toggle.
type NoteArchiveToggledMsg struct {
	ID  string
	Err error
}

// NoteRestoredMsg carries the result of an undo/restore.
type NoteRestoredMsg struct {
	ID    string
	Title string
	Err   error
}

// AutoSaveTickMsg fires when the commit debounce window elapses. ID is
// compared against the current generation so stale timers are ignored.
type AutoSaveTickMsg struct {
	ID int
}

// StoreChangedMsg reports that the database file changed on disk.
type StoreChangedMsg struct {
	Path string
}

// WatcherClosedMsg reports that the database watcher shut down.
type WatcherClosedMsg struct{}

// BusCommandMsg delivers an out-of-band command from the event bus.
type BusCommandMsg struct {
	Event event.Event
}

// BusClosedMsg reports that the command subscription ended.
type BusClosedMsg struct{}

// TickMsg drives periodic housekeeping (toast expiry).
type TickMsg time.Time

// ErrorMsg wraps an error for display.
type ErrorMsg struct {
	Err error
}
