package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ticknote/internal/event"
	"github.com/marcus/ticknote/internal/notes"
)

// tickCmd returns a command that ticks every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// loadNotes returns a command that loads the note list for a filter.
func loadNotes(store *notes.Store, filter NoteFilter) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		var list []notes.Note
		var err error

		switch filter {
		case FilterArchived:
			list, err = store.ListArchived()
		case FilterDeleted:
			list, err = store.ListDeleted()
		default:
			list, err = store.List(false)
		}

		return NotesLoadedMsg{Notes: list, Err: err}
	}
}

// waitForStoreChange blocks on the database watcher and converts the next
// change into a message. Re-armed by the update loop after each delivery.
func waitForStoreChange(w *notes.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return WatcherClosedMsg{}
		}
		return StoreChangedMsg{Path: ev.Path}
	}
}

// waitForBusCommand blocks on the controller's command subscription.
// Re-armed by the update loop after each delivery.
func waitForBusCommand(ch <-chan event.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return BusClosedMsg{}
		}
		return BusCommandMsg{Event: ev}
	}
}
