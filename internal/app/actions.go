package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ticknote/internal/msg"
)

// createNote returns a command that creates a new note. The title becomes
// the first line of the note content.
func (m *Model) createNote(title string) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		note, err := store.Create(title, title)
		return NoteSavedMsg{Note: note, Err: err}
	}
}

// deleteNote returns a command that soft-deletes the selected note.
func (m *Model) deleteNote() tea.Cmd {
	note := m.selectedNote()
	if note == nil || m.store == nil {
		return nil
	}

	m.pushUndo(UndoAction{Type: UndoDelete, NoteID: note.ID, Title: note.Title})

	if m.ctrl.NoteID() == note.ID {
		m.ctrl.CloseNote()
		m.editorDirty = false
	}

	store := m.store
	noteID := note.ID
	return func() tea.Msg {
		err := store.Delete(noteID)
		return NoteDeletedMsg{ID: noteID, Err: err}
	}
}

// togglePin returns a command that toggles the pinned state of the
// selected note.
func (m *Model) togglePin() tea.Cmd {
	note := m.selectedNote()
	if note == nil || m.store == nil {
		return nil
	}
	store := m.store
	noteID := note.ID
	return func() tea.Msg {
		err := store.TogglePin(noteID)
		return NotePinToggledMsg{ID: noteID, Err: err}
	}
}

// toggleArchive returns a command that toggles the archived state of the
// selected note.
func (m *Model) toggleArchive() tea.Cmd {
	note := m.selectedNote()
	if note == nil || m.store == nil {
		return nil
	}

	// Undo only covers archiving, not unarchiving
	if !note.Archived {
		m.pushUndo(UndoAction{Type: UndoArchive, NoteID: note.ID, Title: note.Title})
	}

	store := m.store
	noteID := note.ID
	return func() tea.Msg {
		err := store.ToggleArchive(noteID)
		return NoteArchiveToggledMsg{ID: noteID, Err: err}
	}
}

// undoLastAction undoes the last delete or archive.
func (m *Model) undoLastAction() tea.Cmd {
	action := m.popUndo()
	if action == nil || m.store == nil {
		return msg.ShowToast("Nothing to undo", 2*time.Second)
	}

	store := m.store
	noteID := action.NoteID
	title := action.Title
	actionType := action.Type

	return func() tea.Msg {
		var err error
		switch actionType {
		case UndoDelete:
			err = store.Restore(noteID)
		case UndoArchive:
			err = store.Unarchive(noteID)
		}
		return NoteRestoredMsg{ID: noteID, Title: title, Err: err}
	}
}

// yankNoteContent copies the selected note's persisted content to the
// clipboard. Persisted syntax is already portable plain text.
func (m *Model) yankNoteContent() tea.Cmd {
	note := m.selectedNote()
	if note == nil {
		return nil
	}

	if note.ID == m.ctrl.NoteID() {
		// The open note goes through the controller so in-progress display
		// text is decoded first.
		return m.copySelection()
	}

	ctrl := m.ctrl
	content := note.Content
	return func() tea.Msg {
		if err := ctrl.WriteClipboard(content); err != nil {
			return msg.ToastMsg{Message: "Copy failed: " + err.Error(), Duration: 2 * time.Second, IsError: true}
		}
		return msg.ToastMsg{Message: "Copied note content", Duration: 2 * time.Second}
	}
}

// copySelection routes a copy of the editor selection through the
// controller so sentinel glyphs never reach the clipboard.
func (m *Model) copySelection() tea.Cmd {
	text, ok := m.ctrl.CopySelection()
	if text == "" {
		return msg.ShowToast("No content to copy", 2*time.Second)
	}
	if !ok {
		return msg.ShowErrorToast("Copy failed", 2*time.Second)
	}
	return msg.ShowToast("Copied to clipboard", 2*time.Second)
}

// truncateTitle truncates a title to maxLen chars with ellipsis.
func truncateTitle(title string, maxLen int) string {
	if len(title) <= maxLen {
		return title
	}
	if maxLen <= 3 {
		return title[:maxLen]
	}
	return title[:maxLen-3] + "..."
}
