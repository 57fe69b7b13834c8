package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ticknote/internal/editor"
	"github.com/marcus/ticknote/internal/msg"
	"github.com/marcus/ticknote/internal/notes"
	"github.com/marcus/ticknote/internal/selection"
	"github.com/marcus/ticknote/internal/state"
)

// Update handles all messages and returns the updated model and commands.
func (m *Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKey(message)

	case tea.MouseMsg:
		return m.handleMouse(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.updateTextareaDimensions()
		return m, nil

	case TickMsg:
		m.ClearExpiredToast()
		return m, tickCmd()

	case msg.ToastMsg:
		m.ShowToast(message.Message, message.Duration, message.IsError)
		return m, nil

	case ErrorMsg:
		m.loadErr = message.Err
		m.ShowToast("Error: "+message.Err.Error(), 5*time.Second, true)
		return m, nil

	case NotesLoadedMsg:
		return m.handleNotesLoaded(message)

	case NoteSavedMsg:
		if message.Err != nil {
			m.logger.Error("note create failed", "error", message.Err)
			m.ShowToast("Create failed: "+message.Err.Error(), 3*time.Second, true)
			return m, nil
		}
		if message.Note != nil {
			m.pendingEditID = message.Note.ID
		}
		return m, loadNotes(m.store, m.viewFilter)

	case NoteContentSavedMsg:
		if message.Err != nil {
			m.logger.Error("content save failed", "error", message.Err)
			return m, nil
		}
		return m, loadNotes(m.store, m.viewFilter)

	case NoteDeletedMsg:
		if message.Err != nil {
			m.logger.Error("delete failed", "error", message.Err)
			return m, nil
		}
		return m, loadNotes(m.store, m.viewFilter)

	case NotePinToggledMsg, NoteArchiveToggledMsg:
		return m, loadNotes(m.store, m.viewFilter)

	case NoteRestoredMsg:
		if message.Err != nil {
			m.logger.Error("restore failed", "error", message.Err)
			return m, nil
		}
		title := truncateTitle(message.Title, 30)
		text := "Restored"
		if title != "" {
			text = "Restored: " + title
		}
		m.ShowToast(text, 2*time.Second, false)
		return m, loadNotes(m.store, m.viewFilter)

	case AutoSaveTickMsg:
		// Only commit if this tick matches the current generation (debounce)
		if message.ID == m.autoSaveID && m.editorDirty {
			m.commitEditor()
			return m, loadNotes(m.store, m.viewFilter)
		}
		return m, nil

	case StoreChangedMsg:
		return m.handleStoreChanged()

	case WatcherClosedMsg:
		return m, nil

	case BusCommandMsg:
		m.ctrl.HandleCommand(message.Event)
		return m, waitForBusCommand(m.ctrl.Commands())

	case BusClosedMsg:
		return m, nil
	}

	// Pass through other messages to the textarea (cursor blink etc.)
	if m.activePane == PaneEditor && !m.previewMode {
		var cmd tea.Cmd
		m.surface.ta, cmd = m.surface.ta.Update(message)
		return m, cmd
	}

	return m, nil
}

// handleNotesLoaded installs a fresh note list and reconciles cursor and
// editor state against it.
func (m *Model) handleNotesLoaded(message NotesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if message.Err != nil {
		m.loadErr = message.Err
		m.logger.Error("note load failed", "error", message.Err)
		return m, nil
	}
	m.notes = message.Notes
	m.loadErr = nil
	if m.searchQuery != "" {
		m.updateFilteredNotes()
	}

	if m.pendingEditID != "" {
		// A note was just created: select it and focus the editor
		for i, n := range m.getDisplayNotes() {
			if n.ID == m.pendingEditID {
				m.cursor = i
				m.openSelectedNote()
				m.activePane = PaneEditor
				m.previewMode = false
				m.surface.Focus()
				break
			}
		}
		m.pendingEditID = ""
		return m, nil
	}

	if id := m.ctrl.NoteID(); id != "" {
		// Follow the open note if it moved position (updated_at sort)
		for i, n := range m.getDisplayNotes() {
			if n.ID == id {
				m.cursor = i
				break
			}
		}
		m.ensureCursorVisible(m.listVisibleRows())
		return m, nil
	}

	if len(m.notes) > 0 {
		if m.cursor >= len(m.notes) {
			m.cursor = 0
		}
		// First load of a session reopens the previous session's note
		if m.lastNoteID != "" {
			if idx := noteIndexByID(m.getDisplayNotes(), m.lastNoteID); idx >= 0 {
				m.cursor = idx
				m.ensureCursorVisible(m.listVisibleRows())
			}
			m.lastNoteID = ""
		}
		m.openSelectedNote()
	}
	return m, nil
}

// noteIndexByID returns the position of a note in the list, or -1.
func noteIndexByID(list []notes.Note, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// handleStoreChanged reacts to the database file changing on disk: the
// open note's persisted content is re-delivered to the controller and the
// list reloaded.
func (m *Model) handleStoreChanged() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForStoreChange(m.watcher)}

	if id := m.ctrl.NoteID(); id != "" {
		content, err := m.store.GetNote(id)
		if err == nil {
			m.ctrl.OnContentChanged(content)
		} else {
			m.logger.Warn("reload after change failed", "id", id, "error", err)
		}
	}
	cmds = append(cmds, loadNotes(m.store, m.viewFilter))
	return m, tea.Batch(cmds...)
}

// handleKey processes keyboard input.
func (m *Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := message.String()

	if key == "ctrl+c" {
		m.commitEditor()
		return m, tea.Quit
	}

	// ctrl+h doubles as backspace in some terminals, so the footer toggle
	// stays out of the typing path
	typing := m.searchMode || (m.activePane == PaneEditor && !m.previewMode)
	if !typing {
		if cmd, ok := m.keymap.Lookup("global", key); ok && cmd == "toggle-footer" {
			m.showFooter = !m.showFooter
			m.updateTextareaDimensions()
			return m, nil
		}
	}

	if m.searchMode {
		return m.handleSearchKey(message)
	}

	if m.activePane == PaneEditor {
		return m.handleEditorKey(message)
	}

	return m.handleListKey(message)
}

// handleListKey processes keyboard input when the list pane is focused.
func (m *Model) handleListKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := message.String()

	// g g jumps to top; the second g resolves here rather than through the
	// single-key registry lookup
	if m.pendingG {
		m.pendingG = false
		if key == "g" {
			m.cursor = 0
			m.scrollOff = 0
			m.openSelectedNote()
			return m, nil
		}
	}
	if key == "g" {
		m.pendingG = true
		return m, nil
	}

	// Esc returns to Active view from Archived/Deleted views
	if key == "esc" && m.viewFilter != FilterActive {
		m.viewFilter = FilterActive
		m.cursor = 0
		m.scrollOff = 0
		return m, loadNotes(m.store, m.viewFilter)
	}

	cmd, ok := m.keymap.Lookup("list", key)
	if !ok {
		return m, nil
	}

	list := m.getDisplayNotes()

	switch cmd {
	case "cursor-down":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
		m.ensureCursorVisible(m.listVisibleRows())
		m.openSelectedNote()
	case "cursor-up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible(m.listVisibleRows())
		m.openSelectedNote()
	case "cursor-bottom":
		if len(list) > 0 {
			m.cursor = len(list) - 1
		}
		m.ensureCursorVisible(m.listVisibleRows())
		m.openSelectedNote()
	case "search":
		m.searchMode = true
		m.searchQuery = ""
		m.updateFilteredNotes()
	case "switch-pane":
		if m.ctrl.NoteID() != "" {
			m.activePane = PaneEditor
			if !m.previewMode {
				m.surface.Focus()
			}
		}
	case "new-note":
		if m.viewFilter == FilterActive {
			return m, m.createNote("")
		}
	case "delete-note":
		if m.viewFilter == FilterActive && len(list) > 0 {
			return m, m.deleteNote()
		}
	case "show-deleted":
		m.viewFilter = FilterDeleted
		m.cursor = 0
		m.scrollOff = 0
		return m, loadNotes(m.store, m.viewFilter)
	case "toggle-pin":
		if m.viewFilter == FilterActive && len(list) > 0 {
			return m, m.togglePin()
		}
	case "toggle-archive":
		if m.viewFilter == FilterActive && len(list) > 0 {
			return m, m.toggleArchive()
		}
	case "show-archived":
		m.viewFilter = FilterArchived
		m.cursor = 0
		m.scrollOff = 0
		return m, loadNotes(m.store, m.viewFilter)
	case "restore-note":
		if m.viewFilter == FilterActive {
			return m, m.undoLastAction()
		}
	case "yank-note":
		if len(list) > 0 {
			return m, m.yankNoteContent()
		}
	case "refresh":
		return m, loadNotes(m.store, m.viewFilter)
	case "narrow-list":
		m.adjustListWidth(-2)
	case "widen-list":
		m.adjustListWidth(2)
	case "open-note":
		if len(list) > 0 {
			m.openSelectedNote()
			m.activePane = PaneEditor
			m.previewMode = m.viewFilter != FilterActive
			if !m.previewMode {
				m.surface.Focus()
			}
		}
	case "quit":
		m.commitEditor()
		return m, tea.Quit
	}
	return m, nil
}

// handleEditorKey processes keyboard input when the editor pane is focused.
func (m *Model) handleEditorKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := message.String()

	if m.previewMode {
		return m.handlePreviewKey(message)
	}

	// The controller consumes its own default chord (settings-gated)
	if m.ctrl.HandleKey(key) {
		return m, nil
	}

	// Resolve configurable chords
	if cmd, ok := m.keymap.Lookup("editor", key); ok {
		switch cmd {
		case "insert-checklist":
			if m.cfg.KeyboardShortcutsEnabled() {
				m.bus.Publish(editor.TopicInsertChecklist, nil)
				return m, nil
			}
		case "copy-selection":
			return m, m.copySelection()
		case "toggle-preview":
			m.commitEditor()
			m.previewMode = true
			m.previewScroll = 0
			return m, nil
		case "toggle-wrap":
			m.lineWrap = !m.lineWrap
			_ = state.SetLineWrap(m.lineWrap)
			return m, nil
		case "switch-pane":
			m.commitEditor()
			m.activePane = PaneList
			m.surface.ta.Blur()
			return m, loadNotes(m.store, m.viewFilter)
		}
	}

	switch key {
	case "esc":
		m.commitEditor()
		m.activePane = PaneList
		m.surface.ta.Blur()
		return m, loadNotes(m.store, m.viewFilter)
	case "ctrl+s":
		m.autoSaveID++
		m.commitEditor()
		m.ShowToast("Saved", 2*time.Second, false)
		return m, loadNotes(m.store, m.viewFilter)
	}

	// Delegate to the textarea
	oldValue := m.surface.Value()
	var cmd tea.Cmd
	m.surface.ta, cmd = m.surface.ta.Update(message)
	m.trackEditorScroll()

	// Typing or caret movement replaces any mouse selection
	m.surface.sel = selection.Selection{}
	m.ctrl.OnUserSelect(m.surface.Selection())

	if newValue := m.surface.Value(); newValue != oldValue {
		m.editorDirty = true
		return m, tea.Batch(cmd, m.startAutoSaveTimer())
	}
	return m, cmd
}

// handlePreviewKey handles keys in rendered-markdown preview mode.
func (m *Model) handlePreviewKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := message.String()

	if cmd, ok := m.keymap.Lookup("preview", key); ok {
		switch cmd {
		case "scroll-down":
			m.previewScroll++
			return m, nil
		case "scroll-up":
			if m.previewScroll > 0 {
				m.previewScroll--
			}
			return m, nil
		case "page-down":
			m.previewScroll += m.editorVisibleRows()
			return m, nil
		case "page-up":
			m.previewScroll -= m.editorVisibleRows()
			if m.previewScroll < 0 {
				m.previewScroll = 0
			}
			return m, nil
		case "toggle-preview":
			if m.viewFilter == FilterActive {
				m.previewMode = false
				return m, m.surface.ta.Focus()
			}
			return m, nil
		case "back":
			m.activePane = PaneList
			return m, nil
		}
	}

	switch key {
	case "tab", "esc":
		m.activePane = PaneList
	case "enter", "i":
		if m.viewFilter == FilterActive {
			m.previewMode = false
			return m, m.surface.ta.Focus()
		}
	}
	return m, nil
}

// handleSearchKey processes keyboard input in search mode.
func (m *Model) handleSearchKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := message.String()

	switch key {
	case "esc":
		m.searchMode = false
		m.searchQuery = ""
		m.filteredNotes = nil
		m.cursor = 0
		m.scrollOff = 0
		return m, nil

	case "enter":
		// NV behavior: exact match opens it, no match creates a note with
		// the query as its title
		if m.searchQuery != "" {
			if exact := notes.FindExactTitleMatch(m.notes, m.searchQuery); exact != nil {
				for i, n := range m.getDisplayNotes() {
					if n.ID == exact.ID {
						m.cursor = i
						break
					}
				}
			} else if len(m.filteredNotes) == 0 {
				title := m.searchQuery
				m.searchMode = false
				m.searchQuery = ""
				m.filteredNotes = nil
				return m, m.createNote(title)
			}
			m.openSelectedNote()
			m.activePane = PaneEditor
			m.previewMode = false
			m.surface.Focus()
		}
		m.searchMode = false
		m.searchQuery = ""
		m.filteredNotes = nil
		m.scrollOff = 0
		return m, nil

	case "ctrl+n", "down":
		if m.cursor < len(m.getDisplayNotes())-1 {
			m.cursor++
			m.ensureCursorVisible(m.listVisibleRows())
		}
		return m, nil

	case "ctrl+p", "up":
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible(m.listVisibleRows())
		}
		return m, nil

	case "backspace":
		if len(m.searchQuery) > 0 {
			runes := []rune(m.searchQuery)
			m.searchQuery = string(runes[:len(runes)-1])
			m.updateFilteredNotes()
		}
		return m, nil

	default:
		if len(message.Runes) > 0 && message.Runes[0] >= 32 {
			m.searchQuery += string(message.Runes)
			m.updateFilteredNotes()
		}
		return m, nil
	}
}
