// Package app contains the bubbletea program: a two-pane note UI with a
// list on the left and a checkbox-aware editor on the right.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/ticknote/internal/clipboard"
	"github.com/marcus/ticknote/internal/config"
	"github.com/marcus/ticknote/internal/editor"
	"github.com/marcus/ticknote/internal/event"
	"github.com/marcus/ticknote/internal/keymap"
	"github.com/marcus/ticknote/internal/notes"
	"github.com/marcus/ticknote/internal/selection"
	"github.com/marcus/ticknote/internal/state"
	"github.com/marcus/ticknote/internal/styles"
)

const dividerWidth = 1

// FocusPane represents which pane is active.
type FocusPane int

const (
	PaneList FocusPane = iota
	PaneEditor
)

// NoteFilter represents the current note filter view.
type NoteFilter int

const (
	FilterActive NoteFilter = iota
	FilterArchived
	FilterDeleted
)

// String returns the display name for the filter.
func (f NoteFilter) String() string {
	switch f {
	case FilterArchived:
		return "Archived"
	case FilterDeleted:
		return "Deleted"
	default:
		return "Active"
	}
}

// UndoActionType represents the type of undoable action.
type UndoActionType string

const (
	UndoDelete  UndoActionType = "delete"
	UndoArchive UndoActionType = "archive"
)

// UndoAction represents an undoable action.
type UndoAction struct {
	Type   UndoActionType
	NoteID string
	Title  string // For toast message
}

// Model is the root Bubble Tea model for the ticknote application.
type Model struct {
	cfg    *config.Config
	logger *slog.Logger

	// Collaborators
	store   *notes.Store
	watcher *notes.Watcher
	bus     *event.Bus
	keymap  *keymap.Registry
	ctrl    *editor.Controller
	surface *editorSurface

	// View dimensions
	width  int
	height int
	ready  bool

	// Pane state
	activePane FocusPane
	listWidth  int // width of list pane (calculated from ratio)
	showFooter bool

	// Filter state
	viewFilter NoteFilter

	// Note list state
	notes     []notes.Note
	cursor    int
	scrollOff int
	loading   bool
	loadErr   error

	// g key state for g g sequence
	pendingG bool

	// Search state (NV-style)
	searchMode    bool
	searchQuery   string
	filteredNotes []notes.NoteMatch

	// Editor state
	editorDirty   bool
	previewMode   bool // true = rendered markdown, false = editing
	previewScroll int
	editorScroll  int // approximate textarea viewport offset for mouse math
	lineWrap      bool

	// Auto-commit debounce generation
	autoSaveID int

	// Pending edit state (auto-focus editor after creating a note)
	pendingEditID string

	// Last open note from the previous session, consumed by the first load
	lastNoteID string

	// Mouse drag state
	dragging bool

	// Undo state
	undoStack []UndoAction

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool
}

// Options wires the app model's collaborators.
type Options struct {
	Config  *config.Config
	Store   *notes.Store
	Watcher *notes.Watcher
	Bus     *event.Bus
	Keymap  *keymap.Registry
	Logger  *slog.Logger
}

// New creates the application model and binds the editor controller to a
// fresh textarea surface.
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.EndOfBufferCharacter = '~'
	muted := lipgloss.NewStyle().Foreground(styles.TextMuted)
	ta.FocusedStyle = textarea.Style{
		Base:             lipgloss.NewStyle(),
		CursorLine:       lipgloss.NewStyle(),
		CursorLineNumber: muted,
		EndOfBuffer:      muted,
		LineNumber:       muted,
		Placeholder:      muted,
		Prompt:           lipgloss.NewStyle(),
		Text:             lipgloss.NewStyle(),
	}
	ta.BlurredStyle = ta.FocusedStyle
	// Unbind alt+c (CapitalizeWordForward) - we use it for clipboard copy
	ta.KeyMap.CapitalizeWordForward = key.NewBinding(key.WithDisabled())
	ta.Blur()

	surface := newEditorSurface(ta)

	ctrl := editor.New(opts.Store, selection.NewStore(), opts.Config, func(text string) (err error) {
		_, err = clipboard.Write(text)
		return err
	}, logger)
	ctrl.Init(opts.Bus)
	ctrl.Bind(surface)

	listWidth := 0
	if w := state.GetListWidth(); w > 0 {
		listWidth = w
	}

	return &Model{
		cfg:        opts.Config,
		logger:     logger,
		store:      opts.Store,
		watcher:    opts.Watcher,
		bus:        opts.Bus,
		keymap:     opts.Keymap,
		ctrl:       ctrl,
		surface:    surface,
		activePane: PaneList,
		viewFilter: FilterActive,
		listWidth:  listWidth,
		showFooter: opts.Config.UI.ShowFooter,
		lineWrap:   state.GetLineWrap(),
		lastNoteID: state.GetLastNoteID(),
	}
}

// Init starts the event pumps and the initial note load.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(),
		loadNotes(m.store, m.viewFilter),
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForStoreChange(m.watcher))
	}
	if ch := m.ctrl.Commands(); ch != nil {
		cmds = append(cmds, waitForBusCommand(ch))
	}
	return tea.Batch(cmds...)
}

// Close releases the model's resources. Call after the program exits.
func (m *Model) Close() {
	if m.ctrl != nil {
		if id := m.ctrl.NoteID(); id != "" {
			_ = state.SetLastNoteID(id)
		}
		m.ctrl.Dispose()
	}
	if m.watcher != nil {
		m.watcher.Close()
	}
	if m.store != nil {
		m.store.Close()
	}
}

// ShowToast displays a transient footer message.
func (m *Model) ShowToast(message string, duration time.Duration, isError bool) {
	m.statusMsg = message
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = isError
}

// ClearExpiredToast drops the toast once its deadline passes.
func (m *Model) ClearExpiredToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// getDisplayNotes returns the notes to display (filtered or all).
func (m *Model) getDisplayNotes() []notes.Note {
	if m.searchQuery != "" && len(m.filteredNotes) > 0 {
		list := make([]notes.Note, len(m.filteredNotes))
		for i, match := range m.filteredNotes {
			list[i] = match.Note
		}
		return list
	}
	return m.notes
}

// selectedNote returns the currently selected note, or nil.
func (m *Model) selectedNote() *notes.Note {
	list := m.getDisplayNotes()
	if len(list) == 0 || m.cursor < 0 || m.cursor >= len(list) {
		return nil
	}
	return &list[m.cursor]
}

// openSelectedNote loads the selected note into the editor surface.
func (m *Model) openSelectedNote() {
	note := m.selectedNote()
	if note == nil {
		return
	}
	if m.ctrl.NoteID() == note.ID {
		return
	}
	// Commit in-progress edits before switching away
	m.commitEditor()
	if err := m.ctrl.SetNote(note.ID); err != nil {
		m.logger.Error("open note failed", "id", note.ID, "error", err)
		m.ShowToast("Open failed: "+err.Error(), 3*time.Second, true)
		return
	}
	m.editorDirty = false
	m.previewScroll = 0
}

// commitEditor flushes pending editor changes to the store.
func (m *Model) commitEditor() {
	if !m.editorDirty {
		return
	}
	m.ctrl.OnTextChanged(m.surface.Value())
	m.editorDirty = false
}

// startAutoSaveTimer starts the commit debounce timer.
func (m *Model) startAutoSaveTimer() tea.Cmd {
	m.autoSaveID++
	id := m.autoSaveID
	return tea.Tick(m.cfg.Editor.AutoSaveInterval, func(t time.Time) tea.Msg {
		return AutoSaveTickMsg{ID: id}
	})
}

// pushUndo adds an action to the undo stack.
func (m *Model) pushUndo(action UndoAction) {
	const maxUndoStack = 20
	m.undoStack = append(m.undoStack, action)
	if len(m.undoStack) > maxUndoStack {
		m.undoStack = m.undoStack[1:]
	}
}

// popUndo removes and returns the last action from the undo stack.
func (m *Model) popUndo() *UndoAction {
	if len(m.undoStack) == 0 {
		return nil
	}
	action := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	return &action
}

// updateFilteredNotes recomputes search results for the current query.
func (m *Model) updateFilteredNotes() {
	m.filteredNotes = notes.FilterNotes(m.notes, m.searchQuery)
	m.cursor = 0
	m.scrollOff = 0

	// NV behavior: if exact title match exists, select it automatically
	if m.searchQuery != "" {
		for i, match := range m.filteredNotes {
			if notes.ExactTitleMatch(m.searchQuery, match.Note) {
				m.cursor = i
				break
			}
		}
	}
}

// adjustListWidth resizes the list pane by delta columns, clamped so both
// panes stay usable, and persists the result.
func (m *Model) adjustListWidth(delta int) {
	const minPane = 20
	w := m.listWidth + delta
	if w < minPane {
		w = minPane
	}
	if m.width > 0 && w > m.width-minPane {
		w = m.width - minPane
	}
	if w == m.listWidth {
		return
	}
	m.listWidth = w
	_ = state.SetListWidth(w)
	m.updateTextareaDimensions()
}

// calculatePaneWidths derives the list pane width from the window size.
func (m *Model) calculatePaneWidths() {
	if m.listWidth <= 0 || m.listWidth >= m.width {
		m.listWidth = m.width / 3
	}
	if m.listWidth < 20 && m.width > 24 {
		m.listWidth = 20
	}
}

// updateTextareaDimensions resizes the editor surface to the editor pane.
func (m *Model) updateTextareaDimensions() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.calculatePaneWidths()
	editorWidth := m.width - m.listWidth - dividerWidth - 4 // borders + padding
	contentHeight := m.height - 2 - 1                       // borders - status header
	if m.showFooter {
		contentHeight--
	}
	if editorWidth < 1 {
		editorWidth = 1
	}
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.surface.ta.SetWidth(editorWidth)
	m.surface.ta.SetHeight(contentHeight)
}

// ensureCursorVisible adjusts the list scroll offset to keep the cursor
// on screen.
func (m *Model) ensureCursorVisible(visible int) {
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+visible {
		m.scrollOff = m.cursor - visible + 1
	}
}

// listVisibleRows returns how many note rows fit in the list pane.
func (m *Model) listVisibleRows() int {
	rows := m.height - 2 - 1 // borders - header
	if m.showFooter {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// editorVisibleRows returns how many content rows fit in the editor pane.
func (m *Model) editorVisibleRows() int {
	rows := m.height - 2 - 1
	if m.showFooter {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// trackEditorScroll approximates the textarea's viewport scroll from the
// cursor line so mouse coordinates keep mapping to the right rows. The
// textarea does not expose its viewport offset.
func (m *Model) trackEditorScroll() {
	cursorLine := m.surface.ta.Line()
	height := m.editorVisibleRows()
	if cursorLine < m.editorScroll {
		m.editorScroll = cursorLine
	}
	if cursorLine >= m.editorScroll+height {
		m.editorScroll = cursorLine - height + 1
	}
}
