package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/ticknote/internal/checkbox"
	"github.com/marcus/ticknote/internal/notes"
	"github.com/marcus/ticknote/internal/styles"
)

// View renders the two-pane layout with an optional footer.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	m.calculatePaneWidths()

	editorWidth := m.width - m.listWidth - dividerWidth
	if editorWidth < 1 {
		editorWidth = 1
	}

	paneHeight := m.height
	if m.showFooter {
		paneHeight--
	}
	if paneHeight < 3 {
		paneHeight = 3
	}

	list := m.renderListPane(m.listWidth, paneHeight)
	edit := m.renderEditorPane(editorWidth, paneHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", edit)

	if !m.showFooter {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

// renderListPane renders the note list with its header and, when search is
// active, the query prompt.
func (m *Model) renderListPane(width, height int) string {
	style := styles.PanelInactive
	if m.activePane == PaneList {
		style = styles.PanelActive
	}

	innerWidth := width - 4 // border + padding
	if innerWidth < 1 {
		innerWidth = 1
	}
	innerHeight := height - 2
	if innerHeight < 1 {
		innerHeight = 1
	}

	var b strings.Builder

	display := m.getDisplayNotes()
	header := fmt.Sprintf("Notes · %s (%d)", m.viewFilter, len(display))
	b.WriteString(styles.PanelHeader.Render(ansi.Truncate(header, innerWidth, "…")))
	b.WriteString("\n")
	rowsUsed := 1

	if m.searchMode {
		prompt := styles.SearchPrompt.Render("/") + m.searchQuery + "▌"
		b.WriteString(ansi.Truncate(prompt, innerWidth, "…"))
		b.WriteString("\n")
		rowsUsed++
	}

	visible := innerHeight - rowsUsed
	if visible < 1 {
		visible = 1
	}
	m.ensureCursorVisible(visible)

	switch {
	case m.loading:
		b.WriteString(styles.ListItem.Render("Loading notes..."))
	case m.loadErr != nil:
		b.WriteString(styles.ToastError.Render("Load failed"))
	case len(display) == 0:
		if m.searchQuery != "" {
			b.WriteString(styles.ListItem.Render("No matches. Enter creates \"" + m.searchQuery + "\""))
		} else {
			b.WriteString(styles.ListItem.Render("No notes. Press n to create one."))
		}
	default:
		end := m.scrollOff + visible
		if end > len(display) {
			end = len(display)
		}
		for i := m.scrollOff; i < end; i++ {
			b.WriteString(m.renderListRow(display[i], i == m.cursor, innerWidth))
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	return style.Width(width - 2).Height(innerHeight).Render(b.String())
}

// renderListRow renders a single note row with pin/archive markers and a
// relative timestamp.
func (m *Model) renderListRow(note notes.Note, selected bool, width int) string {
	marker := "  "
	if note.Pinned {
		marker = styles.ListItemPinned.Render("● ")
	}

	ts := formatRelativeTime(note.UpdatedAt)
	tsWidth := ansi.StringWidth(ts) + 1

	titleWidth := width - 2 - tsWidth
	if titleWidth < 4 {
		titleWidth = 4
		ts = ""
		tsWidth = 0
	}

	title := note.Title
	if title == "" {
		title = "(untitled)"
	}
	title = ansi.Truncate(title, titleWidth, "…")

	pad := titleWidth - ansi.StringWidth(title)
	if pad < 0 {
		pad = 0
	}

	rowStyle := styles.ListItem
	if note.Archived {
		rowStyle = styles.ListItemArchived
	}
	if selected {
		rowStyle = styles.ListItemSelected
	}

	line := rowStyle.Render(title) + strings.Repeat(" ", pad)
	if ts != "" {
		line += " " + styles.ListTimestamp.Render(ts)
	}
	return marker + line
}

// renderEditorPane renders the textarea, or the markdown preview when
// preview mode is on.
func (m *Model) renderEditorPane(width, height int) string {
	style := styles.PanelInactive
	if m.activePane == PaneEditor {
		style = styles.PanelActive
	}

	innerWidth := width - 4
	if innerWidth < 1 {
		innerWidth = 1
	}
	innerHeight := height - 2
	if innerHeight < 1 {
		innerHeight = 1
	}

	var b strings.Builder

	header := "(no note)"
	if id := m.ctrl.NoteID(); id != "" {
		if note := m.noteByID(id); note != nil {
			header = note.Title
		} else {
			header = id
		}
		if m.editorDirty {
			header += " •"
		}
		if m.previewMode {
			header += "  [preview]"
		}
	}
	b.WriteString(styles.PanelHeader.Render(ansi.Truncate(header, innerWidth, "…")))
	b.WriteString("\n")

	contentRows := innerHeight - 1
	if contentRows < 1 {
		contentRows = 1
	}

	if m.ctrl.NoteID() == "" {
		b.WriteString(styles.ListItem.Render("Select a note, or press n to create one."))
	} else if m.previewMode {
		b.WriteString(m.renderPreview(innerWidth, contentRows))
	} else {
		b.WriteString(m.surface.ta.View())
	}

	return style.Width(width - 2).Height(innerHeight).Render(b.String())
}

// renderPreview renders the note body as markdown, windowed by the preview
// scroll offset. The display text is decoded first so checkboxes show as
// markdown syntax rather than raw glyphs.
func (m *Model) renderPreview(width, height int) string {
	wrap := width
	if !m.lineWrap {
		wrap = 0
	}
	rendered := renderMarkdown(checkbox.Decode(m.surface.Value()), wrap, m.cfg.UI.MarkdownTheme)
	lines := strings.Split(rendered, "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.previewScroll > maxScroll {
		m.previewScroll = maxScroll
	}
	if m.previewScroll < 0 {
		m.previewScroll = 0
	}

	end := m.previewScroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[m.previewScroll:end], "\n")
}

// renderFooter renders the toast when one is active, otherwise contextual
// key hints.
func (m *Model) renderFooter() string {
	if m.statusMsg != "" {
		if m.statusIsError {
			return styles.ToastError.Render(m.statusMsg)
		}
		return styles.ToastSuccess.Render(m.statusMsg)
	}

	var hints []string
	hint := func(context, command, label string) {
		if k := m.keymap.KeyFor(context, command); k != "" {
			hints = append(hints, styles.FooterKey.Render(k)+" "+label)
		}
	}

	switch {
	case m.searchMode:
		hints = append(hints,
			styles.FooterKey.Render("enter")+" open/create",
			styles.FooterKey.Render("esc")+" cancel")
	case m.activePane == PaneEditor && m.previewMode:
		hint("preview", "scroll-down", "scroll")
		hint("preview", "toggle-preview", "edit")
		hint("preview", "back", "list")
	case m.activePane == PaneEditor:
		hint("editor", "insert-checklist", "checklist")
		hint("editor", "copy-selection", "copy")
		hint("editor", "toggle-preview", "preview")
		hint("editor", "switch-pane", "list")
	default:
		hint("list", "new-note", "new")
		hint("list", "search", "search")
		hint("list", "toggle-pin", "pin")
		hint("list", "toggle-archive", "archive")
		hint("list", "delete-note", "delete")
		hint("global", "quit", "quit")
	}

	line := strings.Join(hints, styles.Footer.Render(" · "))
	return styles.Footer.Render(" ") + line
}

// noteByID finds a note in the loaded list.
func (m *Model) noteByID(id string) *notes.Note {
	for i := range m.notes {
		if m.notes[i].ID == id {
			return &m.notes[i]
		}
	}
	return nil
}

// formatRelativeTime renders an updated-at timestamp compactly.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}
