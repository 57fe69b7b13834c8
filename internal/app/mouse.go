package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse routes mouse input by pane. The editor pane maps clicks to
// rune offsets so the controller can resolve checkbox toggles.
func (m *Model) handleMouse(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch message.Button {
	case tea.MouseButtonWheelUp:
		if m.inEditorPane(message.X) && m.previewMode {
			if m.previewScroll > 0 {
				m.previewScroll--
			}
		} else if !m.inEditorPane(message.X) {
			if m.cursor > 0 {
				m.cursor--
				m.ensureCursorVisible(m.listVisibleRows())
				m.openSelectedNote()
			}
		}
		return m, nil

	case tea.MouseButtonWheelDown:
		if m.inEditorPane(message.X) && m.previewMode {
			m.previewScroll++
		} else if !m.inEditorPane(message.X) {
			if m.cursor < len(m.getDisplayNotes())-1 {
				m.cursor++
				m.ensureCursorVisible(m.listVisibleRows())
				m.openSelectedNote()
			}
		}
		return m, nil

	case tea.MouseButtonLeft:
		switch message.Action {
		case tea.MouseActionPress:
			return m.handleMousePress(message)
		case tea.MouseActionMotion:
			if m.dragging {
				offset, ok := m.clickOffset(message.X, message.Y)
				if ok {
					if sel, active := m.surface.extendDrag(offset); active {
						m.ctrl.OnUserSelect(sel)
					}
				}
			}
			return m, nil
		case tea.MouseActionRelease:
			return m.handleMouseRelease(message)
		}
	}
	return m, nil
}

// handleMousePress starts a drag in the editor pane or selects a list row.
func (m *Model) handleMousePress(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.inEditorPane(message.X) {
		if m.ctrl.NoteID() == "" {
			return m, nil
		}
		if m.previewMode {
			m.activePane = PaneEditor
			return m, nil
		}
		if m.activePane != PaneEditor {
			m.activePane = PaneEditor
			m.surface.Focus()
		}
		if offset, ok := m.clickOffset(message.X, message.Y); ok {
			m.dragging = true
			m.surface.beginDrag(offset)
		}
		return m, nil
	}

	// List pane: select the clicked row
	row := message.Y - listContentOriginY
	if row < 0 {
		return m, nil
	}
	idx := m.scrollOff + row
	list := m.getDisplayNotes()
	if idx >= 0 && idx < len(list) {
		m.commitEditor()
		m.activePane = PaneList
		m.surface.ta.Blur()
		m.cursor = idx
		m.openSelectedNote()
	}
	return m, nil
}

// handleMouseRelease finishes a drag: a zero-width release is a click and
// goes through the toggle resolver, a ranged one becomes the selection.
func (m *Model) handleMouseRelease(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.dragging {
		return m, nil
	}
	m.dragging = false

	offset, ok := m.clickOffset(message.X, message.Y)
	if !ok {
		m.surface.endDrag(m.surface.dragAnchor)
		return m, nil
	}

	sel, isClick := m.surface.endDrag(offset)
	if isClick {
		if toggled := m.ctrl.OnClick(sel); toggled {
			// OnClick committed the flip; keep the list fresh
			return m, loadNotes(m.store, m.viewFilter)
		}
		// Plain caret placement
		m.surface.moveCaretTo(offset)
		return m, nil
	}

	m.ctrl.OnUserSelect(sel)
	return m, nil
}

// Editor pane geometry: border + padding on the left, border + header row
// on top.
const (
	editorContentPad   = 2
	editorContentOrigY = 2
	listContentOriginY = 2
)

// inEditorPane reports whether an X coordinate falls in the editor pane.
func (m *Model) inEditorPane(x int) bool {
	return x > m.listWidth+dividerWidth
}

// clickOffset maps terminal coordinates to a rune offset in the editor
// value, accounting for the pane origin, viewport scroll, and wide runes.
func (m *Model) clickOffset(x, y int) (int, bool) {
	value := m.surface.Value()
	lines := strings.Split(value, "\n")

	row := y - editorContentOrigY + m.editorScroll
	if row < 0 {
		return 0, false
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}

	col := x - (m.listWidth + dividerWidth + editorContentPad)
	if col < 0 {
		return 0, false
	}

	runeIdx := columnToRuneIndex(lines[row], col)
	return rowColToOffset(value, row, runeIdx), true
}
