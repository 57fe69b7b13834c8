package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/ticknote/internal/selection"
)

// editorSurface adapts a bubbles textarea to the editor controller. The
// textarea has no native ranged selection, so mouse-drag ranges are tracked
// here and the caret sits at the active end.
type editorSurface struct {
	ta  textarea.Model
	sel selection.Selection // ranged selection from mouse drag (rune offsets)

	// dragAnchor is the press offset while a drag is in progress, -1 idle.
	dragAnchor int
}

func newEditorSurface(ta textarea.Model) *editorSurface {
	return &editorSurface{ta: ta, dragAnchor: -1}
}

// Value returns the live display text.
func (s *editorSurface) Value() string {
	return s.ta.Value()
}

// SetValue replaces the display text. The textarea moves its own cursor;
// callers reapply the selection afterwards.
func (s *editorSurface) SetValue(v string) {
	s.ta.SetValue(v)
	s.sel = selection.Selection{}
}

// Selection returns the tracked range, or the caret position when no range
// is active.
func (s *editorSurface) Selection() selection.Selection {
	if !s.sel.IsCaret() {
		return s.sel
	}
	off := s.caretOffset()
	return selection.Selection{Start: off, End: off}
}

// SetSelection records the selection and moves the caret to its active end
// (the end for forward selections, the start for backward ones).
func (s *editorSurface) SetSelection(sel selection.Selection) {
	s.sel = sel
	active := sel.End
	if sel.Dir == selection.Backward {
		active = sel.Start
	}
	s.moveCaretTo(active)
	if sel.IsCaret() {
		s.sel = selection.Selection{}
	}
}

// ReplaceRange splices text into the rune range [start, end) and restores
// the caret to its prior offset.
func (s *editorSurface) ReplaceRange(start, end int, text string) {
	runes := []rune(s.ta.Value())
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start > end {
		start, end = end, start
	}
	caret := s.caretOffset()
	s.ta.SetValue(string(runes[:start]) + text + string(runes[end:]))
	s.moveCaretTo(caret)
}

// Focus gives the textarea keyboard focus.
func (s *editorSurface) Focus() {
	s.ta.Focus()
}

// caretOffset computes the caret's absolute rune offset in the value.
func (s *editorSurface) caretOffset() int {
	row := s.ta.Line()
	info := s.ta.LineInfo()
	col := info.StartColumn + info.CharOffset
	return rowColToOffset(s.ta.Value(), row, col)
}

// moveCaretTo positions the caret at an absolute rune offset. The textarea
// has no direct row API, so the cursor is walked with CursorUp/CursorDown.
func (s *editorSurface) moveCaretTo(offset int) {
	row, col := offsetToRowCol(s.ta.Value(), offset)

	lineCount := s.ta.LineCount()
	if lineCount == 0 {
		return
	}
	if row >= lineCount {
		row = lineCount - 1
	}

	current := s.ta.Line()
	for current > row {
		s.ta.CursorUp()
		current = s.ta.Line()
	}
	for current < row {
		s.ta.CursorDown()
		current = s.ta.Line()
	}
	s.ta.SetCursor(col)
}

// beginDrag starts a mouse selection at the given rune offset.
func (s *editorSurface) beginDrag(offset int) {
	s.dragAnchor = offset
	s.sel = selection.Selection{}
}

// extendDrag grows the selection from the anchor to the given offset and
// reports the resulting range. No-op when no drag is in progress.
func (s *editorSurface) extendDrag(offset int) (selection.Selection, bool) {
	if s.dragAnchor < 0 {
		return selection.Selection{}, false
	}
	if offset == s.dragAnchor {
		s.sel = selection.Selection{}
		return selection.Selection{Start: offset, End: offset}, true
	}
	sel := selection.Selection{Start: s.dragAnchor, End: offset, Dir: selection.Forward}
	if offset < s.dragAnchor {
		sel = selection.Selection{Start: offset, End: s.dragAnchor, Dir: selection.Backward}
	}
	s.sel = sel
	return sel, true
}

// endDrag finishes a mouse selection and reports the final range and
// whether it was a click (zero width).
func (s *editorSurface) endDrag(offset int) (selection.Selection, bool) {
	sel, ok := s.extendDrag(offset)
	s.dragAnchor = -1
	return sel, ok && sel.IsCaret()
}

// rowColToOffset converts a (row, rune column) position to an absolute rune
// offset, clamping to line and value bounds.
func rowColToOffset(value string, row, col int) int {
	lines := strings.Split(value, "\n")
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}

	offset := 0
	for i := 0; i < row; i++ {
		offset += len([]rune(lines[i])) + 1 // +1 for newline
	}

	lineLen := len([]rune(lines[row]))
	if col < 0 {
		col = 0
	}
	if col > lineLen {
		col = lineLen
	}
	return offset + col
}

// offsetToRowCol converts an absolute rune offset to (row, rune column),
// clamping to value bounds.
func offsetToRowCol(value string, offset int) (int, int) {
	runes := []rune(value)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	row, col := 0, 0
	for _, r := range runes[:offset] {
		if r == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	return row, col
}

// columnToRuneIndex maps a visual column on a display line to a rune index,
// accounting for double-width runes. A column past the end of the line maps
// to the line's rune length.
func columnToRuneIndex(line string, column int) int {
	width := 0
	for i, r := range []rune(line) {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			rw = 1
		}
		if column < width+rw {
			return i
		}
		width += rw
	}
	return len([]rune(line))
}
