package checkbox

// Target identifies the checkbox glyph a click resolved to.
type Target struct {
	Index   int  // rune offset of the glyph in the display string
	Checked bool // state of the glyph before toggling
}

// ResolveClick maps a click, reported as a (start, end) rune-offset
// selection, to the checkbox glyph it hit. Only zero-width selections count
// as clicks; anything else returns no target. The glyph at the caret wins;
// failing that, the glyph immediately before the caret is taken, since
// editing surfaces commonly report a click just past a character's visual
// center as a caret one position after it.
func ResolveClick(display string, start, end int) (Target, bool) {
	if start != end || start < 0 {
		return Target{}, false
	}
	runes := []rune(display)
	if start < len(runes) && IsSentinel(runes[start]) {
		return Target{Index: start, Checked: runes[start] == Checked}, true
	}
	if start > 0 && start-1 < len(runes) && IsSentinel(runes[start-1]) {
		return Target{Index: start - 1, Checked: runes[start-1] == Checked}, true
	}
	return Target{}, false
}

// ApplyToggle flips the glyph at the given rune offset to its opposite
// state, leaving every other character unchanged. Out-of-range offsets and
// non-sentinel characters return the input verbatim.
func ApplyToggle(display string, index int) string {
	runes := []rune(display)
	if index < 0 || index >= len(runes) {
		return display
	}
	switch runes[index] {
	case Unchecked:
		runes[index] = Checked
	case Checked:
		runes[index] = Unchecked
	default:
		return display
	}
	return string(runes)
}
