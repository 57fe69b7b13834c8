// Package checkbox converts between the portable markdown checklist syntax
// stored in notes and the single-glyph form shown in the editor. Each
// `- [ ]` or `- [x]` marker at the start of a line collapses to one
// private-use rune so a checkbox occupies exactly one cell and can be
// toggled as an atomic edit.
package checkbox

import (
	"regexp"
	"strings"
)

// Sentinel glyphs. Both live in the Unicode private use area, so ordinary
// typing never produces them; their presence in editor text always means an
// encoded checkbox.
const (
	Unchecked = ''
	Checked   = ''
)

// markerRe matches a checklist marker at line start: optional indentation,
// the bracket span with a space/x/X check character, and one trailing
// whitespace character separating it from the item text. A newline counts,
// so an empty item encodes too. Anchoring to line start keeps bracket-like
// substrings inside prose untouched.
var markerRe = regexp.MustCompile(`(?m)^([ \t]*)- \[([ xX])\]([ \t\n])`)

var decoder = strings.NewReplacer(
	string(Unchecked), "- [ ]",
	string(Checked), "- [x]",
)

// Encode rewrites persisted note text into its display form, replacing each
// checklist marker with a sentinel glyph. Unmatched text passes through
// unchanged; Encode is total over arbitrary strings.
func Encode(persisted string) string {
	return markerRe.ReplaceAllStringFunc(persisted, func(m string) string {
		sub := markerRe.FindStringSubmatch(m)
		glyph := Unchecked
		if sub[2] != " " {
			glyph = Checked
		}
		return sub[1] + string(glyph) + sub[3]
	})
}

// Decode rewrites display text back into persisted syntax. Sentinels never
// occur outside encoded checkbox positions, so this is a context-free
// substitution and a no-op on text that contains none. Decode must be
// applied to anything leaving the editing surface: store writes and
// clipboard payloads.
func Decode(display string) string {
	return decoder.Replace(display)
}

// IsSentinel reports whether r is one of the two checkbox glyphs.
func IsSentinel(r rune) bool {
	return r == Unchecked || r == Checked
}
