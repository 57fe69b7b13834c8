package checkbox

import "testing"

func TestResolveClick(t *testing.T) {
	display := " a"

	tests := []struct {
		name       string
		start, end int
		wantIndex  int
		wantHit    bool
	}{
		{"caret on glyph", 0, 0, 0, true},
		{"caret just after glyph", 1, 1, 0, true},
		{"caret past gap", 2, 2, 0, false},
		{"caret at text", 3, 3, 0, false},
		{"negative offset", -1, -1, 0, false},
		{"offset past end", 10, 10, 0, false},
		{"non-zero-width selection", 0, 2, 0, false},
		{"inverted selection", 2, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target, ok := ResolveClick(display, tc.start, tc.end)
			if ok != tc.wantHit {
				t.Fatalf("ResolveClick(%d, %d) hit = %v, want %v", tc.start, tc.end, ok, tc.wantHit)
			}
			if ok && target.Index != tc.wantIndex {
				t.Errorf("got index %d, want %d", target.Index, tc.wantIndex)
			}
		})
	}
}

func TestResolveClickReportsState(t *testing.T) {
	target, ok := ResolveClick(" done", 0, 0)
	if !ok {
		t.Fatal("expected a target")
	}
	if !target.Checked {
		t.Error("glyph should report as checked")
	}

	target, ok = ResolveClick(" todo", 1, 1)
	if !ok {
		t.Fatal("expected a target")
	}
	if target.Checked {
		t.Error("glyph should report as unchecked")
	}
}

func TestResolveClickSecondGlyph(t *testing.T) {
	// Offsets are rune offsets even after a multi-byte glyph earlier in
	// the string.
	display := " a\n b"
	target, ok := ResolveClick(display, 4, 4)
	if !ok || target.Index != 4 {
		t.Fatalf("got (%v, %v), want glyph at rune 4", target, ok)
	}
	if !target.Checked {
		t.Error("second glyph should be checked")
	}
}

func TestApplyToggle(t *testing.T) {
	display := " a"

	flipped := ApplyToggle(display, 0)
	if flipped != " a" {
		t.Errorf("got %q, want %q", flipped, " a")
	}
	if back := ApplyToggle(flipped, 0); back != display {
		t.Errorf("second toggle got %q, want original %q", back, display)
	}
}

func TestApplyToggleLeavesNonTargetsAlone(t *testing.T) {
	tests := []struct {
		name    string
		display string
		index   int
	}{
		{"non-sentinel", " a", 1},
		{"negative index", " a", -1},
		{"out of range", " a", 99},
		{"empty string", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyToggle(tc.display, tc.index); got != tc.display {
				t.Errorf("got %q, want input unchanged", got)
			}
		})
	}
}

func TestToggleEndToEnd(t *testing.T) {
	persisted := "- [ ] buy milk\n- [x] done"

	display := Encode(persisted)
	if display != " buy milk\n done" {
		t.Fatalf("encode got %q", display)
	}

	target, ok := ResolveClick(display, 0, 0)
	if !ok {
		t.Fatal("click at offset 0 should hit the first glyph")
	}

	display = ApplyToggle(display, target.Index)
	if display != " buy milk\n done" {
		t.Fatalf("toggle got %q", display)
	}

	if got := Decode(display); got != "- [x] buy milk\n- [x] done" {
		t.Errorf("decode got %q", got)
	}
}
