package selection

import "testing"

func TestStoreDefaultsToZeroSelection(t *testing.T) {
	st := NewStore()

	sel := st.Get("nt-unseen")
	if sel.Start != 0 || sel.End != 0 || sel.Dir != None {
		t.Errorf("got %+v, want zero selection", sel)
	}
	if !sel.IsCaret() {
		t.Error("zero selection should be a caret")
	}
}

func TestStoreSetGet(t *testing.T) {
	st := NewStore()

	want := Selection{Start: 3, End: 7, Dir: Backward}
	st.Set("nt-0001", want)

	if got := st.Get("nt-0001"); !got.Equal(want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	// Other notes are unaffected.
	if got := st.Get("nt-0002"); !got.Equal(Selection{}) {
		t.Errorf("got %+v for untouched note, want zero", got)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	st := NewStore()
	st.Set("nt-0001", Selection{Start: 1, End: 1, Dir: None})
	st.Set("nt-0001", Selection{Start: 5, End: 9, Dir: Forward})

	got := st.Get("nt-0001")
	if got.Start != 5 || got.End != 9 || got.Dir != Forward {
		t.Errorf("got %+v, want latest write", got)
	}
}

func TestStoreForget(t *testing.T) {
	st := NewStore()
	st.Set("nt-0001", Selection{Start: 2, End: 2})
	st.Forget("nt-0001")

	if got := st.Get("nt-0001"); !got.Equal(Selection{}) {
		t.Errorf("got %+v after Forget, want zero", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Selection
		want bool
	}{
		{"identical", Selection{1, 2, Forward}, Selection{1, 2, Forward}, true},
		{"start differs", Selection{0, 2, Forward}, Selection{1, 2, Forward}, false},
		{"end differs", Selection{1, 2, Forward}, Selection{1, 3, Forward}, false},
		{"direction differs", Selection{1, 2, Forward}, Selection{1, 2, Backward}, false},
		{"zero values", Selection{}, Selection{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if None.String() != "none" || Forward.String() != "forward" || Backward.String() != "backward" {
		t.Error("unexpected direction names")
	}
}
