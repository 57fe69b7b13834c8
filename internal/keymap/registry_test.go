package keymap

import "testing"

func TestLookup_ContextBinding(t *testing.T) {
	r := NewRegistry()

	cmd, ok := r.Lookup("editor", "ctrl+shift+c")
	if !ok || cmd != "insert-checklist" {
		t.Errorf("got (%q, %v), want insert-checklist", cmd, ok)
	}
}

func TestLookup_GlobalFallback(t *testing.T) {
	r := NewRegistry()

	cmd, ok := r.Lookup("editor", "ctrl+c")
	if !ok || cmd != "quit" {
		t.Errorf("got (%q, %v), want quit from global fallback", cmd, ok)
	}
}

func TestLookup_ContextWinsOverGlobal(t *testing.T) {
	r := NewRegistry()
	r.RegisterBinding(Binding{Key: "esc", Command: "cancel", Context: "search"})

	cmd, ok := r.Lookup("search", "esc")
	if !ok || cmd != "cancel" {
		t.Errorf("got (%q, %v), want context binding to win", cmd, ok)
	}
}

func TestLookup_Unbound(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Lookup("list", "ctrl+alt+del"); ok {
		t.Error("unbound chord should not resolve")
	}
}

func TestSetUserOverride(t *testing.T) {
	r := NewRegistry()
	r.SetUserOverride("insert-checklist", "ctrl+t")

	if _, ok := r.Lookup("editor", "ctrl+shift+c"); ok {
		t.Error("default chord should be removed after override")
	}
	cmd, ok := r.Lookup("editor", "ctrl+t")
	if !ok || cmd != "insert-checklist" {
		t.Errorf("got (%q, %v), want insert-checklist on override chord", cmd, ok)
	}
}

func TestApplyOverrides(t *testing.T) {
	r := NewRegistry()
	r.ApplyOverrides(map[string]string{
		"new-note": "ctrl+n",
		"search":   "ctrl+f",
	})

	if cmd, _ := r.Lookup("list", "ctrl+n"); cmd != "new-note" {
		t.Errorf("got %q, want new-note", cmd)
	}
	if cmd, _ := r.Lookup("list", "ctrl+f"); cmd != "search" {
		t.Errorf("got %q, want search", cmd)
	}
	if _, ok := r.Lookup("list", "n"); ok {
		t.Error("old new-note chord should be gone")
	}
}

func TestKeyFor(t *testing.T) {
	r := NewRegistry()

	if key := r.KeyFor("editor", "insert-checklist"); key != "ctrl+shift+c" {
		t.Errorf("got %q, want ctrl+shift+c", key)
	}
	if key := r.KeyFor("editor", "no-such-command"); key != "" {
		t.Errorf("got %q, want empty", key)
	}
}
