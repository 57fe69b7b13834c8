package app

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/marcus/ticknote/internal/state"
)

func TestAdjustListWidth(t *testing.T) {
	if err := state.InitWithDir(filepath.Join(t.TempDir(), "ticknote")); err != nil {
		t.Fatalf("InitWithDir: %v", err)
	}

	m := &Model{
		surface:   newEditorSurface(textarea.New()),
		width:     100,
		height:    30,
		listWidth: 30,
	}

	m.adjustListWidth(2)
	if m.listWidth != 32 {
		t.Errorf("listWidth = %d, want 32", m.listWidth)
	}
	if got := state.GetListWidth(); got != 32 {
		t.Errorf("persisted width = %d, want 32", got)
	}

	m.adjustListWidth(-2)
	if m.listWidth != 30 {
		t.Errorf("listWidth = %d after shrink, want 30", m.listWidth)
	}
}

func TestAdjustListWidthClamps(t *testing.T) {
	if err := state.InitWithDir(filepath.Join(t.TempDir(), "ticknote")); err != nil {
		t.Fatalf("InitWithDir: %v", err)
	}

	m := &Model{
		surface:   newEditorSurface(textarea.New()),
		width:     100,
		height:    30,
		listWidth: 21,
	}

	m.adjustListWidth(-10)
	if m.listWidth != 20 {
		t.Errorf("listWidth = %d, want floor of 20", m.listWidth)
	}

	m.listWidth = 78
	m.adjustListWidth(10)
	if m.listWidth != 80 {
		t.Errorf("listWidth = %d, want ceiling of width-20", m.listWidth)
	}
}
