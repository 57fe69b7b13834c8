package notes

import (
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	note, err := store.Create("groceries", "- [ ] buy milk\n- [x] done")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(note.ID, "nt-") {
		t.Errorf("got ID %q, want nt- prefix", note.ID)
	}

	got, err := store.Get(note.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("note not found")
	}
	if got.Title != "groceries" || got.Content != "- [ ] buy milk\n- [x] done" {
		t.Errorf("got %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get("nt-missing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

func TestUpdateContentDerivesTitle(t *testing.T) {
	store := newTestStore(t)
	note, _ := store.Create("", "")

	if err := store.UpdateContent(note.ID, "shopping list\n- [ ] eggs"); err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}

	got, _ := store.Get(note.ID)
	if got.Title != "shopping list" {
		t.Errorf("got title %q, want first line", got.Title)
	}
	if got.Content != "shopping list\n- [ ] eggs" {
		t.Errorf("got content %q", got.Content)
	}
}

func TestGetNoteEditNote(t *testing.T) {
	store := newTestStore(t)
	note, _ := store.Create("t", "original")

	if err := store.EditNote(note.ID, "- [x] updated"); err != nil {
		t.Fatalf("EditNote: %v", err)
	}
	content, err := store.GetNote(note.ID)
	if err != nil {
		t.Fatalf("GetNote: %v", err)
	}
	if content != "- [x] updated" {
		t.Errorf("got %q", content)
	}

	if _, err := store.GetNote("nt-missing"); err == nil {
		t.Error("GetNote on a missing note should error")
	}
}

func TestSoftDeleteAndRestore(t *testing.T) {
	store := newTestStore(t)
	note, _ := store.Create("t", "c")

	if err := store.Delete(note.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	active, _ := store.List(false)
	if len(active) != 0 {
		t.Errorf("got %d active notes after delete, want 0", len(active))
	}
	deleted, _ := store.ListDeleted()
	if len(deleted) != 1 {
		t.Fatalf("got %d deleted notes, want 1", len(deleted))
	}

	if err := store.Restore(note.ID); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	active, _ = store.List(false)
	if len(active) != 1 {
		t.Errorf("got %d active notes after restore, want 1", len(active))
	}

	if err := store.Restore(note.ID); err == nil {
		t.Error("restoring a live note should error")
	}
}

func TestPinOrdering(t *testing.T) {
	store := newTestStore(t)
	first, _ := store.Create("first", "a")
	second, _ := store.Create("second", "b")
	_ = second

	if err := store.TogglePin(first.ID); err != nil {
		t.Fatalf("TogglePin: %v", err)
	}

	list, err := store.List(false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != first.ID {
		t.Errorf("pinned note should sort first, got %+v", list)
	}
	if !list[0].Pinned {
		t.Error("note should be pinned")
	}
}

func TestArchiveFiltering(t *testing.T) {
	store := newTestStore(t)
	note, _ := store.Create("t", "c")

	if err := store.ToggleArchive(note.ID); err != nil {
		t.Fatalf("ToggleArchive: %v", err)
	}

	active, _ := store.List(false)
	if len(active) != 0 {
		t.Errorf("archived note should not appear in active list")
	}
	archived, _ := store.ListArchived()
	if len(archived) != 1 {
		t.Fatalf("got %d archived notes, want 1", len(archived))
	}

	if err := store.Unarchive(note.ID); err != nil {
		t.Fatalf("Unarchive: %v", err)
	}
	if err := store.Unarchive(note.ID); err != nil {
		t.Errorf("Unarchive should be a no-op on an unarchived note: %v", err)
	}
	active, _ = store.List(false)
	if len(active) != 1 {
		t.Error("unarchived note should be active again")
	}
}
