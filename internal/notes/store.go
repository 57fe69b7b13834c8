// Package notes persists note bodies in SQLite and reports external changes
// to the database file. Note content is always stored in portable markdown
// checklist syntax, never in the editor's display form.
package notes

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Note represents a single note.
type Note struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Pinned    bool       `json:"pinned"`
	Archived  bool       `json:"archived"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Store handles SQLite operations for notes.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return store, nil
}

// DefaultDBPath returns the default database location.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ticknote.db"
	}
	return filepath.Join(home, ".local", "share", "ticknote", "notes.db")
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) initSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    pinned INTEGER DEFAULT 0,
    archived INTEGER DEFAULT 0,
    deleted_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at DESC);
CREATE INDEX IF NOT EXISTS idx_notes_deleted ON notes(deleted_at);
`
	_, err := s.db.Exec(schema)
	return err
}

// generateID creates a new note ID with "nt-" prefix and 8 hex chars.
func generateID() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "nt-" + hex.EncodeToString(b), nil
}

// Create inserts a new note.
func (s *Store) Create(title, content string) (*Note, error) {
	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("generate ID: %w", err)
	}

	now := time.Now().UTC()
	note := &Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.db.Exec(`
		INSERT INTO notes (id, title, content, created_at, updated_at, pinned, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, note.ID, note.Title, note.Content,
		note.CreatedAt.Format(time.RFC3339),
		note.UpdatedAt.Format(time.RFC3339),
		boolToInt(note.Pinned),
		boolToInt(note.Archived))
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	return note, nil
}

// Update modifies an existing note.
func (s *Store) Update(note *Note) error {
	prev, err := s.Get(note.ID)
	if err != nil {
		return fmt.Errorf("get previous state: %w", err)
	}
	if prev == nil {
		return fmt.Errorf("note not found: %s", note.ID)
	}

	note.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec(`
		UPDATE notes SET title = ?, content = ?, updated_at = ?, pinned = ?, archived = ?
		WHERE id = ? AND deleted_at IS NULL
	`, note.Title, note.Content,
		note.UpdatedAt.Format(time.RFC3339),
		boolToInt(note.Pinned),
		boolToInt(note.Archived),
		note.ID)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// Delete performs a soft delete.
func (s *Store) Delete(id string) error {
	prev, err := s.Get(id)
	if err != nil {
		return fmt.Errorf("get previous state: %w", err)
	}
	if prev == nil {
		return fmt.Errorf("note not found: %s", id)
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(`
		UPDATE notes SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, now.Format(time.RFC3339), now.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("soft delete note: %w", err)
	}
	return nil
}

// Get retrieves a note by ID, including soft-deleted ones so callers can
// restore them.
func (s *Store) Get(id string) (*Note, error) {
	var note Note
	var createdAt, updatedAt string
	var deletedAt sql.NullString
	var pinned, archived int

	err := s.db.QueryRow(`
		SELECT id, title, content, created_at, updated_at, pinned, archived, deleted_at
		FROM notes WHERE id = ?
	`, id).Scan(&note.ID, &note.Title, &note.Content,
		&createdAt, &updatedAt, &pinned, &archived, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query note: %w", err)
	}

	note.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	note.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	note.Pinned = pinned == 1
	note.Archived = archived == 1
	if deletedAt.Valid {
		t, _ := time.Parse(time.RFC3339, deletedAt.String)
		note.DeletedAt = &t
	}
	return &note, nil
}

// List retrieves all non-deleted notes, ordered by pinned then updated_at.
func (s *Store) List(includeArchived bool) ([]Note, error) {
	query := `
		SELECT id, title, content, created_at, updated_at, pinned, archived, deleted_at
		FROM notes
		WHERE deleted_at IS NULL`
	if !includeArchived {
		query += ` AND archived = 0`
	}
	query += ` ORDER BY pinned DESC, updated_at DESC`

	return s.queryNotes(query)
}

// ListArchived retrieves only archived notes (not deleted).
func (s *Store) ListArchived() ([]Note, error) {
	return s.queryNotes(`
		SELECT id, title, content, created_at, updated_at, pinned, archived, deleted_at
		FROM notes
		WHERE deleted_at IS NULL AND archived = 1
		ORDER BY pinned DESC, updated_at DESC`)
}

// ListDeleted retrieves only soft-deleted notes, most recently deleted first.
func (s *Store) ListDeleted() ([]Note, error) {
	return s.queryNotes(`
		SELECT id, title, content, created_at, updated_at, pinned, archived, deleted_at
		FROM notes
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC`)
}

func (s *Store) queryNotes(query string) ([]Note, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var note Note
		var createdAt, updatedAt string
		var deletedAt sql.NullString
		var pinned, archived int

		err := rows.Scan(&note.ID, &note.Title, &note.Content,
			&createdAt, &updatedAt, &pinned, &archived, &deletedAt)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}

		note.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		note.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		note.Pinned = pinned == 1
		note.Archived = archived == 1
		if deletedAt.Valid {
			t, _ := time.Parse(time.RFC3339, deletedAt.String)
			note.DeletedAt = &t
		}

		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// TogglePin toggles the pinned state of a note.
func (s *Store) TogglePin(id string) error {
	note, err := s.Get(id)
	if err != nil {
		return err
	}
	if note == nil || note.DeletedAt != nil {
		return fmt.Errorf("note not found: %s", id)
	}
	note.Pinned = !note.Pinned
	return s.Update(note)
}

// ToggleArchive toggles the archived state of a note.
func (s *Store) ToggleArchive(id string) error {
	note, err := s.Get(id)
	if err != nil {
		return err
	}
	if note == nil || note.DeletedAt != nil {
		return fmt.Errorf("note not found: %s", id)
	}
	note.Archived = !note.Archived
	return s.Update(note)
}

// Restore undoes a soft delete by clearing deleted_at.
func (s *Store) Restore(id string) error {
	prev, err := s.Get(id)
	if err != nil {
		return fmt.Errorf("get previous state: %w", err)
	}
	if prev == nil {
		return fmt.Errorf("note not found: %s", id)
	}
	if prev.DeletedAt == nil {
		return fmt.Errorf("note not deleted: %s", id)
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(`
		UPDATE notes SET deleted_at = NULL, updated_at = ?
		WHERE id = ?
	`, now.Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("restore note: %w", err)
	}
	return nil
}

// Unarchive sets archived=false for a note.
func (s *Store) Unarchive(id string) error {
	note, err := s.Get(id)
	if err != nil {
		return err
	}
	if note == nil || note.DeletedAt != nil {
		return fmt.Errorf("note not found: %s", id)
	}
	if !note.Archived {
		return nil
	}
	note.Archived = false
	return s.Update(note)
}

// UpdateContent updates the content of a note, deriving the title from the
// first line.
func (s *Store) UpdateContent(id, content string) error {
	note, err := s.Get(id)
	if err != nil {
		return err
	}
	if note == nil || note.DeletedAt != nil {
		return fmt.Errorf("note not found: %s", id)
	}

	title := ""
	if lines := strings.SplitN(content, "\n", 2); len(lines) > 0 {
		title = lines[0]
	}

	note.Title = title
	note.Content = content
	return s.Update(note)
}

// GetNote returns the persisted content of a note. Together with EditNote
// this is the narrow contract the editor controller consumes.
func (s *Store) GetNote(id string) (string, error) {
	note, err := s.Get(id)
	if err != nil {
		return "", err
	}
	if note == nil {
		return "", fmt.Errorf("note not found: %s", id)
	}
	return note.Content, nil
}

// EditNote writes new persisted content for a note.
func (s *Store) EditNote(id, content string) error {
	return s.UpdateContent(id, content)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
