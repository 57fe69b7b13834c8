package notes

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent signals that the notes database was modified by another
// process.
type ChangeEvent struct {
	Path string
}

// Watcher reports external writes to the notes database so the app can
// reload content edited elsewhere (another ticknote instance, td, sqlite3).
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan ChangeEvent
	done   chan struct{}
}

// NewWatcher watches the directory containing dbPath. Watching the
// directory rather than the file survives the rename-and-replace writes
// SQLite performs during WAL checkpoints.
func NewWatcher(dbPath string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(dbPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		events: make(chan ChangeEvent, 8),
		done:   make(chan struct{}),
	}
	go w.run(filepath.Base(dbPath))
	return w, nil
}

// Events returns the channel of coalesced change notifications. The
// channel is never closed; receivers should stop reading after Close.
func (w *Watcher) Events() <-chan ChangeEvent {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run(dbFile string) {
	// Debounce rapid event bursts: sqlite touches the db, -wal and -shm
	// files in quick succession on every commit.
	const debounceDelay = 150 * time.Millisecond
	var debounce *time.Timer

	for {
		select {
		case <-w.done:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			base := filepath.Base(event.Name)
			if base != dbFile && base != dbFile+"-wal" {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Stop does not wait for a firing callback, so the closure
			// captures its own copy of the path
			path := event.Name
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case w.events <- ChangeEvent{Path: path}:
				case <-w.done:
				default:
					// Channel full, a reload is already pending.
				}
			})

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
