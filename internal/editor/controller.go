// Package editor orchestrates the note-editing surface: it encodes store
// content into display form, decodes surface content back before anything
// leaves the editor, toggles checkboxes on click, and keeps the per-note
// selection in sync across re-renders and note switches.
package editor

import (
	"errors"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/marcus/ticknote/internal/checkbox"
	"github.com/marcus/ticknote/internal/event"
	"github.com/marcus/ticknote/internal/selection"
)

// TopicInsertChecklist is the command-channel topic for the
// insert-checklist-item command.
const TopicInsertChecklist = "editor.insert-checklist"

// insertChecklistKey is the keyboard chord for insert-checklist: primary
// modifier + shift + c.
const insertChecklistKey = "ctrl+shift+c"

// Controller wires the codec, toggle resolver and selection store to a
// bound Surface. It owns the surface exclusively: nothing else may mutate
// the surface's value or selection.
//
// The controller has an explicit lifecycle: New wires collaborators, Init
// subscribes to the command bus, Bind attaches a surface, Dispose
// unsubscribes and unbinds. Every operation treats an unbound surface as a
// valid no-op state.
type Controller struct {
	store     NoteStore
	selStore  *selection.Store
	settings  Settings
	writeClip ClipboardFunc
	logger    *slog.Logger

	bus *event.Bus
	sub *event.Subscription

	surface Surface
	noteID  string

	// lastRawSum digests the last-seen persisted content. Display content
	// is re-derived only when this changes, so the editor never re-renders
	// (and never disturbs the caret) on the echo of its own writes.
	lastRawSum uint64
	// lastSel is the selection last applied to or reported by the surface,
	// used to decide whether a reconcile pass must reapply.
	lastSel selection.Selection
}

// New creates a controller. logger may be nil.
func New(store NoteStore, selStore *selection.Store, settings Settings, writeClip ClipboardFunc, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		store:     store,
		selStore:  selStore,
		settings:  settings,
		writeClip: writeClip,
		logger:    logger,
	}
}

// Init subscribes to the command channel. The subscription lives until
// Dispose.
func (c *Controller) Init(bus *event.Bus) {
	if bus == nil || c.sub != nil {
		return
	}
	c.bus = bus
	c.sub = bus.Subscribe(TopicInsertChecklist)
}

// Commands exposes the command-channel subscription for the host event
// loop to pump. Nil before Init.
func (c *Controller) Commands() <-chan event.Event {
	if c.sub == nil {
		return nil
	}
	return c.sub.C()
}

// HandleCommand dispatches a command delivered from the channel.
func (c *Controller) HandleCommand(ev event.Event) {
	switch ev.Topic {
	case TopicInsertChecklist:
		c.InsertChecklistItem()
	}
}

// Bind attaches the live surface handle.
func (c *Controller) Bind(s Surface) {
	c.surface = s
}

// Unbind detaches the surface; subsequent operations no-op until rebound.
func (c *Controller) Unbind() {
	c.surface = nil
}

// Dispose tears the controller down: command subscription cancelled,
// surface unbound.
func (c *Controller) Dispose() {
	if c.bus != nil {
		c.bus.Unsubscribe(c.sub)
		c.sub = nil
		c.bus = nil
	}
	c.surface = nil
	c.noteID = ""
}

// NoteID returns the active note, or "".
func (c *Controller) NoteID() string {
	return c.noteID
}

// CloseNote deactivates the current note without touching the surface.
// Used when the active note is deleted out from under the editor.
func (c *Controller) CloseNote() {
	c.noteID = ""
	c.lastRawSum = 0
	c.lastSel = selection.Selection{}
}

// WriteClipboard writes already-decoded text through the configured
// clipboard function.
func (c *Controller) WriteClipboard(text string) error {
	if c.writeClip == nil {
		return errors.New("clipboard unavailable")
	}
	return c.writeClip(text)
}

// SetNote makes the given note active: its persisted content is encoded
// onto the surface, and its stored selection reapplied. The value update
// strictly precedes the selection update so reapplied offsets never
// reference stale content.
func (c *Controller) SetNote(id string) error {
	if c.surface == nil {
		return nil
	}
	content, err := c.store.GetNote(id)
	if err != nil {
		return err
	}

	c.noteID = id
	c.lastRawSum = xxhash.Sum64String(content)
	c.surface.SetValue(checkbox.Encode(content))

	sel := c.selStore.Get(id)
	c.surface.SetSelection(sel)
	c.surface.Focus()
	c.lastSel = sel
	return nil
}

// OnContentChanged handles a new persisted value delivered from the store.
// Unchanged content (including the echo of this editor's own writes) is
// ignored so in-progress edits and the caret are left alone.
func (c *Controller) OnContentChanged(persisted string) {
	if c.surface == nil || c.noteID == "" {
		return
	}
	sum := xxhash.Sum64String(persisted)
	if sum == c.lastRawSum {
		return
	}
	c.lastRawSum = sum
	c.surface.SetValue(checkbox.Encode(persisted))
	c.reconcileSelection()
}

// reconcileSelection reapplies the active note's stored selection when it
// differs from what the surface last had. Callers must have already pushed
// the latest display value to the surface.
func (c *Controller) reconcileSelection() {
	next := c.selStore.Get(c.noteID)
	if !next.Equal(c.lastSel) {
		c.surface.SetSelection(next)
		c.surface.Focus()
	}
	c.lastSel = next
}

// OnUserSelect records a user-driven selection change as authoritative for
// the active note. No reapplication happens: the surface already shows it.
func (c *Controller) OnUserSelect(sel selection.Selection) {
	if c.noteID == "" {
		return
	}
	c.selStore.Set(c.noteID, sel)
	c.lastSel = sel
}

// OnTextChanged commits a user edit: the live display value is decoded to
// persisted syntax and forwarded to the note store, fire-and-forget. The
// display is not touched from this path; the store's next delivered value
// flows back through OnContentChanged.
func (c *Controller) OnTextChanged(display string) {
	if c.noteID == "" {
		return
	}
	persisted := checkbox.Decode(display)
	c.lastRawSum = xxhash.Sum64String(persisted)
	if err := c.store.EditNote(c.noteID, persisted); err != nil {
		c.logger.Error("note edit failed", "note", c.noteID, "error", err)
	}
}

// OnClick interprets a zero-width selection as a potential checkbox
// toggle. On a hit it flips exactly the targeted glyph on the surface,
// re-selects that single character, and commits the decoded result. On a
// miss it records the click as an ordinary caret placement and reports
// false.
func (c *Controller) OnClick(sel selection.Selection) bool {
	if c.surface == nil || c.noteID == "" {
		return false
	}

	display := c.surface.Value()
	target, ok := checkbox.ResolveClick(display, sel.Start, sel.End)
	if !ok {
		c.OnUserSelect(sel)
		return false
	}

	glyph := checkbox.Checked
	if target.Checked {
		glyph = checkbox.Unchecked
	}
	c.surface.ReplaceRange(target.Index, target.Index+1, string(glyph))

	over := selection.Selection{Start: target.Index, End: target.Index + 1, Dir: selection.Forward}
	c.surface.SetSelection(over)
	c.selStore.Set(c.noteID, over)
	c.lastSel = over

	c.OnTextChanged(c.surface.Value())
	return true
}

// CopySelection intercepts a copy: the selected display substring (or the
// whole value when the selection is zero-width) is decoded back to
// persisted syntax and written to the clipboard, so pasted content is
// portable plain text rather than sentinel glyphs. Clipboard failure is
// non-fatal: the decoded text is still returned with ok=false so the host
// can surface a notice.
func (c *Controller) CopySelection() (text string, ok bool) {
	if c.surface == nil {
		return "", false
	}

	display := c.surface.Value()
	sel := c.surface.Selection()
	if !sel.IsCaret() {
		runes := []rune(display)
		start, end := sel.Start, sel.End
		if start > end {
			start, end = end, start
		}
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		display = string(runes[start:end])
	}
	if display == "" {
		return "", false
	}

	text = checkbox.Decode(display)
	if c.writeClip == nil {
		return text, false
	}
	if err := c.writeClip(text); err != nil {
		c.logger.Debug("clipboard write failed", "error", err)
		return text, false
	}
	return text, true
}

// InsertChecklistItem is the insert-checklist command's extension point.
// Insertion semantics (caret placement, prefix choice, multi-line
// selections) are not settled, so the command is recognized but has no
// effect yet.
func (c *Controller) InsertChecklistItem() {
	c.logger.Debug("insert-checklist invoked", "note", c.noteID)
}

// HandleKey routes a key chord. It consumes the insert-checklist chord
// when keyboard shortcuts are enabled and reports whether the event was
// handled.
func (c *Controller) HandleKey(key string) bool {
	if c.settings == nil || !c.settings.KeyboardShortcutsEnabled() {
		return false
	}
	if key != insertChecklistKey {
		return false
	}
	c.InsertChecklistItem()
	return true
}
