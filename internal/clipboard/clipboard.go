// Package clipboard writes text to the system clipboard with an OSC52
// escape-sequence fallback for terminals where no clipboard helper is
// available (SSH sessions, headless hosts).
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Method identifies which backend accepted the write.
type Method uint8

const (
	MethodSystem Method = iota
	MethodOSC52
)

// Seams for tests.
var (
	writeSystem = clipboard.WriteAll
	writeOSC52  = writeOSC52Clipboard
)

// Write copies text to the clipboard, trying the system helper first and
// falling back to OSC52. It returns the method that succeeded, or a
// combined error when both backends fail; callers treat that error as
// advisory rather than fatal.
func Write(text string) (Method, error) {
	sysErr := writeSystem(text)
	if sysErr == nil {
		return MethodSystem, nil
	}
	if oscErr := writeOSC52(text); oscErr != nil {
		return MethodSystem, combineErrors(sysErr, oscErr)
	}
	return MethodOSC52, nil
}

func writeOSC52Clipboard(text string) error {
	if !osc52Allowed() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeSequence(tty, text)
}

// writeSequence emits the OSC52 sequence, wrapped for tmux or screen when
// those multiplexers are detected.
func writeSequence(w io.Writer, text string) error {
	if os.Getenv("TMUX") != "" {
		// Emit both plain and tmux-wrapped forms: which one reaches the
		// outer terminal depends on the user's set-clipboard setting.
		if _, err := osc52.New(text).WriteTo(w); err != nil {
			return err
		}
		_, err := osc52.New(text).Tmux().WriteTo(w)
		return err
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if strings.HasPrefix(term, "screen") {
		_, err := osc52.New(text).Screen().WriteTo(w)
		return err
	}
	_, err := osc52.New(text).WriteTo(w)
	return err
}

func osc52Allowed() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TICKNOTE_NO_OSC52"))) {
	case "1", "true", "yes", "on":
		return false
	}
	term := strings.TrimSpace(os.Getenv("TERM"))
	return term != "" && !strings.EqualFold(term, "dumb")
}

func combineErrors(sysErr, oscErr error) error {
	if missingDisplay() {
		return fmt.Errorf("no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset); OSC52 fallback failed: %v", oscErr)
	}
	return fmt.Errorf("system clipboard failed: %v; OSC52 fallback failed: %v", sysErr, oscErr)
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" &&
		strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
