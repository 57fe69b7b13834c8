package app

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by style + wrap width. Creating a renderer with
	// WithAutoStyle can trigger terminal background queries that block on
	// some terminals, so the style is resolved once and pinned.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderMarkdown renders a note body as terminal markdown, falling back to
// the raw text when rendering fails. A width of 0 disables word wrap.
func renderMarkdown(md string, width int, styleName string) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width > 0 && width < 10 {
		width = 10
	}

	style := resolveMarkdownStyle(styleName)
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// resolveMarkdownStyle maps the configured theme name to a glamour
// standard style, resolving "auto" from the terminal background.
func resolveMarkdownStyle(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		if lipgloss.HasDarkBackground() {
			return "dark"
		}
		return "light"
	default:
		return strings.ToLower(strings.TrimSpace(name))
	}
}
