package utils

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type rendererKey struct {
	width int
	style string
}

var (
	renderersMu sync.Mutex
	renderers   = map[rendererKey]*glamour.TermRenderer{}
)

// MarkdownStyle picks the glamour style for a light or dark palette.
func MarkdownStyle(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// RenderMarkdown renders input for a terminal width columns wide. If the
// renderer fails the source text is returned as is.
func RenderMarkdown(input string, width int, dark bool) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r, err := renderer(rendererKey{width: width, style: MarkdownStyle(dark)})
	if err != nil {
		slog.Warn("markdown renderer unavailable", "err", err)
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		slog.Warn("rendering markdown", "err", err)
		return input
	}
	return strings.Trim(out, "\n")
}

func renderer(k rendererKey) (*glamour.TermRenderer, error) {
	renderersMu.Lock()
	defer renderersMu.Unlock()
	if r, ok := renderers[k]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithWordWrap(k.width),
		glamour.WithStandardStyle(k.style),
	)
	if err != nil {
		return nil, err
	}
	renderers[k] = r
	return r, nil
}
