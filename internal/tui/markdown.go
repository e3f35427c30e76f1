package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders document text as ANSI-styled markdown for the
// preview overlay. style is a glamour style name ("dark", "light", ...).
func RenderMarkdown(text string, width int, style string) (string, error) {
	wrapWidth := max(width-4, 20)

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(text)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(rendered, "\n"), nil
}
