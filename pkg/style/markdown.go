package style

import (
	"github.com/charmbracelet/glamour"
)

// DefaultWrap is the column markdown is wrapped at.
const DefaultWrap = 80

// RenderMarkdown renders markdown for the terminal. Without colors the
// plain "notty" style is used.
func RenderMarkdown(md string, color bool, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrap
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if color {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
