package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	errorTag lipgloss.Style
	detail   lipgloss.Style
}

// newStyles binds styles to w so color detection follows the actual
// destination. With color off everything renders as plain text.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		errorTag: r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true),
		detail:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

func (s styles) errorLine(msg string) string {
	return s.errorTag.Render("[ERROR]:") + " " + s.detail.Render(msg)
}
