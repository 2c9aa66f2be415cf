package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all console output.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorError   = lipgloss.Color("#EF4444")
	colorAccent  = lipgloss.Color("#3B82F6")
)

// styles are bound to the output writer so colors are dropped when it is not
// a terminal.
type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	help     lipgloss.Style
	feedback lipgloss.Style
	current  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(colorPrimary),
		label:    r.NewStyle().Bold(true),
		help:     r.NewStyle().Foreground(colorMuted),
		feedback: r.NewStyle().Foreground(colorError),
		current:  r.NewStyle().Foreground(colorAccent),
	}
}
