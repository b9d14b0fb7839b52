package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by text mode.
type Styles struct {
	Header lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
	Code   lipgloss.Style
	Key    lipgloss.Style
}

// newStyles builds styles bound to w. Without a TTY the color profile is
// forced to ASCII so no escape codes reach pipes or files.
func newStyles(w io.Writer, isTTY bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Muted:  lr.NewStyle().Foreground(lipgloss.Color("8")),
		Error:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Hint:   lr.NewStyle().Italic(true).Foreground(lipgloss.Color("14")),
		Code:   lr.NewStyle().Foreground(lipgloss.Color("13")),
		Key:    lr.NewStyle().Foreground(lipgloss.Color("6")),
	}
}
