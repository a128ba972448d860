// Package tui provides terminal styling for the launcher's own messages
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for launcher messages
type Theme struct {
	Text      lipgloss.Color
	TextMuted lipgloss.Color

	Error lipgloss.Color
}

// DefaultTheme returns the default kyso theme
func DefaultTheme() *Theme {
	return &Theme{
		Text:      lipgloss.Color("#F8F8F2"),
		TextMuted: lipgloss.Color("#6272A4"),

		Error: lipgloss.Color("#FF5555"),
	}
}

// Styles holds the rendered styles for a theme
type Styles struct {
	Theme *Theme

	Bold  lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
}

// NewStyles creates styles bound to the color profile of w
func NewStyles(w io.Writer, theme *Theme) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Theme: theme,

		Bold: r.NewStyle().
			Bold(true).
			Foreground(theme.Text),

		Muted: r.NewStyle().
			Foreground(theme.TextMuted),

		Error: r.NewStyle().
			Bold(true).
			Foreground(theme.Error),
	}
}
