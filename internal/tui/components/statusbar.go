package components

import (
	"github.com/charmbracelet/lipgloss"

	"plafond/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar with key hints on the
// left and a context message on the right.
func RenderStatusBar(width int, hints, message string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " " + hints
	right := ""
	if message != "" {
		right = message + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
