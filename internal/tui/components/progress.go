// Package components provides reusable TUI widgets for the plafond
// dashboard.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"plafond/internal/engine"
	"plafond/internal/tui/theme"
)

// ColorForStatus maps a status band to the active theme's color.
func ColorForStatus(s engine.Status) lipgloss.Color {
	t := theme.Active
	switch s {
	case engine.StatusDanger:
		return t.Red
	case engine.StatusCaution:
		return t.Orange
	default:
		return t.Green
	}
}

// CeilingBar renders the progress bar toward the ceiling, colored by
// the status bands (safe under 70, caution to 90, danger above).
func CeilingBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	color := ColorForStatus(engine.StatusFor(pct))

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Active.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return bar.ViewAs(pct/100) + " " + pctStyle.Render(fmt.Sprintf("%.1f%%", pct))
}

// GaugeLine renders a labeled mini gauge for compact rows.
func GaugeLine(label string, pct float64, labelW, barW int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * float64(barW))
	if filled > barW {
		filled = barW
	}

	color := ColorForStatus(engine.StatusFor(pct))
	barStyle := lipgloss.NewStyle().Foreground(color)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", barW-filled)) + " " +
		barStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}
