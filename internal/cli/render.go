// Package cli provides terminal rendering utilities for plafond output.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plafond/internal/engine"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// StatusColor maps a status band to its terminal color.
func StatusColor(s engine.Status) lipgloss.Color {
	switch s {
	case engine.StatusDanger:
		return ColorRed
	case engine.StatusCaution:
		return ColorOrange
	default:
		return ColorGreen
	}
}

// StatusLabel returns the French label for a status band.
func StatusLabel(s engine.Status) string {
	switch s {
	case engine.StatusDanger:
		return "ATTENTION"
	case engine.StatusCaution:
		return "VIGILANCE REQUISE"
	default:
		return "SITUATION SAINE"
	}
}

// RenderStatus renders the colored status label.
func RenderStatus(s engine.Status) string {
	return lipgloss.NewStyle().Bold(true).Foreground(StatusColor(s)).Render(StatusLabel(s))
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderProgressBar renders the ceiling progress bar, colored by the
// same bands as the status classification.
func RenderProgressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	barStyle := lipgloss.NewStyle().Foreground(StatusColor(engine.StatusFor(pct)))
	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled)) +
		" " + barStyle.Render(engine.FormatPercent(pct))
}

// Table represents a bordered text table for CLI output. A row equal
// to {"---"} renders as a separator line.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if lipgloss.Width(h) > widths[i] {
			widths[i] = lipgloss.Width(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(borderLine(widths, "╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(pad(h, widths[i], false)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(borderLine(widths, "├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(borderLine(widths, "├", "┼", "┤"))
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// First column left-aligned, value columns right-aligned.
			b.WriteString(valueStyle.Render(pad(cell, widths[i], i > 0)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(borderLine(widths, "╰", "┴", "╯"))
	return b.String()
}

func borderLine(widths []int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return dimStyle.Render(b.String()) + "\n"
}

func pad(cell string, width int, alignRight bool) string {
	gap := width - lipgloss.Width(cell)
	if gap < 0 {
		gap = 0
	}
	if alignRight {
		return " " + strings.Repeat(" ", gap) + cell + " "
	}
	return " " + cell + strings.Repeat(" ", gap) + " "
}

// RenderParagraph renders wrapped muted text with a two-space indent.
func RenderParagraph(text string, width int) string {
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	var b strings.Builder
	for _, line := range strings.Split(wrapped, "\n") {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatMission renders a one-line mission description.
func FormatMission(index int, tjm, days, amountHT float64) string {
	return fmt.Sprintf("Mission %d: %s jours à %s/j = %s HT",
		index, trimFloat(days), engine.FormatEuro(tjm), engine.FormatEuro(amountHT))
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
