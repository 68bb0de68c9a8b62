package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plafond/internal/engine"
	"plafond/internal/tui/components"
	"plafond/internal/tui/theme"
)

func (a App) viewOverview() string {
	t := theme.Active
	w := a.contentWidth()

	cards := []struct{ Label, Value string }{
		{"CA encaissé", engine.FormatEuro(a.state.EarnedCA)},
		{"CA sécurisé", engine.FormatEuro(a.state.SecuredCA)},
		{"CA engagé", engine.FormatEuro(a.snap.TotalEngaged)},
		{"CA restant", engine.FormatEuro(a.snap.RemainingCA)},
	}

	statusStyle := lipgloss.NewStyle().
		Foreground(components.ColorForStatus(a.snap.Status)).
		Bold(true)

	barLabel := fmt.Sprintf("%s / %s (%s)",
		engine.FormatEuro(a.snap.TotalEngaged),
		engine.FormatEuro(engine.Threshold),
		engine.FormatPercent(a.snap.ProgressPercentage))

	bar := lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(statusLabel(a.snap.Status)),
		components.CeilingBar(a.snap.ProgressPercentage, w-6),
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(barLabel),
	)

	var proj strings.Builder
	fmt.Fprintf(&proj, "Mois restants        %d\n", a.snap.MonthsRemaining)
	fmt.Fprintf(&proj, "Limite mensuelle     %s\n", engine.FormatEuro(a.snap.MonthlyLimit))
	fmt.Fprintf(&proj, "Rythme moyen/mois    %s", engine.FormatEuro(a.snap.AverageMonthlyRate))
	if a.snap.OverflowMonth != nil {
		fmt.Fprintf(&proj, "\nDépassement prévu    %s", *a.snap.OverflowMonth)
	}
	if a.snap.RemainingDays != nil {
		fmt.Fprintf(&proj, "\nJours facturables    %d", *a.snap.RemainingDays)
	}
	if a.snap.MonthlyLimit > 0 {
		pace := a.snap.AverageMonthlyRate / a.snap.MonthlyLimit * 100
		proj.WriteString("\n\n" + components.GaugeLine("Rythme / limite", pace, 16, w-36))
	}

	recStyle := lipgloss.NewStyle().Foreground(components.ColorForStatus(a.snap.Recommendation.Level))

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricCardRow(cards, w),
		"",
		components.ContentCard("Plafond 77700 € HT", bar, w),
		"",
		components.ContentCard("Projection", proj.String(), w),
		"",
		components.ContentCard("Recommandation", recStyle.Render(a.snap.Recommendation.Message), w),
	)
}

func statusLabel(s engine.Status) string {
	switch s {
	case engine.StatusDanger:
		return "ATTENTION"
	case engine.StatusCaution:
		return "VIGILANCE REQUISE"
	default:
		return "SITUATION SAINE"
	}
}
