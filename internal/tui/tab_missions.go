package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"plafond/internal/engine"
	"plafond/internal/tui/components"
	"plafond/internal/tui/theme"
)

type missionsState struct {
	cursor int
	form   *huh.Form
	vals   *missionFormValues
}

type missionFormValues struct {
	tjm  string
	days string
}

func newMissionForm(vals *missionFormValues) *huh.Form {
	requireAmount := func(s string) error {
		if engine.ParseAmount(s) <= 0 {
			return fmt.Errorf("montant invalide")
		}
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("TJM (€ HT)").
				Placeholder("500").
				Validate(requireAmount).
				Value(&vals.tjm),
			huh.NewInput().
				Title("Jours").
				Placeholder("10").
				Validate(requireAmount).
				Value(&vals.days),
		).Title("Nouvelle mission"),
	)
}

func (a App) updateMissions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.missions.cursor < len(a.state.Missions)-1 {
			a.missions.cursor++
		}
	case "k", "up":
		if a.missions.cursor > 0 {
			a.missions.cursor--
		}
	case "a", "n":
		a.missions.vals = &missionFormValues{}
		if a.state.DefaultTJM > 0 {
			a.missions.vals.tjm = engine.FormatAmount(a.state.DefaultTJM)
		}
		a.missions.form = newMissionForm(a.missions.vals)
		return a, a.missions.form.Init()
	case "d", "x":
		if len(a.state.Missions) > 0 {
			m := a.state.Missions[a.missions.cursor]
			a.tracker.RemoveMission(m.ID)
			a.refresh()
			a.statusMsg = "Mission supprimée"
		}
	}
	return a, nil
}

func (a App) updateMissionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.missions.form = nil
		a.missions.vals = nil
		return a, nil
	}

	form, cmd := a.missions.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.missions.form = f
	}

	switch a.missions.form.State {
	case huh.StateCompleted:
		tjm := engine.ParseAmount(a.missions.vals.tjm)
		days := engine.ParseAmount(a.missions.vals.days)
		amount := engine.MissionImpact(tjm, days, a.state.VATEnabled, a.state.VATRate)
		a.tracker.AddMission(tjm, days, amount)
		a.missions.form = nil
		a.missions.vals = nil
		a.refresh()
		a.statusMsg = fmt.Sprintf("Mission ajoutée (+%s HT)", engine.FormatEuro(amount))
	case huh.StateAborted:
		a.missions.form = nil
		a.missions.vals = nil
	}
	return a, cmd
}

func (a App) viewMissions() string {
	t := theme.Active
	w := a.contentWidth()

	if a.missions.form != nil {
		return a.missions.form.View()
	}

	if len(a.state.Missions) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("Aucune mission simulée. Appuyez sur [a] pour en ajouter une.")
		return components.ContentCard("Missions simulées", empty, w)
	}

	var b strings.Builder
	rowStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var total float64
	for i, m := range a.state.Missions {
		total += m.AmountHT
		line := fmt.Sprintf("%-10s  %s × %s j  =  %s HT",
			m.ID[:8],
			engine.FormatEuro(m.TJM),
			strconv.FormatFloat(m.Days, 'f', -1, 64),
			engine.FormatEuro(m.AmountHT))
		if i == a.missions.cursor {
			b.WriteString(selStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).
		Render(fmt.Sprintf("Total sécurisé : %s HT", engine.FormatEuro(total))))

	return components.ContentCard("Missions simulées", b.String(), w)
}
