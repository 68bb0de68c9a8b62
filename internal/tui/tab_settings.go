package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plafond/internal/engine"
	"plafond/internal/tui/components"
	"plafond/internal/tui/theme"
)

type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

const (
	settingEarned = iota
	settingSecured
	settingTJM
	settingVATEnabled
	settingVATRate
	settingCount
)

func (a App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.settings.cursor < settingCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter", " ":
		switch a.settings.cursor {
		case settingVATEnabled:
			a.tracker.SetVATEnabled(!a.state.VATEnabled)
			a.refresh()
			a.statusMsg = "TVA mise à jour"
		case settingVATRate:
			a.tracker.SetVATRate(nextVATRate(a.state.VATRate))
			a.refresh()
			a.statusMsg = "Taux de TVA mis à jour"
		default:
			return a.startEditing()
		}
	}
	return a, nil
}

func (a App) startEditing() (tea.Model, tea.Cmd) {
	in := textinput.New()
	in.CharLimit = 12
	in.Width = 14
	switch a.settings.cursor {
	case settingEarned:
		in.SetValue(engine.FormatAmount(a.state.EarnedCA))
	case settingSecured:
		in.SetValue(engine.FormatAmount(a.state.SecuredCA))
	case settingTJM:
		in.SetValue(engine.FormatAmount(a.state.DefaultTJM))
	}
	in.CursorEnd()
	in.Focus()
	a.settings.input = in
	a.settings.editing = true
	return a, textinput.Blink
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.settings.editing = false
		return a, nil
	case "enter":
		v := engine.ParseAmount(a.settings.input.Value())
		switch a.settings.cursor {
		case settingEarned:
			a.tracker.SetEarnedCA(v)
		case settingSecured:
			a.tracker.SetSecuredCA(v)
		case settingTJM:
			a.tracker.SetDefaultTJM(v)
		}
		a.settings.editing = false
		a.refresh()
		a.statusMsg = "Valeur enregistrée"
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// nextVATRate cycles through the legal rates in display order.
func nextVATRate(current float64) float64 {
	for i, r := range engine.VATRates {
		if r == current {
			return engine.VATRates[(i+1)%len(engine.VATRates)]
		}
	}
	return engine.DefaultVATRate
}

func (a App) viewSettings() string {
	t := theme.Active
	w := a.contentWidth()

	vatLabel := "non"
	if a.state.VATEnabled {
		vatLabel = "oui"
	}

	rows := []struct{ label, value string }{
		{"CA encaissé", engine.FormatEuro(a.state.EarnedCA)},
		{"CA sécurisé", engine.FormatEuro(a.state.SecuredCA)},
		{"TJM par défaut", engine.FormatEuro(a.state.DefaultTJM)},
		{"TVA activée", vatLabel},
		{"Taux de TVA", engine.FormatPercent(a.state.VATRate)},
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	for i, r := range rows {
		value := r.value
		if a.settings.editing && i == a.settings.cursor {
			value = a.settings.input.View()
		}
		line := fmt.Sprintf("%-16s %s", r.label, value)
		if i == a.settings.cursor {
			b.WriteString(selStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return components.ContentCard("Réglages", strings.TrimRight(b.String(), "\n"), w)
}
