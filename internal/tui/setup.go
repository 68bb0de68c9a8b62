package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"plafond/internal/config"
	"plafond/internal/engine"
	"plafond/internal/tui/theme"
)

type setupValues struct {
	theme      string
	vatEnabled bool
	vatRate    string
	tjm        string
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	rateOpts := make([]huh.Option[string], 0, len(engine.VATRates))
	for _, r := range engine.VATRates {
		rateOpts = append(rateOpts, huh.NewOption(engine.FormatPercent(r), strconv.FormatFloat(r, 'f', -1, 64)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Thème").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewConfirm().
				Title("Facturez-vous la TVA ?").
				Affirmative("Oui").
				Negative("Non").
				Value(&vals.vatEnabled),
			huh.NewSelect[string]().
				Title("Taux de TVA").
				Options(rateOpts...).
				Value(&vals.vatRate),
			huh.NewInput().
				Title("TJM par défaut (€ HT, optionnel)").
				Placeholder("500").
				Validate(func(s string) error {
					if s != "" && engine.ParseAmount(s) <= 0 {
						return fmt.Errorf("montant invalide")
					}
					return nil
				}).
				Value(&vals.tjm),
		).Title("Première configuration"),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		a.setupVals = nil
		a.refresh()
		a.statusMsg = "Configuration enregistrée"
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		a.setupVals = nil
	}
	return a, cmd
}

func (a *App) applySetup() {
	vals := a.setupVals

	a.tracker.SetVATEnabled(vals.vatEnabled)
	if rate := engine.ParseAmount(vals.vatRate); engine.ValidVATRate(rate) {
		a.tracker.SetVATRate(rate)
	}
	if vals.tjm != "" {
		a.tracker.SetDefaultTJM(engine.ParseAmount(vals.tjm))
	}

	theme.SetActive(vals.theme)

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg.Appearance.Theme = theme.Active.Name
	if err := config.Save(cfg); err != nil {
		a.statusMsg = "Impossible d'enregistrer la configuration"
	}
}
