// Package tui provides the interactive Bubble Tea dashboard.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"plafond/internal/model"
	"plafond/internal/session"
	"plafond/internal/tui/components"
	"plafond/internal/tui/theme"
)

const (
	tabOverview = iota
	tabMissions
	tabSettings
)

// App is the root Bubble Tea model.
type App struct {
	tracker *session.Tracker

	// Recomputed from the tracker after every mutation.
	state model.State
	snap  model.Snapshot

	width  int
	height int

	activeTab int
	statusMsg string

	missions missionsState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

// NewApp creates the dashboard model around a hydrated tracker.
func NewApp(tracker *session.Tracker, needSetup bool) App {
	a := App{
		tracker:   tracker,
		needSetup: needSetup,
	}
	a.refresh()
	if needSetup {
		a.setupVals = &setupValues{theme: theme.Active.Name}
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// refresh re-derives the displayed state and snapshot. Cheap enough to
// run after every mutation.
func (a *App) refresh() {
	a.state = a.tracker.State()
	a.snap = a.tracker.Snapshot()

	if a.missions.cursor >= len(a.state.Missions) {
		a.missions.cursor = len(a.state.Missions) - 1
	}
	if a.missions.cursor < 0 {
		a.missions.cursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup intercepts all keys.
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Mission add form intercepts all keys.
		if a.missions.form != nil {
			return a.updateMissionForm(msg)
		}

		// Settings edit mode has its own keybindings (text input).
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "tab", "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			a.statusMsg = ""
			return a, nil
		case "shift+tab", "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			a.statusMsg = ""
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				a.statusMsg = ""
				return a, nil
			}
		}

		switch a.activeTab {
		case tabMissions:
			return a.updateMissions(msg)
		case tabSettings:
			return a.updateSettings(msg)
		}
		return a, nil
	}

	// Forward non-key messages to any active form.
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.missions.form != nil {
		return a.updateMissionForm(msg)
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var body string
	switch a.activeTab {
	case tabMissions:
		body = a.viewMissions()
	case tabSettings:
		body = a.viewSettings()
	default:
		body = a.viewOverview()
	}

	hints := "[tab]naviguer  [q]uitter"
	switch a.activeTab {
	case tabMissions:
		hints = "[a]jouter  [d]supprimer  [j/k]naviguer  [q]uitter"
	case tabSettings:
		hints = "[entrée]modifier  [j/k]naviguer  [q]uitter"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		" "+titleStyle.Render("plafond — suivi micro-entreprise"),
		components.RenderTabBar(a.activeTab),
		"",
		body,
		"",
		components.RenderStatusBar(a.width, hints, a.statusMsg),
	)
}

func (a App) contentWidth() int {
	w := a.width - 2
	if w > 100 {
		w = 100
	}
	if w < 40 {
		w = 40
	}
	return w
}
