package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"plafond/internal/session"
	"plafond/internal/store"
)

func testApp(t *testing.T) App {
	t.Helper()
	tr := session.New(store.NewMemory(), session.WithClock(func() time.Time {
		return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	}))
	a := NewApp(tr, false)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(App)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestOverviewShowsCeiling(t *testing.T) {
	a := testApp(t)
	view := a.View()
	if !strings.Contains(view, "77700") {
		t.Fatalf("overview missing ceiling, got:\n%s", view)
	}
	if !strings.Contains(view, "Vue d'ensemble") {
		t.Fatal("tab bar missing overview tab")
	}
}

func TestTabSwitching(t *testing.T) {
	a := testApp(t)

	m, _ := a.Update(key("m"))
	a = m.(App)
	if a.activeTab != tabMissions {
		t.Fatalf("activeTab = %d, want missions", a.activeTab)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = m.(App)
	if a.activeTab != tabSettings {
		t.Fatalf("activeTab = %d, want settings", a.activeTab)
	}
}

func TestMissionsEmptyState(t *testing.T) {
	a := testApp(t)
	m, _ := a.Update(key("m"))
	a = m.(App)
	if !strings.Contains(a.View(), "Aucune mission") {
		t.Fatal("missions tab missing empty state")
	}
}

func TestSettingsToggleVAT(t *testing.T) {
	a := testApp(t)
	m, _ := a.Update(key("r"))
	a = m.(App)

	// Move down to the VAT toggle and flip it.
	for i := 0; i < settingVATEnabled; i++ {
		m, _ = a.Update(key("j"))
		a = m.(App)
	}
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)

	if !a.state.VATEnabled {
		t.Fatal("VAT should be enabled after toggle")
	}
}

func TestQuitKey(t *testing.T) {
	a := testApp(t)
	_, cmd := a.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected QuitMsg, got %T", msg)
	}
}
