package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plafond/internal/tui/theme"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Vue d'ensemble", Key: 'v'},
	{Name: "Missions", Key: 'm'},
	{Name: "Réglages", Key: 'r'},
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		parts = append(parts, inactiveStyle.Render(tab.Name)+
			dimStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimStyle.Render("]"))
	}

	return " " + strings.Join(parts, "  ")
}
