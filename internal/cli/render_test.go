package cli

import (
	"strings"
	"testing"

	"plafond/internal/engine"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status engine.Status
		want   string
	}{
		{engine.StatusSafe, "SITUATION SAINE"},
		{engine.StatusCaution, "VIGILANCE REQUISE"},
		{engine.StatusDanger, "ATTENTION"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%s) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestRenderProgressBarBounds(t *testing.T) {
	out := RenderProgressBar(150, 20)
	if !strings.Contains(out, "100.0%") {
		t.Errorf("overflowing pct not capped: %q", out)
	}

	out = RenderProgressBar(-5, 20)
	if !strings.Contains(out, "0.0%") {
		t.Errorf("negative pct not clamped: %q", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Situation",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"CA encaissé", "10000 €"},
			{"---"},
			{"CA restant", "62700 €"},
		},
	})

	for _, want := range []string{"Situation", "CA encaissé", "62700 €", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestFormatMission(t *testing.T) {
	got := FormatMission(1, 500, 10, 4166.67)
	if got != "Mission 1: 10 jours à 500 €/j = 4167 € HT" {
		t.Errorf("FormatMission = %q", got)
	}

	got = FormatMission(2, 400, 2.5, 1000)
	if !strings.Contains(got, "2.5 jours") {
		t.Errorf("fractional days lost: %q", got)
	}
}
