package model

import "plafond/internal/engine"

// Snapshot is the fully derived view of a State at a reference date.
// Recomputed from scratch after every mutation; consumers (CLI, TUI,
// PDF export, HTTP API) treat it as read-only.
type Snapshot struct {
	TotalEngaged       float64 `json:"totalEngaged"`
	RemainingCA        float64 `json:"remainingCA"`
	ProgressPercentage float64 `json:"progressPercentage"`

	Status engine.Status `json:"statusColor"`

	MonthsRemaining    int     `json:"monthsRemaining"`
	MonthlyLimit       float64 `json:"monthlyLimit"`
	AverageMonthlyRate float64 `json:"averageMonthlyRate"`

	// OverflowMonth is nil when no overflow is forecastable within the
	// current year.
	OverflowMonth *string `json:"overflowMonth"`

	Recommendation engine.Recommendation `json:"recommendation"`

	// RemainingDays is nil when no reference daily rate is set, which
	// is distinct from zero days remaining.
	RemainingDays *int `json:"remainingDays"`
}
