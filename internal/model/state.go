// Package model defines domain types for the revenue tracker.
package model

import "plafond/internal/engine"

// Mission is a simulated work engagement. Immutable once created:
// AmountHT is frozen at add-time and not recomputed if VAT settings
// change later.
type Mission struct {
	ID       string  `json:"id"`
	TJM      float64 `json:"tjm"`
	Days     float64 `json:"days"`
	AmountHT float64 `json:"amountHT"`
}

// State is the full tracked session state. All monetary amounts are
// excl.-tax euros. Owned by session.Tracker; nothing else mutates it.
type State struct {
	EarnedCA   float64   `json:"earnedCA"`
	SecuredCA  float64   `json:"securedCA"`
	VATEnabled bool      `json:"vatEnabled"`
	VATRate    float64   `json:"vatRate"`
	Missions   []Mission `json:"missions"`
	DefaultTJM float64   `json:"defaultTJM"`
}

// DefaultState returns the all-zero initial state with the default VAT
// rate preselected.
func DefaultState() State {
	return State{VATRate: engine.DefaultVATRate}
}
