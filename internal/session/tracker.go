// Package session owns the mutable tracker state. Every mutation runs
// synchronously: clamp, apply, persist the full state, and the next
// Snapshot call re-derives everything through the engine.
package session

import (
	"errors"
	"log"
	"math"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"plafond/internal/engine"
	"plafond/internal/model"
	"plafond/internal/store"
)

// StateKey is the fixed, versionless key the full state is stored
// under. Schema drift is absorbed by defaulting missing fields on load.
const StateKey = "tracker-state"

// ErrInvalidVATRate is returned when a rate outside engine.VATRates is
// submitted.
var ErrInvalidVATRate = errors.New("invalid VAT rate")

// Tracker holds the session state and keeps it synchronized with the
// injected store. Not safe for concurrent use; all access is expected
// from a single event loop.
type Tracker struct {
	state model.State
	store store.Store
	now   func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the reference clock, keeping calendar-relative
// derivations deterministic in tests and with --date.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a tracker hydrated from the store. Any load failure,
// missing key, corrupt payload or wrong shape, falls back silently to
// the all-zero defaults; it is a recoverable condition, never fatal.
func New(st store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		state: model.DefaultState(),
		store: st,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.hydrate()
	return t
}

func (t *Tracker) hydrate() {
	raw, ok, err := t.store.Get(StateKey)
	if err != nil {
		log.Printf("state load failed, starting fresh: %v", err)
		return
	}
	if !ok {
		return
	}

	var parsed model.State
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("state payload unreadable, starting fresh: %v", err)
		return
	}

	// A stored rate of zero is treated as unset and replaced by the
	// default, since zero is never a valid rate in this regime.
	if parsed.VATRate == 0 {
		parsed.VATRate = engine.DefaultVATRate
	}
	t.state = parsed
}

// persist writes the full state. A write failure is logged and does
// not roll back the in-memory mutation; the session simply continues
// memory-only until a later write succeeds.
func (t *Tracker) persist() {
	raw, err := json.Marshal(t.state)
	if err != nil {
		log.Printf("state encode failed: %v", err)
		return
	}
	if err := t.store.Put(StateKey, raw); err != nil {
		log.Printf("state write failed: %v", err)
	}
}

// State returns a copy of the current state.
func (t *Tracker) State() model.State {
	st := t.state
	st.Missions = append([]model.Mission(nil), t.state.Missions...)
	return st
}

// SetEarnedCA replaces the collected revenue, clamped at zero.
func (t *Tracker) SetEarnedCA(v float64) {
	t.state.EarnedCA = math.Max(0, v)
	t.persist()
}

// SetSecuredCA replaces the contracted-but-uncollected revenue,
// clamped at zero. Note this does not reconcile with the mission list;
// missions keep adjusting secured revenue from whatever value is set.
func (t *Tracker) SetSecuredCA(v float64) {
	t.state.SecuredCA = math.Max(0, v)
	t.persist()
}

// SetDefaultTJM replaces the reference daily rate, clamped at zero.
func (t *Tracker) SetDefaultTJM(v float64) {
	t.state.DefaultTJM = math.Max(0, v)
	t.persist()
}

// SetVATEnabled toggles VAT handling for future mission amounts.
func (t *Tracker) SetVATEnabled(enabled bool) {
	t.state.VATEnabled = enabled
	t.persist()
}

// SetVATRate replaces the VAT rate. Rates outside the enumerated set
// are rejected and leave the state untouched.
func (t *Tracker) SetVATRate(rate float64) error {
	if !engine.ValidVATRate(rate) {
		return ErrInvalidVATRate
	}
	t.state.VATRate = rate
	t.persist()
	return nil
}

// AddMission appends a mission and adds its excl.-tax amount to the
// secured revenue. The id is freshly generated and never reused, even
// for two calls in the same instant.
func (t *Tracker) AddMission(tjm, days, amountHT float64) model.Mission {
	m := model.Mission{
		ID:       uuid.NewString(),
		TJM:      tjm,
		Days:     days,
		AmountHT: amountHT,
	}
	t.state.Missions = append(t.state.Missions, m)
	t.state.SecuredCA += amountHT
	t.persist()
	return m
}

// RemoveMission removes the mission with the given id and subtracts
// its amount from secured revenue, floored at zero. Removing an
// unknown id is a benign no-op and reports false.
func (t *Tracker) RemoveMission(id string) bool {
	for i, m := range t.state.Missions {
		if m.ID != id {
			continue
		}
		t.state.Missions = append(t.state.Missions[:i], t.state.Missions[i+1:]...)
		t.state.SecuredCA = math.Max(0, t.state.SecuredCA-m.AmountHT)
		t.persist()
		return true
	}
	return false
}

// Reset restores the all-zero defaults and clears the persisted
// snapshot as one logical operation.
func (t *Tracker) Reset() {
	t.state = model.DefaultState()
	if err := t.store.Delete(StateKey); err != nil {
		log.Printf("state clear failed: %v", err)
	}
}

// Snapshot derives the full computed view at the tracker's reference
// clock. Pure given the current state; calling it twice yields
// identical results.
func (t *Tracker) Snapshot() model.Snapshot {
	now := t.now()

	total := engine.TotalEngaged(t.state.EarnedCA, t.state.SecuredCA)
	remaining := engine.RemainingCA(t.state.EarnedCA, t.state.SecuredCA)
	pct := engine.ProgressPercentage(total)
	monthsLeft := engine.MonthsRemaining(now)
	limit := engine.MonthlyLimit(remaining, monthsLeft)
	avg := engine.AverageMonthlyRate(total, now)

	snap := model.Snapshot{
		TotalEngaged:       total,
		RemainingCA:        remaining,
		ProgressPercentage: pct,
		Status:             engine.StatusFor(pct),
		MonthsRemaining:    monthsLeft,
		MonthlyLimit:       limit,
		AverageMonthlyRate: avg,
		Recommendation:     engine.Recommend(total, limit, avg, monthsLeft),
	}

	if month, ok := engine.PredictOverflowMonth(total, avg, now); ok {
		snap.OverflowMonth = &month
	}
	if days, ok := engine.RemainingDays(remaining, t.state.DefaultTJM); ok {
		snap.RemainingDays = &days
	}
	return snap
}
