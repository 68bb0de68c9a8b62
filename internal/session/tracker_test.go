package session

import (
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plafond/internal/engine"
	"plafond/internal/model"
	"plafond/internal/store"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func storedState(t *testing.T, mem *store.Memory) model.State {
	t.Helper()
	raw, ok, err := mem.Get(StateKey)
	require.NoError(t, err)
	require.True(t, ok, "no state persisted")
	var st model.State
	require.NoError(t, json.Unmarshal(raw, &st))
	return st
}

func TestNewStartsWithDefaults(t *testing.T) {
	tr := New(store.NewMemory())
	st := tr.State()

	assert.Zero(t, st.EarnedCA)
	assert.Zero(t, st.SecuredCA)
	assert.False(t, st.VATEnabled)
	assert.Equal(t, engine.DefaultVATRate, st.VATRate)
	assert.Empty(t, st.Missions)
	assert.Zero(t, st.DefaultTJM)
}

func TestSettersClampNegative(t *testing.T) {
	tr := New(store.NewMemory())

	tr.SetEarnedCA(-500)
	assert.Zero(t, tr.State().EarnedCA)

	tr.SetEarnedCA(12000)
	assert.Equal(t, 12000.0, tr.State().EarnedCA)

	tr.SetSecuredCA(-1)
	assert.Zero(t, tr.State().SecuredCA)

	tr.SetDefaultTJM(-300)
	assert.Zero(t, tr.State().DefaultTJM)
}

func TestSetVATRate(t *testing.T) {
	tr := New(store.NewMemory())

	require.NoError(t, tr.SetVATRate(10))
	assert.Equal(t, 10.0, tr.State().VATRate)

	err := tr.SetVATRate(19.6)
	assert.ErrorIs(t, err, ErrInvalidVATRate)
	assert.Equal(t, 10.0, tr.State().VATRate, "rejected rate must not stick")
}

func TestMissionSecuredInvariant(t *testing.T) {
	tr := New(store.NewMemory())

	m1 := tr.AddMission(500, 10, 4166.67)
	m2 := tr.AddMission(600, 5, 3000)
	assert.InDelta(t, 7166.67, tr.State().SecuredCA, 1e-9)
	assert.Len(t, tr.State().Missions, 2)
	assert.NotEqual(t, m1.ID, m2.ID)

	removed := tr.RemoveMission(m1.ID)
	assert.True(t, removed)
	assert.InDelta(t, 3000, tr.State().SecuredCA, 1e-9)
	assert.Len(t, tr.State().Missions, 1)

	// Unknown id: benign no-op.
	removed = tr.RemoveMission("nope")
	assert.False(t, removed)
	assert.InDelta(t, 3000, tr.State().SecuredCA, 1e-9)
}

func TestRemoveMissionFloorsSecuredAtZero(t *testing.T) {
	tr := New(store.NewMemory())
	m := tr.AddMission(500, 10, 5000)

	// Direct edit below the mission amount, then remove.
	tr.SetSecuredCA(1000)
	tr.RemoveMission(m.ID)
	assert.Zero(t, tr.State().SecuredCA)
}

func TestMissionIDsUnique(t *testing.T) {
	tr := New(store.NewMemory())
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		m := tr.AddMission(500, 1, 500)
		assert.False(t, seen[m.ID], "duplicate mission id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestMutationsPersistFullState(t *testing.T) {
	mem := store.NewMemory()
	tr := New(mem)

	tr.SetEarnedCA(10000)
	tr.AddMission(500, 10, 5000)

	st := storedState(t, mem)
	assert.Equal(t, 10000.0, st.EarnedCA)
	assert.Equal(t, 5000.0, st.SecuredCA)
	require.Len(t, st.Missions, 1)
	assert.Equal(t, 500.0, st.Missions[0].TJM)
}

func TestHydrateFromStore(t *testing.T) {
	mem := store.NewMemory()
	first := New(mem)
	first.SetEarnedCA(20000)
	first.SetVATEnabled(true)
	first.AddMission(400, 3, 1200)

	second := New(mem)
	st := second.State()
	assert.Equal(t, 20000.0, st.EarnedCA)
	assert.True(t, st.VATEnabled)
	require.Len(t, st.Missions, 1)
	assert.Equal(t, 1200.0, st.Missions[0].AmountHT)
}

func TestHydrateCorruptPayloadFallsBack(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Put(StateKey, []byte("{not json")))

	tr := New(mem)
	assert.Zero(t, tr.State().EarnedCA)
	assert.Equal(t, engine.DefaultVATRate, tr.State().VATRate)
}

func TestHydrateBackfillsMissingFields(t *testing.T) {
	mem := store.NewMemory()
	// Older payload shape: no vatRate, no missions, no defaultTJM.
	require.NoError(t, mem.Put(StateKey, []byte(`{"earnedCA":5000,"securedCA":100}`)))

	tr := New(mem)
	st := tr.State()
	assert.Equal(t, 5000.0, st.EarnedCA)
	assert.Equal(t, 100.0, st.SecuredCA)
	assert.Equal(t, engine.DefaultVATRate, st.VATRate, "missing rate backfilled")
	assert.Empty(t, st.Missions)
}

func TestHydrateZeroVATRateTreatedAsUnset(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Put(StateKey, []byte(`{"earnedCA":1,"vatRate":0}`)))

	tr := New(mem)
	assert.Equal(t, engine.DefaultVATRate, tr.State().VATRate)
}

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	mem := store.NewMemory()
	mem.FailPuts = errors.New("quota exceeded")

	tr := New(mem)
	tr.SetEarnedCA(30000)
	assert.Equal(t, 30000.0, tr.State().EarnedCA, "mutation must survive a failed write")

	// Store recovers; the next mutation persists again.
	mem.FailPuts = nil
	tr.SetSecuredCA(500)
	st := storedState(t, mem)
	assert.Equal(t, 30000.0, st.EarnedCA)
	assert.Equal(t, 500.0, st.SecuredCA)
}

func TestResetClearsStateAndStore(t *testing.T) {
	mem := store.NewMemory()
	tr := New(mem)
	tr.SetEarnedCA(10000)
	tr.AddMission(500, 2, 1000)

	tr.Reset()

	st := tr.State()
	assert.Zero(t, st.EarnedCA)
	assert.Zero(t, st.SecuredCA)
	assert.Empty(t, st.Missions)
	assert.Equal(t, engine.DefaultVATRate, st.VATRate)

	_, ok, err := mem.Get(StateKey)
	require.NoError(t, err)
	assert.False(t, ok, "persisted snapshot must be cleared")
}

func TestSnapshotIdempotent(t *testing.T) {
	tr := New(store.NewMemory(), WithClock(fixedClock(2026, time.August, 15)))
	tr.SetEarnedCA(10000)
	tr.SetSecuredCA(5000)
	tr.SetDefaultTJM(500)

	first := tr.Snapshot()
	second := tr.Snapshot()
	assert.Equal(t, first, second)
}

func TestSnapshotSafeScenario(t *testing.T) {
	tr := New(store.NewMemory(), WithClock(fixedClock(2026, time.March, 10)))
	tr.SetEarnedCA(10000)
	tr.SetSecuredCA(5000)

	snap := tr.Snapshot()
	assert.Equal(t, 15000.0, snap.TotalEngaged)
	assert.Equal(t, 62700.0, snap.RemainingCA)
	assert.InDelta(t, 19.3, snap.ProgressPercentage, 0.05)
	assert.Equal(t, engine.StatusSafe, snap.Status)
	assert.Equal(t, 9, snap.MonthsRemaining)
	assert.Equal(t, engine.StatusSafe, snap.Recommendation.Level)
}

func TestSnapshotDangerScenario(t *testing.T) {
	tr := New(store.NewMemory(), WithClock(fixedClock(2026, time.August, 15)))
	tr.SetEarnedCA(75000)
	tr.SetSecuredCA(5000)

	snap := tr.Snapshot()
	assert.Equal(t, 80000.0, snap.TotalEngaged)
	assert.Zero(t, snap.RemainingCA)
	assert.Equal(t, 100.0, snap.ProgressPercentage)
	assert.Equal(t, engine.StatusDanger, snap.Status)
	assert.Equal(t, engine.StatusDanger, snap.Recommendation.Level)
	require.NotNil(t, snap.OverflowMonth)
	assert.Equal(t, engine.AlreadyExceeded, *snap.OverflowMonth)
}

func TestSnapshotDecemberBoundary(t *testing.T) {
	tr := New(store.NewMemory(), WithClock(fixedClock(2026, time.December, 5)))
	tr.SetEarnedCA(10000)

	snap := tr.Snapshot()
	assert.Zero(t, snap.MonthsRemaining)
	assert.Equal(t, snap.RemainingCA, snap.MonthlyLimit, "no division in December")
}

func TestSnapshotRemainingDays(t *testing.T) {
	tr := New(store.NewMemory(), WithClock(fixedClock(2026, time.March, 10)))
	tr.SetEarnedCA(15000)

	snap := tr.Snapshot()
	assert.Nil(t, snap.RemainingDays, "no rate set means no value, not zero")

	tr.SetDefaultTJM(500)
	snap = tr.Snapshot()
	require.NotNil(t, snap.RemainingDays)
	assert.Equal(t, 125, *snap.RemainingDays)
}
