package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestRemainingCA(t *testing.T) {
	assert.Equal(t, 62700.0, RemainingCA(10000, 5000))
	assert.Equal(t, 0.0, RemainingCA(75000, 5000), "never negative past the ceiling")
	assert.Equal(t, Threshold, RemainingCA(0, 0))
}

func TestProgressPercentageCap(t *testing.T) {
	assert.Equal(t, 100.0, ProgressPercentage(200000), "capped at exactly 100")
	assert.Equal(t, 100.0, ProgressPercentage(Threshold))
	assert.InDelta(t, 19.3, ProgressPercentage(15000), 0.05)
	assert.Equal(t, 0.0, ProgressPercentage(0))
}

func TestStatusForBoundaries(t *testing.T) {
	assert.Equal(t, StatusSafe, StatusFor(0))
	assert.Equal(t, StatusSafe, StatusFor(69.999))
	assert.Equal(t, StatusCaution, StatusFor(70), "exactly 70 is caution")
	assert.Equal(t, StatusCaution, StatusFor(90), "exactly 90 is caution")
	assert.Equal(t, StatusDanger, StatusFor(90.001))
	assert.Equal(t, StatusDanger, StatusFor(100))
}

func TestMonthsRemaining(t *testing.T) {
	assert.Equal(t, 10, MonthsRemaining(date(2026, time.January, 15)))
	assert.Equal(t, 4, MonthsRemaining(date(2026, time.August, 1)))
	assert.Equal(t, 0, MonthsRemaining(date(2026, time.December, 31)))
}

func TestMonthlyLimit(t *testing.T) {
	assert.Equal(t, 6270.0, MonthlyLimit(62700, 10))

	// December: no full month left, everything fits in the current one.
	assert.Equal(t, 62700.0, MonthlyLimit(62700, 0))
	assert.Equal(t, 62700.0, MonthlyLimit(62700, -1))
}

func TestAverageMonthlyRate(t *testing.T) {
	// August is the 8th elapsed month.
	assert.Equal(t, 7500.0, AverageMonthlyRate(60000, date(2026, time.August, 20)))
	assert.Equal(t, 60000.0, AverageMonthlyRate(60000, date(2026, time.January, 2)))
}

func TestPredictOverflowMonth(t *testing.T) {
	august := date(2026, time.August, 10)

	// ceil((77700-60000)/10000) = 2 months after August -> Octobre.
	month, ok := PredictOverflowMonth(60000, 10000, august)
	require.True(t, ok)
	assert.Equal(t, "Octobre", month)

	// Already past the ceiling.
	month, ok = PredictOverflowMonth(80000, 5000, august)
	require.True(t, ok)
	assert.Equal(t, AlreadyExceeded, month)

	// Overflow lands next year: out of horizon.
	_, ok = PredictOverflowMonth(10000, 2000, august)
	assert.False(t, ok)

	// Flat or negative rate: nothing forecastable.
	_, ok = PredictOverflowMonth(60000, 0, august)
	assert.False(t, ok)
	_, ok = PredictOverflowMonth(60000, -100, august)
	assert.False(t, ok)
}

func TestVATRoundTrip(t *testing.T) {
	for _, rate := range VATRates {
		got := ConvertTTCtoHT(ConvertHTtoTTC(1234.56, rate), rate)
		assert.InDelta(t, 1234.56, got, 1e-9, "rate %.1f", rate)
	}
}

func TestMissionImpact(t *testing.T) {
	// tjm=500, days=10, VAT 20%: 5000 TTC -> 4166.67 HT.
	assert.Equal(t, 4166.67, MissionImpact(500, 10, true, 20))

	// VAT disabled: billed amount is already excl.-tax.
	assert.Equal(t, 5000.0, MissionImpact(500, 10, false, 20))

	// Fractional days.
	assert.Equal(t, 1250.0, MissionImpact(500, 2.5, false, 20))
}

func TestValidVATRate(t *testing.T) {
	for _, rate := range VATRates {
		assert.True(t, ValidVATRate(rate))
	}
	assert.False(t, ValidVATRate(0))
	assert.False(t, ValidVATRate(19.6))
}

func TestRemainingDays(t *testing.T) {
	days, ok := RemainingDays(62700, 500)
	require.True(t, ok)
	assert.Equal(t, 125, days)

	// No rate provided is distinct from zero days remaining.
	_, ok = RemainingDays(62700, 0)
	assert.False(t, ok)

	days, ok = RemainingDays(100, 500)
	require.True(t, ok)
	assert.Equal(t, 0, days)
}

func TestSafeScenario(t *testing.T) {
	total := TotalEngaged(10000, 5000)
	assert.Equal(t, 15000.0, total)
	assert.Equal(t, 62700.0, RemainingCA(10000, 5000))
	assert.InDelta(t, 19.3, ProgressPercentage(total), 0.05)
	assert.Equal(t, StatusSafe, StatusFor(ProgressPercentage(total)))
}

func TestDangerScenario(t *testing.T) {
	total := TotalEngaged(75000, 5000)
	assert.Equal(t, 80000.0, total)
	assert.Equal(t, 0.0, RemainingCA(75000, 5000))
	assert.Equal(t, 100.0, ProgressPercentage(total))
	assert.Equal(t, StatusDanger, StatusFor(ProgressPercentage(total)))

	rec := Recommend(total, 0, 10000, 4)
	assert.Equal(t, StatusDanger, rec.Level)
	assert.Contains(t, rec.Message, "atteint ou dépassé le plafond")
}
