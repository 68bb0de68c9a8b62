// Package engine implements the revenue-threshold calculations for the
// micro-entrepreneur regime (prestations de services, BNC).
//
// Every function is pure: calendar-relative operations take an explicit
// reference date instead of reading the wall clock, so results are
// deterministic and testable. Amounts are excl.-tax euros unless noted.
package engine

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Threshold is the annual excl.-tax revenue ceiling (€) for the
// micro-entrepreneur regime. Fixed by regulation, not user-editable.
const Threshold = 77700.0

// DefaultVATRate is the standard French VAT rate (percent).
const DefaultVATRate = 20.0

// VATRates lists the VAT rates (percent) selectable in this regime.
var VATRates = []float64{20, 10, 5.5}

// ValidVATRate reports whether rate is one of the allowed VAT rates.
func ValidVATRate(rate float64) bool {
	for _, r := range VATRates {
		if r == rate {
			return true
		}
	}
	return false
}

// Status classifies progress toward the ceiling.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusCaution Status = "caution"
	StatusDanger  Status = "danger"
)

// TotalEngaged returns earned + secured revenue. Inputs are assumed
// already clamped non-negative by the caller.
func TotalEngaged(earned, secured float64) float64 {
	return earned + secured
}

// RemainingCA returns the revenue still billable before the ceiling.
// Never negative, even when the ceiling is already exceeded.
func RemainingCA(earned, secured float64) float64 {
	return math.Max(0, Threshold-(earned+secured))
}

// ProgressPercentage returns progress toward the ceiling as a
// percentage, capped at 100.
func ProgressPercentage(totalEngaged float64) float64 {
	return math.Min(100, totalEngaged/Threshold*100)
}

// StatusFor maps a progress percentage to a status band.
// Below 70 is safe, 70 to 90 inclusive is caution, above 90 is danger.
func StatusFor(percentage float64) Status {
	switch {
	case percentage < 70:
		return StatusSafe
	case percentage <= 90:
		return StatusCaution
	default:
		return StatusDanger
	}
}

// MonthsRemaining returns the number of full months strictly after the
// current one left in the calendar year. December yields 0, January 10.
func MonthsRemaining(now time.Time) int {
	month0 := int(now.Month()) - 1
	return 12 - month0 - 1
}

// MonthlyLimit returns the maximum monthly revenue that keeps the year
// under the ceiling. With no full month left, everything must fit in
// what remains of the current month, so the full remaining amount is
// returned undivided.
func MonthlyLimit(remaining float64, monthsLeft int) float64 {
	if monthsLeft <= 0 {
		return remaining
	}
	return remaining / float64(monthsLeft)
}

// AverageMonthlyRate returns the average revenue per elapsed month,
// counting the current month as elapsed.
func AverageMonthlyRate(totalEngaged float64, now time.Time) float64 {
	elapsed := int(now.Month()) // month index 0 + 1
	return totalEngaged / float64(elapsed)
}

// AlreadyExceeded is the overflow label used when the ceiling has been
// crossed before the reference date.
const AlreadyExceeded = "Déjà dépassé"

// PredictOverflowMonth projects the calendar month in which engaged
// revenue crosses the ceiling at the given monthly rate. The second
// return value is false when no prediction applies: the rate is flat or
// negative, or the projected overflow falls beyond the current year.
// A past overflow yields AlreadyExceeded.
func PredictOverflowMonth(totalEngaged, monthlyRate float64, now time.Time) (string, bool) {
	if monthlyRate <= 0 {
		return "", false
	}

	month0 := int(now.Month()) - 1
	monthsToOverflow := int(math.Ceil((Threshold - totalEngaged) / monthlyRate))

	if monthsToOverflow <= 0 {
		return AlreadyExceeded, true
	}
	if month0+monthsToOverflow > 11 {
		// Overflow happens next year or later.
		return "", false
	}
	return MonthName((month0 + monthsToOverflow) % 12), true
}

// ConvertTTCtoHT removes VAT from an incl.-tax amount.
func ConvertTTCtoHT(amountTTC, vatRate float64) float64 {
	return amountTTC / (1 + vatRate/100)
}

// ConvertHTtoTTC adds VAT to an excl.-tax amount.
func ConvertHTtoTTC(amountHT, vatRate float64) float64 {
	return amountHT * (1 + vatRate/100)
}

// MissionImpact returns the excl.-tax amount a mission contributes to
// secured revenue. When VAT applies, the billed total is treated as
// incl.-tax and converted; otherwise it is already excl.-tax. The
// result carries the 2-decimal currency rounding.
func MissionImpact(tjm, days float64, vatEnabled bool, vatRate float64) float64 {
	totalTTC := tjm * days
	if vatEnabled {
		return RoundMoney(ConvertTTCtoHT(totalTTC, vatRate))
	}
	return RoundMoney(totalTTC)
}

// RoundMoney rounds an amount to 2 decimals using half-up rounding,
// the convention for euro amounts throughout.
func RoundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// RemainingDays estimates billable days left at the given daily rate.
// The second return value is false when no rate is provided, which is
// distinct from zero days remaining.
func RemainingDays(remaining, tjm float64) (int, bool) {
	if tjm <= 0 {
		return 0, false
	}
	return int(math.Floor(remaining / tjm)), true
}
