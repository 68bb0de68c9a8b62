package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var monthNames = []string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// MonthName returns the French month name for a 0-indexed month,
// or "" when out of range.
func MonthName(month0 int) string {
	if month0 < 0 || month0 >= len(monthNames) {
		return ""
	}
	return monthNames[month0]
}

// FormatEuro formats an amount as euros: rounded to the whole euro,
// no grouping separators, symbol after the amount. e.g. "77700 €"
func FormatEuro(amount float64) string {
	return FormatAmount(amount) + " €"
}

// FormatAmount formats an amount rounded to the whole unit.
func FormatAmount(amount float64) string {
	return strconv.FormatInt(int64(math.Round(amount)), 10)
}

// FormatPercent formats a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// ParseAmount parses free-text numeric input tolerant of spaces used
// as thousands separators and of decimal commas. Anything that still
// fails to parse, including the empty string, normalizes to 0 rather
// than returning an error.
func ParseAmount(s string) float64 {
	cleaned := strings.NewReplacer(" ", "", " ", "", " ", "", ",", ".").Replace(s)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
