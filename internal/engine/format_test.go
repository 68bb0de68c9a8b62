package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "77700 €", FormatEuro(77700))
	assert.Equal(t, "0 €", FormatEuro(0))
	assert.Equal(t, "4167 €", FormatEuro(4166.67), "rounded to the whole euro")
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "19.3%", FormatPercent(19.305))
	assert.Equal(t, "100.0%", FormatPercent(100))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12000", 12000},
		{"12 000", 12000},
		{"12 000,50", 12000.50},
		{"4166,67", 4166.67},
		{"4166.67", 4166.67},
		{"", 0},
		{"abc", 0},
		{"12a00", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.in), "input %q", tt.in)
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janvier", MonthName(0))
	assert.Equal(t, "Octobre", MonthName(9))
	assert.Equal(t, "Décembre", MonthName(11))
	assert.Equal(t, "", MonthName(12))
	assert.Equal(t, "", MonthName(-1))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 4166.67, RoundMoney(4166.666666))
	assert.Equal(t, 0.1, RoundMoney(0.1))
	assert.Equal(t, 2.68, RoundMoney(2.675))
}
