package dateutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHoldingYears(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		sale     time.Time
		expected string
	}{
		{
			name:     "Five calendar years including one leap day",
			purchase: time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
			sale:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			expected: "5.0021",
		},
		{
			name:     "Half year",
			purchase: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			sale:     time.Date(2023, 7, 2, 12, 0, 0, 0, time.UTC),
			expected: "0.4997",
		},
		{
			name:     "Same day",
			purchase: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			sale:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "0",
		},
		{
			name:     "Sale before purchase",
			purchase: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			sale:     time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HoldingYears(tt.purchase, tt.sale)
			want := decimal.RequireFromString(tt.expected)
			assert.True(t, got.Equal(want), "HoldingYears() = %s, want %s", got, want)
		})
	}
}

func TestWholeMonthsBetween(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, WholeMonthsBetween(start, start))
	assert.Equal(t, 0, WholeMonthsBetween(start, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, WholeMonthsBetween(start, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 60, WholeMonthsBetween(start, time.Date(2029, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, WholeMonthsBetween(start, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan", MonthLabel(0))
	assert.Equal(t, "Dec", MonthLabel(11))
	assert.Equal(t, "Jan", MonthLabel(12))
	assert.Equal(t, "Mar", MonthLabel(26))
	assert.Equal(t, "Dec", MonthLabel(-1))
}

func TestMonthLabelFrom(t *testing.T) {
	start := time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Nov 2024", MonthLabelFrom(start, 0))
	assert.Equal(t, "Dec 2024", MonthLabelFrom(start, 1))
	assert.Equal(t, "Feb 2025", MonthLabelFrom(start, 3))
}
