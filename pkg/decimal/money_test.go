package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("$1,234.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "1234.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestStringRoundsToCents(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"-2.345", "-2.35"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPeriodConversions(t *testing.T) {
	m := NewMoneyFromDecimal(stddec.NewFromInt(100))
	if got := m.Annual().String(); got != "1200.00" {
		t.Fatalf("Annual got %s", got)
	}
	if got := m.Annual().Monthly().String(); got != "100.00" {
		t.Fatalf("Monthly after Annual got %s", got)
	}
	if got := NewMoneyFromDecimal(stddec.NewFromInt(6000)).Monthly().String(); got != "500.00" {
		t.Fatalf("Monthly got %s", got)
	}
}

func TestPercentHelpers(t *testing.T) {
	if got := NewMoneyFromDecimal(stddec.NewFromInt(650000)).Percent(stddec.NewFromInt(7)).String(); got != "45500.00" {
		t.Fatalf("Percent got %s want 45500.00", got)
	}
	if got := PercentToFraction(stddec.NewFromFloat(5.5)); !got.Equal(stddec.NewFromFloat(0.055)) {
		t.Fatalf("PercentToFraction got %s", got)
	}
	if got := FractionToPercent(stddec.NewFromFloat(0.0505)); !got.Equal(stddec.NewFromFloat(5.05)) {
		t.Fatalf("FractionToPercent got %s", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		out    string
	}{
		{"0", 2, "$0.00"},
		{"12.5", 2, "$12.50"},
		{"999.999", 2, "$1,000.00"},
		{"1234.5", 2, "$1,234.50"},
		{"104500", 0, "$104,500"},
		{"1234567.891", 2, "$1,234,567.89"},
		{"-2528.27", 2, "-$2,528.27"},
		{"-0.001", 2, "$0.00"},
	}
	for _, c := range cases {
		got := FormatCurrency(stddec.RequireFromString(c.in), c.places)
		if got != c.out {
			t.Fatalf("FormatCurrency(%s, %d) got %s want %s", c.in, c.places, got, c.out)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	if got := NewMoneyFromDecimal(stddec.RequireFromString("1234.5")).Format(); got != "$1,234.50" {
		t.Fatalf("Format got %s", got)
	}
	if got := NewMoneyFromDecimal(stddec.RequireFromString("-886.349")).Format(); got != "-$886.35" {
		t.Fatalf("Format got %s", got)
	}
	if got := FormatPercent(stddec.NewFromFloat(3.2705), 2); got != "3.27%" {
		t.Fatalf("FormatPercent got %s", got)
	}
}
