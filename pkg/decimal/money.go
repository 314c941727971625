package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string.
// Leading "$" and thousands separators are accepted.
func NewMoneyFromString(value string) (Money, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(value)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Percent returns pct percent of the amount (pct expressed as 0-100).
func (m Money) Percent(pct decimal.Decimal) Money {
	return Money{m.Decimal.Mul(PercentToFraction(pct))}
}


// String returns the amount fixed to cents without grouping.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as currency with thousands separators, e.g. "-$1,234.50".
func (m Money) Format() string {
	return FormatCurrency(m.Decimal, 2)
}

// PercentToFraction converts a 0-100 percentage to a 0-1 fraction.
func PercentToFraction(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

// FractionToPercent converts a 0-1 fraction to a 0-100 percentage.
func FractionToPercent(f decimal.Decimal) decimal.Decimal {
	return f.Mul(hundred)
}

// FormatCurrency renders d with the given number of decimal places and grouped thousands.
func FormatCurrency(d decimal.Decimal, places int32) string {
	s := d.Abs().StringFixed(places)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	if d.Round(places).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(frac)
	return b.String()
}

// FormatPercent renders a 0-100 percentage with the given decimal places, e.g. "12.50%".
func FormatPercent(pct decimal.Decimal, places int32) string {
	return pct.StringFixed(places) + "%"
}
