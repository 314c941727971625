package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// decimalValue adapts a decimal.Decimal to a command-line flag. Currency
// symbols and thousands separators are accepted.
type decimalValue struct {
	d *decimal.Decimal
}

func newDecimalValue(p *decimal.Decimal, def decimal.Decimal) *decimalValue {
	*p = def
	return &decimalValue{d: p}
}

func (v *decimalValue) Set(s string) error {
	m, err := dec.NewMoneyFromString(s)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*v.d = m.Decimal
	return nil
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Type() string { return "decimal" }
