package output

import (
	"strconv"

	"github.com/shopspring/decimal"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as currency with 2 decimals and grouped thousands.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return dec.NewMoneyFromDecimal(amount).Format() }

// FormatWholeCurrency formats a decimal as currency rounded to whole dollars.
func FormatWholeCurrency(amount decimal.Decimal) string { return dec.FormatCurrency(amount, 0) }

// FormatPercentage formats a 0-100 percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return dec.FormatPercent(amount, 2) }

// FormatRate formats a 0-1 rate as a percentage with 2 decimals.
func FormatRate(rate decimal.Decimal) string {
	return dec.FormatPercent(dec.FractionToPercent(rate), 2)
}

func intToString(i int) string { return strconv.Itoa(i) }

// signed colors a currency amount green when non-negative and red otherwise.
func signed(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return lossStyle.Render(FormatCurrency(amount))
	}
	return gainStyle.Render(FormatCurrency(amount))
}
