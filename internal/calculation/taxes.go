package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income is taxed progressively: each bracket taxes only the slice of
//    income that falls inside it.
// 2. Federal and provincial tables are applied independently and summed.
//    No credits, surtaxes (e.g. Ontario health premium) or deductions.
// 3. Tables are injected per jurisdiction and year; nothing is indexed
//    for inflation.

// ComputeTax returns the progressive tax owed on income under table.
// Income at or below zero owes nothing.
func ComputeTax(income decimal.Decimal, table domain.BracketTable) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	totalTax := decimal.Zero
	for _, bracket := range table.Brackets {
		if income.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := income
		if bracket.Max != nil {
			upper = decimal.Min(income, *bracket.Max)
		}
		totalTax = totalTax.Add(upper.Sub(bracket.Min).Mul(bracket.Rate))
	}
	return totalTax
}

// MarginalRate returns the rate applied to the next dollar earned above income.
func MarginalRate(income decimal.Decimal, table domain.BracketTable) decimal.Decimal {
	if len(table.Brackets) == 0 {
		return decimal.Zero
	}
	for _, bracket := range table.Brackets {
		if bracket.Max == nil || income.LessThan(*bracket.Max) {
			return bracket.Rate
		}
	}
	return table.Brackets[len(table.Brackets)-1].Rate
}

// EffectiveRate returns tax divided by income, or zero for non-positive income.
func EffectiveRate(income decimal.Decimal, table domain.BracketTable) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return ComputeTax(income, table).Div(income)
}

// IncrementalTax is the change in tax caused by stacking extra income on top of base.
// A negative extra lowers taxable income and yields a negative delta.
func IncrementalTax(base, extra decimal.Decimal, table domain.BracketTable) decimal.Decimal {
	return ComputeTax(base.Add(extra), table).Sub(ComputeTax(base, table))
}

// CombinedTaxCalculator applies a federal and a provincial table to the same income.
type CombinedTaxCalculator struct {
	Federal    domain.BracketTable
	Provincial domain.BracketTable
}

// NewCombinedTaxCalculator pairs a federal and provincial table.
func NewCombinedTaxCalculator(federal, provincial domain.BracketTable) *CombinedTaxCalculator {
	return &CombinedTaxCalculator{Federal: federal, Provincial: provincial}
}

// CalculateTax returns federal, provincial and total tax on income.
func (ctc *CombinedTaxCalculator) CalculateTax(income decimal.Decimal) (federal, provincial, total decimal.Decimal) {
	federal = ComputeTax(income, ctc.Federal)
	provincial = ComputeTax(income, ctc.Provincial)
	return federal, provincial, federal.Add(provincial)
}

// MarginalRate returns the combined federal and provincial marginal rate.
func (ctc *CombinedTaxCalculator) MarginalRate(income decimal.Decimal) decimal.Decimal {
	return MarginalRate(income, ctc.Federal).Add(MarginalRate(income, ctc.Provincial))
}
