package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// NetOperatingIncome annualizes monthly revenue less monthly operating expenses
// (financing costs excluded).
func NetOperatingIncome(monthlyRevenue, monthlyOperatingExpenses decimal.Decimal) decimal.Decimal {
	return dec.NewMoneyFromDecimal(monthlyRevenue.Sub(monthlyOperatingExpenses)).Annual().Decimal
}

// CapRate returns annual net operating income as a percentage of property value.
func CapRate(annualNOI, propertyValue decimal.Decimal) (decimal.Decimal, error) {
	if !propertyValue.IsPositive() {
		return decimal.Zero, &domain.ErrDegenerateInput{Field: "property_value", Reason: "must be greater than zero"}
	}
	return dec.FractionToPercent(annualNOI.Div(propertyValue)), nil
}

// CashOnCashReturn returns annual pre-tax cash flow as a percentage of the cash invested.
func CashOnCashReturn(annualCashFlow, cashInvested decimal.Decimal) (decimal.Decimal, error) {
	if !cashInvested.IsPositive() {
		return decimal.Zero, &domain.ErrDegenerateInput{Field: "cash_invested", Reason: "must be greater than zero"}
	}
	return dec.FractionToPercent(annualCashFlow.Div(cashInvested)), nil
}

// ROI returns a simple gain over cost percentage.
func ROI(gain, cost decimal.Decimal) (decimal.Decimal, error) {
	if !cost.IsPositive() {
		return decimal.Zero, &domain.ErrDegenerateInput{Field: "cost", Reason: "must be greater than zero"}
	}
	return dec.FractionToPercent(gain.Div(cost)), nil
}
