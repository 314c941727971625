package calculation

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/starterpackapp/investment-calculator/pkg/dateutil"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// InclusionRate is the share of a capital gain that is added to taxable income.
var InclusionRate = decimal.NewFromFloat(0.5)

// CapitalGainsEngine computes the after-tax outcome of selling a property.
type CapitalGainsEngine struct {
	InclusionRate decimal.Decimal
	// ClampLosses zeroes the tax on a capital loss instead of crediting the
	// reduction against tax on other income.
	ClampLosses bool
	Logger      Logger
}

// NewCapitalGainsEngine creates an engine using the standard 50% inclusion rate.
func NewCapitalGainsEngine() *CapitalGainsEngine {
	return &CapitalGainsEngine{
		InclusionRate: InclusionRate,
		Logger:        NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (cge *CapitalGainsEngine) SetLogger(l Logger) {
	cge.Logger = orNop(l)
}

// Compute derives the capital gain, the tax it triggers on top of the seller's
// annual income, and the annualized after-tax return.
//
// The tax on the gain is the difference between tax on (income + taxable gain)
// and tax on income alone, computed separately per table. A capital loss
// produces a negative tax unless ClampLosses is set.
func (cge *CapitalGainsEngine) Compute(inputs domain.FinancialInputs, federal, provincial domain.BracketTable) (domain.CapitalGainsOutcome, error) {
	if !inputs.PurchasePrice.IsPositive() {
		return domain.CapitalGainsOutcome{}, &domain.ErrDegenerateInput{Field: "purchase_price", Reason: "must be greater than zero"}
	}
	if inputs.SalePrice.IsNegative() {
		return domain.CapitalGainsOutcome{}, &domain.ErrDegenerateInput{Field: "sale_price", Reason: "cannot be negative"}
	}
	yearsHeld := HoldingPeriod(inputs)
	if !yearsHeld.IsPositive() {
		return domain.CapitalGainsOutcome{}, &domain.ErrDegenerateInput{Field: "years_held", Reason: "must be greater than zero"}
	}

	inclusion := cge.InclusionRate
	if inclusion.IsZero() {
		inclusion = InclusionRate
	}

	sellingCosts := dec.NewMoneyFromDecimal(inputs.SalePrice).Percent(inputs.SellingCostsPct).Decimal
	netSalePrice := inputs.SalePrice.Sub(sellingCosts)
	capitalGain := netSalePrice.Sub(inputs.PurchasePrice)
	taxableGain := capitalGain.Mul(inclusion)

	federalTax := IncrementalTax(inputs.AnnualIncome, taxableGain, federal)
	provincialTax := IncrementalTax(inputs.AnnualIncome, taxableGain, provincial)
	if cge.ClampLosses && taxableGain.IsNegative() {
		federalTax, provincialTax = decimal.Zero, decimal.Zero
	}
	totalTax := federalTax.Add(provincialTax)
	afterTaxProfit := capitalGain.Sub(totalTax)

	annualized, err := AnnualizedReturn(afterTaxProfit, inputs.PurchasePrice, yearsHeld)
	if err != nil {
		return domain.CapitalGainsOutcome{}, err
	}

	marginal := decimal.Zero
	if taxableGain.IsPositive() {
		top := inputs.AnnualIncome.Add(taxableGain)
		marginal = MarginalRate(top, federal).Add(MarginalRate(top, provincial)).Mul(inclusion)
	}

	cge.Logger.Debugf("capital gains: gain=%s taxable=%s federal=%s provincial=%s annualized=%s%%",
		capitalGain.StringFixed(2), taxableGain.StringFixed(2), federalTax.StringFixed(2),
		provincialTax.StringFixed(2), annualized.StringFixed(2))

	return domain.CapitalGainsOutcome{
		SellingCosts:     sellingCosts,
		NetSalePrice:     netSalePrice,
		CapitalGain:      capitalGain,
		TaxableGain:      taxableGain,
		FederalTax:       federalTax,
		ProvincialTax:    provincialTax,
		TotalTax:         totalTax,
		AfterTaxProfit:   afterTaxProfit,
		AnnualizedReturn: annualized,
		MarginalRate:     marginal,
	}, nil
}

// HoldingPeriod returns the explicit holding period in years, falling back to
// the span between purchase and sale dates when only dates are given.
func HoldingPeriod(inputs domain.FinancialInputs) decimal.Decimal {
	if inputs.YearsHeld.IsPositive() {
		return inputs.YearsHeld
	}
	if inputs.PurchaseDate != nil && inputs.SaleDate != nil {
		return dateutil.HoldingYears(*inputs.PurchaseDate, *inputs.SaleDate)
	}
	return inputs.YearsHeld
}

// AnnualizedReturn converts a total profit on an investment held for years into
// a compound annual percentage: ((1 + profit/investment)^(1/years) - 1) * 100.
func AnnualizedReturn(profit, investment, years decimal.Decimal) (decimal.Decimal, error) {
	if !investment.IsPositive() {
		return decimal.Zero, &domain.ErrDegenerateInput{Field: "investment", Reason: "must be greater than zero"}
	}
	if !years.IsPositive() {
		return decimal.Zero, &domain.ErrDegenerateInput{Field: "years_held", Reason: "must be greater than zero"}
	}
	growth := decimal.NewFromInt(1).Add(profit.Div(investment))
	if growth.IsNegative() {
		return decimal.Zero, &domain.ErrDegenerateInput{Field: "profit", Reason: "loss exceeds the amount invested"}
	}
	rate := math.Pow(growth.InexactFloat64(), 1/years.InexactFloat64()) - 1
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return decimal.Zero, &domain.ErrDegenerateInput{Field: "years_held", Reason: "annualized return is not finite"}
	}
	return dec.FractionToPercent(decimal.NewFromFloat(rate)), nil
}
