package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/starterpackapp/investment-calculator/pkg/dateutil"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// BracketSource resolves the bracket table for a jurisdiction and tax year.
type BracketSource interface {
	Lookup(jurisdiction string, year int) (domain.BracketTable, error)
}

// Analyzer runs every calculation for one property and assembles a CalculationResult.
type Analyzer struct {
	Brackets     BracketSource
	CapitalGains *CapitalGainsEngine
	Logger       Logger
}

// NewAnalyzer creates an analyzer that resolves tax tables from brackets.
func NewAnalyzer(brackets BracketSource) *Analyzer {
	return &Analyzer{
		Brackets:     brackets,
		CapitalGains: NewCapitalGainsEngine(),
		Logger:       NopLogger{},
	}
}

// SetLogger sets the logger for the analyzer and its engines. If nil is provided, a no-op logger is used.
func (a *Analyzer) SetLogger(l Logger) {
	a.Logger = orNop(l)
	a.CapitalGains.SetLogger(a.Logger)
}

// Analyze computes the sale, financing, cash-flow and expense picture for inputs.
// The capital gains section is skipped when no sale price is given.
func (a *Analyzer) Analyze(inputs domain.FinancialInputs) (*domain.CalculationResult, error) {
	result := &domain.CalculationResult{
		PropertyAddress: inputs.PropertyAddress,
		Province:        inputs.Province,
		TaxYear:         inputs.TaxYear,
		Strategy:        inputs.Strategy,
		GeneratedAt:     nowFunc(),
	}

	if inputs.SalePrice.IsPositive() {
		federal, err := a.Brackets.Lookup(domain.JurisdictionFederal, inputs.TaxYear)
		if err != nil {
			return nil, fmt.Errorf("federal brackets: %w", err)
		}
		provincial, err := a.Brackets.Lookup(inputs.Province, inputs.TaxYear)
		if err != nil {
			return nil, fmt.Errorf("provincial brackets: %w", err)
		}
		outcome, err := a.CapitalGains.Compute(inputs, federal, provincial)
		if err != nil {
			return nil, fmt.Errorf("capital gains: %w", err)
		}
		result.CapitalGains = outcome
	} else {
		a.Logger.Debugf("no sale price given; skipping capital gains")
	}

	result.LoanAmount = inputs.LoanAmount()
	if result.LoanAmount.IsPositive() {
		payment, err := MonthlyPayment(result.LoanAmount, inputs.InterestRatePct, inputs.TermYears)
		if err != nil {
			return nil, fmt.Errorf("mortgage: %w", err)
		}
		interest, err := TotalInterest(result.LoanAmount, inputs.InterestRatePct, inputs.TermYears)
		if err != nil {
			return nil, fmt.Errorf("mortgage: %w", err)
		}
		result.MonthlyMortgage = payment
		result.TotalInterest = interest
	}

	revenue := monthlyRevenue(inputs)
	vacancy := dec.PercentToFraction(inputs.VacancyRatePct)
	costs := domain.MonthlyCosts{
		MortgagePayment:    result.MonthlyMortgage,
		PropertyTax:        inputs.PropertyTaxAnnual,
		Insurance:          inputs.InsuranceAnnual,
		Maintenance:        inputs.MaintenanceMonthly,
		PropertyManagement: revenue.Mul(dec.PercentToFraction(inputs.ManagementFeePct)),
		CondoFees:          inputs.HOAMonthly,
	}
	result.Expenses = Allocate(costs.NamedAmounts())
	result.MonthlyRevenue = revenue
	result.MonthlyExpenses = result.Expenses.Total

	projection, err := ProjectMonthly(revenue, result.MonthlyExpenses, inputs.ProjectionMonths, vacancy)
	if err != nil {
		return nil, fmt.Errorf("cash flow projection: %w", err)
	}
	if inputs.PurchaseDate != nil {
		for i := range projection {
			projection[i].Label = dateutil.MonthLabelFrom(*inputs.PurchaseDate, i)
		}
	}
	result.Projection = projection
	result.MonthlyNetCashFlow = projection[0].NetCashFlow

	collected := projection[0].Revenue
	operating := result.MonthlyExpenses.Sub(result.MonthlyMortgage)
	if result.CapRate, err = CapRate(NetOperatingIncome(collected, operating), inputs.PurchasePrice); err != nil {
		return nil, fmt.Errorf("cap rate: %w", err)
	}
	invested := inputs.PurchasePrice.Sub(result.LoanAmount).Add(inputs.PurchasePrice.Mul(ClosingCostsRate))
	annualCashFlow := dec.NewMoneyFromDecimal(result.MonthlyNetCashFlow).Annual().Decimal
	if result.CashOnCashReturn, err = CashOnCashReturn(annualCashFlow, invested); err != nil {
		return nil, fmt.Errorf("cash-on-cash return: %w", err)
	}

	if result.Financing, err = CompareFinancing(inputs.PurchasePrice, collected, operating, inputs.FinancingScenarios); err != nil {
		return nil, err
	}
	result.Rental = CompareRentalStrategies(inputs, result.MonthlyMortgage)

	a.Logger.Infof("analysis complete: revenue=%s expenses=%s net=%s cap_rate=%s%%",
		revenue.StringFixed(2), result.MonthlyExpenses.StringFixed(2),
		result.MonthlyNetCashFlow.StringFixed(2), result.CapRate.StringFixed(2))
	return result, nil
}

func monthlyRevenue(inputs domain.FinancialInputs) decimal.Decimal {
	if inputs.Strategy == domain.StrategyShortTerm {
		return STRMonthlyRevenue(inputs.NightlyRate, inputs.OccupancyRatePct)
	}
	return inputs.MonthlyRent
}
