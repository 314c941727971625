package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// ClosingCostsRate is the share of the purchase price paid as closing costs.
var ClosingCostsRate = decimal.NewFromFloat(0.02)

// DefaultFinancingScenarios returns the three standard down payment / rate mixes.
func DefaultFinancingScenarios() []domain.FinancingScenario {
	return []domain.FinancingScenario{
		{Name: "Conservative", DownPaymentPct: decimal.NewFromInt(20), RatePct: decimal.NewFromFloat(5.5), AmortizationYears: 25},
		{Name: "Balanced", DownPaymentPct: decimal.NewFromInt(15), RatePct: decimal.NewFromFloat(5.75), AmortizationYears: 25},
		{Name: "Aggressive", DownPaymentPct: decimal.NewFromInt(10), RatePct: decimal.NewFromFloat(6.0), AmortizationYears: 30},
	}
}

// EvaluateFinancing computes the cash and return profile of a single scenario.
// monthlyExpenses are operating costs excluding the mortgage.
func EvaluateFinancing(purchasePrice, monthlyRevenue, monthlyExpenses decimal.Decimal, scenario domain.FinancingScenario) (domain.FinancingOutcome, error) {
	if scenario.DownPaymentPct.IsNegative() || scenario.DownPaymentPct.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return domain.FinancingOutcome{}, &domain.ErrDegenerateInput{Field: "down_payment_pct", Reason: "must be at least 0 and below 100"}
	}
	downPayment := purchasePrice.Mul(dec.PercentToFraction(scenario.DownPaymentPct))
	loanAmount := purchasePrice.Sub(downPayment)
	cashToClose := downPayment.Add(purchasePrice.Mul(ClosingCostsRate))

	payment, err := MonthlyPayment(loanAmount, scenario.RatePct, scenario.AmortizationYears)
	if err != nil {
		return domain.FinancingOutcome{}, err
	}
	monthlyCashFlow := monthlyRevenue.Sub(monthlyExpenses).Sub(payment)
	annualCashFlow := dec.NewMoneyFromDecimal(monthlyCashFlow).Annual().Decimal

	coc, err := CashOnCashReturn(annualCashFlow, cashToClose)
	if err != nil {
		return domain.FinancingOutcome{}, err
	}
	interest, err := TotalInterest(loanAmount, scenario.RatePct, scenario.AmortizationYears)
	if err != nil {
		return domain.FinancingOutcome{}, err
	}

	return domain.FinancingOutcome{
		Scenario:         scenario,
		DownPayment:      downPayment,
		LoanAmount:       loanAmount,
		CashToClose:      cashToClose,
		MonthlyPayment:   payment,
		MonthlyCashFlow:  monthlyCashFlow,
		AnnualCashFlow:   annualCashFlow,
		CashOnCashReturn: coc,
		TotalInterest:    interest,
	}, nil
}

// CompareFinancing evaluates every scenario and names the best by monthly cash
// flow, by cash-on-cash return and by lowest cash to close. Ties keep the
// earlier scenario.
func CompareFinancing(purchasePrice, monthlyRevenue, monthlyExpenses decimal.Decimal, scenarios []domain.FinancingScenario) (domain.FinancingComparison, error) {
	if !purchasePrice.IsPositive() {
		return domain.FinancingComparison{}, &domain.ErrDegenerateInput{Field: "purchase_price", Reason: "must be greater than zero"}
	}
	if len(scenarios) == 0 {
		scenarios = DefaultFinancingScenarios()
	}

	comparison := domain.FinancingComparison{Outcomes: make([]domain.FinancingOutcome, 0, len(scenarios))}
	var bestFlow, bestReturn, lowestCash *domain.FinancingOutcome
	for _, scenario := range scenarios {
		outcome, err := EvaluateFinancing(purchasePrice, monthlyRevenue, monthlyExpenses, scenario)
		if err != nil {
			return domain.FinancingComparison{}, fmt.Errorf("financing scenario %q: %w", scenario.Name, err)
		}
		comparison.Outcomes = append(comparison.Outcomes, outcome)
	}
	for i := range comparison.Outcomes {
		o := &comparison.Outcomes[i]
		if bestFlow == nil || o.MonthlyCashFlow.GreaterThan(bestFlow.MonthlyCashFlow) {
			bestFlow = o
		}
		if bestReturn == nil || o.CashOnCashReturn.GreaterThan(bestReturn.CashOnCashReturn) {
			bestReturn = o
		}
		if lowestCash == nil || o.CashToClose.LessThan(lowestCash.CashToClose) {
			lowestCash = o
		}
	}
	comparison.BestCashFlow = bestFlow.Scenario.Name
	comparison.BestReturn = bestReturn.Scenario.Name
	comparison.LowestCashToClose = lowestCash.Scenario.Name
	return comparison, nil
}
