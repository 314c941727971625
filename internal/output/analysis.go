package output

import (
	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/calculation"
	"github.com/starterpackapp/investment-calculator/internal/domain"
)

// Recommendation condenses a CalculationResult into the headline advice shown
// at the end of console reports.
type Recommendation struct {
	Strategy           domain.RentalStrategy
	StrategyAdvantage  decimal.Decimal // annual, in favour of Strategy
	Financing          string
	PositiveCashFlow   bool
	BreakEvenMonth     int
	OccupancyRisk      string
	MonthlyNetCashFlow decimal.Decimal
}

// AnalyzeResult picks the rental strategy and financing scenario to highlight.
// A property that loses money each month is steered towards the scenario with
// the best monthly cash flow; otherwise towards the best cash-on-cash return.
func AnalyzeResult(results *domain.CalculationResult) Recommendation {
	rec := Recommendation{
		Strategy:           results.Rental.Recommendation,
		StrategyAdvantage:  results.Rental.AnnualAdvantage.Abs(),
		PositiveCashFlow:   !results.MonthlyNetCashFlow.IsNegative(),
		BreakEvenMonth:     calculation.BreakEvenMonth(results.Projection),
		OccupancyRisk:      results.Rental.Risk,
		MonthlyNetCashFlow: results.MonthlyNetCashFlow,
	}
	if rec.PositiveCashFlow {
		rec.Financing = results.Financing.BestReturn
	} else {
		rec.Financing = results.Financing.BestCashFlow
	}
	return rec
}

// StrategyName returns the display name of a rental strategy.
func StrategyName(s domain.RentalStrategy) string {
	switch s {
	case domain.StrategyShortTerm:
		return "Short-term rental"
	case domain.StrategyLongTerm:
		return "Long-term rental"
	default:
		return string(s)
	}
}
