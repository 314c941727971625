package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
)

// TargetSalePrice finds the lowest sale price (within one dollar) whose
// after-tax annualized return reaches targetReturnPct. Tax on the gain is
// progressive, so the price is found by bisection rather than solved directly.
func (cge *CapitalGainsEngine) TargetSalePrice(inputs domain.FinancialInputs, federal, provincial domain.BracketTable, targetReturnPct decimal.Decimal) (decimal.Decimal, *domain.CapitalGainsOutcome, error) {
	returnAt := func(price decimal.Decimal) (domain.CapitalGainsOutcome, error) {
		trial := inputs
		trial.SalePrice = price
		return cge.Compute(trial, federal, provincial)
	}

	// Grow the upper bound until it brackets the target
	low := decimal.Zero
	high := inputs.PurchasePrice.Mul(decimal.NewFromInt(2))
	maxExpansions := 40
	for i := 0; ; i++ {
		outcome, err := returnAt(high)
		if err != nil {
			return decimal.Zero, nil, err
		}
		if outcome.AnnualizedReturn.GreaterThanOrEqual(targetReturnPct) {
			break
		}
		if i == maxExpansions {
			return decimal.Zero, nil, fmt.Errorf("target return %s%% is not reachable", targetReturnPct.StringFixed(2))
		}
		low = high
		high = high.Mul(decimal.NewFromInt(2))
	}

	tolerance := decimal.NewFromInt(1)
	maxIterations := 100
	two := decimal.NewFromInt(2)
	for i := 0; i < maxIterations && high.Sub(low).GreaterThan(tolerance); i++ {
		mid := low.Add(high).Div(two)
		outcome, err := returnAt(mid)
		if err != nil {
			return decimal.Zero, nil, err
		}
		if outcome.AnnualizedReturn.GreaterThanOrEqual(targetReturnPct) {
			high = mid
		} else {
			low = mid
		}
	}

	price := high.Ceil()
	outcome, err := returnAt(price)
	if err != nil {
		return decimal.Zero, nil, err
	}
	cge.Logger.Debugf("target sale price for %s%% annualized: %s", targetReturnPct.StringFixed(2), price.StringFixed(0))
	return price, &outcome, nil
}
