package output

import (
	"fmt"

	"github.com/starterpackapp/investment-calculator/internal/calculation"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Capital gains inclusion rate: 50% of the gain is taxable",
	"Gain is taxed at the marginal rate on top of annual employment income",
	"Short-term rental month: 30.4 nights",
	"Short-term rental base operating costs: $500/month plus management fee",
	"Long-term rental maintenance reserve: $200/month",
	"Closing costs: 2% of purchase price",
	"Vacancy reduces collected revenue uniformly each month",
}

// GenerateAssumptions creates the assumptions list from the values actually used for results.
func GenerateAssumptions(results *domain.CalculationResult) []string {
	return []string{
		fmt.Sprintf("Tax brackets: %d federal and %s provincial rates", results.TaxYear, results.Province),
		fmt.Sprintf("Capital gains inclusion rate: %s of the gain is taxable", dec.FormatPercent(dec.FractionToPercent(calculation.InclusionRate), 0)),
		"Gain is taxed at the marginal rate on top of annual employment income",
		fmt.Sprintf("Short-term rental month: %s nights", calculation.DaysPerMonth.String()),
		fmt.Sprintf("Short-term rental base operating costs: %s/month plus management fee", FormatWholeCurrency(calculation.STRBaseExpenses)),
		fmt.Sprintf("Long-term rental maintenance reserve: %s/month", FormatWholeCurrency(calculation.LTRMaintenance)),
		fmt.Sprintf("Closing costs: %s of purchase price", dec.FormatPercent(dec.FractionToPercent(calculation.ClosingCostsRate), 0)),
		"Vacancy reduces collected revenue uniformly each month",
	}
}
