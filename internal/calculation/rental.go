package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// Rental comparison constants.
var (
	// DaysPerMonth is the average number of nights booked in a month.
	DaysPerMonth = decimal.NewFromFloat(30.4)
	// STRBaseExpenses covers monthly utilities, supplies and cleaning of a short-term rental.
	STRBaseExpenses = decimal.NewFromInt(500)
	// LTRMaintenance is the monthly maintenance reserve for a long-term rental.
	LTRMaintenance = decimal.NewFromInt(200)
)

// STRMonthlyRevenue estimates short-term rental revenue from a nightly rate and
// an occupancy percentage (0-100).
func STRMonthlyRevenue(nightlyRate, occupancyPct decimal.Decimal) decimal.Decimal {
	return nightlyRate.Mul(DaysPerMonth).Mul(dec.PercentToFraction(occupancyPct))
}

// CompareRentalStrategies contrasts short-term and long-term rental cash flow for
// the same property and mortgage payment.
func CompareRentalStrategies(inputs domain.FinancialInputs, mortgagePayment decimal.Decimal) domain.RentalComparison {
	managementFee := dec.PercentToFraction(inputs.ManagementFeePct)

	strRevenue := STRMonthlyRevenue(inputs.NightlyRate, inputs.OccupancyRatePct)
	strExpenses := strRevenue.Mul(managementFee).Add(STRBaseExpenses)
	strNet := strRevenue.Sub(strExpenses).Sub(mortgagePayment)

	ltrRevenue := inputs.MonthlyRent
	ltrNet := ltrRevenue.Sub(mortgagePayment).Sub(LTRMaintenance)

	advantage := strNet.Sub(ltrNet)
	recommendation := domain.StrategyLongTerm
	if advantage.IsPositive() {
		recommendation = domain.StrategyShortTerm
	}

	breakEven := decimal.Zero
	netPerNight := inputs.NightlyRate.Mul(decimal.NewFromInt(1).Sub(managementFee))
	if netPerNight.IsPositive() {
		needed := ltrNet.Add(STRBaseExpenses).Add(mortgagePayment)
		breakEven = dec.FractionToPercent(needed.Div(netPerNight.Mul(DaysPerMonth)))
		if breakEven.IsNegative() {
			breakEven = decimal.Zero
		}
	}

	return domain.RentalComparison{
		STRMonthlyRevenue:    strRevenue,
		STROperatingExpenses: strExpenses,
		STRNetCashFlow:       strNet,
		LTRMonthlyRevenue:    ltrRevenue,
		LTRNetCashFlow:       ltrNet,
		MonthlyAdvantage:     advantage,
		AnnualAdvantage:      dec.NewMoneyFromDecimal(advantage).Annual().Decimal,
		BreakEvenOccupancy:   breakEven,
		Recommendation:       recommendation,
		Risk:                 AssessOccupancyRisk(inputs.OccupancyRatePct, breakEven),
	}
}

// AssessOccupancyRisk grades how far projected occupancy sits above break-even.
// Both arguments are percentages (0-100).
func AssessOccupancyRisk(projectedPct, breakEvenPct decimal.Decimal) string {
	cushion := projectedPct.Sub(breakEvenPct)
	switch {
	case cushion.GreaterThan(decimal.NewFromInt(20)):
		return "Low Risk - Strong occupancy cushion"
	case cushion.GreaterThan(decimal.NewFromInt(10)):
		return "Moderate Risk - Reasonable occupancy cushion"
	case cushion.IsPositive():
		return "Higher Risk - Minimal occupancy cushion"
	default:
		return "High Risk - Projected occupancy below break-even"
	}
}
