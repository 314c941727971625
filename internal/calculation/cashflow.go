package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/starterpackapp/investment-calculator/pkg/dateutil"
)

// ProjectMonthly projects constant monthly revenue and expenses forward for the
// given number of months. Collected revenue is reduced by vacancyRate (0-1) every
// month; the running total accumulates net cash flow.
func ProjectMonthly(revenue, expenses decimal.Decimal, months int, vacancyRate decimal.Decimal) ([]domain.PeriodRecord, error) {
	if months <= 0 {
		return nil, &domain.ErrDegenerateInput{Field: "months", Reason: "must be greater than zero"}
	}
	if vacancyRate.IsNegative() || vacancyRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, &domain.ErrDegenerateInput{Field: "vacancy_rate", Reason: "must be between 0 and 1"}
	}

	collected := revenue.Mul(decimal.NewFromInt(1).Sub(vacancyRate))
	net := collected.Sub(expenses)

	records := make([]domain.PeriodRecord, months)
	cumulative := decimal.Zero
	for i := 0; i < months; i++ {
		cumulative = cumulative.Add(net)
		records[i] = domain.PeriodRecord{
			Month:       i + 1,
			Label:       dateutil.MonthLabel(i),
			Revenue:     collected,
			Expenses:    expenses,
			NetCashFlow: net,
			Cumulative:  cumulative,
		}
	}
	return records, nil
}

// BreakEvenMonth returns the first 1-based month whose cumulative cash flow is
// non-negative, or 0 if the projection never breaks even.
func BreakEvenMonth(records []domain.PeriodRecord) int {
	for _, r := range records {
		if !r.Cumulative.IsNegative() {
			return r.Month
		}
	}
	return 0
}
