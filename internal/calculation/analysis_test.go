package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func analysisInputs() domain.FinancialInputs {
	in := saleInputs()
	in.PropertyAddress = "123 King St W, Toronto"
	in.Strategy = domain.StrategyLongTerm
	in.MonthlyRent = d("3200")
	in.NightlyRate = d("180")
	in.OccupancyRatePct = d("70")
	in.ManagementFeePct = decimal.Zero
	in.DownPaymentPct = d("20")
	in.InterestRatePct = d("5")
	in.TermYears = 25
	in.PropertyTaxAnnual = d("6000")
	in.InsuranceAnnual = d("1800")
	in.MaintenanceMonthly = d("200")
	in.ProjectionMonths = 12
	return in
}

func TestAnalyzer_Analyze(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	SetNowFunc(func() time.Time { return fixed })
	defer SetNowFunc(nil)

	analyzer := NewAnalyzer(testBrackets())
	result, err := analyzer.Analyze(analysisInputs())
	require.NoError(t, err)

	assert.Equal(t, fixed, result.GeneratedAt)
	assert.Equal(t, "ON", result.Province)
	assert.True(t, result.CapitalGains.AfterTaxProfit.Equal(d("87289.3844")))

	assert.True(t, result.LoanAmount.Equal(d("400000")))
	assertDecimalNear(t, d("2338.36"), result.MonthlyMortgage, d("0.005"))
	assert.True(t, result.TotalInterest.IsPositive())

	assert.True(t, result.MonthlyRevenue.Equal(d("3200")))
	require.Len(t, result.Expenses.Items, 4, "zero management and condo fees are dropped")
	assert.Equal(t, domain.ExpenseMortgage, result.Expenses.Items[0].Name)
	assertDecimalNear(t, d("3188.36"), result.MonthlyExpenses, d("0.005"))
	assert.True(t, result.MonthlyNetCashFlow.Equal(result.MonthlyRevenue.Sub(result.MonthlyExpenses)))

	require.Len(t, result.Projection, 12)
	assert.True(t, result.Projection[11].Cumulative.Equal(result.MonthlyNetCashFlow.Mul(decimal.NewFromInt(12))))

	// NOI = (3200 - 850) * 12 = 28200 on 500000
	assertDecimalNear(t, d("5.64"), result.CapRate, d("0.0001"))
	assert.Len(t, result.Financing.Outcomes, 3)
	assert.Equal(t, domain.StrategyShortTerm, result.Rental.Recommendation)
}

func TestAnalyzer_ShortTermStrategyDrivesRevenue(t *testing.T) {
	in := analysisInputs()
	in.Strategy = domain.StrategyShortTerm
	in.ManagementFeePct = d("20")
	in.VacancyRatePct = d("10")

	result, err := NewAnalyzer(testBrackets()).Analyze(in)
	require.NoError(t, err)

	// 180 * 30.4 * 0.70
	assert.True(t, result.MonthlyRevenue.Equal(d("3830.4")))
	found := false
	for _, item := range result.Expenses.Items {
		if item.Name == domain.ExpenseManagement {
			found = true
			assert.True(t, item.Amount.Equal(d("766.08")))
		}
	}
	assert.True(t, found, "management fee should appear in the breakdown")
	assert.True(t, result.Projection[0].Revenue.Equal(d("3447.36")))
}

func TestAnalyzer_ProjectionLabels(t *testing.T) {
	result, err := NewAnalyzer(testBrackets()).Analyze(analysisInputs())
	require.NoError(t, err)
	assert.Equal(t, "Jan", result.Projection[0].Label)
	assert.Equal(t, "Dec", result.Projection[11].Label)

	in := analysisInputs()
	purchased := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	in.PurchaseDate = &purchased
	result, err = NewAnalyzer(testBrackets()).Analyze(in)
	require.NoError(t, err)
	assert.Equal(t, "Nov 2024", result.Projection[0].Label)
	assert.Equal(t, "Jan 2025", result.Projection[2].Label)
	assert.Equal(t, "Oct 2025", result.Projection[11].Label)
}

func TestAnalyzer_NoSaleSkipsCapitalGains(t *testing.T) {
	in := analysisInputs()
	in.SalePrice = decimal.Zero
	in.Province = "NS"

	result, err := NewAnalyzer(testBrackets()).Analyze(in)
	require.NoError(t, err)
	assert.True(t, result.CapitalGains.TotalTax.IsZero())
}

func TestAnalyzer_AllCashPurchase(t *testing.T) {
	in := analysisInputs()
	in.DownPaymentPct = d("100")

	result, err := NewAnalyzer(testBrackets()).Analyze(in)
	require.NoError(t, err)
	assert.True(t, result.LoanAmount.IsZero())
	assert.True(t, result.MonthlyMortgage.IsZero())
	assert.NotEqual(t, domain.ExpenseMortgage, result.Expenses.Items[0].Name)
}

func TestAnalyzer_Errors(t *testing.T) {
	in := analysisInputs()
	in.Province = "NS"
	_, err := NewAnalyzer(testBrackets()).Analyze(in)
	var unknown *domain.ErrUnknownTable
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "NS", unknown.Jurisdiction)

	in = analysisInputs()
	in.ProjectionMonths = 0
	_, err = NewAnalyzer(testBrackets()).Analyze(in)
	var degenerate *domain.ErrDegenerateInput
	require.True(t, errors.As(err, &degenerate))
	assert.Equal(t, "months", degenerate.Field)
}

func TestAnalyzer_SetLogger(t *testing.T) {
	a := NewAnalyzer(testBrackets())
	a.SetLogger(nil)
	assert.IsType(t, NopLogger{}, a.Logger)
	assert.IsType(t, NopLogger{}, a.CapitalGains.Logger)
}

func TestAnalyzer_LogsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := NewAnalyzer(testBrackets())
	a.SetLogger(zap.New(core).Sugar())

	_, err := a.Analyze(analysisInputs())
	require.NoError(t, err)

	complete := logs.FilterMessageSnippet("analysis complete").All()
	require.Len(t, complete, 1)
	assert.Equal(t, zapcore.InfoLevel, complete[0].Level)

	in := analysisInputs()
	in.SalePrice = decimal.Zero
	_, err = a.Analyze(in)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessageSnippet("skipping capital gains").Len())
}
