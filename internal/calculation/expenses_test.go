package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	breakdown := Allocate([]domain.NamedAmount{
		{Name: "Mortgage", Amount: d("2000")},
		{Name: "Tax", Amount: d("500")},
		{Name: "Insurance", Amount: d("0")},
	})

	require.Len(t, breakdown.Items, 2)
	assert.True(t, breakdown.Total.Equal(d("2500")))

	assert.Equal(t, "Mortgage", breakdown.Items[0].Name)
	assert.True(t, breakdown.Items[0].Percentage.Equal(d("80")))
	assert.Equal(t, "Tax", breakdown.Items[1].Name)
	assert.True(t, breakdown.Items[1].Percentage.Equal(d("20")))
}

func TestAllocate_DropsNegativeAmounts(t *testing.T) {
	breakdown := Allocate([]domain.NamedAmount{
		{Name: "Refund", Amount: d("-100")},
		{Name: "Maintenance", Amount: d("150")},
	})
	require.Len(t, breakdown.Items, 1)
	assert.True(t, breakdown.Items[0].Percentage.Equal(d("100")))
	assert.True(t, breakdown.Total.Equal(d("150")))
}

func TestAllocate_EmptyAndZeroTotal(t *testing.T) {
	for _, items := range [][]domain.NamedAmount{
		nil,
		{{Name: "Insurance", Amount: decimal.Zero}, {Name: "HOA", Amount: decimal.Zero}},
	} {
		breakdown := Allocate(items)
		assert.Empty(t, breakdown.Items)
		assert.NotNil(t, breakdown.Items)
		assert.True(t, breakdown.Total.IsZero())
	}
}

func TestAllocate_PercentagesSumToHundred(t *testing.T) {
	breakdown := Allocate([]domain.NamedAmount{
		{Name: "A", Amount: d("1")},
		{Name: "B", Amount: d("1")},
		{Name: "C", Amount: d("1")},
		{Name: "D", Amount: d("7.77")},
		{Name: "E", Amount: d("1234.5678")},
	})

	sum := decimal.Zero
	for _, item := range breakdown.Items {
		sum = sum.Add(item.Percentage)
	}
	assertDecimalNear(t, d("100"), sum, d("0.000000001"))
}

func TestAllocateMap(t *testing.T) {
	breakdown := AllocateMap(map[string]decimal.Decimal{
		"Insurance":   d("100"),
		"Mortgage":    d("2500"),
		"Maintenance": d("100"),
		"HOA/Condo":   decimal.Zero,
	})

	names := make([]string, 0, len(breakdown.Items))
	for _, item := range breakdown.Items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Mortgage", "Insurance", "Maintenance"}, names)
	assert.True(t, breakdown.Total.Equal(d("2700")))
}

func TestMonthlyCostsAllocation(t *testing.T) {
	costs := domain.MonthlyCosts{
		MortgagePayment:    d("2528.27"),
		PropertyTax:        d("6000"),
		Insurance:          d("1800"),
		Maintenance:        d("200"),
		PropertyManagement: decimal.Zero,
		CondoFees:          d("350"),
	}

	breakdown := Allocate(costs.NamedAmounts())
	require.Len(t, breakdown.Items, 5)
	assert.Equal(t, domain.ExpensePropertyTax, breakdown.Items[1].Name)
	assert.True(t, breakdown.Items[1].Amount.Equal(d("500")))
	assert.True(t, breakdown.Items[2].Amount.Equal(d("150")))
	assert.Equal(t, domain.ExpenseHOA, breakdown.Items[4].Name)
	assert.True(t, breakdown.Total.Equal(d("3728.27")))
}
