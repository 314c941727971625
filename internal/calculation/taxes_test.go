package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeTax(t *testing.T) {
	tests := []struct {
		name        string
		income      decimal.Decimal
		table       domain.BracketTable
		expectedTax decimal.Decimal
		description string
	}{
		{
			name:        "Zero income",
			income:      decimal.Zero,
			table:       federal2024(),
			expectedTax: decimal.Zero,
			description: "No income, no tax",
		},
		{
			name:        "Negative income",
			income:      decimal.NewFromInt(-5000),
			table:       federal2024(),
			expectedTax: decimal.Zero,
			description: "Losses never produce negative tax",
		},
		{
			name:        "First bracket only",
			income:      decimal.NewFromInt(40000),
			table:       federal2024(),
			expectedTax: d("6000"),
			description: "40000 * 0.15",
		},
		{
			name:        "Exactly at first boundary",
			income:      decimal.NewFromInt(55867),
			table:       federal2024(),
			expectedTax: d("8380.05"),
			description: "55867 * 0.15",
		},
		{
			name:        "Federal two brackets",
			income:      decimal.NewFromInt(80000),
			table:       federal2024(),
			expectedTax: d("13327.315"),
			description: "8380.05 + 24133 * 0.205",
		},
		{
			name:        "Ontario two brackets",
			income:      decimal.NewFromInt(80000),
			table:       ontario2024(),
			expectedTax: d("5210.714"),
			description: "2598.023 + 28554 * 0.0915",
		},
		{
			name:        "Federal into top bracket",
			income:      decimal.NewFromInt(300000),
			table:       federal2024(),
			expectedTax: d("74715.77"),
			description: "All five brackets with 53248 in the unbounded band",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTax(tt.income, tt.table)
			assert.True(t, got.Equal(tt.expectedTax), "%s: expected %s, got %s", tt.description, tt.expectedTax, got)
		})
	}
}

func TestComputeTax_NonNegativeAndMonotonic(t *testing.T) {
	tables := []domain.BracketTable{federal2024(), ontario2024()}
	for _, table := range tables {
		prev := decimal.Zero
		for income := int64(-10000); income <= 400000; income += 2500 {
			tax := ComputeTax(decimal.NewFromInt(income), table)
			assert.False(t, tax.IsNegative(), "%s tax at %d is negative", table.Key(), income)
			assert.True(t, tax.GreaterThanOrEqual(prev), "%s tax decreased at %d", table.Key(), income)
			prev = tax
		}
	}
}

func TestComputeTax_BoundaryContinuity(t *testing.T) {
	epsilon := d("0.01")
	for _, table := range []domain.BracketTable{federal2024(), ontario2024()} {
		for _, b := range table.Brackets {
			if b.Max == nil {
				continue
			}
			below := ComputeTax(b.Max.Sub(epsilon), table)
			at := ComputeTax(*b.Max, table)
			above := ComputeTax(b.Max.Add(epsilon), table)

			// A cent either side of a boundary moves tax by less than a cent
			assert.True(t, at.Sub(below).LessThan(epsilon), "%s jump below %s", table.Key(), b.Max)
			assert.True(t, above.Sub(at).LessThan(epsilon), "%s jump above %s", table.Key(), b.Max)
		}
	}
}

func TestMarginalAndEffectiveRate(t *testing.T) {
	fed := federal2024()

	assert.True(t, MarginalRate(decimal.NewFromInt(40000), fed).Equal(d("0.15")))
	assert.True(t, MarginalRate(decimal.NewFromInt(55867), fed).Equal(d("0.205")), "boundary belongs to the next bracket")
	assert.True(t, MarginalRate(decimal.NewFromInt(1000000), fed).Equal(d("0.33")))
	assert.True(t, MarginalRate(decimal.NewFromInt(1), domain.BracketTable{}).IsZero())

	assert.True(t, EffectiveRate(decimal.Zero, fed).IsZero())
	assert.True(t, EffectiveRate(decimal.NewFromInt(40000), fed).Equal(d("0.15")))
	eff := EffectiveRate(decimal.NewFromInt(80000), fed)
	assertDecimalNear(t, d("0.1665914375"), eff, d("0.0000000001"))
}

func TestIncrementalTax(t *testing.T) {
	fed := federal2024()
	base := decimal.NewFromInt(80000)

	assert.True(t, IncrementalTax(base, decimal.NewFromInt(52250), fed).Equal(d("11839.685")))
	assert.True(t, IncrementalTax(base, decimal.Zero, fed).IsZero())
	assert.True(t, IncrementalTax(base, decimal.NewFromInt(-20000), fed).Equal(d("-4100")))
	assert.True(t, IncrementalTax(base, decimal.NewFromInt(-100000), fed).Equal(d("-13327.315")), "tax cannot drop below zero")
}

func TestCombinedTaxCalculator(t *testing.T) {
	calc := NewCombinedTaxCalculator(federal2024(), ontario2024())
	federal, provincial, total := calc.CalculateTax(decimal.NewFromInt(80000))

	assert.True(t, federal.Equal(d("13327.315")))
	assert.True(t, provincial.Equal(d("5210.714")))
	assert.True(t, total.Equal(d("18538.029")))
	assert.True(t, calc.MarginalRate(decimal.NewFromInt(80000)).Equal(d("0.2965")))
}
