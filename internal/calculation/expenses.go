package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// Allocate turns named monthly amounts into a breakdown where each item carries
// its share of the total as a 0-100 percentage. Zero and negative amounts are
// dropped; input order is preserved.
func Allocate(items []domain.NamedAmount) domain.ExpenseBreakdown {
	kept := make([]domain.NamedAmount, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		if !item.Amount.IsPositive() {
			continue
		}
		kept = append(kept, item)
		total = total.Add(item.Amount)
	}

	breakdown := domain.ExpenseBreakdown{Items: []domain.ExpenseItem{}, Total: total}
	if total.IsZero() {
		return breakdown
	}
	for _, item := range kept {
		breakdown.Items = append(breakdown.Items, domain.ExpenseItem{
			Name:       item.Name,
			Amount:     item.Amount,
			Percentage: dec.FractionToPercent(item.Amount.Div(total)),
		})
	}
	return breakdown
}

// AllocateMap allocates an unordered set of amounts, ordering the result by
// amount descending and then by name.
func AllocateMap(amounts map[string]decimal.Decimal) domain.ExpenseBreakdown {
	items := make([]domain.NamedAmount, 0, len(amounts))
	for name, amount := range amounts {
		items = append(items, domain.NamedAmount{Name: name, Amount: amount})
	}
	sort.Slice(items, func(i, j int) bool {
		if c := items[i].Amount.Cmp(items[j].Amount); c != 0 {
			return c > 0
		}
		return items[i].Name < items[j].Name
	})
	return Allocate(items)
}
