package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/calculation"
	"github.com/starterpackapp/investment-calculator/internal/config"
	"github.com/starterpackapp/investment-calculator/internal/domain"
)

// Prints combined federal + provincial tax at a ladder of incomes for every
// built-in province, to eyeball bracket edits.
func main() {
	registry, err := config.DefaultRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		if err := registry.LoadFile(os.Args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	incomes := []int64{25000, 50000, 80000, 100000, 150000, 250000, 500000}
	for _, table := range registry.Tables() {
		if table.Jurisdiction == domain.JurisdictionFederal {
			continue
		}
		federal, err := registry.Lookup(domain.JurisdictionFederal, table.Year)
		if err != nil {
			fmt.Printf("%s: %v\n", table.Key(), err)
			continue
		}
		calc := calculation.NewCombinedTaxCalculator(federal, table)
		fmt.Printf("%s (%s)\n", table.Key(), table.Name)
		for _, inc := range incomes {
			income := decimal.NewFromInt(inc)
			fed, prov, total := calc.CalculateTax(income)
			fmt.Printf("  %9d  fed=%10s prov=%10s total=%10s marginal=%s\n",
				inc, fed.StringFixed(2), prov.StringFixed(2), total.StringFixed(2), calc.MarginalRate(income).StringFixed(4))
		}
	}
}
