package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/calculation"
	"github.com/starterpackapp/investment-calculator/internal/config"
	"github.com/starterpackapp/investment-calculator/internal/domain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_target_price <inputs-file>")
		return
	}
	inputs, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	registry, err := config.DefaultRegistry()
	if err != nil {
		panic(err)
	}
	federal, err := registry.Lookup(domain.JurisdictionFederal, inputs.TaxYear)
	if err != nil {
		panic(err)
	}
	provincial, err := registry.Lookup(inputs.Province, inputs.TaxYear)
	if err != nil {
		panic(err)
	}

	engine := calculation.NewCapitalGainsEngine()
	fmt.Printf("purchase=%s years=%s province=%s\n", inputs.PurchasePrice.StringFixed(0), calculation.HoldingPeriod(*inputs).StringFixed(4), inputs.Province)
	for _, target := range []int64{0, 2, 4, 6, 8, 10} {
		price, outcome, err := engine.TargetSalePrice(*inputs, federal, provincial, decimal.NewFromInt(target))
		if err != nil {
			fmt.Printf("target %2d%%: %v\n", target, err)
			continue
		}
		fmt.Printf("target %2d%%: price=%s tax=%s after_tax=%s annualized=%s\n",
			target, price.StringFixed(0), outcome.TotalTax.StringFixed(2),
			outcome.AfterTaxProfit.StringFixed(2), outcome.AnnualizedReturn.StringFixed(4))
	}
}
