package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/starterpackapp/investment-calculator/internal/calculation"
	"github.com/starterpackapp/investment-calculator/internal/config"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/starterpackapp/investment-calculator/internal/output"
	"github.com/starterpackapp/investment-calculator/pkg/dateutil"
)

func (a *app) newCapitalGainsCmd() *cobra.Command {
	var (
		inputsFile   string
		targetReturn decimal.Decimal
		clampLosses  bool
		in           domain.FinancialInputs
	)
	cmd := &cobra.Command{
		Use:     "capital-gains",
		Aliases: []string{"cg"},
		Short:   "Tax and after-tax return on the sale of a property",
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs := &in
			if inputsFile != "" {
				loaded, err := a.loadInputs(inputsFile)
				if err != nil {
					return err
				}
				inputs = loaded
			} else {
				parser := config.NewInputParser()
				parser.ApplyDefaults(inputs)
				if err := parser.ValidateInputs(inputs); err != nil {
					return err
				}
			}

			federal, provincial, err := a.lookupTables(inputs.Province, inputs.TaxYear)
			if err != nil {
				return err
			}
			engine := calculation.NewCapitalGainsEngine()
			engine.SetLogger(a.logger.Sugar())
			engine.ClampLosses = clampLosses

			outcome, err := engine.Compute(*inputs, federal, provincial)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			writeCapitalGains(w, inputs, outcome)

			if cmd.Flags().Changed("target-return") {
				price, at, err := engine.TargetSalePrice(*inputs, federal, provincial, targetReturn)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, output.RenderSection("TARGET SALE PRICE", [][2]string{
					{"Target annualized return", output.FormatPercentage(targetReturn)},
					{"Required sale price", output.FormatWholeCurrency(price)},
					{"After-tax profit at that price", output.FormatCurrency(at.AfterTaxProfit)},
					{"Annualized return at that price", output.FormatPercentage(at.AnnualizedReturn)},
				}))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputsFile, "inputs", "i", "", "Input file (YAML); overrides the sale flags")
	cmd.Flags().Var(newDecimalValue(&in.PurchasePrice, decimal.Zero), "purchase", "Purchase price")
	cmd.Flags().Var(newDecimalValue(&in.SalePrice, decimal.Zero), "sale", "Sale price")
	cmd.Flags().Var(newDecimalValue(&in.AnnualIncome, decimal.Zero), "income", "Annual income before the sale")
	cmd.Flags().Var(newDecimalValue(&in.SellingCostsPct, config.DefaultSellingCostsPct), "selling-costs", "Selling costs as a percent of the sale price")
	cmd.Flags().Var(newDecimalValue(&in.YearsHeld, config.DefaultYearsHeld), "years", "Years the property was held")
	cmd.Flags().StringVar(&in.Province, "province", config.DefaultProvince, "Province code")
	cmd.Flags().IntVar(&in.TaxYear, "year", config.DefaultTaxYear, "Tax year of the sale")
	cmd.Flags().Var(newDecimalValue(&targetReturn, decimal.Zero), "target-return", "Solve for the sale price reaching this annualized return (percent)")
	cmd.Flags().BoolVar(&clampLosses, "clamp-losses", false, "Treat a capital loss as zero tax instead of a reduction of tax on other income")
	return cmd
}

func writeCapitalGains(w io.Writer, inputs *domain.FinancialInputs, cg domain.CapitalGainsOutcome) {
	var held [][2]string
	if inputs.PurchaseDate != nil && inputs.SaleDate != nil {
		held = append(held, [2]string{"Months held", strconv.Itoa(dateutil.WholeMonthsBetween(*inputs.PurchaseDate, *inputs.SaleDate))})
	}
	fmt.Fprintln(w, output.RenderSection(fmt.Sprintf("CAPITAL GAINS  %s %d", inputs.Province, inputs.TaxYear), append(held, [][2]string{
		{"Purchase price", output.FormatCurrency(inputs.PurchasePrice)},
		{"Sale price", output.FormatCurrency(inputs.SalePrice)},
		{"Selling costs", output.FormatCurrency(cg.SellingCosts)},
		{"Capital gain", output.FormatCurrency(cg.CapitalGain)},
		{"Taxable gain", output.FormatCurrency(cg.TaxableGain)},
		{"Federal tax", output.FormatCurrency(cg.FederalTax)},
		{"Provincial tax", output.FormatCurrency(cg.ProvincialTax)},
		{"Total tax", output.FormatCurrency(cg.TotalTax)},
		{"After-tax profit", output.FormatCurrency(cg.AfterTaxProfit)},
		{"Annualized return", output.FormatPercentage(cg.AnnualizedReturn)},
	}...)))
}
