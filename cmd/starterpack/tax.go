package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/starterpackapp/investment-calculator/internal/calculation"
	"github.com/starterpackapp/investment-calculator/internal/config"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/starterpackapp/investment-calculator/internal/output"
)

func (a *app) newTaxCmd() *cobra.Command {
	var (
		income   decimal.Decimal
		province string
		year     int
	)
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Federal and provincial income tax on an annual income",
		RunE: func(cmd *cobra.Command, _ []string) error {
			federal, provincial, err := a.lookupTables(province, year)
			if err != nil {
				return err
			}
			calc := calculation.NewCombinedTaxCalculator(federal, provincial)
			fed, prov, total := calc.CalculateTax(income)

			effective := decimal.Zero
			if income.IsPositive() {
				effective = total.Div(income)
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.RenderSection(fmt.Sprintf("INCOME TAX  %s %d", provincial.Jurisdiction, year), [][2]string{
				{"Income", output.FormatCurrency(income)},
				{"Federal tax", output.FormatCurrency(fed)},
				{"Provincial tax", output.FormatCurrency(prov)},
				{"Total tax", output.FormatCurrency(total)},
				{"Effective rate", output.FormatRate(effective)},
				{"Marginal rate", output.FormatRate(calc.MarginalRate(income))},
			}))
			return nil
		},
	}
	cmd.Flags().Var(newDecimalValue(&income, decimal.Zero), "income", "Annual taxable income")
	cmd.Flags().StringVar(&province, "province", config.DefaultProvince, "Province code (ON, BC, AB, QC)")
	cmd.Flags().IntVar(&year, "year", config.DefaultTaxYear, "Tax year")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

// lookupTables returns the federal table and the table for province in year.
func (a *app) lookupTables(province string, year int) (domain.BracketTable, domain.BracketTable, error) {
	federal, err := a.registry.Lookup(domain.JurisdictionFederal, year)
	if err != nil {
		return domain.BracketTable{}, domain.BracketTable{}, err
	}
	provincial, err := a.registry.Lookup(province, year)
	if err != nil {
		return domain.BracketTable{}, domain.BracketTable{}, err
	}
	return federal, provincial, nil
}
