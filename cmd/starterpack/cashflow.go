package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/starterpackapp/investment-calculator/internal/calculation"
	"github.com/starterpackapp/investment-calculator/internal/config"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/starterpackapp/investment-calculator/internal/output"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

func (a *app) newCashFlowCmd() *cobra.Command {
	var (
		revenue, expenses, vacancyPct decimal.Decimal
		months                        int
	)
	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Month-by-month cash flow projection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := calculation.ProjectMonthly(revenue, expenses, months, dec.PercentToFraction(vacancyPct))
			if err != nil {
				return err
			}
			t := output.Table{
				Title:   "CASH FLOW PROJECTION",
				Headers: []string{"Month", "Revenue", "Expenses", "Net", "Cumulative"},
			}
			for _, r := range records {
				t.Rows = append(t.Rows, []string{
					r.Label,
					output.FormatCurrency(r.Revenue),
					output.FormatCurrency(r.Expenses),
					output.FormatCurrency(r.NetCashFlow),
					output.FormatCurrency(r.Cumulative),
				})
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, output.RenderTable(t))
			if m := calculation.BreakEvenMonth(records); m > 0 {
				fmt.Fprintf(w, "Cumulative cash flow is non-negative from month %d\n", m)
			} else {
				fmt.Fprintln(w, "Cumulative cash flow stays negative over the projection")
			}
			return nil
		},
	}
	cmd.Flags().Var(newDecimalValue(&revenue, decimal.Zero), "revenue", "Gross monthly revenue")
	cmd.Flags().Var(newDecimalValue(&expenses, decimal.Zero), "expenses", "Total monthly expenses")
	cmd.Flags().Var(newDecimalValue(&vacancyPct, decimal.Zero), "vacancy", "Vacancy rate (percent)")
	cmd.Flags().IntVar(&months, "months", config.DefaultProjectionMonths, "Number of months to project")
	_ = cmd.MarkFlagRequired("revenue")
	_ = cmd.MarkFlagRequired("expenses")
	return cmd
}

func (a *app) newExpensesCmd() *cobra.Command {
	var costs domain.MonthlyCosts
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Monthly expense breakdown with shares of the total",
		RunE: func(cmd *cobra.Command, _ []string) error {
			breakdown := calculation.Allocate(costs.NamedAmounts())
			t := output.Table{Title: "MONTHLY EXPENSES", Headers: []string{"Category", "Monthly", "Share"}}
			for _, item := range breakdown.Items {
				t.Rows = append(t.Rows, []string{item.Name, output.FormatCurrency(item.Amount), output.FormatPercentage(item.Percentage)})
			}
			t.Rows = append(t.Rows, []string{"Total", output.FormatCurrency(breakdown.Total), ""})
			fmt.Fprint(cmd.OutOrStdout(), output.RenderTable(t))
			return nil
		},
	}
	cmd.Flags().Var(newDecimalValue(&costs.MortgagePayment, decimal.Zero), "mortgage", "Monthly mortgage payment")
	cmd.Flags().Var(newDecimalValue(&costs.PropertyTax, decimal.Zero), "property-tax", "Annual property tax")
	cmd.Flags().Var(newDecimalValue(&costs.Insurance, decimal.Zero), "insurance", "Annual insurance premium")
	cmd.Flags().Var(newDecimalValue(&costs.Maintenance, decimal.Zero), "maintenance", "Monthly maintenance")
	cmd.Flags().Var(newDecimalValue(&costs.PropertyManagement, decimal.Zero), "management", "Monthly property management")
	cmd.Flags().Var(newDecimalValue(&costs.CondoFees, decimal.Zero), "hoa", "Monthly HOA or condo fees")
	return cmd
}
