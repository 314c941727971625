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

type loanFlags struct {
	principal decimal.Decimal
	ratePct   decimal.Decimal
	years     int
}

func (lf *loanFlags) register(cmd *cobra.Command) {
	cmd.Flags().Var(newDecimalValue(&lf.principal, decimal.Zero), "principal", "Loan amount")
	cmd.Flags().Var(newDecimalValue(&lf.ratePct, decimal.Zero), "rate", "Annual interest rate (percent)")
	cmd.Flags().IntVar(&lf.years, "years", config.DefaultTermYears, fmt.Sprintf("Amortization period in years (1-%d)", domain.MaxTermYears))
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
}

func (a *app) newMortgageCmd() *cobra.Command {
	var lf loanFlags
	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Monthly payment and total interest of a fixed-rate mortgage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			payment, err := calculation.MonthlyPayment(lf.principal, lf.ratePct, lf.years)
			if err != nil {
				return err
			}
			interest, err := calculation.TotalInterest(lf.principal, lf.ratePct, lf.years)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.RenderSection("MORTGAGE", [][2]string{
				{"Principal", output.FormatCurrency(lf.principal)},
				{"Rate", output.FormatPercentage(lf.ratePct)},
				{"Term", fmt.Sprintf("%d years", lf.years)},
				{"Monthly payment", output.FormatCurrency(payment)},
				{"Total interest", output.FormatCurrency(interest)},
				{"Total paid", output.FormatCurrency(lf.principal.Add(interest))},
			}))
			return nil
		},
	}
	lf.register(cmd)
	return cmd
}

func (a *app) newAmortizationCmd() *cobra.Command {
	var (
		lf    loanFlags
		every int
	)
	cmd := &cobra.Command{
		Use:   "amortization",
		Short: "Payment-by-payment amortization schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if every < 1 {
				return fmt.Errorf("--every must be at least 1, got %d", every)
			}
			schedule, err := calculation.AmortizationSchedule(lf.principal, lf.ratePct, lf.years)
			if err != nil {
				return err
			}
			t := output.Table{
				Title:   fmt.Sprintf("AMORTIZATION  %s at %s over %d years", output.FormatCurrency(lf.principal), output.FormatPercentage(lf.ratePct), lf.years),
				Headers: []string{"Payment", "Amount", "Interest", "Principal", "Balance"},
			}
			for i, row := range schedule {
				if (i+1)%every != 0 && i != len(schedule)-1 {
					continue
				}
				t.Rows = append(t.Rows, []string{
					fmt.Sprintf("%d", row.Payment),
					output.FormatCurrency(row.Amount),
					output.FormatCurrency(row.Interest),
					output.FormatCurrency(row.Principal),
					output.FormatCurrency(row.Balance),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderTable(t))
			return nil
		},
	}
	lf.register(cmd)
	cmd.Flags().IntVar(&every, "every", 12, "Show every Nth payment (the final payment is always shown)")
	return cmd
}
