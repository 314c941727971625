package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/starterpackapp/investment-calculator/internal/calculation"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/starterpackapp/investment-calculator/internal/output"
	"go.uber.org/zap"
)

// analyze loads an input file and runs the full analysis on it.
func (a *app) analyze(path string) (*domain.CalculationResult, error) {
	inputs, err := a.loadInputs(path)
	if err != nil {
		return nil, err
	}
	analyzer := calculation.NewAnalyzer(a.registry)
	analyzer.SetLogger(a.logger.Sugar())
	return analyzer.Analyze(*inputs)
}

func (a *app) newAnalyzeCmd() *cobra.Command {
	var (
		inputsFile string
		outputDir  string
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Full investment analysis of an input file",
		Example: `  starterpack analyze -i property.yaml
  starterpack analyze -i property.yaml --format json
  starterpack analyze -i property.yaml --format all --output-dir reports`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.analyze(inputsFile)
			if err != nil {
				return err
			}
			if outputDir == "" {
				return output.Render(cmd.OutOrStdout(), result, a.format)
			}
			files, err := output.GenerateReport(result, a.format, outputDir)
			if err != nil {
				return err
			}
			a.logger.Info("reports written", zap.Strings("files", files))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", strings.Join(files, ", "))
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputsFile, "inputs", "i", "", "Input file (YAML)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write timestamped report files to this directory instead of stdout")
	_ = cmd.MarkFlagRequired("inputs")
	return cmd
}

func (a *app) newFinancingCmd() *cobra.Command {
	var inputsFile string
	cmd := &cobra.Command{
		Use:   "financing",
		Short: "Compare down payment, rate and amortization scenarios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.analyze(inputsFile)
			if err != nil {
				return err
			}
			fc := result.Financing
			t := output.Table{
				Title:   "FINANCING SCENARIOS",
				Headers: []string{"Scenario", "Down", "Rate", "Years", "Cash to Close", "Payment", "Cash Flow", "CoC", "Interest"},
			}
			for _, o := range fc.Outcomes {
				t.Rows = append(t.Rows, []string{
					o.Scenario.Name,
					output.FormatPercentage(o.Scenario.DownPaymentPct),
					output.FormatPercentage(o.Scenario.RatePct),
					fmt.Sprintf("%d", o.Scenario.AmortizationYears),
					output.FormatWholeCurrency(o.CashToClose),
					output.FormatCurrency(o.MonthlyPayment),
					output.FormatCurrency(o.MonthlyCashFlow),
					output.FormatPercentage(o.CashOnCashReturn),
					output.FormatWholeCurrency(o.TotalInterest),
				})
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, output.RenderTable(t))
			fmt.Fprintln(w, output.RenderSection("BEST", [][2]string{
				{"Cash flow", fc.BestCashFlow},
				{"Cash-on-cash return", fc.BestReturn},
				{"Lowest cash to close", fc.LowestCashToClose},
			}))
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputsFile, "inputs", "i", "", "Input file (YAML)")
	_ = cmd.MarkFlagRequired("inputs")
	return cmd
}

func (a *app) newRentalCmd() *cobra.Command {
	var inputsFile string
	cmd := &cobra.Command{
		Use:   "rental",
		Short: "Short-term versus long-term rental comparison",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.analyze(inputsFile)
			if err != nil {
				return err
			}
			rc := result.Rental
			fmt.Fprintln(cmd.OutOrStdout(), output.RenderSection("SHORT-TERM VS LONG-TERM RENTAL", [][2]string{
				{"STR monthly revenue", output.FormatCurrency(rc.STRMonthlyRevenue)},
				{"STR operating expenses", output.FormatCurrency(rc.STROperatingExpenses)},
				{"STR net cash flow", output.FormatCurrency(rc.STRNetCashFlow)},
				{"LTR monthly rent", output.FormatCurrency(rc.LTRMonthlyRevenue)},
				{"LTR net cash flow", output.FormatCurrency(rc.LTRNetCashFlow)},
				{"Monthly advantage (STR)", output.FormatCurrency(rc.MonthlyAdvantage)},
				{"Annual advantage (STR)", output.FormatCurrency(rc.AnnualAdvantage)},
				{"Break-even occupancy", output.FormatPercentage(rc.BreakEvenOccupancy)},
				{"Occupancy risk", rc.Risk},
				{"Recommendation", output.StrategyName(rc.Recommendation)},
			}))
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputsFile, "inputs", "i", "", "Input file (YAML)")
	_ = cmd.MarkFlagRequired("inputs")
	return cmd
}
