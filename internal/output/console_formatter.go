package output

import (
	"bytes"
	"fmt"

	"github.com/starterpackapp/investment-calculator/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT PROPERTY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if results.PropertyAddress != "" {
		fmt.Fprintf(&buf, "Property: %s\n", results.PropertyAddress)
	}
	fmt.Fprintf(&buf, "Province: %s  Tax year: %d  Strategy: %s\n", results.Province, results.TaxYear, StrategyName(results.Strategy))
	fmt.Fprintln(&buf)

	cg := results.CapitalGains
	if !cg.NetSalePrice.IsZero() {
		fmt.Fprintf(&buf, "Capital gain: %s  Tax: %s  After-tax profit: %s  Annualized: %s\n",
			FormatCurrency(cg.CapitalGain), FormatCurrency(cg.TotalTax),
			FormatCurrency(cg.AfterTaxProfit), FormatPercentage(cg.AnnualizedReturn))
	}
	fmt.Fprintf(&buf, "Mortgage: %s/month on %s\n", FormatCurrency(results.MonthlyMortgage), FormatCurrency(results.LoanAmount))
	fmt.Fprintf(&buf, "Revenue: %s  Expenses: %s  Net: %s per month\n",
		FormatCurrency(results.MonthlyRevenue), FormatCurrency(results.MonthlyExpenses), FormatCurrency(results.MonthlyNetCashFlow))
	fmt.Fprintf(&buf, "Cap rate: %s  Cash-on-cash: %s\n", FormatPercentage(results.CapRate), FormatPercentage(results.CashOnCashReturn))
	for _, o := range results.Financing.Outcomes {
		fmt.Fprintf(&buf, "%s: CashToClose=%s Payment=%s CashFlow=%s CoC=%s\n",
			o.Scenario.Name,
			FormatWholeCurrency(o.CashToClose),
			FormatCurrency(o.MonthlyPayment),
			FormatCurrency(o.MonthlyCashFlow),
			FormatPercentage(o.CashOnCashReturn),
		)
	}

	rec := AnalyzeResult(results)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Recommended: %s (+%s/year), %s financing\n",
		StrategyName(rec.Strategy), FormatWholeCurrency(rec.StrategyAdvantage), rec.Financing)
	return buf.Bytes(), nil
}
