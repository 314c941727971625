package output

import (
	"bytes"
	"fmt"

	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/starterpackapp/investment-calculator/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the full styled report for terminals.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer

	title := "INVESTMENT PROPERTY ANALYSIS"
	if results.PropertyAddress != "" {
		title += "\n" + results.PropertyAddress
	}
	fmt.Fprintln(&buf, RenderTitle(title))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, headerStyle.Render("KEY ASSUMPTIONS"))
	for _, a := range GenerateAssumptions(results) {
		fmt.Fprintf(&buf, "  %s %s\n", dimStyle.Render("•"), a)
	}
	fmt.Fprintln(&buf)

	cg := results.CapitalGains
	if !cg.NetSalePrice.IsZero() {
		fmt.Fprintln(&buf, RenderSection("CAPITAL GAINS ON SALE", [][2]string{
			{"Selling costs", FormatCurrency(cg.SellingCosts)},
			{"Net sale price", FormatCurrency(cg.NetSalePrice)},
			{"Capital gain", signed(cg.CapitalGain)},
			{"Taxable gain", FormatCurrency(cg.TaxableGain)},
			{"Federal tax", FormatCurrency(cg.FederalTax)},
			{fmt.Sprintf("%s provincial tax", results.Province), FormatCurrency(cg.ProvincialTax)},
			{"Total tax", FormatCurrency(cg.TotalTax)},
			{"Marginal rate on gain", FormatRate(cg.MarginalRate)},
			{"After-tax profit", signed(cg.AfterTaxProfit)},
			{"Annualized return", FormatPercentage(cg.AnnualizedReturn)},
		}))
	}

	fmt.Fprintln(&buf, RenderSection("MONTHLY CASH FLOW", [][2]string{
		{"Strategy", StrategyName(results.Strategy)},
		{"Loan amount", FormatCurrency(results.LoanAmount)},
		{"Mortgage payment", FormatCurrency(results.MonthlyMortgage)},
		{"Total interest over term", FormatCurrency(results.TotalInterest)},
		{"Gross revenue", FormatCurrency(results.MonthlyRevenue)},
		{"Expenses", FormatCurrency(results.MonthlyExpenses)},
		{"Net cash flow", signed(results.MonthlyNetCashFlow)},
		{"Cap rate", FormatPercentage(results.CapRate)},
		{"Cash-on-cash return", FormatPercentage(results.CashOnCashReturn)},
	}))

	writeExpenses(&buf, results.Expenses)
	writeProjection(&buf, results)
	writeFinancing(&buf, results.Financing)
	writeRental(&buf, results.Rental)

	rec := AnalyzeResult(results)
	fmt.Fprintln(&buf, headerStyle.Render("RECOMMENDATION"))
	fmt.Fprintf(&buf, "  %s outperforms by %s per year.\n", StrategyName(rec.Strategy), FormatWholeCurrency(rec.StrategyAdvantage))
	if rec.Financing != "" {
		fmt.Fprintf(&buf, "  Suggested financing: %s\n", rec.Financing)
	}
	if !rec.PositiveCashFlow {
		fmt.Fprintf(&buf, "  %s\n", noteStyle.Render("Warning: the property does not carry itself at these assumptions."))
	}
	return buf.Bytes(), nil
}

func writeExpenses(buf *bytes.Buffer, b domain.ExpenseBreakdown) {
	t := Table{Title: "EXPENSE BREAKDOWN", Headers: []string{"Category", "Monthly", "Share"}}
	for _, item := range b.Items {
		t.Rows = append(t.Rows, []string{item.Name, FormatCurrency(item.Amount), FormatPercentage(item.Percentage)})
	}
	t.Rows = append(t.Rows, []string{"Total", FormatCurrency(b.Total), ""})
	fmt.Fprintln(buf, RenderTable(t))
}

func writeProjection(buf *bytes.Buffer, results *domain.CalculationResult) {
	t := Table{Title: "CASH FLOW PROJECTION", Headers: []string{"Month", "Revenue", "Expenses", "Net", "Cumulative"}}
	for _, r := range results.Projection {
		label := r.Label
		if label == "" {
			label = dateutil.MonthLabel(r.Month - 1)
		}
		t.Rows = append(t.Rows, []string{
			label,
			FormatCurrency(r.Revenue),
			FormatCurrency(r.Expenses),
			signed(r.NetCashFlow),
			signed(r.Cumulative),
		})
	}
	fmt.Fprintln(buf, RenderTable(t))
}

func writeFinancing(buf *bytes.Buffer, fc domain.FinancingComparison) {
	if len(fc.Outcomes) == 0 {
		return
	}
	t := Table{
		Title:   "FINANCING SCENARIOS",
		Headers: []string{"Scenario", "Down", "Rate", "Years", "Cash to Close", "Payment", "Cash Flow", "CoC"},
	}
	for _, o := range fc.Outcomes {
		t.Rows = append(t.Rows, []string{
			o.Scenario.Name,
			FormatPercentage(o.Scenario.DownPaymentPct),
			FormatPercentage(o.Scenario.RatePct),
			intToString(o.Scenario.AmortizationYears),
			FormatWholeCurrency(o.CashToClose),
			FormatCurrency(o.MonthlyPayment),
			signed(o.MonthlyCashFlow),
			FormatPercentage(o.CashOnCashReturn),
		})
	}
	fmt.Fprint(buf, RenderTable(t))
	fmt.Fprintf(buf, "  %s %s   %s %s   %s %s\n\n",
		labelStyle.Render("Best cash flow:"), fc.BestCashFlow,
		labelStyle.Render("Best return:"), fc.BestReturn,
		labelStyle.Render("Lowest cash to close:"), fc.LowestCashToClose)
}

func writeRental(buf *bytes.Buffer, rc domain.RentalComparison) {
	t := Table{Title: "SHORT-TERM VS LONG-TERM RENTAL", Headers: []string{"", "Short-term", "Long-term"}}
	t.Rows = [][]string{
		{"Monthly revenue", FormatCurrency(rc.STRMonthlyRevenue), FormatCurrency(rc.LTRMonthlyRevenue)},
		{"Net cash flow", signed(rc.STRNetCashFlow), signed(rc.LTRNetCashFlow)},
	}
	fmt.Fprint(buf, RenderTable(t))
	fmt.Fprintln(buf, RenderSection("Rental outlook", [][2]string{
		{"Monthly advantage (STR)", signed(rc.MonthlyAdvantage)},
		{"Annual advantage (STR)", signed(rc.AnnualAdvantage)},
		{"Break-even occupancy", FormatPercentage(rc.BreakEvenOccupancy)},
		{"Occupancy risk", noteStyle.Render(rc.Risk)},
	}))
}
