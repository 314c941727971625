package output

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
)

// CSVDetailedExporter writes every figure of the result in long form:
// one "section,item,metric,value" row per number.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var writeErr error
	row := func(section, item, metric string, v decimal.Decimal) {
		if writeErr == nil {
			writeErr = w.Write([]string{section, item, metric, v.StringFixed(4)})
		}
	}

	if err := w.Write([]string{"Section", "Item", "Metric", "Value"}); err != nil {
		return nil, err
	}

	cg := results.CapitalGains
	row("capital_gains", "", "selling_costs", cg.SellingCosts)
	row("capital_gains", "", "net_sale_price", cg.NetSalePrice)
	row("capital_gains", "", "capital_gain", cg.CapitalGain)
	row("capital_gains", "", "taxable_gain", cg.TaxableGain)
	row("capital_gains", "", "federal_tax", cg.FederalTax)
	row("capital_gains", "", "provincial_tax", cg.ProvincialTax)
	row("capital_gains", "", "total_tax", cg.TotalTax)
	row("capital_gains", "", "after_tax_profit", cg.AfterTaxProfit)
	row("capital_gains", "", "annualized_return_pct", cg.AnnualizedReturn)

	row("cash_flow", "", "loan_amount", results.LoanAmount)
	row("cash_flow", "", "monthly_mortgage", results.MonthlyMortgage)
	row("cash_flow", "", "monthly_revenue", results.MonthlyRevenue)
	row("cash_flow", "", "monthly_expenses", results.MonthlyExpenses)
	row("cash_flow", "", "monthly_net_cash_flow", results.MonthlyNetCashFlow)
	row("cash_flow", "", "cap_rate_pct", results.CapRate)
	row("cash_flow", "", "cash_on_cash_pct", results.CashOnCashReturn)

	for _, item := range results.Expenses.Items {
		row("expenses", item.Name, "amount", item.Amount)
		row("expenses", item.Name, "percentage", item.Percentage)
	}

	for _, o := range results.Financing.Outcomes {
		name := o.Scenario.Name
		row("financing", name, "cash_to_close", o.CashToClose)
		row("financing", name, "loan_amount", o.LoanAmount)
		row("financing", name, "monthly_payment", o.MonthlyPayment)
		row("financing", name, "monthly_cash_flow", o.MonthlyCashFlow)
		row("financing", name, "cash_on_cash_pct", o.CashOnCashReturn)
		row("financing", name, "total_interest", o.TotalInterest)
	}

	rc := results.Rental
	row("rental", "str", "monthly_revenue", rc.STRMonthlyRevenue)
	row("rental", "str", "operating_expenses", rc.STROperatingExpenses)
	row("rental", "str", "net_cash_flow", rc.STRNetCashFlow)
	row("rental", "ltr", "monthly_revenue", rc.LTRMonthlyRevenue)
	row("rental", "ltr", "net_cash_flow", rc.LTRNetCashFlow)
	row("rental", "", "break_even_occupancy_pct", rc.BreakEvenOccupancy)

	for _, p := range results.Projection {
		row("projection", p.Label, "net_cash_flow", p.NetCashFlow)
		row("projection", p.Label, "cumulative", p.Cumulative)
	}

	if writeErr != nil {
		return nil, writeErr
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
