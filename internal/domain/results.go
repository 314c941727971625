package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CapitalGainsOutcome is the tax and return picture of selling a property.
type CapitalGainsOutcome struct {
	SellingCosts     decimal.Decimal `json:"selling_costs"`
	NetSalePrice     decimal.Decimal `json:"net_sale_price"`
	CapitalGain      decimal.Decimal `json:"capital_gain"`
	TaxableGain      decimal.Decimal `json:"taxable_gain"`
	FederalTax       decimal.Decimal `json:"federal_tax"`
	ProvincialTax    decimal.Decimal `json:"provincial_tax"`
	TotalTax         decimal.Decimal `json:"total_tax"`
	AfterTaxProfit   decimal.Decimal `json:"after_tax_profit"`
	AnnualizedReturn decimal.Decimal `json:"annualized_return"` // percent
	MarginalRate     decimal.Decimal `json:"marginal_rate"`     // combined rate on the last dollar of gain
}

// PeriodRecord is one month of a cash-flow projection.
type PeriodRecord struct {
	Month       int             `json:"month"`
	Label       string          `json:"label"`
	Revenue     decimal.Decimal `json:"revenue"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetCashFlow decimal.Decimal `json:"net_cash_flow"`
	Cumulative  decimal.Decimal `json:"cumulative"`
}

// NamedAmount is an input to expense allocation.
type NamedAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseItem is one slice of an expense breakdown.
type ExpenseItem struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ExpenseBreakdown is the normalized monthly cost picture.
type ExpenseBreakdown struct {
	Items []ExpenseItem   `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// AmortizationRow is one payment of a fixed-rate loan.
type AmortizationRow struct {
	Payment   int             `json:"payment"`
	Amount    decimal.Decimal `json:"amount"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

// FinancingOutcome is the evaluated result of one FinancingScenario.
type FinancingOutcome struct {
	Scenario         FinancingScenario `json:"scenario"`
	DownPayment      decimal.Decimal   `json:"down_payment"`
	LoanAmount       decimal.Decimal   `json:"loan_amount"`
	CashToClose      decimal.Decimal   `json:"cash_to_close"`
	MonthlyPayment   decimal.Decimal   `json:"monthly_payment"`
	MonthlyCashFlow  decimal.Decimal   `json:"monthly_cash_flow"`
	AnnualCashFlow   decimal.Decimal   `json:"annual_cash_flow"`
	CashOnCashReturn decimal.Decimal   `json:"cash_on_cash_return"` // percent
	TotalInterest    decimal.Decimal   `json:"total_interest"`
}

// FinancingComparison ranks a set of financing outcomes.
type FinancingComparison struct {
	Outcomes          []FinancingOutcome `json:"outcomes"`
	BestCashFlow      string             `json:"best_cash_flow"`
	BestReturn        string             `json:"best_return"`
	LowestCashToClose string             `json:"lowest_cash_to_close"`
}

// RentalComparison contrasts short-term and long-term rental cash flow.
type RentalComparison struct {
	STRMonthlyRevenue    decimal.Decimal `json:"str_monthly_revenue"`
	STROperatingExpenses decimal.Decimal `json:"str_operating_expenses"`
	STRNetCashFlow       decimal.Decimal `json:"str_net_cash_flow"`
	LTRMonthlyRevenue    decimal.Decimal `json:"ltr_monthly_revenue"`
	LTRNetCashFlow       decimal.Decimal `json:"ltr_net_cash_flow"`
	MonthlyAdvantage     decimal.Decimal `json:"monthly_advantage"` // STR minus LTR
	AnnualAdvantage      decimal.Decimal `json:"annual_advantage"`
	BreakEvenOccupancy   decimal.Decimal `json:"break_even_occupancy"` // percent; STR occupancy matching LTR net
	Recommendation       RentalStrategy  `json:"recommendation"`
	Risk                 string          `json:"risk"`
}

// CalculationResult is the complete analysis of one set of FinancialInputs.
type CalculationResult struct {
	PropertyAddress string         `json:"property_address,omitempty"`
	Province        string         `json:"province"`
	TaxYear         int            `json:"tax_year"`
	Strategy        RentalStrategy `json:"strategy"`
	GeneratedAt     time.Time      `json:"generated_at"`

	CapitalGains CapitalGainsOutcome `json:"capital_gains"`

	LoanAmount         decimal.Decimal `json:"loan_amount"`
	MonthlyMortgage    decimal.Decimal `json:"monthly_mortgage"`
	TotalInterest      decimal.Decimal `json:"total_interest"`
	MonthlyRevenue     decimal.Decimal `json:"monthly_revenue"`
	MonthlyExpenses    decimal.Decimal `json:"monthly_expenses"`
	MonthlyNetCashFlow decimal.Decimal `json:"monthly_net_cash_flow"`
	CapRate            decimal.Decimal `json:"cap_rate"`            // percent
	CashOnCashReturn   decimal.Decimal `json:"cash_on_cash_return"` // percent

	Expenses   ExpenseBreakdown    `json:"expenses"`
	Projection []PeriodRecord      `json:"projection"`
	Financing  FinancingComparison `json:"financing"`
	Rental     RentalComparison    `json:"rental"`
}
