package domain

import (
	"time"

	"github.com/shopspring/decimal"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

// RentalStrategy selects which revenue estimate drives the cash-flow projection.
type RentalStrategy string

const (
	StrategyLongTerm  RentalStrategy = "ltr"
	StrategyShortTerm RentalStrategy = "str"
)

// MaxTermYears bounds mortgage terms and amortization periods.
const MaxTermYears = 50

// FinancialInputs holds the user-supplied assumptions for one property analysis.
// Percentage fields are expressed as 0-100.
type FinancialInputs struct {
	PropertyAddress string `yaml:"property_address,omitempty" json:"property_address,omitempty"`

	// Sale / capital gains
	PurchasePrice   decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	SalePrice       decimal.Decimal `yaml:"sale_price" json:"sale_price"`
	AnnualIncome    decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	SellingCostsPct decimal.Decimal `yaml:"selling_costs_pct" json:"selling_costs_pct"`
	YearsHeld       decimal.Decimal `yaml:"years_held" json:"years_held"`
	PurchaseDate    *time.Time      `yaml:"purchase_date,omitempty" json:"purchase_date,omitempty"`
	SaleDate        *time.Time      `yaml:"sale_date,omitempty" json:"sale_date,omitempty"`
	Province        string          `yaml:"province" json:"province"`
	TaxYear         int             `yaml:"tax_year" json:"tax_year"`

	// Rental revenue
	Strategy         RentalStrategy  `yaml:"strategy" json:"strategy"`
	NightlyRate      decimal.Decimal `yaml:"nightly_rate" json:"nightly_rate"`
	OccupancyRatePct decimal.Decimal `yaml:"occupancy_rate_pct" json:"occupancy_rate_pct"`
	MonthlyRent      decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	ManagementFeePct decimal.Decimal `yaml:"management_fee_pct" json:"management_fee_pct"`
	VacancyRatePct   decimal.Decimal `yaml:"vacancy_rate_pct" json:"vacancy_rate_pct"`

	// Financing
	DownPaymentPct  decimal.Decimal `yaml:"down_payment_pct" json:"down_payment_pct"`
	InterestRatePct decimal.Decimal `yaml:"interest_rate_pct" json:"interest_rate_pct"`
	TermYears       int             `yaml:"term_years" json:"term_years"`

	// Carrying costs
	PropertyTaxAnnual  decimal.Decimal `yaml:"property_tax_annual" json:"property_tax_annual"`
	InsuranceAnnual    decimal.Decimal `yaml:"insurance_annual" json:"insurance_annual"`
	MaintenanceMonthly decimal.Decimal `yaml:"maintenance_monthly" json:"maintenance_monthly"`
	HOAMonthly         decimal.Decimal `yaml:"hoa_monthly" json:"hoa_monthly"`

	ProjectionMonths int `yaml:"projection_months" json:"projection_months"`

	// Optional financing alternatives; defaults are used when empty.
	FinancingScenarios []FinancingScenario `yaml:"financing_scenarios,omitempty" json:"financing_scenarios,omitempty"`
}

// LoanAmount is the purchase price less the down payment.
func (fi FinancialInputs) LoanAmount() decimal.Decimal {
	down := fi.PurchasePrice.Mul(fi.DownPaymentPct).Div(decimal.NewFromInt(100))
	return fi.PurchasePrice.Sub(down)
}

// MonthlyCosts mirrors the carrying-cost record shown in the expense donut.
// PropertyTax and Insurance are annual figures; the rest are monthly.
type MonthlyCosts struct {
	MortgagePayment    decimal.Decimal `json:"mortgage_payment"`
	PropertyTax        decimal.Decimal `json:"property_tax"`
	Insurance          decimal.Decimal `json:"insurance"`
	Maintenance        decimal.Decimal `json:"maintenance"`
	PropertyManagement decimal.Decimal `json:"property_management"`
	CondoFees          decimal.Decimal `json:"condo_fees"`
}

// Expense category names used in breakdowns.
const (
	ExpenseMortgage    = "Mortgage"
	ExpensePropertyTax = "Property Tax"
	ExpenseInsurance   = "Insurance"
	ExpenseMaintenance = "Maintenance"
	ExpenseManagement  = "Property Mgmt"
	ExpenseHOA         = "HOA/Condo"
)

// NamedAmounts returns the monthly cost components in display order.
func (mc MonthlyCosts) NamedAmounts() []NamedAmount {
	return []NamedAmount{
		{Name: ExpenseMortgage, Amount: mc.MortgagePayment},
		{Name: ExpensePropertyTax, Amount: dec.NewMoneyFromDecimal(mc.PropertyTax).Monthly().Decimal},
		{Name: ExpenseInsurance, Amount: dec.NewMoneyFromDecimal(mc.Insurance).Monthly().Decimal},
		{Name: ExpenseMaintenance, Amount: mc.Maintenance},
		{Name: ExpenseManagement, Amount: mc.PropertyManagement},
		{Name: ExpenseHOA, Amount: mc.CondoFees},
	}
}

// FinancingScenario is one down payment / rate / amortization combination to compare.
type FinancingScenario struct {
	Name              string          `yaml:"name" json:"name"`
	DownPaymentPct    decimal.Decimal `yaml:"down_payment_pct" json:"down_payment_pct"`
	RatePct           decimal.Decimal `yaml:"rate_pct" json:"rate_pct"`
	AmortizationYears int             `yaml:"amortization_years" json:"amortization_years"`
}
