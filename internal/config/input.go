package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Defaults applied to inputs left empty.
var (
	DefaultSellingCostsPct  = decimal.NewFromInt(7)
	DefaultYearsHeld        = decimal.NewFromInt(5)
	DefaultProvince         = domain.JurisdictionOntario
	DefaultTermYears        = 30
	DefaultProjectionMonths = 12
	DefaultStrategy         = domain.StrategyLongTerm
)

// maxProjectionMonths caps projections at fifty years.
const maxProjectionMonths = 600

var hundred = decimal.NewFromInt(100)

// InputParser handles parsing of property analysis input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads inputs from a YAML or JSON file, fills defaults and validates them
func (ip *InputParser) LoadFromFile(filename string) (*domain.FinancialInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML (or JSON) input, fills defaults and validates the result
func (ip *InputParser) Parse(data []byte) (*domain.FinancialInputs, error) {
	var inputs domain.FinancialInputs
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&inputs)

	if err := ip.ValidateInputs(&inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &inputs, nil
}

// ApplyDefaults fills zero-valued fields with the standard assumptions.
// An explicit zero selling cost or holding period is indistinguishable from
// an omitted one and is replaced as well.
func (ip *InputParser) ApplyDefaults(inputs *domain.FinancialInputs) {
	if inputs.SellingCostsPct.IsZero() {
		inputs.SellingCostsPct = DefaultSellingCostsPct
	}
	if inputs.YearsHeld.IsZero() && (inputs.PurchaseDate == nil || inputs.SaleDate == nil) {
		inputs.YearsHeld = DefaultYearsHeld
	}
	inputs.Province = strings.ToUpper(strings.TrimSpace(inputs.Province))
	if inputs.Province == "" {
		inputs.Province = DefaultProvince
	}
	if inputs.TaxYear == 0 {
		inputs.TaxYear = DefaultTaxYear
	}
	if inputs.TermYears == 0 {
		inputs.TermYears = DefaultTermYears
	}
	if inputs.ProjectionMonths == 0 {
		inputs.ProjectionMonths = DefaultProjectionMonths
	}
	inputs.Strategy = domain.RentalStrategy(strings.ToLower(strings.TrimSpace(string(inputs.Strategy))))
	if inputs.Strategy == "" {
		inputs.Strategy = DefaultStrategy
	}
}

// ValidateInputs validates the loaded inputs
func (ip *InputParser) ValidateInputs(inputs *domain.FinancialInputs) error {
	if !inputs.PurchasePrice.IsPositive() {
		return fmt.Errorf("purchase price must be positive")
	}

	nonNegative := map[string]decimal.Decimal{
		"sale price":    inputs.SalePrice,
		"annual income": inputs.AnnualIncome,
		"years held":    inputs.YearsHeld,
		"nightly rate":  inputs.NightlyRate,
		"monthly rent":  inputs.MonthlyRent,
		"property tax":  inputs.PropertyTaxAnnual,
		"insurance":     inputs.InsuranceAnnual,
		"maintenance":   inputs.MaintenanceMonthly,
		"HOA fees":      inputs.HOAMonthly,
		"interest rate": inputs.InterestRatePct,
	}
	for _, name := range sortedKeys(nonNegative) {
		if nonNegative[name].IsNegative() {
			return fmt.Errorf("%s cannot be negative, got %s", name, nonNegative[name])
		}
	}

	percentages := map[string]decimal.Decimal{
		"selling costs":  inputs.SellingCostsPct,
		"occupancy rate": inputs.OccupancyRatePct,
		"management fee": inputs.ManagementFeePct,
		"vacancy rate":   inputs.VacancyRatePct,
		"down payment":   inputs.DownPaymentPct,
	}
	for _, name := range sortedKeys(percentages) {
		if err := validatePercentage(name, percentages[name]); err != nil {
			return err
		}
	}

	if inputs.PurchaseDate != nil && inputs.SaleDate != nil && !inputs.SaleDate.After(*inputs.PurchaseDate) {
		return fmt.Errorf("sale date (%s) must be after purchase date (%s)",
			inputs.SaleDate.Format(time.DateOnly), inputs.PurchaseDate.Format(time.DateOnly))
	}

	if inputs.TermYears <= 0 || inputs.TermYears > domain.MaxTermYears {
		return fmt.Errorf("term years must be between 1 and %d, got %d", domain.MaxTermYears, inputs.TermYears)
	}
	if inputs.ProjectionMonths <= 0 || inputs.ProjectionMonths > maxProjectionMonths {
		return fmt.Errorf("projection months must be between 1 and %d, got %d", maxProjectionMonths, inputs.ProjectionMonths)
	}

	switch inputs.Strategy {
	case domain.StrategyLongTerm, domain.StrategyShortTerm:
	default:
		return fmt.Errorf("strategy must be %q or %q, got %q", domain.StrategyLongTerm, domain.StrategyShortTerm, inputs.Strategy)
	}

	seen := make(map[string]bool)
	for i, s := range inputs.FinancingScenarios {
		if err := ip.validateScenario(s); err != nil {
			return fmt.Errorf("financing scenario %d validation failed: %w", i+1, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate financing scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}

	return nil
}

// validateScenario validates a single financing scenario
func (ip *InputParser) validateScenario(s domain.FinancingScenario) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if s.DownPaymentPct.IsNegative() || s.DownPaymentPct.GreaterThanOrEqual(hundred) {
		return fmt.Errorf("down payment must be at least 0%% and below 100%%, got %s%%", s.DownPaymentPct)
	}
	if s.RatePct.IsNegative() {
		return fmt.Errorf("rate cannot be negative, got %s%%", s.RatePct)
	}
	if s.AmortizationYears <= 0 || s.AmortizationYears > domain.MaxTermYears {
		return fmt.Errorf("amortization years must be between 1 and %d, got %d", domain.MaxTermYears, s.AmortizationYears)
	}
	return nil
}

func validatePercentage(name string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return fmt.Errorf("%s must be between 0%% and 100%%, got %s%%", name, v)
	}
	return nil
}

// CreateExampleInputs creates an example input set for a Toronto condo
func (ip *InputParser) CreateExampleInputs() *domain.FinancialInputs {
	purchaseDate := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)
	saleDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	return &domain.FinancialInputs{
		PropertyAddress:    "123 King St W, Toronto, ON",
		PurchasePrice:      decimal.NewFromInt(500000),
		SalePrice:          decimal.NewFromInt(650000),
		AnnualIncome:       decimal.NewFromInt(80000),
		SellingCostsPct:    DefaultSellingCostsPct,
		YearsHeld:          DefaultYearsHeld,
		PurchaseDate:       &purchaseDate,
		SaleDate:           &saleDate,
		Province:           DefaultProvince,
		TaxYear:            DefaultTaxYear,
		Strategy:           domain.StrategyLongTerm,
		NightlyRate:        decimal.NewFromInt(180),
		OccupancyRatePct:   decimal.NewFromInt(70),
		MonthlyRent:        decimal.NewFromInt(3200),
		ManagementFeePct:   decimal.NewFromInt(10),
		VacancyRatePct:     decimal.NewFromInt(5),
		DownPaymentPct:     decimal.NewFromInt(20),
		InterestRatePct:    decimal.NewFromFloat(5.5),
		TermYears:          25,
		PropertyTaxAnnual:  decimal.NewFromInt(4200),
		InsuranceAnnual:    decimal.NewFromInt(1200),
		MaintenanceMonthly: decimal.NewFromInt(150),
		HOAMonthly:         decimal.NewFromInt(550),
		ProjectionMonths:   DefaultProjectionMonths,
	}
}

// WriteExampleFile writes the example inputs as YAML to filename
func (ip *InputParser) WriteExampleFile(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleInputs())
	if err != nil {
		return fmt.Errorf("failed to marshal example: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
