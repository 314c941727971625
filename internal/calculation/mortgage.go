package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	dec "github.com/starterpackapp/investment-calculator/pkg/decimal"
)

const monthsPerYear = 12

// compoundPrecision bounds the digits carried while raising (1+r) to n.
const compoundPrecision = 24

// MonthlyPayment returns the fixed monthly payment that fully amortizes principal
// over termYears at annualRatePct (0-100, compounded monthly):
//
//	P * r * (1+r)^n / ((1+r)^n - 1),  r = rate/100/12, n = years*12
//
// A zero rate falls back to straight-line repayment P / n.
func MonthlyPayment(principal, annualRatePct decimal.Decimal, termYears int) (decimal.Decimal, error) {
	if err := validateLoan(principal, annualRatePct, termYears); err != nil {
		return decimal.Zero, err
	}
	n := int64(termYears * monthsPerYear)
	r := monthlyRate(annualRatePct)
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(n)), nil
	}
	factor := compoundFactor(r, n)
	return principal.Mul(r).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1))), nil
}

// AmortizationSchedule lists every payment of the loan with its interest and
// principal split. The final payment absorbs rounding so the balance ends at zero.
func AmortizationSchedule(principal, annualRatePct decimal.Decimal, termYears int) ([]domain.AmortizationRow, error) {
	payment, err := MonthlyPayment(principal, annualRatePct, termYears)
	if err != nil {
		return nil, err
	}
	n := termYears * monthsPerYear
	r := monthlyRate(annualRatePct)

	rows := make([]domain.AmortizationRow, 0, n)
	balance := principal
	for i := 1; i <= n; i++ {
		interest := balance.Mul(r)
		principalPart := payment.Sub(interest)
		amount := payment
		if i == n || principalPart.GreaterThan(balance) {
			principalPart = balance
			amount = balance.Add(interest)
		}
		balance = balance.Sub(principalPart)
		rows = append(rows, domain.AmortizationRow{
			Payment:   i,
			Amount:    amount,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
	}
	return rows, nil
}

// TotalInterest is the interest paid over the full term: payment * n - principal.
func TotalInterest(principal, annualRatePct decimal.Decimal, termYears int) (decimal.Decimal, error) {
	payment, err := MonthlyPayment(principal, annualRatePct, termYears)
	if err != nil {
		return decimal.Zero, err
	}
	n := decimal.NewFromInt(int64(termYears * monthsPerYear))
	interest := payment.Mul(n).Sub(principal)
	if interest.IsNegative() {
		return decimal.Zero, nil
	}
	return interest, nil
}

// RemainingBalance returns the outstanding principal after paymentsMade payments.
func RemainingBalance(principal, annualRatePct decimal.Decimal, termYears, paymentsMade int) (decimal.Decimal, error) {
	schedule, err := AmortizationSchedule(principal, annualRatePct, termYears)
	if err != nil {
		return decimal.Zero, err
	}
	switch {
	case paymentsMade <= 0:
		return principal, nil
	case paymentsMade >= len(schedule):
		return decimal.Zero, nil
	}
	return schedule[paymentsMade-1].Balance, nil
}

func validateLoan(principal, annualRatePct decimal.Decimal, termYears int) error {
	if !principal.IsPositive() {
		return &domain.ErrDegenerateInput{Field: "principal", Reason: "must be greater than zero"}
	}
	if termYears <= 0 {
		return &domain.ErrDegenerateInput{Field: "term_years", Reason: "must be greater than zero"}
	}
	if termYears > domain.MaxTermYears {
		return &domain.ErrDegenerateInput{Field: "term_years", Reason: fmt.Sprintf("cannot exceed %d", domain.MaxTermYears)}
	}
	if annualRatePct.IsNegative() {
		return &domain.ErrDegenerateInput{Field: "interest_rate_pct", Reason: "cannot be negative"}
	}
	return nil
}

func monthlyRate(annualRatePct decimal.Decimal) decimal.Decimal {
	return dec.PercentToFraction(annualRatePct).Div(decimal.NewFromInt(monthsPerYear))
}

// compoundFactor computes (1+r)^n by repeated squaring, rounding each step.
func compoundFactor(r decimal.Decimal, n int64) decimal.Decimal {
	result := decimal.NewFromInt(1)
	base := result.Add(r)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(compoundPrecision)
		}
		base = base.Mul(base).Round(compoundPrecision)
		n >>= 1
	}
	return result
}
