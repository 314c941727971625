package dateutil

import (
	"time"

	"github.com/shopspring/decimal"
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// HoldingYears returns the fractional number of years between purchase and sale,
// using a 365.25-day year. A sale on or before the purchase date yields zero.
func HoldingYears(purchaseDate, saleDate time.Time) decimal.Decimal {
	if !saleDate.After(purchaseDate) {
		return decimal.Zero
	}
	days := decimal.NewFromFloat(saleDate.Sub(purchaseDate).Hours() / 24)
	return days.Div(decimal.NewFromFloat(365.25)).Round(4)
}

// WholeMonthsBetween counts the completed calendar months between two dates.
func WholeMonthsBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	return months
}

// MonthLabel returns the short month name for a zero-based projection index,
// cycling Jan..Dec for projections longer than a year.
func MonthLabel(index int) string {
	i := index % 12
	if i < 0 {
		i += 12
	}
	return monthLabels[i]
}

// MonthLabelFrom returns the label for the index-th month after start, e.g. "Mar 2025".
func MonthLabelFrom(start time.Time, index int) string {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	return first.AddDate(0, index, 0).Format("Jan 2006")
}
