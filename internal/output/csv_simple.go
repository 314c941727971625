package output

import (
	"bytes"
	"encoding/csv"

	"github.com/starterpackapp/investment-calculator/internal/domain"
)

// CSVSummarizer implements the simple projection CSV output (one row per month).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "Label", "Revenue", "Expenses", "NetCashFlow", "Cumulative"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range results.Projection {
		row := []string{
			intToString(r.Month),
			r.Label,
			r.Revenue.StringFixed(2),
			r.Expenses.StringFixed(2),
			r.NetCashFlow.StringFixed(2),
			r.Cumulative.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
