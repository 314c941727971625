package output

import (
	"encoding/json"

	"github.com/starterpackapp/investment-calculator/internal/domain"
)

// JSONFormatter serializes the calculation result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.CalculationResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
