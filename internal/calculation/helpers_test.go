package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func bracket(lower, upper int64, rate string) domain.TaxBracket {
	top := decimal.NewFromInt(upper)
	return domain.TaxBracket{Min: decimal.NewFromInt(lower), Max: &top, Rate: d(rate)}
}

func topBracket(lower int64, rate string) domain.TaxBracket {
	return domain.TaxBracket{Min: decimal.NewFromInt(lower), Rate: d(rate)}
}

func federal2024() domain.BracketTable {
	return domain.MustBracketTable(domain.JurisdictionFederal, 2024, []domain.TaxBracket{
		bracket(0, 55867, "0.15"),
		bracket(55867, 111733, "0.205"),
		bracket(111733, 173205, "0.26"),
		bracket(173205, 246752, "0.29"),
		topBracket(246752, "0.33"),
	})
}

func ontario2024() domain.BracketTable {
	return domain.MustBracketTable(domain.JurisdictionOntario, 2024, []domain.TaxBracket{
		bracket(0, 51446, "0.0505"),
		bracket(51446, 102894, "0.0915"),
		bracket(102894, 150000, "0.1116"),
		bracket(150000, 220000, "0.1216"),
		topBracket(220000, "0.1316"),
	})
}

// staticBrackets is an in-memory BracketSource.
type staticBrackets map[string]domain.BracketTable

func (s staticBrackets) Lookup(jurisdiction string, year int) (domain.BracketTable, error) {
	t, ok := s[jurisdiction]
	if !ok || t.Year != year {
		return domain.BracketTable{}, &domain.ErrUnknownTable{Jurisdiction: jurisdiction, Year: year}
	}
	return t, nil
}

func testBrackets() staticBrackets {
	return staticBrackets{
		domain.JurisdictionFederal: federal2024(),
		domain.JurisdictionOntario: ontario2024(),
	}
}

func assertDecimalNear(t *testing.T, expected, actual, tolerance decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if actual.Sub(expected).Abs().GreaterThan(tolerance) {
		t.Errorf("expected %s, got %s (tolerance %s) %v", expected, actual, tolerance, msgAndArgs)
	}
}
