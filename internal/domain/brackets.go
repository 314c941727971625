package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Jurisdiction codes for the bracket tables shipped with the calculator.
const (
	JurisdictionFederal         = "CA"
	JurisdictionOntario         = "ON"
	JurisdictionBritishColumbia = "BC"
	JurisdictionAlberta         = "AB"
	JurisdictionQuebec          = "QC"
)

// TaxBracket is one marginal-rate band. A nil Max means the bracket has no upper bound.
type TaxBracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min" toml:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty" toml:"max,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate" toml:"rate"`
}

// Unbounded reports whether the bracket taxes all income above Min.
func (b TaxBracket) Unbounded() bool {
	return b.Max == nil
}

// UnmarshalYAML accepts numbers or quoted strings for every field and
// leaves Max nil when it is absent, null or "unbounded".
func (b *TaxBracket) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Min  string  `yaml:"min"`
		Max  *string `yaml:"max,omitempty"`
		Rate string  `yaml:"rate"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	lower, err := decimal.NewFromString(strings.TrimSpace(aux.Min))
	if err != nil {
		return fmt.Errorf("bracket min %q: %w", aux.Min, err)
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(aux.Rate))
	if err != nil {
		return fmt.Errorf("bracket rate %q: %w", aux.Rate, err)
	}
	b.Min = lower
	b.Rate = rate
	b.Max = nil

	if aux.Max != nil {
		raw := strings.ToLower(strings.TrimSpace(*aux.Max))
		if raw != "" && raw != "unbounded" && raw != "infinity" && raw != "inf" {
			upper, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("bracket max %q: %w", *aux.Max, err)
			}
			b.Max = &upper
		}
	}
	return nil
}

// BracketTable is a progressive marginal-rate schedule for one jurisdiction and tax year.
type BracketTable struct {
	Jurisdiction string       `yaml:"jurisdiction" json:"jurisdiction" toml:"jurisdiction"`
	Name         string       `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Year         int          `yaml:"year" json:"year" toml:"year"`
	Brackets     []TaxBracket `yaml:"brackets" json:"brackets" toml:"brackets"`
}

// NewBracketTable builds and validates a table. Tables are immutable after construction.
func NewBracketTable(jurisdiction string, year int, brackets []TaxBracket) (BracketTable, error) {
	t := BracketTable{
		Jurisdiction: strings.ToUpper(strings.TrimSpace(jurisdiction)),
		Year:         year,
		Brackets:     append([]TaxBracket(nil), brackets...),
	}
	if err := t.Validate(); err != nil {
		return BracketTable{}, err
	}
	return t, nil
}

// MustBracketTable is NewBracketTable for static tables known to be valid.
func MustBracketTable(jurisdiction string, year int, brackets []TaxBracket) BracketTable {
	t, err := NewBracketTable(jurisdiction, year, brackets)
	if err != nil {
		panic(err)
	}
	return t
}

// Key identifies the table in a registry, e.g. "ON/2024".
func (t BracketTable) Key() string {
	return fmt.Sprintf("%s/%d", t.Jurisdiction, t.Year)
}

// Validate checks that brackets start at zero, are contiguous and ascending,
// carry rates in [0,1] and that exactly the final bracket is unbounded.
func (t BracketTable) Validate() error {
	fail := func(format string, args ...any) error {
		return &ErrInvalidConfiguration{Table: t.Key(), Reason: fmt.Sprintf(format, args...)}
	}

	if t.Jurisdiction == "" {
		return fail("jurisdiction is required")
	}
	if t.Year <= 0 {
		return fail("tax year must be positive")
	}
	if len(t.Brackets) == 0 {
		return fail("at least one bracket is required")
	}
	if !t.Brackets[0].Min.IsZero() {
		return fail("first bracket must start at 0, got %s", t.Brackets[0].Min)
	}

	last := len(t.Brackets) - 1
	for i, b := range t.Brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fail("bracket %d: rate %s must be between 0 and 1", i, b.Rate)
		}
		if b.Unbounded() {
			if i != last {
				return fail("bracket %d: only the final bracket may be unbounded", i)
			}
			continue
		}
		if i == last {
			return fail("final bracket must be unbounded, got max %s", b.Max)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fail("bracket %d: max %s must exceed min %s", i, b.Max, b.Min)
		}
		next := t.Brackets[i+1]
		if !next.Min.Equal(*b.Max) {
			return fail("bracket %d: next bracket starts at %s, expected %s", i, next.Min, b.Max)
		}
	}
	return nil
}
