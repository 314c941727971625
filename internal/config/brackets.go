package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed brackets/ca_2024.yaml
var defaultBracketsYAML []byte

// DefaultTaxYear is the most recent year with built-in bracket tables.
const DefaultTaxYear = 2024

type tableKey struct {
	jurisdiction string
	year         int
}

// BracketRegistry holds validated bracket tables keyed by jurisdiction and year.
type BracketRegistry struct {
	tables map[tableKey]domain.BracketTable
}

// NewBracketRegistry creates an empty registry.
func NewBracketRegistry() *BracketRegistry {
	return &BracketRegistry{tables: make(map[tableKey]domain.BracketTable)}
}

// DefaultRegistry returns a registry loaded with the built-in federal and provincial tables.
func DefaultRegistry() (*BracketRegistry, error) {
	r := NewBracketRegistry()
	tables, err := ParseBrackets(defaultBracketsYAML, "yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in brackets: %w", err)
	}
	for _, t := range tables {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register validates a table and adds it, replacing any table with the same key.
func (r *BracketRegistry) Register(t domain.BracketTable) error {
	table, err := domain.NewBracketTable(t.Jurisdiction, t.Year, t.Brackets)
	if err != nil {
		return err
	}
	table.Name = t.Name
	r.tables[tableKey{table.Jurisdiction, table.Year}] = table
	return nil
}

// Lookup returns the table for a jurisdiction and tax year.
func (r *BracketRegistry) Lookup(jurisdiction string, year int) (domain.BracketTable, error) {
	j := strings.ToUpper(strings.TrimSpace(jurisdiction))
	t, ok := r.tables[tableKey{j, year}]
	if !ok {
		return domain.BracketTable{}, &domain.ErrUnknownTable{Jurisdiction: j, Year: year}
	}
	return t, nil
}

// Tables returns every registered table ordered by year, then federal first,
// then jurisdiction code.
func (r *BracketRegistry) Tables() []domain.BracketTable {
	out := make([]domain.BracketTable, 0, len(r.tables))
	for _, t := range r.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if (a.Jurisdiction == domain.JurisdictionFederal) != (b.Jurisdiction == domain.JurisdictionFederal) {
			return a.Jurisdiction == domain.JurisdictionFederal
		}
		return a.Jurisdiction < b.Jurisdiction
	})
	return out
}

// LoadFile reads tables from a .yaml, .yml or .toml file and registers them.
// Tables in the file override built-in tables with the same jurisdiction and year.
func (r *BracketRegistry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	tables, err := ParseBrackets(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, t := range tables {
		if err := r.Register(t); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// ParseBrackets decodes a bracket file in the given format ("yaml", "yml" or "toml").
// Tables are returned as written; Register validates them.
func ParseBrackets(data []byte, format string) ([]domain.BracketTable, error) {
	switch format {
	case "yaml", "yml":
		var file struct {
			Tables []domain.BracketTable `yaml:"tables"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if len(file.Tables) == 0 {
			return nil, fmt.Errorf("no tables defined")
		}
		return file.Tables, nil
	case "toml":
		return parseTOMLBrackets(data)
	default:
		return nil, fmt.Errorf("unsupported bracket file format %q (want yaml or toml)", format)
	}
}

type tomlBracketFile struct {
	Tables []struct {
		Jurisdiction string `toml:"jurisdiction"`
		Name         string `toml:"name"`
		Year         int    `toml:"year"`
		Brackets     []struct {
			Min  any `toml:"min"`
			Max  any `toml:"max"`
			Rate any `toml:"rate"`
		} `toml:"brackets"`
	} `toml:"tables"`
}

func parseTOMLBrackets(data []byte) ([]domain.BracketTable, error) {
	var file tomlBracketFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if len(file.Tables) == 0 {
		return nil, fmt.Errorf("no tables defined")
	}

	tables := make([]domain.BracketTable, 0, len(file.Tables))
	for _, ft := range file.Tables {
		t := domain.BracketTable{Jurisdiction: ft.Jurisdiction, Name: ft.Name, Year: ft.Year}
		for i, fb := range ft.Brackets {
			lower, err := tomlDecimal(fb.Min)
			if err != nil {
				return nil, fmt.Errorf("%s/%d bracket %d min: %w", ft.Jurisdiction, ft.Year, i, err)
			}
			rate, err := tomlDecimal(fb.Rate)
			if err != nil {
				return nil, fmt.Errorf("%s/%d bracket %d rate: %w", ft.Jurisdiction, ft.Year, i, err)
			}
			b := domain.TaxBracket{Min: lower, Rate: rate}
			if fb.Max != nil {
				upper, err := tomlDecimal(fb.Max)
				if err != nil {
					return nil, fmt.Errorf("%s/%d bracket %d max: %w", ft.Jurisdiction, ft.Year, i, err)
				}
				b.Max = &upper
			}
			t.Brackets = append(t.Brackets, b)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// tomlDecimal converts a decoded TOML integer, float or string into a decimal.
func tomlDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	case nil:
		return decimal.Zero, fmt.Errorf("value is required")
	default:
		return decimal.Zero, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}
