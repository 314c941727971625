package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/starterpackapp/investment-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)

	tables := registry.Tables()
	require.Len(t, tables, 5)
	assert.Equal(t, domain.JurisdictionFederal, tables[0].Jurisdiction, "federal table sorts first")

	expected := map[string]int{"CA": 5, "ON": 5, "BC": 7, "AB": 5, "QC": 4}
	for j, count := range expected {
		table, err := registry.Lookup(j, 2024)
		require.NoError(t, err, j)
		assert.Len(t, table.Brackets, count, j)
		assert.True(t, table.Brackets[len(table.Brackets)-1].Unbounded(), j)
	}

	on, err := registry.Lookup("on", 2024)
	require.NoError(t, err)
	assert.Equal(t, "Ontario", on.Name)
	assert.True(t, on.Brackets[1].Rate.Equal(decimal.RequireFromString("0.0915")))
	assert.True(t, on.Brackets[1].Max.Equal(decimal.NewFromInt(102894)))
}

func TestRegistryLookupUnknown(t *testing.T) {
	registry, err := DefaultRegistry()
	require.NoError(t, err)

	_, err = registry.Lookup("ON", 1999)
	var unknown *domain.ErrUnknownTable
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, 1999, unknown.Year)
	assert.EqualError(t, err, "no bracket table for ON/1999")
}

func TestRegistryRegisterRejectsInvalidTable(t *testing.T) {
	registry := NewBracketRegistry()
	err := registry.Register(domain.BracketTable{Jurisdiction: "ON", Year: 2025})

	var cfgErr *domain.ErrInvalidConfiguration
	require.True(t, errors.As(err, &cfgErr))
	assert.Empty(t, registry.Tables())
}

func TestLoadFile_YAMLOverride(t *testing.T) {
	src := `
tables:
  - jurisdiction: on
    name: Ontario
    year: 2024
    brackets:
      - {min: 0, max: 60000, rate: 0.05}
      - {min: 60000, rate: 0.10}
`
	path := filepath.Join(t.TempDir(), "override.yml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	registry, err := DefaultRegistry()
	require.NoError(t, err)
	require.NoError(t, registry.LoadFile(path))

	on, err := registry.Lookup("ON", 2024)
	require.NoError(t, err)
	assert.Len(t, on.Brackets, 2)
	assert.Len(t, registry.Tables(), 5)
}

func TestLoadFile_TOML(t *testing.T) {
	src := `
[[tables]]
jurisdiction = "ON"
name = "Ontario"
year = 2025

[[tables.brackets]]
min = 0
max = 52886
rate = 0.0505

[[tables.brackets]]
min = 52886
max = 105775
rate = "0.0915"

[[tables.brackets]]
min = 105775
rate = 0.1116
`
	path := filepath.Join(t.TempDir(), "on_2025.toml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	registry := NewBracketRegistry()
	require.NoError(t, registry.LoadFile(path))

	table, err := registry.Lookup("ON", 2025)
	require.NoError(t, err)
	require.Len(t, table.Brackets, 3)
	assert.True(t, table.Brackets[0].Rate.Equal(decimal.RequireFromString("0.0505")))
	assert.True(t, table.Brackets[1].Rate.Equal(decimal.RequireFromString("0.0915")))
	assert.True(t, table.Brackets[1].Max.Equal(decimal.NewFromInt(105775)))
	assert.True(t, table.Brackets[2].Unbounded())
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	registry := NewBracketRegistry()

	assert.ErrorContains(t, registry.LoadFile(filepath.Join(dir, "missing.yaml")), "failed to read file")

	txt := filepath.Join(dir, "brackets.txt")
	require.NoError(t, os.WriteFile(txt, []byte("tables: []"), 0o644))
	assert.ErrorContains(t, registry.LoadFile(txt), "unsupported bracket file format")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("tables: []\n"), 0o644))
	assert.ErrorContains(t, registry.LoadFile(empty), "no tables defined")

	gap := filepath.Join(dir, "gap.toml")
	require.NoError(t, os.WriteFile(gap, []byte(`
[[tables]]
jurisdiction = "AB"
year = 2025
[[tables.brackets]]
min = 0
max = 100
rate = 0.1
[[tables.brackets]]
min = 150
rate = 0.2
`), 0o644))
	err := registry.LoadFile(gap)
	var cfgErr *domain.ErrInvalidConfiguration
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "expected 100")

	badRate := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badRate, []byte(`
[[tables]]
jurisdiction = "AB"
year = 2025
[[tables.brackets]]
min = 0
rate = "ten percent"
`), 0o644))
	assert.ErrorContains(t, registry.LoadFile(badRate), "bracket 0 rate")
}
