package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/starterpackapp/investment-calculator/internal/domain"
)

// Formatter renders a CalculationResult into bytes. Output must be
// deterministic for a given result.
type Formatter interface {
	Format(results *domain.CalculationResult) ([]byte, error)
	Name() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file with extension in dir.
func WriteFormatted(f Formatter, results *domain.CalculationResult, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	stamp := results.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	filename := filepath.Join(dir, fmt.Sprintf("investment_report_%s.%s", stamp.Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// registry maps canonical names to the built-in formatters.
var registry = func() map[string]Formatter {
	m := make(map[string]Formatter)
	for _, f := range []Formatter{
		ConsoleVerboseFormatter{},
		ConsoleFormatter{},
		CSVSummarizer{},
		CSVDetailedExporter{},
		JSONFormatter{},
	} {
		m[f.Name()] = f
	}
	return m
}()

// GetFormatterByName resolves a format name or alias, case-insensitively.
// It returns nil for unknown names.
func GetFormatterByName(name string) Formatter {
	return registry[NormalizeFormatName(name)]
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"text":            "console",
	"summary":         "console-lite",
	"lite":            "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-projection":  "csv",
	"json-pretty":     "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FileExtension returns the file extension used when a format is written to disk.
func FileExtension(format string) string {
	switch n := NormalizeFormatName(format); {
	case strings.Contains(n, "csv"):
		return "csv"
	case n == "json":
		return "json"
	default:
		return "txt"
	}
}
