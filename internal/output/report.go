package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/starterpackapp/investment-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when no formatter matches a requested format.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Render formats results with the named formatter and writes them to w.
func Render(w io.Writer, results *domain.CalculationResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return unsupported(format)
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes results to timestamped files in dir. The "all" format
// writes the verbose console report, the detailed CSV and the JSON document.
func GenerateReport(results *domain.CalculationResult, format, dir string) ([]string, error) {
	if format == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}, JSONFormatter{}} {
			name, err := WriteFormatted(f, results, dir, FileExtension(f.Name()))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	name, err := WriteFormatted(f, results, dir, FileExtension(format))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveInputs writes inputs as YAML so an analysis can be re-run later.
func SaveInputs(inputs *domain.FinancialInputs, filename string) error {
	b, err := yaml.Marshal(inputs)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
