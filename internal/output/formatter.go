package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ProjectionComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file with extension.
func WriteFormatted(f Formatter, results *domain.ProjectionComparison, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("annuity_projection_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteFormattedTo runs a formatter and writes output to an explicit path.
func WriteFormattedTo(f Formatter, results *domain.ProjectionComparison, path string) error {
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	HTMLFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"csv-yearly":  "csv",
	"html-report": "html",
	"json-pretty": "json",
	"pdf-report":  "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
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
