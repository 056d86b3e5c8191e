package output

import (
	"fmt"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

// extensionFor maps canonical formatter names to file extensions.
func extensionFor(format string) string {
	switch format {
	case "console":
		return "txt"
	default:
		return format
	}
}

// GenerateReport renders the projection through the named formatter. With an
// empty outputPath the report goes to a timestamped file in the working
// directory; otherwise it is written to outputPath.
func GenerateReport(results *domain.ProjectionComparison, format, outputPath string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("unknown format %q (available: %v)", format, AvailableFormatterNames())
	}
	if outputPath != "" {
		if err := WriteFormattedTo(f, results, outputPath); err != nil {
			return "", err
		}
		return outputPath, nil
	}
	return WriteFormatted(f, results, extensionFor(f.Name()))
}
