package output

import (
	"encoding/json"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

// JSONFormatter serializes the projection comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
