package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CSVFormatter exports both trajectories as one row per simulated year.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Scenario", "Year", "Value", "Income", "BenefitBase", "AvgReturn", "AppliedReturn", "RollupUsed"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	if err := writeTrajectory(w, results.Client); err != nil {
		return nil, err
	}
	if results.Comparison != nil {
		if err := writeTrajectory(w, *results.Comparison); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeTrajectory(w *csv.Writer, sc domain.ScenarioProjection) error {
	for _, p := range sc.Trajectory {
		row := []string{
			sc.Name,
			strconv.Itoa(p.Year),
			p.Value.StringFixed(2),
			p.Income.StringFixed(2),
			p.BenefitBase.StringFixed(2),
			p.AvgReturn.StringFixed(4),
			p.AppliedReturn.StringFixed(4),
			strconv.FormatBool(p.RollupUsed),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
