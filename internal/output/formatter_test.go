package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

func sampleResults() *domain.ProjectionComparison {
	points := func(base int64) []domain.ProjectionPoint {
		out := make([]domain.ProjectionPoint, 0, 4)
		value := decimal.NewFromInt(base)
		for i := 0; i < 4; i++ {
			income := decimal.Zero
			if i >= 2 {
				income = decimal.NewFromInt(6050)
			}
			out = append(out, domain.ProjectionPoint{
				Year:          2026 + i,
				Value:         value,
				Income:        income,
				BenefitBase:   value,
				AvgReturn:     decimal.NewFromFloat(0.07),
				AppliedReturn: decimal.NewFromFloat(0.07),
			})
			value = value.Sub(income)
		}
		return out
	}

	clientPoints := points(121000)
	return &domain.ProjectionComparison{
		Client: domain.ScenarioProjection{
			Name:            "Current Contracts",
			StartValue:      decimal.NewFromInt(100000),
			PayoutRate:      decimal.NewFromFloat(0.05),
			RollupRate:      decimal.NewFromFloat(0.07),
			IncomeStartYear: 2,
			AnnualIncome:    decimal.NewFromInt(6050),
			TotalIncome:     decimal.NewFromInt(12100),
			FinalValue:      clientPoints[len(clientPoints)-1].Value,
			Trajectory:      clientPoints,
		},
		Comparison: &domain.ScenarioProjection{
			Name:            "Comparison Product",
			StartValue:      decimal.NewFromInt(100000),
			PayoutRate:      decimal.NewFromFloat(0.061),
			RollupRate:      decimal.NewFromFloat(0.07),
			IncomeStartYear: 2,
			AnnualIncome:    decimal.NewFromInt(7381),
			TotalIncome:     decimal.NewFromInt(14762),
			Trajectory:      points(121000),
		},
		ClientAge:            67,
		ComparisonPayoutRate: decimal.NewFromFloat(0.061),
		Mode:                 "fixed",
		MonteCarlo: &domain.MonteCarloResult{
			NumTrials:         100,
			SuccessRate:       decimal.NewFromFloat(0.87),
			MedianEndingValue: decimal.NewFromInt(95000),
			PercentileRanges: domain.PercentileRanges{
				P10: decimal.NewFromInt(40000),
				P25: decimal.NewFromInt(65000),
				P50: decimal.NewFromInt(95000),
				P75: decimal.NewFromInt(120000),
				P90: decimal.NewFromInt(150000),
			},
		},
		Assumptions: []string{"Horizon: 30 years", "Mode: fixed"},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json", "html", "pdf"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q", name)
		assert.Equal(t, name, f.Name())
	}
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestFormatterAliases(t *testing.T) {
	cases := map[string]string{
		"text":        "console",
		"TXT":         "console",
		"csv-yearly":  "csv",
		"html-report": "html",
		"json-pretty": "json",
		"pdf-report":  "pdf",
		" Console ":   "console",
	}
	for alias, want := range cases {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, "alias %q", alias)
		assert.Equal(t, want, f.Name(), "alias %q", alias)
	}
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "html", "json", "pdf"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "csv-yearly")
}

func TestConsoleFormat(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResults())
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "ANNUITY PROJECTION SUMMARY")
	assert.Contains(t, text, "Current Contracts")
	assert.Contains(t, text, "Comparison Product")
	assert.Contains(t, text, "Preferred for income: Comparison Product")
	assert.Contains(t, text, "MONTE CARLO (100 trials)")
	assert.Contains(t, text, "87.0%")
	assert.Contains(t, text, "2026")
	assert.Contains(t, text, "Horizon: 30 years")
}

func TestCSVFormat(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleResults())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// Header plus four years per scenario.
	require.Len(t, rows, 1+4+4)
	assert.Equal(t, []string{"Scenario", "Year", "Value", "Income", "BenefitBase", "AvgReturn", "AppliedReturn", "RollupUsed"}, rows[0])
	assert.Equal(t, "Current Contracts", rows[1][0])
	assert.Equal(t, "2026", rows[1][1])
	assert.Equal(t, "Comparison Product", rows[5][0])
	assert.Equal(t, "6050.00", rows[3][3])
}

func TestJSONFormatRoundTrips(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleResults())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "client")
	assert.Contains(t, decoded, "comparison")
	assert.Contains(t, decoded, "monte_carlo")
	assert.Equal(t, "fixed", decoded["mode"])
}

func TestHTMLFormat(t *testing.T) {
	data, err := HTMLFormatter{}.Format(sampleResults())
	require.NoError(t, err)
	html := string(data)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Annuity Projection Report")
	assert.Contains(t, html, "Current Contracts")
	assert.Contains(t, html, "Comparison Product")
	assert.Contains(t, html, "Preferred for income:")
	assert.Contains(t, html, "Monte Carlo (100 trials)")
}

func TestHTMLFormatWithoutComparison(t *testing.T) {
	results := sampleResults()
	results.Comparison = nil
	results.MonteCarlo = nil

	data, err := HTMLFormatter{}.Format(results)
	require.NoError(t, err)
	html := string(data)
	assert.NotContains(t, html, "Preferred for income:")
	assert.NotContains(t, html, "Monte Carlo")
}

func TestPDFFormat(t *testing.T) {
	data, err := PDFFormatter{}.Format(sampleResults())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(data), 1000)
}
