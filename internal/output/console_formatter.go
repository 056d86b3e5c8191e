package output

import (
	"bytes"
	"fmt"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "ANNUITY PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Mode: %s   Client Age: %d\n", results.Mode, results.ClientAge)
	fmt.Fprintln(&buf)

	writeScenarioSummary(&buf, results.Client)
	if results.Comparison != nil {
		fmt.Fprintln(&buf)
		writeScenarioSummary(&buf, *results.Comparison)
	}

	rec := AnalyzeComparison(results)
	if rec.PreferredScenario != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Preferred for income: %s (annual income delta %s / %s%%)\n",
			rec.PreferredScenario, FormatCurrency(rec.AnnualIncomeChange), rec.PercentageChange.StringFixed(1))
	}

	if mc := results.MonteCarlo; mc != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "MONTE CARLO (%d trials)\n", mc.NumTrials)
		fmt.Fprintf(&buf, "  Success Rate:   %s%%\n", mc.SuccessRate.Mul(hundred).StringFixed(1))
		fmt.Fprintf(&buf, "  Median Ending:  %s\n", FormatCurrency(mc.MedianEndingValue))
		fmt.Fprintf(&buf, "  P10 / P90:      %s / %s\n",
			FormatCurrency(mc.PercentileRanges.P10), FormatCurrency(mc.PercentileRanges.P90))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "YEAR BY YEAR (client contracts)")
	fmt.Fprintf(&buf, "%-6s %14s %12s %14s %9s %9s %7s\n",
		"Year", "Value", "Income", "BenefitBase", "AvgRet", "Applied", "Rollup")
	for _, p := range results.Client.Trajectory {
		rollup := ""
		if p.RollupUsed {
			rollup = "yes"
		}
		fmt.Fprintf(&buf, "%-6d %14s %12s %14s %9s %9s %7s\n",
			p.Year,
			p.Value.StringFixed(2),
			p.Income.StringFixed(2),
			p.BenefitBase.StringFixed(2),
			FormatSignedRate(p.AvgReturn),
			FormatSignedRate(p.AppliedReturn),
			rollup,
		)
	}

	if len(results.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Assumptions:")
		for _, a := range results.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}

	return buf.Bytes(), nil
}

func writeScenarioSummary(buf *bytes.Buffer, sc domain.ScenarioProjection) {
	fmt.Fprintf(buf, "%s\n", sc.Name)
	fmt.Fprintf(buf, "  Start Value:     %s\n", FormatCurrency(sc.StartValue))
	fmt.Fprintf(buf, "  Payout Rate:     %s (income from year %d)\n", FormatRate(sc.PayoutRate), sc.IncomeStartYear)
	fmt.Fprintf(buf, "  Roll-Up Rate:    %s\n", FormatRate(sc.RollupRate))
	fmt.Fprintf(buf, "  Annual Income:   %s\n", FormatCurrency(sc.AnnualIncome))
	fmt.Fprintf(buf, "  Total Income:    %s\n", FormatCurrency(sc.TotalIncome))
	fmt.Fprintf(buf, "  Final Value:     %s\n", FormatCurrency(sc.FinalValue))
	if sc.DepletionYear != 0 {
		fmt.Fprintf(buf, "  Value Depleted:  %d\n", sc.DepletionYear)
	}
}
