package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

// htmlScenario is the template-facing view of one scenario: everything
// preformatted so the template stays dumb.
type htmlScenario struct {
	Name            string
	StartValue      string
	PayoutRate      string
	RollupRate      string
	IncomeStartYear int
	AnnualIncome    string
	TotalIncome     string
	FinalValue      string
	DepletionYear   int
	Rows            []htmlRow
}

type htmlRow struct {
	Year          int
	Value         string
	Income        string
	BenefitBase   string
	AvgReturn     string
	AppliedReturn string
	RollupUsed    bool
}

type htmlMonteCarlo struct {
	NumTrials    int
	SuccessRate  string
	MedianEnding string
	P10          string
	P25          string
	P75          string
	P90          string
}

type htmlReport struct {
	Mode           string
	ClientAge      int
	Client         htmlScenario
	Comparison     *htmlScenario
	Recommendation *Recommendation
	Preferred      string
	IncomeDelta    string
	MonteCarlo     *htmlMonteCarlo
	Assumptions    []string
}

func htmlScenarioView(sc domain.ScenarioProjection) htmlScenario {
	view := htmlScenario{
		Name:            sc.Name,
		StartValue:      FormatCurrency(sc.StartValue),
		PayoutRate:      FormatRate(sc.PayoutRate),
		RollupRate:      FormatRate(sc.RollupRate),
		IncomeStartYear: sc.IncomeStartYear,
		AnnualIncome:    FormatCurrency(sc.AnnualIncome),
		TotalIncome:     FormatCurrency(sc.TotalIncome),
		FinalValue:      FormatCurrency(sc.FinalValue),
		DepletionYear:   sc.DepletionYear,
	}
	for _, p := range sc.Trajectory {
		view.Rows = append(view.Rows, htmlRow{
			Year:          p.Year,
			Value:         p.Value.StringFixed(2),
			Income:        p.Income.StringFixed(2),
			BenefitBase:   p.BenefitBase.StringFixed(2),
			AvgReturn:     FormatSignedRate(p.AvgReturn),
			AppliedReturn: FormatSignedRate(p.AppliedReturn),
			RollupUsed:    p.RollupUsed,
		})
	}
	return view
}

func (h HTMLFormatter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	report := htmlReport{
		Mode:        results.Mode,
		ClientAge:   results.ClientAge,
		Client:      htmlScenarioView(results.Client),
		Assumptions: results.Assumptions,
	}

	if results.Comparison != nil {
		view := htmlScenarioView(*results.Comparison)
		report.Comparison = &view
		rec := AnalyzeComparison(results)
		report.Recommendation = &rec
		report.Preferred = rec.PreferredScenario
		report.IncomeDelta = FormatCurrency(rec.AnnualIncomeChange)
	}

	if mc := results.MonteCarlo; mc != nil {
		report.MonteCarlo = &htmlMonteCarlo{
			NumTrials:    mc.NumTrials,
			SuccessRate:  mc.SuccessRate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%",
			MedianEnding: FormatCurrency(mc.MedianEndingValue),
			P10:          FormatCurrency(mc.PercentileRanges.P10),
			P25:          FormatCurrency(mc.PercentileRanges.P25),
			P75:          FormatCurrency(mc.PercentileRanges.P75),
			P90:          FormatCurrency(mc.PercentileRanges.P90),
		}
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
