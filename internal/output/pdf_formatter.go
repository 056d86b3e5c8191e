package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfPageWidth    = 210.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders the comparison as a printable A4 report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.ProjectionComparison) ([]byte, error) {
	doc := &pdfReport{
		pdf:     fpdf.New("P", "mm", "A4", ""),
		results: results,
	}
	doc.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.pdf.SetAutoPageBreak(true, pdfMarginBottom)

	doc.addTitlePage()
	doc.addScenarioSummaries()
	doc.addTrajectoryPages()

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf     *fpdf.Fpdf
	results *domain.ProjectionComparison
}

func (r *pdfReport) addTitlePage() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 26)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(50)
	r.pdf.CellFormat(pdfContentWidth, 14, "Annuity Projection Report", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "", 13)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.Ln(8)
	subtitle := fmt.Sprintf("Return mode: %s  |  Client age: %d", r.results.Mode, r.results.ClientAge)
	r.pdf.CellFormat(pdfContentWidth, 9, subtitle, "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.Ln(12)
	generated := fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006"))
	r.pdf.CellFormat(pdfContentWidth, 8, generated, "", 1, "C", false, 0, "")

	if r.results.Comparison != nil {
		rec := AnalyzeComparison(r.results)
		r.pdf.Ln(15)
		r.pdf.SetFillColor(238, 247, 238)
		r.pdf.SetDrawColor(150, 200, 150)
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(0, 90, 0)
		line := fmt.Sprintf("Preferred for income: %s (annual income delta %s)",
			rec.PreferredScenario, FormatCurrency(rec.AnnualIncomeChange))
		r.pdf.CellFormat(pdfContentWidth, 9, line, "1", 1, "C", true, 0, "")
	}

	if len(r.results.Assumptions) > 0 {
		r.pdf.Ln(12)
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(0, 51, 102)
		r.pdf.CellFormat(pdfContentWidth, 7, "Assumptions", "", 1, "L", false, 0, "")
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.SetTextColor(50, 50, 50)
		for _, a := range r.results.Assumptions {
			r.pdf.CellFormat(pdfContentWidth, 5, "- "+a, "", 1, "L", false, 0, "")
		}
	}

	r.pdf.Ln(15)
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(pdfContentWidth, 4,
		"This document is for informational purposes only and does not constitute financial advice. "+
			"Projections are based on the assumptions provided and actual results may vary.", "", "C", false)
}

func (r *pdfReport) addScenarioSummaries() {
	r.pdf.AddPage()
	r.drawSectionHeader("Scenario Summary")

	r.drawScenarioSummary(r.results.Client)
	if r.results.Comparison != nil {
		r.pdf.Ln(6)
		r.drawScenarioSummary(*r.results.Comparison)
	}

	if mc := r.results.MonteCarlo; mc != nil {
		r.pdf.Ln(8)
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(0, 51, 102)
		r.pdf.CellFormat(pdfContentWidth, 7, fmt.Sprintf("Monte Carlo (%d trials)", mc.NumTrials), "", 1, "L", false, 0, "")

		widths := []float64{40, 35, 35, 35, 35}
		r.drawTableHeader([]string{"Success Rate", "Median End", "P10", "P25", "P90"}, widths)
		success := mc.SuccessRate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
		r.drawTableRow([]string{
			success,
			FormatCurrency(mc.MedianEndingValue),
			FormatCurrency(mc.PercentileRanges.P10),
			FormatCurrency(mc.PercentileRanges.P25),
			FormatCurrency(mc.PercentileRanges.P90),
		}, widths, false)
	}
}

func (r *pdfReport) drawScenarioSummary(sc domain.ScenarioProjection) {
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, sc.Name, "1", 1, "L", true, 0, "")
	r.pdf.SetFillColor(245, 247, 250)

	rows := [][]string{
		{"Start Value", FormatCurrency(sc.StartValue)},
		{"Payout Rate", fmt.Sprintf("%s from year %d", FormatRate(sc.PayoutRate), sc.IncomeStartYear)},
		{"Roll-Up Rate", FormatRate(sc.RollupRate)},
		{"Annual Income", FormatCurrency(sc.AnnualIncome)},
		{"Total Income", FormatCurrency(sc.TotalIncome)},
		{"Final Value", FormatCurrency(sc.FinalValue)},
	}
	if sc.DepletionYear > 0 {
		rows = append(rows, []string{"Value Depleted", fmt.Sprintf("%d", sc.DepletionYear)})
	}

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, row := range rows {
		r.pdf.CellFormat(60, 6, row[0], "LR", 0, "L", false, 0, "")
		r.pdf.CellFormat(pdfContentWidth-60, 6, row[1], "LR", 1, "R", false, 0, "")
	}
	r.pdf.CellFormat(pdfContentWidth, 1, "", "LRB", 1, "L", false, 0, "")
}

func (r *pdfReport) addTrajectoryPages() {
	r.drawTrajectory(r.results.Client)
	if r.results.Comparison != nil {
		r.drawTrajectory(*r.results.Comparison)
	}
}

func (r *pdfReport) drawTrajectory(sc domain.ScenarioProjection) {
	r.pdf.AddPage()
	r.drawSectionHeader("Year by Year - " + sc.Name)

	widths := []float64{20, 38, 32, 38, 26, 26}
	headers := []string{"Year", "Value", "Income", "Benefit Base", "Avg Rtn", "Applied"}
	r.drawTableHeader(headers, widths)

	for i, p := range sc.Trajectory {
		if r.pdf.GetY() > 265 {
			r.pdf.AddPage()
			r.drawTableHeader(headers, widths)
		}
		r.drawTableRow([]string{
			fmt.Sprintf("%d", p.Year),
			p.Value.StringFixed(2),
			p.Income.StringFixed(2),
			p.BenefitBase.StringFixed(2),
			FormatSignedRate(p.AvgReturn),
			FormatSignedRate(p.AppliedReturn),
		}, widths, i == len(sc.Trajectory)-1)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 15)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(4)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 8)
	for i, h := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		r.pdf.CellFormat(widths[i], 6, h, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, bold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	if bold {
		r.pdf.SetFont("Arial", "B", 8)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 8)
	}
	for i, c := range cells {
		align := "R"
		if i == 0 {
			align = "L"
		}
		r.pdf.CellFormat(widths[i], 5, c, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
