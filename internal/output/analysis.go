package output

import (
	"github.com/shopspring/decimal"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

// Recommendation summarizes how the comparison product stacks up against the
// client's current contracts.
type Recommendation struct {
	PreferredScenario    string
	AnnualIncomeChange   decimal.Decimal
	PercentageChange     decimal.Decimal
	LifetimeIncomeChange decimal.Decimal
}

// AnalyzeComparison ranks the two scenarios by locked-in annual income.
// Extracted from embedded console logic for testability.
func AnalyzeComparison(results *domain.ProjectionComparison) Recommendation {
	if results == nil || results.Comparison == nil {
		return Recommendation{}
	}

	client := results.Client
	comparison := *results.Comparison

	delta := comparison.AnnualIncome.Sub(client.AnnualIncome)
	pct := decimal.Zero
	if !client.AnnualIncome.IsZero() {
		pct = delta.Div(client.AnnualIncome).Mul(decimal.NewFromInt(100))
	}

	preferred := client.Name
	if comparison.AnnualIncome.GreaterThan(client.AnnualIncome) {
		preferred = comparison.Name
	}

	return Recommendation{
		PreferredScenario:    preferred,
		AnnualIncomeChange:   delta,
		PercentageChange:     pct,
		LifetimeIncomeChange: comparison.TotalIncome.Sub(client.TotalIncome),
	}
}
