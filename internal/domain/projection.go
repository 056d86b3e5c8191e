package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionPoint represents the state of a contract at the end of a single
// simulated year. A trajectory is a slice of these, one per year from year 0
// (the projection start) through the horizon inclusive, sorted ascending by
// calendar year. Points are never mutated after construction.
type ProjectionPoint struct {
	Year          int             `json:"year"`
	Value         decimal.Decimal `json:"value"`
	Income        decimal.Decimal `json:"income"`
	BenefitBase   decimal.Decimal `json:"benefit_base"`
	AvgReturn     decimal.Decimal `json:"avg_return"`
	AppliedReturn decimal.Decimal `json:"applied_return"`
	RollupUsed    bool            `json:"rollup_used"`
}

// ScenarioProjection bundles one simulated trajectory with the inputs that
// produced it and a few derived summary figures.
type ScenarioProjection struct {
	Name             string            `json:"name"`
	StartValue       decimal.Decimal   `json:"start_value"`
	PayoutRate       decimal.Decimal   `json:"payout_rate"`
	RollupRate       decimal.Decimal   `json:"rollup_rate"`
	IncomeStartYear  int               `json:"income_start_year"`
	AnnualIncome     decimal.Decimal   `json:"annual_income"`
	TotalIncome      decimal.Decimal   `json:"total_income"`
	FinalValue       decimal.Decimal   `json:"final_value"`
	FinalBenefitBase decimal.Decimal   `json:"final_benefit_base"`
	DepletionYear    int               `json:"depletion_year"` // calendar year value first hits 0, 0 if never
	Trajectory       []ProjectionPoint `json:"trajectory"`
}

// ProjectionComparison is the engine's top-level result: the client's
// trajectory, the optional comparison-product trajectory, and the optional
// Monte Carlo batch.
type ProjectionComparison struct {
	Client               ScenarioProjection  `json:"client"`
	Comparison           *ScenarioProjection `json:"comparison,omitempty"`
	ClientAge            int                 `json:"client_age"`
	ComparisonPayoutRate decimal.Decimal     `json:"comparison_payout_rate"`
	Mode                 string              `json:"mode"`
	MonteCarlo           *MonteCarloResult   `json:"monte_carlo,omitempty"`
	Assumptions          []string            `json:"assumptions"`
}

// MonteCarloResult represents the aggregate of a batch of random-return trials.
type MonteCarloResult struct {
	Trials            []TrialOutcome   `json:"trials"`
	SuccessRate       decimal.Decimal  `json:"success_rate"`
	MedianEndingValue decimal.Decimal  `json:"median_ending_value"`
	PercentileRanges  PercentileRanges `json:"percentile_ranges"`
	NumTrials         int              `json:"num_trials"`
}

// TrialOutcome represents a single Monte Carlo trial outcome.
type TrialOutcome struct {
	EndingValue   decimal.Decimal `json:"ending_value"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	Depleted      bool            `json:"depleted"`
	DepletionYear int             `json:"depletion_year"`
}

// PercentileRanges represents percentile ranges for trial ending values.
type PercentileRanges struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// TotalIncomeThrough sums the income withdrawn from the start of the
// trajectory through the given year index inclusive. Indexes past the end of
// the trajectory sum the whole thing.
func TotalIncomeThrough(points []ProjectionPoint, yearIndex int) decimal.Decimal {
	total := decimal.Zero
	for i, p := range points {
		if i > yearIndex {
			break
		}
		total = total.Add(p.Income)
	}
	return total
}

// TotalIncome sums the income withdrawn over the whole trajectory.
func TotalIncome(points []ProjectionPoint) decimal.Decimal {
	return TotalIncomeThrough(points, len(points)-1)
}

// FinalValue returns the contract value at the end of the trajectory.
func FinalValue(points []ProjectionPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	return points[len(points)-1].Value
}

// FinalBenefitBase returns the benefit base at the end of the trajectory.
func FinalBenefitBase(points []ProjectionPoint) decimal.Decimal {
	if len(points) == 0 {
		return decimal.Zero
	}
	return points[len(points)-1].BenefitBase
}

// DepletionYear returns the first calendar year at which contract value
// reaches zero, or 0 if the value never depletes.
func DepletionYear(points []ProjectionPoint) int {
	for _, p := range points {
		if p.Value.LessThanOrEqual(decimal.Zero) {
			return p.Year
		}
	}
	return 0
}
