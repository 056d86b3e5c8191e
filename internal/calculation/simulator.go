package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

// MaxRollupYears is the number of years the benefit base roll-up guarantee
// stays in force, counted from the start of the projection. The guarantee
// expires after this many years regardless of whether income has started.
const MaxRollupYears = 10

// SimulationInput carries the starting financial state and per-year return
// sequence for one projection run.
type SimulationInput struct {
	StartValue      decimal.Decimal
	Years           int
	IncomeStartYear int
	PayoutRate      decimal.Decimal
	Returns         []decimal.Decimal
	RollupRate      decimal.Decimal
	// InitialBenefitBase, when set, seeds the benefit base independently of
	// StartValue. The comparison product uses this to start its base from the
	// client's actual contract value even though its payout rate differs.
	InitialBenefitBase *decimal.Decimal
	// BaseYear is the calendar year of index 0; defaults to the current year.
	BaseYear int
}

// ProjectionSimulator produces a year-indexed trajectory of contract value,
// benefit base, and income. It is a pure function over its inputs and is
// designed never to fail: degenerate inputs (negative horizon, short return
// sequences) degrade to empty or trivial output.
type ProjectionSimulator struct {
	Logger Logger
}

// NewProjectionSimulator creates a simulator with a no-op logger.
func NewProjectionSimulator() *ProjectionSimulator {
	return &ProjectionSimulator{Logger: NopLogger{}}
}

// Simulate runs the year loop from year 0 through the horizon inclusive and
// returns one ProjectionPoint per year, sorted ascending by calendar year.
//
// Each year is either in the roll-up branch (pre-income and within the
// roll-up window: both balances grow by the applied return, floored at the
// roll-up rate) or the withdrawal branch (income, locked in once at the
// income-start boundary, is subtracted from both balances, clamped at zero).
func (ps *ProjectionSimulator) Simulate(in SimulationInput) []domain.ProjectionPoint {
	if in.Years < 0 {
		return []domain.ProjectionPoint{}
	}

	baseYear := in.BaseYear
	if baseYear == 0 {
		baseYear = nowFunc().Year()
	}

	contractValue := in.StartValue
	benefitBase := in.StartValue
	if in.InitialBenefitBase != nil {
		benefitBase = *in.InitialBenefitBase
	}

	income := decimal.Zero
	incomeLocked := false
	one := decimal.NewFromInt(1)

	points := make([]domain.ProjectionPoint, 0, in.Years+1)
	for i := 0; i <= in.Years; i++ {
		// Missing entries in a short return sequence default to 0.
		raw := decimal.Zero
		if i < len(in.Returns) {
			raw = in.Returns[i]
		}
		ret := ClampReturn(raw)

		// During the pre-income phase the benefit base never grows slower
		// than the guaranteed roll-up rate, but can grow faster when the
		// market beats it.
		grow := ret
		rollupUsed := false
		if i < in.IncomeStartYear && ret.LessThan(in.RollupRate) {
			grow = in.RollupRate
			rollupUsed = true
		}

		if i < in.IncomeStartYear && i < MaxRollupYears {
			factor := one.Add(grow)
			contractValue = contractValue.Mul(factor)
			benefitBase = benefitBase.Mul(factor)
		} else {
			if i == in.IncomeStartYear {
				// Locked in once, from the base at the income-start boundary,
				// and held constant for the remainder of the trajectory.
				income = benefitBase.Mul(in.PayoutRate)
				incomeLocked = true
				ps.Logger.Debugf("income locked at year %d: %s", i, income.StringFixed(2))
			}
			// NOTE: when the roll-up window expires before income starts
			// (IncomeStartYear > MaxRollupYears), the intervening years sit
			// flat: no growth is applied and income is still zero. This
			// mirrors the upstream product logic and may be an unintended
			// interaction there; it is preserved for compatibility.
			contractValue = contractValue.Sub(income)
			if contractValue.IsNegative() {
				contractValue = decimal.Zero
			}
			benefitBase = benefitBase.Sub(income)
			if benefitBase.IsNegative() {
				benefitBase = decimal.Zero
			}
		}

		reportedIncome := decimal.Zero
		if incomeLocked && i >= in.IncomeStartYear {
			reportedIncome = income
		}

		points = append(points, domain.ProjectionPoint{
			Year:          baseYear + i,
			Value:         contractValue,
			Income:        reportedIncome,
			BenefitBase:   benefitBase,
			AvgReturn:     ret,
			AppliedReturn: grow,
			RollupUsed:    rollupUsed,
		})
	}

	// Construction is already ascending; the sort is a defensive invariant.
	sort.Slice(points, func(a, b int) bool { return points[a].Year < points[b].Year })
	return points
}
