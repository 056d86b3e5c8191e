package calculation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

// MonteCarloSimulator runs a batch of independent random-return projection
// trials and aggregates the outcomes.
type MonteCarloSimulator struct {
	Simulator *ProjectionSimulator
	NumTrials int
	Seed      int64
}

// MonteCarloConfig holds configuration for a Monte Carlo batch.
type MonteCarloConfig struct {
	NumTrials int
	Seed      int64 // 0 means seed from seedFunc
}

// NewMonteCarloSimulator creates a batch runner over the given simulator.
func NewMonteCarloSimulator(simulator *ProjectionSimulator, config MonteCarloConfig) *MonteCarloSimulator {
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	return &MonteCarloSimulator{
		Simulator: simulator,
		NumTrials: config.NumTrials,
		Seed:      config.Seed,
	}
}

// RunBatch executes the trials. The Returns field of the input is ignored;
// each trial draws its own random sequence from a generator seeded off the
// batch seed, so a batch is reproducible for a fixed seed.
func (mcs *MonteCarloSimulator) RunBatch(in SimulationInput) (*domain.MonteCarloResult, error) {
	if mcs.NumTrials <= 0 {
		return nil, fmt.Errorf("number of trials must be positive, got %d", mcs.NumTrials)
	}

	// Run trials in parallel; each is O(years) so the semaphore mostly bounds
	// scheduler churn, not memory.
	results := make([]domain.TrialOutcome, mcs.NumTrials)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, 10)

	for i := 0; i < mcs.NumTrials; i++ {
		wg.Add(1)
		go func(trial int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			gen := NewReturnSequenceGeneratorWithSeed(mcs.Seed + int64(trial))
			trialInput := in
			trialInput.Returns = gen.Generate(in.Years, ReturnModeRandom, decimal.Zero)
			points := mcs.Simulator.Simulate(trialInput)
			results[trial] = outcomeFromTrajectory(points)
		}(i)
	}

	wg.Wait()

	ranges := calculatePercentileRanges(results)
	return &domain.MonteCarloResult{
		Trials:            results,
		SuccessRate:       calculateSuccessRate(results),
		MedianEndingValue: ranges.P50,
		PercentileRanges:  ranges,
		NumTrials:         mcs.NumTrials,
	}, nil
}

// outcomeFromTrajectory reduces a trajectory to a single trial outcome.
func outcomeFromTrajectory(points []domain.ProjectionPoint) domain.TrialOutcome {
	depletionYear := domain.DepletionYear(points)
	return domain.TrialOutcome{
		EndingValue:   domain.FinalValue(points),
		TotalIncome:   domain.TotalIncome(points),
		Depleted:      depletionYear != 0,
		DepletionYear: depletionYear,
	}
}

// calculateSuccessRate returns the fraction of trials whose contract value
// survived the full horizon.
func calculateSuccessRate(trials []domain.TrialOutcome) decimal.Decimal {
	if len(trials) == 0 {
		return decimal.Zero
	}
	successCount := 0
	for _, trial := range trials {
		if !trial.Depleted {
			successCount++
		}
	}
	return decimal.NewFromInt(int64(successCount)).Div(decimal.NewFromInt(int64(len(trials))))
}

// calculatePercentileRanges calculates percentile ranges for ending values.
func calculatePercentileRanges(trials []domain.TrialOutcome) domain.PercentileRanges {
	if len(trials) == 0 {
		return domain.PercentileRanges{}
	}
	values := make([]decimal.Decimal, len(trials))
	for i, trial := range trials {
		values[i] = trial.EndingValue
	}
	sort.Slice(values, func(i, j int) bool { return values[i].LessThan(values[j]) })

	n := len(values)
	return domain.PercentileRanges{
		P10: values[n/10],
		P25: values[n/4],
		P50: values[n/2],
		P75: values[3*n/4],
		P90: values[9*n/10],
	}
}
