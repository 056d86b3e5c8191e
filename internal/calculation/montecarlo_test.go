package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monteCarloInput() SimulationInput {
	return SimulationInput{
		StartValue:      decimal.NewFromInt(300000),
		Years:           30,
		IncomeStartYear: 5,
		PayoutRate:      decimal.NewFromFloat(0.061),
		RollupRate:      decimal.NewFromFloat(0.07),
		BaseYear:        2026,
	}
}

func TestRunBatch(t *testing.T) {
	mcs := NewMonteCarloSimulator(NewProjectionSimulator(), MonteCarloConfig{NumTrials: 100, Seed: 12345})

	result, err := mcs.RunBatch(monteCarloInput())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 100, result.NumTrials)
	assert.Len(t, result.Trials, 100)

	assert.True(t, result.SuccessRate.GreaterThanOrEqual(decimal.Zero))
	assert.True(t, result.SuccessRate.LessThanOrEqual(decimal.NewFromInt(1)))

	pr := result.PercentileRanges
	assert.True(t, pr.P10.LessThanOrEqual(pr.P25))
	assert.True(t, pr.P25.LessThanOrEqual(pr.P50))
	assert.True(t, pr.P50.LessThanOrEqual(pr.P75))
	assert.True(t, pr.P75.LessThanOrEqual(pr.P90))
	assert.True(t, result.MedianEndingValue.Equal(pr.P50))

	for i, trial := range result.Trials {
		assert.False(t, trial.EndingValue.IsNegative(), "trial %d", i)
		assert.False(t, trial.TotalIncome.IsNegative(), "trial %d", i)
		if trial.Depleted {
			assert.NotZero(t, trial.DepletionYear, "trial %d", i)
		}
	}
}

func TestRunBatchReproducibleForSeed(t *testing.T) {
	in := monteCarloInput()

	a, err := NewMonteCarloSimulator(NewProjectionSimulator(), MonteCarloConfig{NumTrials: 50, Seed: 7}).RunBatch(in)
	require.NoError(t, err)
	b, err := NewMonteCarloSimulator(NewProjectionSimulator(), MonteCarloConfig{NumTrials: 50, Seed: 7}).RunBatch(in)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	c, err := NewMonteCarloSimulator(NewProjectionSimulator(), MonteCarloConfig{NumTrials: 50, Seed: 8}).RunBatch(in)
	require.NoError(t, err)
	assert.NotEqual(t, a.Trials, c.Trials)
}

func TestRunBatchRejectsNonPositiveTrials(t *testing.T) {
	mcs := NewMonteCarloSimulator(NewProjectionSimulator(), MonteCarloConfig{NumTrials: 0, Seed: 1})
	_, err := mcs.RunBatch(monteCarloInput())
	assert.Error(t, err)
}

func TestSeedDefaultsFromSeedFunc(t *testing.T) {
	SetSeedFunc(func() int64 { return 4242 })
	defer SetSeedFunc(nil)

	mcs := NewMonteCarloSimulator(NewProjectionSimulator(), MonteCarloConfig{NumTrials: 10})
	assert.Equal(t, int64(4242), mcs.Seed)
}
