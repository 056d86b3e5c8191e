package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
	"github.com/Heykeighley/annuity-tool-preview/pkg/money"
)

// ProjectionEngine orchestrates a full run over the contract book: aggregate
// the selected records, build the return sequence, simulate the client's
// trajectory and the optional comparison product, and attach the optional
// Monte Carlo batch.
type ProjectionEngine struct {
	Payout    *PayoutRateResolver
	Returns   *ReturnSequenceGenerator
	Simulator *ProjectionSimulator
	Logger    Logger
}

// NewProjectionEngine creates an engine with the default payout schedule.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Payout:    NewPayoutRateResolver(),
		Returns:   NewReturnSequenceGenerator(),
		Simulator: NewProjectionSimulator(),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	pe.Logger = l
	pe.Simulator.Logger = l
}

// RunBook runs the projection for the selected contracts in the book.
func (pe *ProjectionEngine) RunBook(ctx context.Context, config *domain.Configuration) (*domain.ProjectionComparison, error) {
	selected := config.SelectedContracts()
	if len(selected) == 0 {
		return nil, fmt.Errorf("no contracts selected in book of %d", len(config.Contracts))
	}

	settings := config.Settings
	years := settings.Years
	if years <= 0 {
		years = domain.DefaultProjectionYears
	}

	startValue := domain.TotalContractValue(selected)
	payoutRate := domain.AveragePayoutRate(selected)
	rollupRate := domain.AverageRollupRate(selected)
	clientAge := selected[0].Age()

	mode := ReturnModeFixed
	if settings.Mode == string(ReturnModeRandom) {
		mode = ReturnModeRandom
	}

	// Fixed mode defaults to compounding at the roll-up rate unless the book
	// specifies an explicit growth assumption.
	fixedRate := rollupRate
	if settings.FixedReturnRate != "" {
		fixedRate = money.ParsePercent(settings.FixedReturnRate)
	}

	returns := pe.Returns.Generate(years, mode, fixedRate)
	pe.Logger.Infof("projecting %d contracts: start=%s payout=%s rollup=%s mode=%s",
		len(selected), startValue.StringFixed(2), payoutRate.String(), rollupRate.String(), mode)

	clientInput := SimulationInput{
		StartValue:      startValue,
		Years:           years,
		IncomeStartYear: settings.IncomeStartYear,
		PayoutRate:      payoutRate,
		Returns:         returns,
		RollupRate:      rollupRate,
	}
	clientPoints := pe.Simulator.Simulate(clientInput)

	result := &domain.ProjectionComparison{
		Client:      summarizeScenario("Current Contracts", clientInput, clientPoints),
		ClientAge:   clientAge,
		Mode:        string(mode),
		Assumptions: settings.GenerateAssumptions(),
	}

	if settings.CompareProduct {
		comparisonRate := pe.Payout.Resolve(clientAge)
		initialBase := startValue
		comparisonInput := clientInput
		comparisonInput.PayoutRate = comparisonRate
		comparisonInput.InitialBenefitBase = &initialBase
		comparisonPoints := pe.Simulator.Simulate(comparisonInput)

		comparison := summarizeScenario("Comparison Product", comparisonInput, comparisonPoints)
		result.Comparison = &comparison
		result.ComparisonPayoutRate = comparisonRate
	}

	if settings.MonteCarloTrials > 0 && mode == ReturnModeRandom {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mcs := NewMonteCarloSimulator(pe.Simulator, MonteCarloConfig{NumTrials: settings.MonteCarloTrials})
		batch, err := mcs.RunBatch(clientInput)
		if err != nil {
			return nil, fmt.Errorf("monte carlo batch failed: %w", err)
		}
		result.MonteCarlo = batch
	}

	return result, nil
}

// summarizeScenario derives the summary figures for one simulated trajectory.
func summarizeScenario(name string, in SimulationInput, points []domain.ProjectionPoint) domain.ScenarioProjection {
	annualIncome := decimal.Zero
	for _, p := range points {
		if p.Income.GreaterThan(decimal.Zero) {
			annualIncome = p.Income
			break
		}
	}
	return domain.ScenarioProjection{
		Name:             name,
		StartValue:       in.StartValue,
		PayoutRate:       in.PayoutRate,
		RollupRate:       in.RollupRate,
		IncomeStartYear:  in.IncomeStartYear,
		AnnualIncome:     annualIncome,
		TotalIncome:      domain.TotalIncome(points),
		FinalValue:       domain.FinalValue(points),
		FinalBenefitBase: domain.FinalBenefitBase(points),
		DepletionYear:    domain.DepletionYear(points),
		Trajectory:       points,
	}
}
