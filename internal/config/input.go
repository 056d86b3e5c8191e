package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Heykeighley/annuity-tool-preview/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a contract book and simulation settings from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.Settings.Mode = NormalizeMode(config.Settings.Mode)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// modeAliases maps the UI boundary labels onto engine modes.
var modeAliases = map[string]string{
	"monte carlo":  "random",
	"fixed growth": "fixed",
}

// NormalizeMode lowers the mode string and resolves the UI labels
// ("Monte Carlo", "Fixed Growth") to the engine's mode names. An empty mode
// defaults to fixed.
func NormalizeMode(mode string) string {
	m := strings.ToLower(strings.TrimSpace(mode))
	if mapped, ok := modeAliases[m]; ok {
		return mapped
	}
	if m == "" {
		return "fixed"
	}
	return m
}

// ValidateConfiguration validates the loaded configuration. Only structural
// problems are errors; malformed numeric fields inside records coerce to
// defaults downstream instead of failing here.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Contracts) == 0 {
		return fmt.Errorf("no contracts provided")
	}
	if len(config.SelectedContracts()) == 0 {
		return fmt.Errorf("no contracts selected")
	}

	return ip.validateSettings(&config.Settings)
}

func (ip *InputParser) validateSettings(settings *domain.SimulationSettings) error {
	if settings.Years < 0 || settings.Years > 50 {
		return fmt.Errorf("years must be between 0 and 50, got %d", settings.Years)
	}
	horizon := settings.Years
	if horizon == 0 {
		horizon = domain.DefaultProjectionYears
	}
	if settings.IncomeStartYear < 0 || settings.IncomeStartYear > horizon {
		return fmt.Errorf("income start year must be between 0 and %d, got %d", horizon, settings.IncomeStartYear)
	}
	if settings.Mode != "fixed" && settings.Mode != "random" {
		return fmt.Errorf("mode must be 'fixed' or 'random' (or the labels 'Fixed Growth' / 'Monte Carlo'), got %q", settings.Mode)
	}
	if settings.MonteCarloTrials < 0 {
		return fmt.Errorf("monte carlo trials cannot be negative")
	}
	if settings.MonteCarloTrials > 100000 {
		return fmt.Errorf("monte carlo trials capped at 100000, got %d", settings.MonteCarloTrials)
	}
	return nil
}

// CreateExampleConfiguration creates an example contract book
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Contracts: []domain.ContractRecord{
			{
				Owner:         "J. Whitfield",
				Carrier:       "Atlantic Life",
				Product:       "SecureIncome 7",
				ContractValue: "$250,000.00",
				PayoutRate:    "6.10%",
				RollupRate:    "7.00%",
				ClientAge:     "67",
				Selected:      true,
			},
			{
				Owner:         "J. Whitfield",
				Carrier:       "Midland Annuity",
				Product:       "Legacy Builder",
				ContractValue: "$120,000.00",
				PayoutRate:    "4.75%",
				RollupRate:    "8.00%",
				ClientAge:     "67",
				Selected:      true,
			},
			{
				Owner:         "M. Reyes",
				Carrier:       "Atlantic Life",
				Product:       "SecureIncome 7",
				ContractValue: "$95,000.00",
				PayoutRate:    "6.10%",
				RollupRate:    "7.00%",
				ClientAge:     "61",
				Selected:      false,
			},
		},
		Settings: domain.SimulationSettings{
			Years:            30,
			IncomeStartYear:  5,
			Mode:             "fixed",
			CompareProduct:   true,
			MonteCarloTrials: 500,
		},
	}
}

// WriteExampleConfiguration renders the example book to a YAML file.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
