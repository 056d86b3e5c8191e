package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Heykeighley/annuity-tool-preview/pkg/money"
)

// DefaultClientAge is used when a record's age field fails to parse.
const DefaultClientAge = 65

// DefaultProjectionYears is the standard simulation horizon.
const DefaultProjectionYears = 30

// ContractRecord is one row of the annuity book as it arrives from the
// spreadsheet boundary. Financial fields stay string-typed here; coercion to
// numbers happens at read time with the default-to-zero policy, so a
// malformed row degrades the projection instead of aborting it.
type ContractRecord struct {
	Owner         string `yaml:"owner" json:"owner"`
	Carrier       string `yaml:"carrier" json:"carrier"`
	Product       string `yaml:"product" json:"product"`
	ContractValue string `yaml:"contract_value" json:"contract_value"` // "$250,000.00"
	PayoutRate    string `yaml:"payout_rate" json:"payout_rate"`       // "6.10%"
	RollupRate    string `yaml:"rollup_rate" json:"rollup_rate"`       // "7.00%"
	ClientAge     string `yaml:"client_age" json:"client_age"`
	Selected      bool   `yaml:"selected" json:"selected"`
}

// Value returns the coerced contract value (zero on parse failure).
func (cr *ContractRecord) Value() money.Money {
	return money.ParseCurrency(cr.ContractValue)
}

// PayoutRateFraction returns the coerced payout rate as a fraction (0.061).
func (cr *ContractRecord) PayoutRateFraction() decimal.Decimal {
	return money.ParsePercent(cr.PayoutRate)
}

// RollupRateFraction returns the coerced roll-up rate as a fraction.
func (cr *ContractRecord) RollupRateFraction() decimal.Decimal {
	return money.ParsePercent(cr.RollupRate)
}

// Age returns the coerced client age, defaulting to DefaultClientAge.
func (cr *ContractRecord) Age() int {
	age, err := strconv.Atoi(strings.TrimSpace(cr.ClientAge))
	if err != nil {
		return DefaultClientAge
	}
	return age
}

// SimulationSettings holds the user-selected projection controls.
type SimulationSettings struct {
	Years            int    `yaml:"years" json:"years"`
	IncomeStartYear  int    `yaml:"income_start_year" json:"income_start_year"`
	Mode             string `yaml:"mode" json:"mode"`
	FixedReturnRate  string `yaml:"fixed_return_rate,omitempty" json:"fixed_return_rate,omitempty"` // percent string; roll-up rate when empty
	CompareProduct   bool   `yaml:"compare_product" json:"compare_product"`
	MonteCarloTrials int    `yaml:"monte_carlo_trials,omitempty" json:"monte_carlo_trials,omitempty"`
}

// GenerateAssumptions creates a dynamic assumptions list from actual settings
func (ss *SimulationSettings) GenerateAssumptions() []string {
	assumptions := []string{
		fmt.Sprintf("Projection horizon: %d years", ss.Years),
		fmt.Sprintf("Income withdrawals begin in simulated year %d", ss.IncomeStartYear),
		"Benefit base roll-up guarantee expires after 10 years",
		"Raw market returns clamped to [-25%, +15%]",
	}
	if ss.Mode == "random" {
		assumptions = append(assumptions, "Random returns drawn uniformly around a 7% mean with 15% half-width")
	}
	return assumptions
}

// Configuration is the top-level input document: the contract book plus the
// simulation settings selected for this run.
type Configuration struct {
	Contracts []ContractRecord   `yaml:"contracts" json:"contracts"`
	Settings  SimulationSettings `yaml:"settings" json:"settings"`
}

// SelectedContracts returns the records flagged for inclusion in the run.
func (c *Configuration) SelectedContracts() []ContractRecord {
	var selected []ContractRecord
	for _, cr := range c.Contracts {
		if cr.Selected {
			selected = append(selected, cr)
		}
	}
	return selected
}

// TotalContractValue sums the coerced contract values of a record set.
func TotalContractValue(records []ContractRecord) decimal.Decimal {
	total := decimal.Zero
	for _, cr := range records {
		total = total.Add(cr.Value().Decimal)
	}
	return total
}

// AveragePayoutRate averages the coerced payout rates of a record set.
func AveragePayoutRate(records []ContractRecord) decimal.Decimal {
	return averageRate(records, (*ContractRecord).PayoutRateFraction)
}

// AverageRollupRate averages the coerced roll-up rates of a record set.
func AverageRollupRate(records []ContractRecord) decimal.Decimal {
	return averageRate(records, (*ContractRecord).RollupRateFraction)
}

func averageRate(records []ContractRecord, rate func(*ContractRecord) decimal.Decimal) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for i := range records {
		total = total.Add(rate(&records[i]))
	}
	return total.Div(decimal.NewFromInt(int64(len(records))))
}
