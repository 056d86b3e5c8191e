package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleBook() Configuration {
	return Configuration{
		Contracts: []ContractRecord{
			{
				Owner:         "J. Whitfield",
				Carrier:       "Atlantic Life",
				Product:       "SecureIncome 7",
				ContractValue: "$150,000.00",
				PayoutRate:    "6.10%",
				RollupRate:    "7.00%",
				ClientAge:     "67",
				Selected:      true,
			},
			{
				Owner:         "J. Whitfield",
				Carrier:       "Midland Annuity",
				Product:       "Legacy Builder",
				ContractValue: "$100,000.00",
				PayoutRate:    "4.90%",
				RollupRate:    "8.00%",
				ClientAge:     "not on file",
				Selected:      true,
			},
			{
				Owner:         "M. Reyes",
				Carrier:       "Atlantic Life",
				Product:       "SecureIncome 7",
				ContractValue: "$80,000.00",
				PayoutRate:    "6.10%",
				RollupRate:    "7.00%",
				ClientAge:     "61",
				Selected:      false,
			},
		},
		Settings: SimulationSettings{Years: 30, IncomeStartYear: 5, Mode: "fixed"},
	}
}

func TestSelectedContracts(t *testing.T) {
	book := sampleBook()
	selected := book.SelectedContracts()
	assert.Len(t, selected, 2)
	for _, cr := range selected {
		assert.True(t, cr.Selected)
	}
}

func TestContractRecordCoercion(t *testing.T) {
	book := sampleBook()
	cr := book.Contracts[0]
	assert.True(t, cr.Value().Equal(cr.Value())) // stable
	assert.Equal(t, "150000.00", cr.Value().String())
	assert.True(t, cr.PayoutRateFraction().Equal(decimal.NewFromFloat(0.061)))
	assert.Equal(t, 67, cr.Age())

	// Malformed age falls back to the default, never errors.
	assert.Equal(t, DefaultClientAge, book.Contracts[1].Age())

	// Malformed money coerces to zero.
	junk := ContractRecord{ContractValue: "pending", PayoutRate: "??"}
	assert.True(t, junk.Value().IsZero())
	assert.True(t, junk.PayoutRateFraction().IsZero())
}

func TestBookAggregation(t *testing.T) {
	book := sampleBook()
	selected := book.SelectedContracts()

	total := TotalContractValue(selected)
	assert.Equal(t, "250000.00", total.StringFixed(2))

	payout := AveragePayoutRate(selected)
	assert.True(t, payout.Equal(decimal.NewFromFloat(0.055)), "got %s", payout)

	rollup := AverageRollupRate(selected)
	assert.True(t, rollup.Equal(decimal.NewFromFloat(0.075)), "got %s", rollup)

	assert.True(t, AveragePayoutRate(nil).IsZero())
	assert.True(t, TotalContractValue(nil).IsZero())
}

func TestTrajectoryHelpers(t *testing.T) {
	d := decimal.NewFromInt
	points := []ProjectionPoint{
		{Year: 2026, Value: d(110), Income: d(0)},
		{Year: 2027, Value: d(121), Income: d(0)},
		{Year: 2028, Value: d(115), Income: d(6)},
		{Year: 2029, Value: d(0), Income: d(6)},
	}

	assert.Equal(t, "0", TotalIncomeThrough(points, 1).String())
	assert.Equal(t, "6", TotalIncomeThrough(points, 2).String())
	assert.Equal(t, "12", TotalIncome(points).String())
	assert.Equal(t, "0", FinalValue(points).String())
	assert.Equal(t, 2029, DepletionYear(points))

	assert.True(t, TotalIncome(nil).IsZero())
	assert.True(t, FinalValue(nil).IsZero())
	assert.Equal(t, 0, DepletionYear(points[:3]))
}
