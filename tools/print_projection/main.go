package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Heykeighley/annuity-tool-preview/internal/calculation"
)

func main() {
	ps := calculation.NewProjectionSimulator()
	gen := calculation.NewReturnSequenceGeneratorWithSeed(1)

	in := calculation.SimulationInput{
		StartValue:      decimal.NewFromInt(250000),
		Years:           30,
		IncomeStartYear: 5,
		PayoutRate:      decimal.NewFromFloat(0.061),
		Returns:         gen.Generate(30, calculation.ReturnModeFixed, decimal.NewFromFloat(0.07)),
		RollupRate:      decimal.NewFromFloat(0.07),
		BaseYear:        2026,
	}

	fmt.Println("Fixed 7% growth, income from year 5:")
	for _, p := range ps.Simulate(in) {
		rollup := ""
		if p.RollupUsed {
			rollup = " rollup"
		}
		fmt.Printf("%d  value=%s  income=%s  base=%s  applied=%s%s\n",
			p.Year, p.Value.StringFixed(2), p.Income.StringFixed(2),
			p.BenefitBase.StringFixed(2), p.AppliedReturn.StringFixed(4), rollup)
	}

	in.Returns = gen.Generate(30, calculation.ReturnModeRandom, decimal.Zero)
	fmt.Println()
	fmt.Println("Random returns (seed 1), same book:")
	for _, p := range ps.Simulate(in) {
		fmt.Printf("%d  value=%s  raw=%s  applied=%s\n",
			p.Year, p.Value.StringFixed(2), p.AvgReturn.StringFixed(4), p.AppliedReturn.StringFixed(4))
	}
}
