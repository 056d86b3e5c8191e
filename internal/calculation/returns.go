package calculation

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// ReturnMode selects how the per-year return sequence is produced.
type ReturnMode string

const (
	// ReturnModeFixed repeats a single rate for every simulated year.
	ReturnModeFixed ReturnMode = "fixed"
	// ReturnModeRandom samples each year independently from a uniform band.
	ReturnModeRandom ReturnMode = "random"
)

// Clamp bounds on the raw market return. These are a strict contract: every
// return the simulator applies conceptually falls inside this band.
var (
	returnClampMin = decimal.NewFromFloat(-0.25)
	returnClampMax = decimal.NewFromFloat(0.15)
)

// Uniform sampling band for random mode: mean 7%, half-width 15%.
const (
	randomMeanReturn = 0.07
	randomHalfWidth  = 0.15
)

// ClampReturn bounds a raw market return to [-0.25, 0.15].
func ClampReturn(r decimal.Decimal) decimal.Decimal {
	if r.LessThan(returnClampMin) {
		return returnClampMin
	}
	if r.GreaterThan(returnClampMax) {
		return returnClampMax
	}
	return r
}

// ReturnSequenceGenerator produces per-year return sequences for the
// simulator. Not safe for concurrent use; Monte Carlo trials each get their
// own generator.
type ReturnSequenceGenerator struct {
	rng *rand.Rand
}

// NewReturnSequenceGenerator creates a generator seeded from seedFunc.
func NewReturnSequenceGenerator() *ReturnSequenceGenerator {
	return NewReturnSequenceGeneratorWithSeed(seedFunc())
}

// NewReturnSequenceGeneratorWithSeed creates a generator with an explicit
// seed for reproducible sequences.
func NewReturnSequenceGeneratorWithSeed(seed int64) *ReturnSequenceGenerator {
	return &ReturnSequenceGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate produces a return sequence of length years+1, one entry per
// simulated year including year 0. Fixed mode repeats fixedRate; random mode
// draws each element uniformly from [mean-width, mean+width] and clamps it.
// A negative horizon yields an empty sequence.
func (g *ReturnSequenceGenerator) Generate(years int, mode ReturnMode, fixedRate decimal.Decimal) []decimal.Decimal {
	if years < 0 {
		return []decimal.Decimal{}
	}
	seq := make([]decimal.Decimal, years+1)
	for i := range seq {
		if mode == ReturnModeRandom {
			raw := randomMeanReturn - randomHalfWidth + g.rng.Float64()*2*randomHalfWidth
			seq[i] = ClampReturn(decimal.NewFromFloat(raw))
		} else {
			seq[i] = fixedRate
		}
	}
	return seq
}
