package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PayoutBand is one row of an age-banded payout schedule.
type PayoutBand struct {
	MinAge int
	Rate   decimal.Decimal
}

// PayoutRateResolver maps a client age to a contractual payout rate using a
// descending age-banded schedule. The lookup is total: any integer age,
// including negative or absurdly large, produces a rate.
type PayoutRateResolver struct {
	bands    []PayoutBand
	fallback decimal.Decimal
}

// defaultPayoutBands is the comparison product's contractual schedule. The
// exact values matter for compatibility with the upstream book.
var defaultPayoutBands = []PayoutBand{
	{MinAge: 80, Rate: decimal.NewFromFloat(0.0665)},
	{MinAge: 75, Rate: decimal.NewFromFloat(0.0650)},
	{MinAge: 70, Rate: decimal.NewFromFloat(0.0630)},
	{MinAge: 65, Rate: decimal.NewFromFloat(0.0610)},
	{MinAge: 60, Rate: decimal.NewFromFloat(0.0475)},
	{MinAge: 55, Rate: decimal.NewFromFloat(0.0355)},
	{MinAge: 45, Rate: decimal.NewFromFloat(0.0355)},
}

// NewPayoutRateResolver creates a resolver over the default schedule.
func NewPayoutRateResolver() *PayoutRateResolver {
	return NewPayoutRateResolverWithBands(defaultPayoutBands)
}

// NewPayoutRateResolverWithBands creates a resolver over a custom schedule.
// Bands are sorted by MinAge descending; the fallback rate for ages below the
// lowest threshold is the lowest band's rate.
func NewPayoutRateResolverWithBands(bands []PayoutBand) *PayoutRateResolver {
	sorted := append([]PayoutBand(nil), bands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinAge > sorted[j].MinAge })
	fallback := decimal.Zero
	if len(sorted) > 0 {
		fallback = sorted[len(sorted)-1].Rate
	}
	return &PayoutRateResolver{bands: sorted, fallback: fallback}
}

// Resolve returns the rate of the first band whose MinAge <= age, or the
// fallback rate when the age is below every band.
func (r *PayoutRateResolver) Resolve(age int) decimal.Decimal {
	for _, band := range r.bands {
		if band.MinAge <= age {
			return band.Rate
		}
	}
	return r.fallback
}
