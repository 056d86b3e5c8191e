package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveDefaultSchedule(t *testing.T) {
	resolver := NewPayoutRateResolver()

	cases := []struct {
		age  int
		rate float64
	}{
		{95, 0.0665},
		{80, 0.0665},
		{79, 0.0650},
		{75, 0.0650},
		{70, 0.0630},
		{67, 0.0610},
		{65, 0.0610},
		{64, 0.0475},
		{60, 0.0475},
		{55, 0.0355},
		{45, 0.0355},
		{44, 0.0355}, // below lowest band: fallback
		{10, 0.0355},
		{0, 0.0355},
		{-3, 0.0355},
	}
	for _, c := range cases {
		got := resolver.Resolve(c.age)
		assert.True(t, got.Equal(decimal.NewFromFloat(c.rate)),
			"Resolve(%d) got %s want %v", c.age, got, c.rate)
	}
}

func TestResolveCustomBandsSortedAndFallback(t *testing.T) {
	// Deliberately unsorted input; resolver must order bands descending.
	resolver := NewPayoutRateResolverWithBands([]PayoutBand{
		{MinAge: 50, Rate: decimal.NewFromFloat(0.03)},
		{MinAge: 70, Rate: decimal.NewFromFloat(0.06)},
		{MinAge: 60, Rate: decimal.NewFromFloat(0.045)},
	})

	assert.True(t, resolver.Resolve(72).Equal(decimal.NewFromFloat(0.06)))
	assert.True(t, resolver.Resolve(65).Equal(decimal.NewFromFloat(0.045)))
	assert.True(t, resolver.Resolve(50).Equal(decimal.NewFromFloat(0.03)))
	assert.True(t, resolver.Resolve(30).Equal(decimal.NewFromFloat(0.03)), "fallback is the lowest band's rate")
}

func TestResolveEmptySchedule(t *testing.T) {
	resolver := NewPayoutRateResolverWithBands(nil)
	assert.True(t, resolver.Resolve(70).IsZero())
}
