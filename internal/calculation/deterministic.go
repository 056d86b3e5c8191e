package calculation

import "time"

// nowFunc returns the current time (override in tests for a stable base year).
var nowFunc = time.Now

// SetNowFunc overrides the time provider; nil restores the real clock.
// Use only in tests.
func SetNowFunc(f func() time.Time) {
	if f == nil {
		f = time.Now
	}
	nowFunc = f
}

func defaultSeed() int64 { return nowFunc().UnixNano() }

// seedFunc returns a pseudo-random seed (override for deterministic Monte Carlo tests).
var seedFunc = defaultSeed

// SetSeedFunc overrides the seed provider; nil restores the clock-based default.
// Use only in tests.
func SetSeedFunc(f func() int64) {
	if f == nil {
		f = defaultSeed
	}
	seedFunc = f
}
