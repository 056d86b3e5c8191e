package output

import "github.com/shopspring/decimal"

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatRate formats a fractional rate (0.061) as a display percentage ("6.10%").
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatSignedRate is FormatRate with an explicit plus sign for positives,
// used for return columns where direction matters at a glance.
func FormatSignedRate(rate decimal.Decimal) string {
	s := FormatRate(rate)
	if rate.GreaterThan(decimal.Zero) {
		return "+" + s
	}
	return s
}
