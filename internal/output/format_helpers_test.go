package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "$-20.00", FormatCurrency(decimal.NewFromInt(-20)))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "6.10%", FormatRate(decimal.NewFromFloat(0.061)))
	assert.Equal(t, "0.00%", FormatRate(decimal.Zero))
}

func TestFormatSignedRate(t *testing.T) {
	assert.Equal(t, "+7.00%", FormatSignedRate(decimal.NewFromFloat(0.07)))
	assert.Equal(t, "-25.00%", FormatSignedRate(decimal.NewFromFloat(-0.25)))
	assert.Equal(t, "0.00%", FormatSignedRate(decimal.Zero))
}
