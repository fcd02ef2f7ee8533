package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.InDelta(t, 33.9, Round2(33.9000001), 1e-9)
	assert.InDelta(t, 0.01, Round2(0.005), 1e-9)
	assert.InDelta(t, -1.23, Round2(-1.234), 1e-9)
	assert.Zero(t, Round2(0))
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹0.00", FormatINR(0))
	assert.Equal(t, "₹108.48", FormatINR(108.48))
	assert.Equal(t, "₹999.00", FormatINR(999))
	assert.Equal(t, "₹1,234.50", FormatINR(1234.5))
	// Indian grouping: last three digits, then pairs.
	assert.Equal(t, "₹12,34,567.89", FormatINR(1234567.89))
	assert.Equal(t, "₹1,00,00,000.00", FormatINR(10000000))
	assert.Equal(t, "-₹500.25", FormatINR(-500.25))
}

func TestFormatINRRoundingCarry(t *testing.T) {
	assert.Equal(t, "₹1,000.00", FormatINR(999.999))
}
