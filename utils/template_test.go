package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderAmount(t *testing.T) {
	assert.Equal(t, "Your total: ₹108.48.", RenderAmount("Your total: ₹{amount}.", 108.48))
	assert.Equal(t, "Your total: ₹5.00.", RenderAmount("Your total: ₹{amount}.", 5))
	// No placeholder, no change.
	assert.Equal(t, "plain text", RenderAmount("plain text", 12))
}

func TestRenderDailySummary(t *testing.T) {
	tpl := "Today's Sales: ₹{amount}. Top Juice: {juice}."
	assert.Equal(t, "Today's Sales: ₹250.00. Top Juice: Mango Juice.", RenderDailySummary(tpl, 250, "Mango Juice"))
	assert.Equal(t, "Today's Sales: ₹0.00. Top Juice: —.", RenderDailySummary(tpl, 0, ""))
}
