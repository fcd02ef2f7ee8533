package utils

import (
	"fmt"
	"strings"
)

// Message templates use named placeholders ({amount}, {juice}). The
// renderers below substitute them explicitly so a renamed placeholder
// fails loudly in tests instead of silently surviving substitution.

const (
	placeholderAmount = "{amount}"
	placeholderJuice  = "{juice}"
)

// RenderAmount substitutes {amount} with a two-decimal amount.
func RenderAmount(tpl string, amount float64) string {
	return strings.ReplaceAll(tpl, placeholderAmount, fmt.Sprintf("%.2f", amount))
}

// RenderDailySummary substitutes {amount} and {juice}. An empty juice name
// renders as an em dash.
func RenderDailySummary(tpl string, amount float64, juice string) string {
	if juice == "" {
		juice = "—"
	}
	return strings.ReplaceAll(RenderAmount(tpl, amount), placeholderJuice, juice)
}
