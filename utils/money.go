package utils

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds a monetary value to two decimal places.
func Round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// FormatINR formats an amount as Indian Rupees with en-IN digit grouping,
// e.g. 1234567.5 -> "₹12,34,567.50".
func FormatINR(n float64) string {
	neg := n < 0
	n = Round2(math.Abs(n))

	whole := int64(n)
	frac := int64(math.Round((n - float64(whole)) * 100))
	if frac == 100 { // rounding carried over
		whole++
		frac = 0
	}

	grouped := groupIndian(fmt.Sprintf("%d", whole))
	out := fmt.Sprintf("₹%s.%02d", grouped, frac)
	if neg {
		out = "-" + out
	}
	return out
}

// groupIndian inserts commas in the Indian numbering style: the last three
// digits form one group, every preceding pair forms another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
