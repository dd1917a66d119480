package helpers

import (
	"fmt"
	"math"
	"strings"
)

// RoundMoney rounds a monetary amount to two decimal places, half away from
// zero. Amounts are rounded at the point of output only; intermediate math
// keeps full float precision.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatAmount renders an amount in Indian rupee display form with lakh/crore
// digit grouping, e.g. 1234567.5 -> "₹12,34,567.50".
func FormatAmount(amount float64) string {
	negative := amount < 0
	rounded := RoundMoney(math.Abs(amount))

	whole := int64(rounded)
	paise := int64(math.Round((rounded - float64(whole)) * 100))

	digits := fmt.Sprintf("%d", whole)
	grouped := groupIndianDigits(digits)

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s₹%s.%02d", sign, grouped, paise)
}

// groupIndianDigits inserts separators in the 3-then-2 Indian pattern
func groupIndianDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
