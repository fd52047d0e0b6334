package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells num using the Indian lakh/crore scale.
func NumberToWords(num int64) string {
	switch {
	case num == 0:
		return ""
	case num < 0:
		return "Minus " + NumberToWords(-num)
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		return joinScale(num/100, "Hundred", num%100)
	case num < 100000:
		return joinScale(num/1000, "Thousand", num%1000)
	case num < 10000000:
		return joinScale(num/100000, "Lakh", num%100000)
	default:
		return joinScale(num/10000000, "Crore", num%10000000)
	}
}

func joinScale(head int64, scale string, rest int64) string {
	if rest == 0 {
		return NumberToWords(head) + " " + scale
	}
	return NumberToWords(head) + " " + scale + " " + NumberToWords(rest)
}

// NumberToCurrencyWords renders an amount for the "amount in words" line,
// e.g. "Fifty Four Thousand Seventy Five Rupees and Fifty Paise Only".
func NumberToCurrencyWords(amount decimal.Decimal) string {
	amount = amount.Round(2)
	negative := amount.IsNegative()
	amount = amount.Abs()

	rupees := amount.Truncate(0)
	paise := amount.Sub(rupees).Shift(2).IntPart()

	var parts []string
	if r := rupees.IntPart(); r > 0 {
		parts = append(parts, fmt.Sprintf("%s Rupees", NumberToWords(r)))
	}
	if paise > 0 {
		parts = append(parts, fmt.Sprintf("%s Paise", NumberToWords(paise)))
	}

	if len(parts) == 0 {
		return "Zero Rupees Only"
	}
	words := strings.Join(parts, " and ") + " Only"
	if negative {
		words = "Minus " + words
	}
	return words
}

// FormatINR formats amount with two decimals and Indian digit grouping,
// e.g. 1234567.5 -> "12,34,567.50".
func FormatINR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	if len(whole) <= 3 {
		return sign + whole + "." + frac
	}
	head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + strings.Join(groups, ",") + "," + tail + "." + frac
}
