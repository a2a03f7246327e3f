// Package money parses and formats user-entered currency values. User
// input arrives as raw strings, possibly prefixed with "$", possibly
// empty because the user has not finished typing. Parsing happens here,
// once, at the boundary; the calculators downstream work on numbers.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseUSD parses a currency input string, tolerating a leading "$".
// The second return is false for empty or non-numeric input. A partial
// entry is a normal state, not an error.
func ParseUSD(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	return ParseDecimal(s)
}

// ParseDecimal parses a plain decimal string with no currency symbol.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseUSDFloat is ParseUSD for callers working in float64.
func ParseUSDFloat(s string) (float64, bool) {
	d, ok := ParseUSD(s)
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// ParseFloat is ParseDecimal for callers working in float64.
func ParseFloat(s string) (float64, bool) {
	d, ok := ParseDecimal(s)
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// FormatUSD renders a value as an en-US currency string with exactly two
// decimal places and thousands separators, e.g. "$1,234.56". Negative
// values render as "-$1,234.56".
func FormatUSD(v decimal.Decimal) string {
	neg := v.IsNegative()
	r := v.Abs().Round(2).StringFixed(2)

	intPart, fracPart, _ := strings.Cut(r, ".")
	out := "$" + groupThousands(intPart) + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatUSDFloat is FormatUSD for float64 values.
func FormatUSDFloat(v float64) string {
	return FormatUSD(decimal.NewFromFloat(v))
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + n/3)
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
