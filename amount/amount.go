// Package amount handles fixed-point integer amounts as used on-chain:
// an int64 paired with a decimal-places count, e.g. 1_500_000 at 6
// decimals is 1.5.
package amount

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal scales shared by the perp markets this engine prices against.
const (
	QuoteDecimals = 6 // USDC collateral and quote amounts
	BaseDecimals  = 9 // perp base-asset position size
	PriceDecimals = 6 // oracle and order prices
)

// FormatAmount renders a scaled integer as a decimal string, truncated
// (never rounded) to displayDecimals fractional digits. The fractional
// part is zero-padded to the full precision before slicing, so a dust
// amount like 5 at 6 decimals displays as "0.00" at two places while
// still being nonzero. If displayDecimals exceeds decimals the full
// fractional part is kept as-is.
//
// Negative decimals is a caller bug and panics.
func FormatAmount(amt int64, decimals, displayDecimals int) string {
	if decimals < 0 || displayDecimals < 0 {
		panic("amount: negative decimals")
	}

	neg := amt < 0
	abs := amt
	if neg {
		abs = -abs
	}

	div := pow10(decimals)
	whole := strconv.FormatInt(abs/div, 10)
	frac := strconv.FormatInt(abs%div, 10)
	if len(frac) < decimals {
		frac = strings.Repeat("0", decimals-len(frac)) + frac
	}
	if displayDecimals < len(frac) {
		frac = frac[:displayDecimals]
	}

	out := whole
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// ToScaledInteger parses a decimal string and scales it by 10^decimals,
// flooring toward negative infinity. Empty or non-numeric input yields 0;
// callers dealing with financial amounts should reject empty input before
// getting here.
func ToScaledInteger(s string, decimals int) int64 {
	if decimals < 0 {
		panic("amount: negative decimals")
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return d.Shift(int32(decimals)).Floor().IntPart()
}

func pow10(n int) int64 {
	p := int64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
