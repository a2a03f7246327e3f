package hedge

import (
	"math"

	"github.com/perpshield/hedger/amount"
	"github.com/perpshield/hedger/market"
	"github.com/perpshield/hedger/money"
)

// feeDisplayThreshold is the dollar amount below which a fee is shown as
// "Less than $0.01" rather than a number.
const feeDisplayThreshold = 0.01

// FeeKind tags a FeeResult.
type FeeKind int

const (
	// FeeZero means no fee applies: zero price, zero size, or no tier.
	FeeZero FeeKind = iota
	// FeeBelowThreshold means the fee is nonzero but under a cent.
	FeeBelowThreshold
	// FeeAmount means Value holds a displayable dollar fee.
	FeeAmount
)

// FeeResult is the taker fee as a tagged value. Value is populated for
// both FeeBelowThreshold and FeeAmount so callers doing arithmetic never
// have to parse a display string.
type FeeResult struct {
	Kind  FeeKind
	Value float64
}

// CalculateTakerFee computes the dollar taker fee for opening a position
// of baseSizeScaled units (integer scaled by 1e9) at entryPrice under
// the given fee tier. A zero price, zero size, or absent tier yields
// FeeZero.
func CalculateTakerFee(entryPrice float64, baseSizeScaled int64, tier *market.FeeTier) FeeResult {
	if entryPrice == 0 || baseSizeScaled == 0 || tier == nil || tier.FeeDenominator == 0 {
		return FeeResult{Kind: FeeZero}
	}

	size := baseSizeScaled
	if size < 0 {
		size = -size
	}
	positionValue := entryPrice * float64(size) / basePrecision()
	fee := positionValue * float64(tier.FeeNumerator) / float64(tier.FeeDenominator)

	if math.Abs(fee) < feeDisplayThreshold {
		return FeeResult{Kind: FeeBelowThreshold, Value: fee}
	}
	return FeeResult{Kind: FeeAmount, Value: fee}
}

// Display renders the fee for presentation: "0" when no fee applies, the
// literal "Less than $0.01" under the threshold, otherwise an en-US
// currency string with two decimal places.
func (r FeeResult) Display() string {
	switch r.Kind {
	case FeeBelowThreshold:
		return "Less than $0.01"
	case FeeAmount:
		return money.FormatUSDFloat(r.Value)
	default:
		return "0"
	}
}

func basePrecision() float64 {
	return math.Pow10(amount.BaseDecimals)
}
