package hedge

import (
	"fmt"
	"strconv"

	"github.com/perpshield/hedger/amount"
	"github.com/perpshield/hedger/market"
)

// Snapshot is one internally consistent view of a proposed hedge. All
// fields derive from the same input generation; the snapshot is replaced
// wholesale on any input change, never patched field by field.
type Snapshot struct {
	Leverage         string  // "<n>X"
	StrikePrice      float64 // currency per unit
	StopLossPrice    float64
	LiquidationPrice string // "$<x.xx>"
	Collateral       float64
	TxFee            string
}

// ComputeSnapshot runs the calculators in their required order —
// collateral, strike, liquidation, fee — each feeding the next, and
// packs the results into one Snapshot. Missing market data or incomplete
// user input flows through as the calculators' zero results.
func ComputeSnapshot(params *market.MarginParams, targetValue, holdingQuantity string, tier *market.FeeTier) Snapshot {
	reqs := CalculateCollateralRequirements(params, targetValue)
	strike := CalculateLimitOrderPrice(targetValue, holdingQuantity)
	liq := CalculateLiquidationPriceShort(holdingQuantity, strike, &reqs)
	fee := CalculateTakerFee(strike, amount.ToScaledInteger(holdingQuantity, amount.BaseDecimals), tier)

	return Snapshot{
		Leverage:         strconv.FormatFloat(reqs.Leverage, 'f', -1, 64) + "X",
		StrikePrice:      strike,
		StopLossPrice:    liq.StopLossPrice,
		LiquidationPrice: fmt.Sprintf("$%.2f", liq.LiquidationPrice),
		Collateral:       reqs.InitialCollateral,
		TxFee:            fee.Display(),
	}
}
