package hedge

import (
	"math"

	"github.com/perpshield/hedger/market"
	"github.com/perpshield/hedger/money"
)

const (
	// priceStep is the fixed increment of the liquidation search, in
	// currency units. Results are only meaningful to this precision.
	priceStep = 0.01

	// stopLossBuffer places the stop 2% below the liquidation price.
	stopLossBuffer = 0.02
)

// LiquidationResult pairs the price at which a short's collateral is
// fully consumed with the stop-loss placed a fixed buffer below it.
type LiquidationResult struct {
	LiquidationPrice float64
	StopLossPrice    float64
}

// CalculateLiquidationPriceShort searches for the price at which a short
// position of positionSize units entered at entryPrice exhausts its
// collateral. Short sign convention throughout: pnl = size * (p - entry),
// so a rising price is a loss.
//
// The search walks upward from entryPrice in fixed 0.01 steps until the
// remaining collateral no longer exceeds the maintenance requirement.
// The maintenance term is seeded to zero and the condition is checked
// before the first increment, so with positive collateral the loop
// always takes at least one step and can never report liquidation below
// entry; with zero or negative collateral it reports entry itself. That
// quirk is observable behavior and is preserved deliberately.
//
// Returns the zero result when collateral is absent or positionSize is
// empty, unparsable, or not positive.
func CalculateLiquidationPriceShort(positionSize string, entryPrice float64, collateral *CollateralRequirements) LiquidationResult {
	if collateral == nil {
		return LiquidationResult{}
	}
	size, ok := money.ParseFloat(positionSize)
	if !ok || size <= 0 {
		return LiquidationResult{}
	}

	liq := entryPrice
	remaining := collateral.InitialCollateral
	maintenance := 0.0

	for remaining > maintenance {
		liq += priceStep
		pnl := size * (liq - entryPrice)
		remaining = collateral.InitialCollateral - pnl
		maintenance = size * liq * float64(collateral.MaintenanceMarginBps) / market.BpsDenominator
	}

	return LiquidationResult{
		LiquidationPrice: liq,
		StopLossPrice:    stopLossFrom(liq),
	}
}

// stopLossFrom rounds the buffered stop price to the cent, half up.
func stopLossFrom(liquidationPrice float64) float64 {
	p := liquidationPrice * (1 - stopLossBuffer)
	return math.Floor(p*100+0.5) / 100
}
