package hedge

import (
	"github.com/perpshield/hedger/market"
	"github.com/perpshield/hedger/money"
)

// CollateralRequirements is the margin picture for a target protected
// value on one market. The maintenance ratio is passed through for the
// liquidation search.
type CollateralRequirements struct {
	InitialCollateral    float64
	MaintenanceMarginBps int
	Leverage             float64
}

// CalculateCollateralRequirements derives leverage and the initial
// collateral needed to protect targetValue on the given market.
//
// A nil market or an empty/unparsable targetValue returns the zero
// result: upstream data has not arrived yet or the user is mid-entry,
// both normal states.
func CalculateCollateralRequirements(params *market.MarginParams, targetValue string) CollateralRequirements {
	if params == nil {
		return CollateralRequirements{}
	}
	v, ok := money.ParseUSDFloat(targetValue)
	if !ok {
		return CollateralRequirements{}
	}

	return CollateralRequirements{
		InitialCollateral:    float64(params.InitialMarginBps) * v / market.BpsDenominator,
		MaintenanceMarginBps: params.MaintenanceMarginBps,
		Leverage:             market.BpsDenominator / float64(params.InitialMarginBps),
	}
}
