package hedge

import "github.com/perpshield/hedger/money"

// CalculateLimitOrderPrice returns the per-unit strike price at which
// selling holdingQuantity units covers targetValue exactly. Empty or
// unparsable input, or a zero quantity, returns 0.
func CalculateLimitOrderPrice(targetValue, holdingQuantity string) float64 {
	v, ok := money.ParseUSDFloat(targetValue)
	if !ok {
		return 0
	}
	qty, ok := money.ParseFloat(holdingQuantity)
	if !ok || qty == 0 {
		return 0
	}
	return v / qty
}
