// Package market defines the value types describing a perpetual-futures
// market: margin parameters, fee tiers, and per-market metadata. All
// types are plain immutable values supplied by the caller; nothing here
// fetches or caches.
package market

import "fmt"

// BpsDenominator is the basis-point scale margin ratios are quoted in.
const BpsDenominator = 10_000

// MarginParams holds a market's margin ratios in basis points of 10,000
// (1000 = 10%).
type MarginParams struct {
	InitialMarginBps     int
	MaintenanceMarginBps int
}

// Validate enforces 0 < maintenance <= initial <= 10000.
func (p MarginParams) Validate() error {
	if p.MaintenanceMarginBps <= 0 {
		return fmt.Errorf("maintenance margin %d bps must be positive", p.MaintenanceMarginBps)
	}
	if p.MaintenanceMarginBps > p.InitialMarginBps {
		return fmt.Errorf("maintenance margin %d bps exceeds initial margin %d bps",
			p.MaintenanceMarginBps, p.InitialMarginBps)
	}
	if p.InitialMarginBps > BpsDenominator {
		return fmt.Errorf("initial margin %d bps exceeds %d", p.InitialMarginBps, BpsDenominator)
	}
	return nil
}

// FeeTier is a trading-fee fraction expressed as numerator/denominator.
type FeeTier struct {
	FeeNumerator   int64
	FeeDenominator int64
}

func (t FeeTier) Validate() error {
	if t.FeeDenominator <= 0 {
		return fmt.Errorf("fee denominator %d must be positive", t.FeeDenominator)
	}
	if t.FeeNumerator < 0 {
		return fmt.Errorf("fee numerator %d must not be negative", t.FeeNumerator)
	}
	return nil
}

// Fraction returns the effective fee fraction, 0 when the tier is
// degenerate.
func (t FeeTier) Fraction() float64 {
	if t.FeeDenominator == 0 {
		return 0
	}
	return float64(t.FeeNumerator) / float64(t.FeeDenominator)
}

// Perp describes one perpetual market.
type Perp struct {
	Symbol        string
	MarketIndex   int
	BaseDecimals  int
	QuoteDecimals int
	Margin        MarginParams
}

func (p Perp) Validate() error {
	if p.Symbol == "" {
		return fmt.Errorf("market symbol is required")
	}
	if p.MarketIndex < 0 {
		return fmt.Errorf("market index %d must not be negative", p.MarketIndex)
	}
	if p.BaseDecimals < 0 || p.QuoteDecimals < 0 {
		return fmt.Errorf("market %s: decimals must not be negative", p.Symbol)
	}
	if err := p.Margin.Validate(); err != nil {
		return fmt.Errorf("market %s: %w", p.Symbol, err)
	}
	return nil
}
