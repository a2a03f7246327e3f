package hedge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/perpshield/hedger/market"
)

func TestComputeSnapshot(t *testing.T) {
	t.Parallel()

	params := &market.MarginParams{InitialMarginBps: 1000, MaintenanceMarginBps: 500}
	tier := &market.FeeTier{FeeNumerator: 1, FeeDenominator: 1000}

	snap := ComputeSnapshot(params, "$1000", "10", tier)

	assert.Equal(t, "10X", snap.Leverage)
	assert.InDelta(t, 100.0, snap.Collateral, 1e-9)
	assert.InDelta(t, 100.0, snap.StrikePrice, 1e-9)
	assert.Equal(t, "$104.77", snap.LiquidationPrice)
	assert.InDelta(t, 102.67, snap.StopLossPrice, 1e-9)
	// 10 units at $100 strike is $1000 notional; 1/1000 of that is $1.
	assert.Equal(t, "$1.00", snap.TxFee)
}

func TestComputeSnapshotEmptyTarget(t *testing.T) {
	t.Parallel()

	params := &market.MarginParams{InitialMarginBps: 1000, MaintenanceMarginBps: 500}
	tier := &market.FeeTier{FeeNumerator: 1, FeeDenominator: 1000}

	snap := ComputeSnapshot(params, "", "10", tier)

	assert.Zero(t, snap.Collateral)
	assert.Zero(t, snap.StrikePrice)
	assert.Equal(t, "$0.00", snap.LiquidationPrice)
	assert.Equal(t, "0X", snap.Leverage)
	assert.Equal(t, "0", snap.TxFee)
}

func TestComputeSnapshotNoMarket(t *testing.T) {
	t.Parallel()

	snap := ComputeSnapshot(nil, "$1000", "10", nil)

	assert.Zero(t, snap.Collateral)
	assert.Equal(t, "0X", snap.Leverage)
	// Strike still derives from the user inputs alone.
	assert.InDelta(t, 100.0, snap.StrikePrice, 1e-9)
	assert.Equal(t, "0", snap.TxFee)
}

func TestComputeSnapshotConsistency(t *testing.T) {
	t.Parallel()

	// One snapshot is one input generation: recomputing with the same
	// inputs reproduces every field.
	params := &market.MarginParams{InitialMarginBps: 2000, MaintenanceMarginBps: 1000}
	tier := &market.FeeTier{FeeNumerator: 5, FeeDenominator: 10000}

	a := ComputeSnapshot(params, "$750", "3", tier)
	b := ComputeSnapshot(params, "$750", "3", tier)
	assert.Equal(t, a, b)
}
