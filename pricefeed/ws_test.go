package pricefeed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewWSRequiresURL(t *testing.T) {
	t.Parallel()

	_, err := NewWS(WSConfig{}, nil)
	assert.Error(t, err)
}

func TestWSSpotStaleness(t *testing.T) {
	t.Parallel()

	w, err := NewWS(WSConfig{URL: "wss://example.invalid/ws", StaleAfter: time.Second}, nil)
	assert.NoError(t, err)

	ctx := context.Background()

	w.store.Set(Quote{Symbol: "SOL-PERP", Price: 150, Time: time.Now().Add(-time.Minute)})
	_, err = w.Spot(ctx, "SOL-PERP")
	assert.ErrorIs(t, err, ErrNoQuote)

	w.store.Set(Quote{Symbol: "SOL-PERP", Price: 150, Time: time.Now()})
	got, err := w.Spot(ctx, "SOL-PERP")
	assert.NoError(t, err)
	assert.InDelta(t, 150.0, got.Price, 1e-12)
}

func TestWSSpotNoStalenessBound(t *testing.T) {
	t.Parallel()

	w, err := NewWS(WSConfig{URL: "wss://example.invalid/ws"}, nil)
	assert.NoError(t, err)

	w.store.Set(Quote{Symbol: "SOL-PERP", Price: 150, Time: time.Now().Add(-time.Hour)})
	got, err := w.Spot(context.Background(), "SOL-PERP")
	assert.NoError(t, err)
	assert.InDelta(t, 150.0, got.Price, 1e-12)
}
