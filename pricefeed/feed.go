// Package pricefeed supplies point-in-time spot prices. The pricing
// engine takes prices as plain arguments; this package is the collaborator
// that produces them, either from a static snapshot or a push feed.
package pricefeed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNoQuote is returned when no price is known for a symbol.
var ErrNoQuote = errors.New("no quote for symbol")

// Quote is one observed spot price.
type Quote struct {
	Symbol string
	Price  float64
	Time   time.Time
}

// Source yields the current spot price for a symbol.
type Source interface {
	Spot(ctx context.Context, symbol string) (Quote, error)
}

// Static is a Source backed by explicitly set quotes. Safe for
// concurrent use; handy for tests and fixed-price demos.
type Static struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

func NewStatic() *Static {
	return &Static{quotes: make(map[string]Quote)}
}

func (s *Static) Set(q Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.Symbol] = q
}

func (s *Static) Spot(ctx context.Context, symbol string) (Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[symbol]
	if !ok {
		return Quote{}, fmt.Errorf("%s: %w", symbol, ErrNoQuote)
	}
	return q, nil
}

// EstimatedWorth prices a holding of quantity units at the current spot.
func EstimatedWorth(ctx context.Context, src Source, symbol string, quantity float64) (float64, error) {
	q, err := src.Spot(ctx, symbol)
	if err != nil {
		return 0, err
	}
	return q.Price * quantity, nil
}
