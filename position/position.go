// Package position records committed hedges. A Position is an immutable
// value: state transitions return a fresh copy rather than mutating in
// place. Order-fill detection lives outside this module; callers observe
// fills elsewhere and apply the transition here.
package position

import (
	"fmt"
	"time"
)

// Status is the lifecycle of a protected position.
type Status string

const (
	// StatusPending means the opening short order has been placed but
	// not observed filled.
	StatusPending Status = "pending"
	// StatusActive means the opening order filled; protection is live.
	StatusActive Status = "active"
	// StatusClosed means the closing or stop order filled, or the
	// position was cancelled.
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusClosed:
		return true
	}
	return false
}

// Position is one committed hedge. SizeScaled is the base-asset size as
// an integer scaled by 1e9.
type Position struct {
	ID           string
	MarketIndex  int
	SizeScaled   int64
	StrikePrice  float64
	OpenOrderID  string
	CloseOrderID string
	Status       Status
	SubAccountID int
	OpenedAt     time.Time
	UpdatedAt    time.Time
}

func (p Position) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("position id is required")
	}
	if p.SizeScaled <= 0 {
		return fmt.Errorf("position %s: size must be positive", p.ID)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("position %s: unknown status %q", p.ID, p.Status)
	}
	return nil
}

// Activated returns a copy of p marked active, recording when the open
// order was observed filled. Only pending positions activate.
func (p Position) Activated(at time.Time) (Position, error) {
	if p.Status != StatusPending {
		return p, fmt.Errorf("position %s: cannot activate from %q", p.ID, p.Status)
	}
	p.Status = StatusActive
	p.UpdatedAt = at
	return p, nil
}

// Closed returns a copy of p marked closed, recording the close order
// that ended it. An empty closeOrderID means the position was cancelled
// before its close order existed.
func (p Position) Closed(closeOrderID string, at time.Time) (Position, error) {
	if p.Status == StatusClosed {
		return p, fmt.Errorf("position %s: already closed", p.ID)
	}
	p.Status = StatusClosed
	p.CloseOrderID = closeOrderID
	p.UpdatedAt = at
	return p, nil
}
