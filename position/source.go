package position

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a position id is unknown to a Source.
var ErrNotFound = errors.New("position not found")

// Source is the ledger a hedging front end records positions in. Two
// implementations exist: Memory for demo/paper hedges and SQLite for a
// persistent ledger. The pricing engine itself never touches a Source;
// it only produces the values stored here.
type Source interface {
	// Open records a new position. The position must validate and its
	// id must be unused.
	Open(ctx context.Context, p Position) error
	// Update replaces the stored record for p.ID with p.
	Update(ctx context.Context, p Position) error
	// Get returns the position with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (Position, error)
	// List returns all positions, newest first by id. ULID ids are
	// time-ordered, so lexical order is open order.
	List(ctx context.Context) ([]Position, error)

	Close() error
}
