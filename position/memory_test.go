package position

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryOpenGet(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()
	p := newPending()

	assert.NoError(t, m.Open(ctx, p))

	got, err := m.Get(ctx, p.ID)
	assert.NoError(t, err)
	assert.Equal(t, p, got)

	// Duplicate ids are rejected.
	assert.Error(t, m.Open(ctx, p))
}

func TestMemoryGetUnknown(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	_, err := m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdate(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()
	p := newPending()
	assert.NoError(t, m.Open(ctx, p))

	active, err := p.Activated(p.OpenedAt.Add(time.Minute))
	assert.NoError(t, err)
	assert.NoError(t, m.Update(ctx, active))

	got, err := m.Get(ctx, p.ID)
	assert.NoError(t, err)
	assert.Equal(t, StatusActive, got.Status)

	missing := newPending()
	missing.ID = "01UNKNOWN000000000000000AA"
	assert.ErrorIs(t, m.Update(ctx, missing), ErrNotFound)
}

func TestMemoryListNewestFirst(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	older := newPending()
	older.ID = "01AAAAAAAAAAAAAAAAAAAAAAAA"
	newer := newPending()
	newer.ID = "01ZZZZZZZZZZZZZZZZZZZZZZZZ"

	assert.NoError(t, m.Open(ctx, older))
	assert.NoError(t, m.Open(ctx, newer))

	got, err := m.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}
