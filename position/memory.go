package position

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-process Source for demo hedges. Safe for concurrent
// use.
type Memory struct {
	mu        sync.RWMutex
	positions map[string]Position
}

func NewMemory() *Memory {
	return &Memory{positions: make(map[string]Position)}
}

func (m *Memory) Open(ctx context.Context, p Position) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.positions[p.ID]; ok {
		return fmt.Errorf("position %s already exists", p.ID)
	}
	m.positions[p.ID] = p
	return nil
}

func (m *Memory) Update(ctx context.Context, p Position) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.positions[p.ID]; !ok {
		return fmt.Errorf("update %s: %w", p.ID, ErrNotFound)
	}
	m.positions[p.ID] = p
	return nil
}

func (m *Memory) Get(ctx context.Context, id string) (Position, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.positions[id]
	if !ok {
		return Position{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	return p, nil
}

func (m *Memory) List(ctx context.Context) ([]Position, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Position, 0, len(m.positions))
	for _, p := range m.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *Memory) Close() error { return nil }
