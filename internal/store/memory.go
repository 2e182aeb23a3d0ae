package store

import (
	"context"
	"sync"
)

// Memory is an in-process KV backend. The mutex only protects the map; it
// does not make a read followed by a write atomic.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ KV = (*Memory)(nil)

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements KV.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put implements KV.
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Close implements KV.
func (m *Memory) Close() error { return nil }
