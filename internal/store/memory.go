package store

import (
	"maps"
	"slices"
	"sync"
)

// Memory is an in-process KV. FailGet and FailSet, when set, are returned
// from every Get or Set so callers can exercise their error paths.
type Memory struct {
	mu      sync.Mutex
	data    map[string][]byte
	FailGet error
	FailSet error
}

var _ KV = (*Memory)(nil)

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements KV.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet != nil {
		return nil, false, m.FailGet
	}
	v, ok := m.data[key]
	return slices.Clone(v), ok, nil
}

// Set implements KV.
func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	m.data[key] = slices.Clone(value)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.data))
}
