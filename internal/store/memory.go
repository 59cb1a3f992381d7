package store

import (
	"context"
	"sync"
)

// MemoryKV is an in-process key-value store with the same semantics as
// KVRepo. It is used by tests.
type MemoryKV struct {
	mu    sync.Mutex
	ints  map[string]int
	bytes map[string][]byte
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		ints:  make(map[string]int),
		bytes: make(map[string][]byte),
	}
}

func (m *MemoryKV) GetInt(_ context.Context, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.ints[key]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) GetBytes(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bytes[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (m *MemoryKV) SetInt(_ context.Context, key string, v int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bytes, key)
	m.ints[key] = v
	return nil
}

func (m *MemoryKV) SetBytes(_ context.Context, key string, b []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ints, key)
	m.bytes[key] = append([]byte{}, b...)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ints, key)
	delete(m.bytes, key)
	return nil
}
