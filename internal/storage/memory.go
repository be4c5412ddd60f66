package storage

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]map[string]string)}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) Get(_ context.Context, owner, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.slots[owner][key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Put(_ context.Context, owner, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.slots[owner] == nil {
		m.slots[owner] = make(map[string]string)
	}
	m.slots[owner][key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, owner, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots[owner], key)
	return nil
}
