package storage

import "sync"

// OwnerLocks serializes read-modify-write cycles on one owner's slots within
// this process.
type OwnerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewOwnerLocks() *OwnerLocks {
	return &OwnerLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock blocks until owner is free and returns the matching unlock.
func (l *OwnerLocks) Lock(owner string) func() {
	l.mu.Lock()
	m, ok := l.locks[owner]
	if !ok {
		m = &sync.Mutex{}
		l.locks[owner] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
