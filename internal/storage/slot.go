package storage

import "context"

// Slot binds one key and its decoding fallback to a Store.
type Slot[T any] struct {
	store    Store
	key      string
	fallback func() T
	locks    *OwnerLocks
}

func NewSlot[T any](store Store, key string, fallback func() T) *Slot[T] {
	return &Slot[T]{
		store:    store,
		key:      key,
		fallback: fallback,
		locks:    NewOwnerLocks(),
	}
}

func (s *Slot[T]) Load(ctx context.Context, owner string) (T, error) {
	return LoadJSON(ctx, s.store, owner, s.key, s.fallback)
}

func (s *Slot[T]) Save(ctx context.Context, owner string, v T) error {
	unlock := s.locks.Lock(owner)
	defer unlock()
	return SaveJSON(ctx, s.store, owner, s.key, v)
}

// Update loads, applies fn and saves, holding the owner's lock throughout.
// Nothing is written when fn fails.
func (s *Slot[T]) Update(ctx context.Context, owner string, fn func(T) (T, error)) (T, error) {
	unlock := s.locks.Lock(owner)
	defer unlock()

	cur, err := LoadJSON(ctx, s.store, owner, s.key, s.fallback)
	if err != nil {
		return cur, err
	}
	next, err := fn(cur)
	if err != nil {
		return cur, err
	}
	if err := SaveJSON(ctx, s.store, owner, s.key, next); err != nil {
		return cur, err
	}
	return next, nil
}
