package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Slot names, one JSON blob each per owner.
const (
	KeyUser         = "barberShopUser"
	KeyFavorites    = "barberShopFavorites"
	KeyAppointments = "barberShopAppointments"
)

var ErrNotFound = errors.New("storage: slot not found")

// Store is a per-owner key/value blob store. Get returns ErrNotFound when the
// slot has never been written.
type Store interface {
	Get(ctx context.Context, owner, key string) (string, error)
	Put(ctx context.Context, owner, key, value string) error
	Delete(ctx context.Context, owner, key string) error
}

// LoadJSON decodes a slot into T. A missing, null or undecodable blob yields
// fallback() and a nil error; only backend failures are returned.
func LoadJSON[T any](ctx context.Context, s Store, owner, key string, fallback func() T) (T, error) {
	raw, err := s.Get(ctx, owner, key)
	if errors.Is(err, ErrNotFound) {
		return fallback(), nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("load %s: %w", key, err)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return fallback(), nil
	}

	var out T
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return fallback(), nil
	}
	return out, nil
}

func SaveJSON(ctx context.Context, s Store, owner, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Put(ctx, owner, key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
