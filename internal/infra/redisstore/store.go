package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

const keyPrefix = "barber:slots:"

// Store keeps each owner's slots as fields of one redis hash.
type Store struct {
	client *redis.Client
}

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// Connect dials redis and fails fast when the server is unreachable.
func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	client := NewClient(cfg)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return New(client), nil
}

func New(client *redis.Client) *Store {
	return &Store{client: client}
}

var _ storage.Store = (*Store)(nil)

func hashKey(owner string) string {
	return keyPrefix + owner
}

func (s *Store) Get(ctx context.Context, owner, key string) (string, error) {
	v, err := s.client.HGet(ctx, hashKey(owner), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *Store) Put(ctx context.Context, owner, key, value string) error {
	return s.client.HSet(ctx, hashKey(owner), key, value).Err()
}

func (s *Store) Delete(ctx context.Context, owner, key string) error {
	return s.client.HDel(ctx, hashKey(owner), key).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
