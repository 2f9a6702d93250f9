package store

import (
	"context"
	"encoding/json"
	"errors"

	"backend-surfbuddy/internal/observability"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Keys of the two persisted collections. No other keys are written.
const (
	SessionsKey      = "sessions"
	FavoriteSpotsKey = "favoriteSpots"
)

// Store persists named collections as JSON arrays in redis. The payload is
// opaque at this layer; repositories own its interpretation.
type Store struct {
	rdb *redis.Client
	log *zap.Logger
}

func New(rdb *redis.Client, log *zap.Logger) *Store {
	return &Store{rdb: rdb, log: log}
}

// Read returns the collection stored under key. A missing key, an unreachable
// store, or a payload that fails to decode all yield an empty collection; the
// failure is logged and counted but never returned to the caller.
func Read[T any](ctx context.Context, s *Store, key string) []T {
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("store read failed", zap.String("key", key), zap.Error(err))
			observability.RecordStoreReadFailure(key)
		}
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("store payload corrupt, treating as empty", zap.String("key", key), zap.Error(err))
		observability.RecordStoreReadFailure(key)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Write replaces the collection stored under key with items. There are no
// partial writes: callers read the full collection, modify it in memory and
// write it back. A rejected write is returned so callers can warn that data
// may not have been saved.
func Write[T any](ctx context.Context, s *Store, key string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key, payload, 0).Err(); err != nil {
		return err
	}
	observability.RecordStoreWrite(key)
	return nil
}
