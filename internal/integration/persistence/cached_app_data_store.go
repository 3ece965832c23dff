package persistence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// cachedAppDataStore is a write-through Redis cache in front of another AppDataStore.
// Cache failures never fail a request; the underlying store stays authoritative.
type cachedAppDataStore struct {
	next   adapter.AppDataStore
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewCachedAppDataStore wraps next with a Redis cache. Entries expire after ttl.
func NewCachedAppDataStore(next adapter.AppDataStore, client *redis.Client, key string, ttl time.Duration) adapter.AppDataStore {
	if key == "" {
		key = DefaultStoreKey
	}
	return &cachedAppDataStore{
		next:   next,
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (s *cachedAppDataStore) cacheKey(ownerID string) string {
	return s.key + ":" + ownerID
}

// Load serves the dataset from the cache, falling back to the underlying store on a miss.
func (s *cachedAppDataStore) Load(ctx context.Context, ownerID string) (*entity.AppData, error) {
	cacheKey := s.cacheKey(ownerID)

	payload, err := s.client.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		data, decodeErr := model.DecodeAppData(payload)
		if decodeErr == nil {
			return data, nil
		}
		slog.Warn("Discarding undecodable cache entry", "owner_id", ownerID, "error", decodeErr)
		s.client.Del(ctx, cacheKey)
	case !errors.Is(err, redis.Nil):
		slog.Warn("Cache read failed", "owner_id", ownerID, "error", err)
	}

	data, err := s.next.Load(ctx, ownerID)
	if err != nil || data == nil {
		return data, err
	}
	s.fill(ctx, ownerID, data)
	return data, nil
}

// Save writes through to the underlying store and then refreshes the cache.
func (s *cachedAppDataStore) Save(ctx context.Context, ownerID string, data *entity.AppData) error {
	if err := s.next.Save(ctx, ownerID, data); err != nil {
		s.evict(ctx, ownerID)
		return err
	}
	s.fill(ctx, ownerID, data)
	return nil
}

// Clear removes the dataset from the underlying store and the cache.
func (s *cachedAppDataStore) Clear(ctx context.Context, ownerID string) error {
	s.evict(ctx, ownerID)
	return s.next.Clear(ctx, ownerID)
}

func (s *cachedAppDataStore) fill(ctx context.Context, ownerID string, data *entity.AppData) {
	payload, err := model.EncodeAppData(data)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, s.cacheKey(ownerID), payload, s.ttl).Err(); err != nil {
		slog.Warn("Cache write failed", "owner_id", ownerID, "error", err)
	}
}

func (s *cachedAppDataStore) evict(ctx context.Context, ownerID string) {
	if err := s.client.Del(ctx, s.cacheKey(ownerID)).Err(); err != nil {
		slog.Warn("Cache eviction failed", "owner_id", ownerID, "error", err)
	}
}
