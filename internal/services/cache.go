package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"facility-finder/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisStore is the subset of the redis client used by the cache.
type redisStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedCandidateSource keeps ListActive results in redis for a short TTL.
// Redis failures are logged and the wrapped source is used instead.
type CachedCandidateSource struct {
	next   CandidateSource
	rdb    redisStore
	prefix string
	ttl    time.Duration
	logr   *zap.Logger
}

func NewCachedCandidateSource(next CandidateSource, rdb redisStore, prefix string, ttl time.Duration, logr *zap.Logger) *CachedCandidateSource {
	if prefix != "" {
		prefix += ":"
	}
	return &CachedCandidateSource{next: next, rdb: rdb, prefix: prefix, ttl: ttl, logr: logr}
}

func (c *CachedCandidateSource) key(filter CandidateFilter) string {
	return c.prefix + "candidates:" + filter.Key()
}

// ListActive serves from redis when possible. Filters outside the known
// facility types skip the cache so Invalidate can always reach every key.
func (c *CachedCandidateSource) ListActive(ctx context.Context, filter CandidateFilter) ([]models.Facility, error) {
	if !filter.cacheable() {
		return c.next.ListActive(ctx, filter)
	}
	key := c.key(filter)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []models.Facility
		jsonErr := json.Unmarshal(raw, &cached)
		if jsonErr == nil {
			return cached, nil
		}
		c.logr.Warn("discarding unreadable candidate cache entry", zap.String("key", key), zap.Error(jsonErr))
	case !errors.Is(err, redis.Nil):
		c.logr.Warn("candidate cache read failed", zap.String("key", key), zap.Error(err))
	}

	facilities, err := c.next.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(facilities)
	if err != nil {
		c.logr.Warn("candidate cache encode failed", zap.Error(err))
		return facilities, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logr.Warn("candidate cache write failed", zap.String("key", key), zap.Error(err))
	}
	return facilities, nil
}

func (c *CachedCandidateSource) GetActiveByID(ctx context.Context, id uuid.UUID) (*models.Facility, error) {
	return c.next.GetActiveByID(ctx, id)
}

// Invalidate drops every cached candidate list.
func (c *CachedCandidateSource) Invalidate(ctx context.Context) error {
	keys := []string{c.key(CandidateFilter{})}
	for _, t := range models.FacilityTypes {
		keys = append(keys, c.key(CandidateFilter{FacilityType: t}))
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// NewRedisClient builds a cluster client when addr lists several nodes and a
// single-node client otherwise.
func NewRedisClient(addrs []string, password string) redis.UniversalClient {
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    addrs,
		Password: password,
	})
}
