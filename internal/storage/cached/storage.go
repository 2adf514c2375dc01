// Package cached provides a Redis read-through cache in front of another URLStorage.
package cached

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_shortify/internal/storage"
)

const (
	cacheTTL = time.Hour
	cacheKey = "shortify:url:"
)

// Check interface implementation explicitly
var (
	_ storage.URLStorage = (*Storage)(nil)
)

// Storage caches sURL lookups. Redis failures are logged and the call falls through to next.
type Storage struct {
	storage.URLStorage
	redis *redis.Client
	log   *zap.SugaredLogger
}

// NewStorage wraps next with a cache kept in redisClient.
func NewStorage(next storage.URLStorage, redisClient *redis.Client, log *zap.SugaredLogger) *Storage {
	return &Storage{
		URLStorage: next,
		redis:      redisClient,
		log:        log,
	}
}

// Retrieve returns a cached URL or asks the wrapped storage and caches its answer.
func (s *Storage) Retrieve(ctx context.Context, sURL string) (URL string, err error) {
	key := cacheKey + sURL
	URL, err = s.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		s.log.Debugw("Cache hit", "sURL", sURL)
		return URL, nil
	case !errors.Is(err, redis.Nil):
		s.log.Warnw("Cache read failed", "sURL", sURL, "error", err)
	}

	URL, err = s.URLStorage.Retrieve(ctx, sURL)
	if err != nil {
		return "", err
	}
	if err := s.redis.Set(ctx, key, URL, cacheTTL).Err(); err != nil {
		s.log.Warnw("Cache write failed", "sURL", sURL, "error", err)
	}
	return URL, nil
}

// Delete removes the entry from the wrapped storage and evicts its cache key.
func (s *Storage) Delete(ctx context.Context, id int64) (sURL string, err error) {
	sURL, err = s.URLStorage.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.redis.Del(ctx, cacheKey+sURL).Err(); err != nil {
		s.log.Warnw("Cache eviction failed", "sURL", sURL, "error", err)
	}
	return sURL, nil
}

// PingDB reports the health of the wrapped storage; an unreachable Redis is only logged.
func (s *Storage) PingDB() error {
	if err := s.redis.Ping(context.Background()).Err(); err != nil {
		s.log.Warnw("Cache ping failed", "error", err)
	}
	return s.URLStorage.PingDB()
}

// CloseDB closes the Redis client and the wrapped storage.
func (s *Storage) CloseDB() error {
	if err := s.redis.Close(); err != nil {
		s.log.Warnw("Redis closure failed", "error", err)
	}
	return s.URLStorage.CloseDB()
}
