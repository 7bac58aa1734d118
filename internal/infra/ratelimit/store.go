// Package ratelimit provides per-identifier request limit stores for the echo rate limiter.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"streamsync/config"
	"streamsync/internal/infra/cache"

	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	// Window is the length of one rate limit window.
	Window = time.Minute

	redisCallTimeout = 500 * time.Millisecond
)

// Store is an echo rate limiter store that can also tell a rejected caller when to retry.
type Store interface {
	middleware.RateLimiterStore

	// RetryAfter returns how long the identifier has to wait before the next request is allowed.
	RetryAfter(identifier string) time.Duration
}

// Params defines the dependencies of the send-test limiter store.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *cache.RedisClient `optional:"true"`
}

// NewSendTestStore returns the Redis fixed-window store when Redis is available and the
// in-memory token bucket otherwise.
func NewSendTestStore(params Params) Store {
	limit := params.Config.RateLimit.SendTestPerMinute

	if params.Redis != nil {
		params.Logger.Info("Rate limiting send-test with Redis", slog.Int("per_minute", limit))

		return NewRedisStore(params.Redis.Redis(), "ratelimit:send-test", limit, Window)
	}

	params.Logger.Info("Rate limiting send-test in memory", slog.Int("per_minute", limit))

	return NewMemoryStore(limit, Window)
}

// redisStore counts requests per identifier in fixed windows shared by every API instance.
type redisStore struct {
	rdb    redis.Cmdable
	prefix string
	limit  int
	window time.Duration
}

// NewRedisStore creates a fixed-window store allowing limit requests per window.
func NewRedisStore(rdb redis.Cmdable, prefix string, limit int, window time.Duration) Store {
	return &redisStore{
		rdb:    rdb,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Allow increments the counter of the current window. The window starts with the first request.
func (s *redisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisCallTimeout)
	defer cancel()

	key := s.key(identifier)

	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, errors.Wrap(err, "rate limit counter increment failed")
	}

	if count == 1 {
		if err := s.rdb.PExpire(ctx, key, s.window).Err(); err != nil {
			return false, errors.Wrap(err, "rate limit window expiry failed")
		}
	}

	return count <= int64(s.limit), nil
}

func (s *redisStore) RetryAfter(identifier string) time.Duration {
	ctx, cancel := context.WithTimeout(context.Background(), redisCallTimeout)
	defer cancel()

	ttl, err := s.rdb.PTTL(ctx, s.key(identifier)).Result()
	if err != nil || ttl <= 0 {
		return s.window
	}

	return ttl
}

func (s *redisStore) key(identifier string) string {
	return fmt.Sprintf("%s:%s", s.prefix, identifier)
}

// memoryStore is the single-instance fallback built on echo's token bucket store.
type memoryStore struct {
	*middleware.RateLimiterMemoryStore

	interval time.Duration
}

// NewMemoryStore allows limit requests per window with a burst of limit.
func NewMemoryStore(limit int, window time.Duration) Store {
	interval := window / time.Duration(limit)

	return &memoryStore{
		RateLimiterMemoryStore: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(interval),
			Burst:     limit,
			ExpiresIn: window,
		}),
		interval: interval,
	}
}

// RetryAfter returns the time one token takes to refill, rounded up to whole seconds.
func (s *memoryStore) RetryAfter(_ string) time.Duration {
	return time.Duration(math.Ceil(s.interval.Seconds())) * time.Second
}
