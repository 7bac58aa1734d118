// Package cache provides the Redis-backed read-aside cache used in front of PostgreSQL.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"streamsync/config"
	"streamsync/internal/domain/lifecycle"
	"streamsync/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// generationTTL bounds how long an idle generation counter survives.
const generationTTL = 24 * time.Hour

// setIfGeneration writes ARGV[2] to KEYS[1] only while the counter at KEYS[2] still equals ARGV[1].
var setIfGeneration = redis.NewScript(`
local current = redis.call("GET", KEYS[2])
if (current or "0") ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// invalidateKeys bumps each counter in KEYS[1..ARGV[1]] and deletes the remaining keys.
var invalidateKeys = redis.NewScript(`
local counters = tonumber(ARGV[1])
for i = 1, counters do
	redis.call("INCR", KEYS[i])
	redis.call("PEXPIRE", KEYS[i], ARGV[2])
end
for i = counters + 1, #KEYS do
	redis.call("DEL", KEYS[i])
end
return 1
`)

// CacheClient defines the subset of Redis commands the decorators need.
//
// Values are guarded by generation counters: a reader records the generation before loading
// from the store and writes back with SetIfGeneration, while writers call Invalidate. A
// write-back that races an invalidation is dropped instead of restoring a stale value.
type CacheClient interface {
	// Get decodes the JSON value of key into dest, or returns ErrCacheMiss.
	Get(ctx context.Context, key string, dest any) error
	// Generation returns the counter stored at genKey, 0 when absent.
	Generation(ctx context.Context, genKey string) (int64, error)
	// SetIfGeneration stores value as JSON with a TTL unless genKey moved past gen.
	SetIfGeneration(ctx context.Context, key string, value any, ttl time.Duration, genKey string, gen int64) (bool, error)
	// Invalidate bumps the generation counters and removes the keys atomically.
	Invalidate(ctx context.Context, genKeys []string, keys ...string) error
}

// RedisClient wraps go-redis to satisfy CacheClient.
type RedisClient struct {
	rdb *redis.Client
}

// Params defines the dependencies of the Redis client.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to Redis when it is enabled and returns nil otherwise.
func NewRedisClient(params Params) (*RedisClient, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis disabled, device tokens are read from PostgreSQL")

		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	client := NewClient(rdb)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "redis ping failed")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewClient wraps an existing go-redis client.
func NewClient(rdb *redis.Client) *RedisClient {
	return &RedisClient{rdb: rdb}
}

// Redis exposes the underlying client for components that need raw commands.
func (c *RedisClient) Redis() *redis.Client {
	return c.rdb
}

func (c *RedisClient) Get(ctx context.Context, key string, dest any) error {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}

		return errors.Wrapf(err, "redis get %s", key)
	}

	return errors.Wrapf(json.Unmarshal(val, dest), "decode cached %s", key)
}

func (c *RedisClient) Generation(ctx context.Context, genKey string) (int64, error) {
	gen, err := c.rdb.Get(ctx, genKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return gen, errors.Wrapf(err, "redis get %s", genKey)
}

func (c *RedisClient) SetIfGeneration(
	ctx context.Context,
	key string,
	value any,
	ttl time.Duration,
	genKey string,
	gen int64,
) (bool, error) {
	bytes, err := json.Marshal(value)
	if err != nil {
		return false, errors.Wrapf(err, "encode cached %s", key)
	}

	written, err := setIfGeneration.Run(ctx, c.rdb, []string{key, genKey},
		strconv.FormatInt(gen, 10), bytes, ttl.Milliseconds()).Int()
	if err != nil {
		return false, errors.Wrapf(err, "redis guarded set %s", key)
	}

	return written == 1, nil
}

func (c *RedisClient) Invalidate(ctx context.Context, genKeys []string, keys ...string) error {
	if len(genKeys) == 0 && len(keys) == 0 {
		return nil
	}

	all := make([]string, 0, len(genKeys)+len(keys))
	all = append(all, genKeys...)
	all = append(all, keys...)

	err := invalidateKeys.Run(ctx, c.rdb, all, len(genKeys), generationTTL.Milliseconds()).Err()

	return errors.Wrap(err, "redis invalidate")
}

func (c *RedisClient) Close() error {
	return c.rdb.Close()
}
