package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"streamsync/config"
	"streamsync/internal/domain/entity"
	"streamsync/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cachedDeviceTokenRepository adds read-aside caching of per-user token lists to a
// DeviceTokenRepository. Every write invalidates the affected owners.
type cachedDeviceTokenRepository struct {
	repository.DeviceTokenRepository

	cache  CacheClient
	ttl    time.Duration
	logger *slog.Logger
}

// DecorateParams defines the dependencies of the device token decorator.
type DecorateParams struct {
	fx.In

	Repo   repository.DeviceTokenRepository
	Client *RedisClient `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// DecorateDeviceTokenRepository wraps the repository with the Redis cache when one is available.
func DecorateDeviceTokenRepository(params DecorateParams) repository.DeviceTokenRepository {
	if params.Client == nil || params.Config.Redis == nil {
		return params.Repo
	}

	return NewCachedDeviceTokenRepository(params.Repo, params.Client, params.Config.Redis.TokenCacheTTL, params.Logger)
}

// NewCachedDeviceTokenRepository creates the decorator.
func NewCachedDeviceTokenRepository(
	repo repository.DeviceTokenRepository,
	cache CacheClient,
	ttl time.Duration,
	logger *slog.Logger,
) repository.DeviceTokenRepository {
	return &cachedDeviceTokenRepository{
		DeviceTokenRepository: repo,
		cache:                 cache,
		ttl:                   ttl,
		logger:                logger,
	}
}

// FindTokensByUser serves the cached list and falls back to the store on a miss or cache failure.
// The list loaded on a miss is only written back when no write invalidated the user in between.
func (r *cachedDeviceTokenRepository) FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	key := tokensKey(userID)

	var cached []*entity.DeviceToken
	err := r.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		r.logger.WarnContext(ctx, "Device token cache read failed", slog.String("key", key), slog.Any("error", err))

		return r.DeviceTokenRepository.FindTokensByUser(ctx, userID)
	}

	genKey := generationKey(userID)
	gen, genErr := r.cache.Generation(ctx, genKey)

	tokens, err := r.DeviceTokenRepository.FindTokensByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		r.logger.WarnContext(ctx, "Device token cache generation read failed", slog.String("key", genKey), slog.Any("error", genErr))

		return tokens, nil
	}

	written, err := r.cache.SetIfGeneration(ctx, key, tokens, r.ttl, genKey, gen)
	switch {
	case err != nil:
		r.logger.WarnContext(ctx, "Device token cache write failed", slog.String("key", key), slog.Any("error", err))
	case !written:
		r.logger.DebugContext(ctx, "Device token cache write skipped after concurrent invalidation", slog.String("key", key))
	}

	return tokens, nil
}

// UpsertToken writes through and invalidates both the new and any previous owner.
func (r *cachedDeviceTokenRepository) UpsertToken(ctx context.Context, token *entity.DeviceToken) (*entity.DeviceToken, error) {
	owners := []uuid.UUID{token.UserID}

	previous, err := r.DeviceTokenRepository.FindByToken(ctx, token.Token)
	switch {
	case err == nil && previous.UserID != token.UserID:
		owners = append(owners, previous.UserID)
	case err != nil && !errors.Is(err, repository.ErrDeviceTokenNotFound):
		return nil, err
	}

	stored, err := r.DeviceTokenRepository.UpsertToken(ctx, token)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, owners...)

	return stored, nil
}

func (r *cachedDeviceTokenRepository) DeleteToken(ctx context.Context, userID uuid.UUID, token string) (int64, error) {
	affected, err := r.DeviceTokenRepository.DeleteToken(ctx, userID, token)
	if err != nil {
		return 0, err
	}

	r.invalidate(ctx, userID)

	return affected, nil
}

func (r *cachedDeviceTokenRepository) DeleteTokens(ctx context.Context, userID uuid.UUID, tokens []string) (int64, error) {
	affected, err := r.DeviceTokenRepository.DeleteTokens(ctx, userID, tokens)
	if err != nil {
		return 0, err
	}

	r.invalidate(ctx, userID)

	return affected, nil
}

func (r *cachedDeviceTokenRepository) DeleteAllUserTokens(ctx context.Context, userID uuid.UUID) (int64, error) {
	affected, err := r.DeviceTokenRepository.DeleteAllUserTokens(ctx, userID)
	if err != nil {
		return 0, err
	}

	r.invalidate(ctx, userID)

	return affected, nil
}

// invalidate drops the cached lists and moves their generations forward so in-flight
// write-backs are discarded. A failed call leaves the entries to expire with their TTL.
func (r *cachedDeviceTokenRepository) invalidate(ctx context.Context, userIDs ...uuid.UUID) {
	genKeys := make([]string, 0, len(userIDs))
	keys := make([]string, 0, len(userIDs))
	for _, userID := range userIDs {
		genKeys = append(genKeys, generationKey(userID))
		keys = append(keys, tokensKey(userID))
	}

	if err := r.cache.Invalidate(ctx, genKeys, keys...); err != nil {
		r.logger.WarnContext(ctx, "Device token cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}

func tokensKey(userID uuid.UUID) string {
	return fmt.Sprintf("notify:tokens:%s", userID.String())
}

func generationKey(userID uuid.UUID) string {
	return fmt.Sprintf("notify:tokens-gen:%s", userID.String())
}
