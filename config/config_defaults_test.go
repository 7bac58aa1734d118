package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)

	require.NotNil(t, cfg.Catalog)
	assert.Equal(t, 10*time.Minute, cfg.Catalog.FreshnessWindow)
	assert.Equal(t, 10, cfg.Catalog.DefaultMaxResults)

	require.NotNil(t, cfg.RateLimit)
	assert.Equal(t, 5, cfg.RateLimit.SendTestPerMinute)

	assert.Nil(t, cfg.Redis)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Catalog:   &CatalogConfig{FreshnessWindow: time.Minute, DefaultMaxResults: 3},
		RateLimit: &RateLimitConfig{SendTestPerMinute: 20},
		Redis:     &RedisConfig{Enabled: true, Addr: "localhost:6379"},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Catalog.FreshnessWindow)
	assert.Equal(t, 3, cfg.Catalog.DefaultMaxResults)
	assert.Equal(t, 20, cfg.RateLimit.SendTestPerMinute)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TokenCacheTTL)
}
