package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "planner.db", cfg.Database.SQLitePath)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 12, cfg.JWT.BcryptCost)
	assert.Equal(t, "Budget Planner", cfg.Email.FromName)
	assert.Equal(t, 30, cfg.Email.RetentionDays)
	assert.Equal(t, "finance_app_data", cfg.Store.Key)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.MaxAttempts)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_CACHE_TTL", "30s")
	t.Setenv("STORE_KEY", "planner_test")
	t.Setenv("EMAIL_WORKER_BATCH_SIZE", "25")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, "planner_test", cfg.Store.Key)
	assert.Equal(t, 25, cfg.Email.BatchSize)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("REDIS_ENABLED", "maybe")
	t.Setenv("REDIS_CACHE_TTL", "forever")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
}

func TestLoad_RateLimitOffForTestEnvironments(t *testing.T) {
	for _, env := range []string{"test", "e2e"} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("ENV", env)
			assert.False(t, Load().RateLimit.Enabled)
		})
	}

	t.Run("explicit override", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("RATE_LIMIT_ENABLED", "true")
		assert.True(t, Load().RateLimit.Enabled)
	})
}
