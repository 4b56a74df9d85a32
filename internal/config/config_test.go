package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "inventory")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, 2, cfg.Redis.MinIdleConns)
	assert.Equal(t, 15*time.Minute, cfg.Worker.LowStockInterval)
	assert.Equal(t, 5, cfg.Worker.LowStockThreshold)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_POOL_SIZE", "32")
	t.Setenv("REDIS_MIN_IDLE_CONNS", "4")
	t.Setenv("LOW_STOCK_CHECK_INTERVAL", "1m")
	t.Setenv("LOW_STOCK_THRESHOLD", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Redis.PoolSize)
	assert.Equal(t, 4, cfg.Redis.MinIdleConns)
	assert.Equal(t, time.Minute, cfg.Worker.LowStockInterval)
	assert.Equal(t, 8, cfg.Worker.LowStockThreshold)
}

func TestLoadRequiresDatabaseAndSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.Error(t, err)

	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadWorkerInterval(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOW_STOCK_CHECK_INTERVAL", "soon")

	_, err := Load()
	assert.Error(t, err)
}
