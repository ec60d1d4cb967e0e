package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, config.StoragePostgres, cfg.Database.Storage)
	assert.Equal(t, "http://localhost:8080", cfg.App.BaseURL)
	assert.Equal(t, 8, cfg.Pool.SegmentLength)
	assert.Equal(t, 1000, cfg.Pool.TargetSize)
	assert.Equal(t, 5, cfg.Pool.MaxAllocationAttempts)
	assert.Equal(t, config.CacheRistretto, cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE", "memory")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("KEY_SEGMENT_LENGTH", "6")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.Database.Storage)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 6, cfg.Pool.SegmentLength)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}
