package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-flowershop/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 500*time.Millisecond, cfg.AuthDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, 10000, cfg.SessionMax)
	assert.Equal(t, 10*time.Minute, cfg.AuthLimitIdle)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, "admin@flowershop.com", cfg.AdminEmail)
	assert.Equal(t, "flowershop:orders", cfg.Redis.Channel)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, core.Development, cfg.Environment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("AUTH_DELAY", "0s")
	t.Setenv("AUTH_BURST", "3")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,172.16.0.0/12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, time.Duration(0), cfg.AuthDelay)
	assert.Equal(t, 3, cfg.AuthBurst)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxies)
	assert.True(t, cfg.Environment().IsProduction())
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("SESSION_IDLE_TTL", "forever")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("ADMIN_EMAIL=owner@flowershop.com\n"), 0o600))
	t.Setenv("ADMIN_EMAIL", "")
	require.NoError(t, os.Unsetenv("ADMIN_EMAIL"))

	require.NoError(t, LoadDotenv(file))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "owner@flowershop.com", cfg.AdminEmail)

	assert.Error(t, LoadDotenv(filepath.Join(dir, "missing.env")))
}
