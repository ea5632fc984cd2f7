package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the variables for the duration of the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "CORS_ORIGINS", "SERVER_SHUTDOWN_TIMEOUT", "STORAGE_DRIVER",
		"CACHE_DRIVER", "JWT_SECRET_KEY", "JWT_ACCESS_TTL", "JWT_REFRESH_TTL")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, CacheMemory, cfg.Cache.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 720*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.False(t, cfg.NeedsRedis())
}

func TestNew_FromEnvironment(t *testing.T) {
	clearEnv(t, "JWT_SECRET_KEY", "JWT_REFRESH_TTL")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", StorageRedis)
	t.Setenv("CACHE_DRIVER", CacheMemory)
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.NeedsRedis())
}

func TestNew_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := New()
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Storage: StorageConfig{Driver: StorageMemory},
			Cache:   CacheConfig{Driver: CacheRedis},
			JWT:     JWTConfig{SecretKey: "s", AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.NeedsRedis())

	cfg = valid()
	cfg.Cache.Driver = "memcached"
	assert.ErrorContains(t, cfg.Validate(), "CACHE_DRIVER")

	cfg = valid()
	cfg.JWT.SecretKey = ""
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET_KEY")

	cfg = valid()
	cfg.JWT.RefreshTokenTTL = 0
	assert.Error(t, cfg.Validate())
}
