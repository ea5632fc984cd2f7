package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRoot_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range Root().Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])
}

func TestOpenBackends_Memory(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageMemory},
		Cache:   config.CacheConfig{Driver: config.CacheMemory},
	}

	b, err := openBackends(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &repositories.MemoryStorage{}, b.Storage)
	assert.IsType(t, &repositories.MemoryCacheRepository{}, b.Cache)

	_, ok, err := b.schemaVersion(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenBackends_SQLiteIsMigrated(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "m.db")},
		Cache:   config.CacheConfig{Driver: config.CacheMemory},
	}

	b, err := openBackends(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer b.Close()

	version, ok, err := b.schemaVersion(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Positive(t, version)

	require.NoError(t, b.Storage.Set(context.Background(), "k", "v"))
	keys, err := b.Storage.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}

func TestOpenBackends_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "mongo"}}

	_, err := openBackends(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported storage driver")
}

func TestSeedAndMigrateCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")
	t.Setenv("STORAGE_DRIVER", config.StorageSQLite)
	t.Setenv("CACHE_DRIVER", config.CacheMemory)
	t.Setenv("SQLITE_PATH", dbPath)
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_LEVEL", "error")

	run := func(args ...string) string {
		var out bytes.Buffer
		root := Root()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		require.NoError(t, root.ExecuteContext(context.Background()), out.String())
		return out.String()
	}

	assert.Contains(t, run("migrate"), "(sqlite)")
	assert.Contains(t, run("seed"), "seeded 5 collections, skipped 0")
	assert.Contains(t, run("seed"), "seeded 0 collections, skipped 5")
	assert.Contains(t, run("seed", "--reset"), "seeded 5 collections, skipped 0")

	assert.Len(t, constants.AllStorageKeys, 5)
}
