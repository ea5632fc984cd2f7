package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/database/migrations"
	"maintenance-system/pkg/database/postgresql"
	"maintenance-system/pkg/database/sqlite"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// backends holds the storage shim and cache chosen by configuration,
// together with the connections behind them.
type backends struct {
	Storage repositories.StorageInterface
	Cache   repositories.CacheRepositoryInterface

	sqlDB  *sql.DB
	pool   *pgxpool.Pool
	redis  *redis.Client
	logger *zap.Logger
}

// openBackends connects the configured storage and cache. SQL backends are
// migrated before use.
func openBackends(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*backends, error) {
	b := &backends{logger: logger}

	if cfg.NeedsRedis() {
		b.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := b.redis.Ping(ctx).Err(); err != nil {
			b.Close()
			return nil, fmt.Errorf("connect redis at %s: %w", cfg.Redis.Address, err)
		}
		logger.Info("connected to redis", zap.String("address", cfg.Redis.Address))
	}

	if err := b.openStorage(ctx, cfg); err != nil {
		b.Close()
		return nil, err
	}

	switch cfg.Cache.Driver {
	case config.CacheRedis:
		b.Cache = repositories.NewRedisCacheRepository(b.redis)
	default:
		b.Cache = repositories.NewMemoryCacheRepository()
	}

	logger.Info("storage ready",
		zap.String("storage", cfg.Storage.Driver),
		zap.String("cache", cfg.Cache.Driver),
	)
	return b, nil
}

func (b *backends) openStorage(ctx context.Context, cfg *config.Config) error {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		b.Storage = repositories.NewMemoryStorage()

	case config.StorageRedis:
		b.Storage = repositories.NewRedisStorage(b.redis, cfg.Redis.KeyPrefix)

	case config.StoragePostgres:
		pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, b.logger)
		if err != nil {
			return err
		}
		b.pool = pool
		if err := migrations.UpPostgres(ctx, pool, b.logger); err != nil {
			return fmt.Errorf("migrate postgres: %w", err)
		}
		b.Storage = repositories.NewPostgresStorage(pool)

	case config.StorageSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath, b.logger)
		if err != nil {
			return err
		}
		b.sqlDB = db
		if err := migrations.Up(ctx, db, migrations.DialectSQLite, b.logger); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
		b.Storage = repositories.NewSQLiteStorage(db)

	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
	return nil
}

// schemaVersion reports the goose version of a SQL backend. ok is false for
// backends without a schema.
func (b *backends) schemaVersion(ctx context.Context) (version int64, ok bool, err error) {
	switch {
	case b.sqlDB != nil:
		version, err = migrations.Version(ctx, b.sqlDB, migrations.DialectSQLite)
	case b.pool != nil:
		db := stdlib.OpenDBFromPool(b.pool)
		defer db.Close()
		version, err = migrations.Version(ctx, db, migrations.DialectPostgres)
	default:
		return 0, false, nil
	}
	return version, err == nil, err
}

func (b *backends) Close() {
	if b.sqlDB != nil {
		if err := b.sqlDB.Close(); err != nil {
			b.logger.Warn("closing sqlite", zap.Error(err))
		}
	}
	if b.pool != nil {
		b.pool.Close()
	}
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			b.logger.Warn("closing redis", zap.Error(err))
		}
	}
}
