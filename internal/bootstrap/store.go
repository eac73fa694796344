package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/SaleBadge_Go/internal/config"
	"github.com/osse101/SaleBadge_Go/internal/database"
	"github.com/osse101/SaleBadge_Go/internal/database/postgres"
	"github.com/osse101/SaleBadge_Go/internal/metrics"
	"github.com/osse101/SaleBadge_Go/internal/settings"
)

// Store holds the option store stack used by the application. DBPool is
// nil when the in-memory store is configured.
type Store struct {
	Options settings.Store
	Cache   *settings.CachedStore
	DBPool  *pgxpool.Pool
}

// Pool returns the database pool for readiness checks, or nil for the
// in-memory store.
func (s *Store) Pool() database.Pool {
	if s.DBPool == nil {
		return nil
	}
	return s.DBPool
}

// InitializeStore opens the configured backing store, applies migrations
// when it is PostgreSQL, and wraps it in the read-through cache. Cache
// statistics are exported on reg.
func InitializeStore(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (*Store, error) {
	var (
		backing settings.Store
		pool    *pgxpool.Pool
	)

	if cfg.UsesPostgres() {
		slog.Info(LogMsgConnectingDatabase, "host", cfg.DBHost, "db", cfg.DBName)

		var err error
		pool, err = database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{MaxConns: cfg.DBMaxConns})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}

		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)

		backing = postgres.NewOptionStore(pool)
	} else {
		slog.Warn(LogMsgUsingMemoryStore)
		backing = settings.NewMemoryStore()
	}

	cache := settings.NewCachedStore(backing, settings.CacheConfig{
		Size: cfg.CacheSize,
		TTL:  cfg.CacheTTL,
	})
	slog.Info(LogMsgCacheEnabled, "size", cfg.CacheSize, "ttl", cfg.CacheTTL)

	err := metrics.RegisterCacheStats(reg, func() (int64, int64, int) {
		stats := cache.Stats()
		return stats.Hits, stats.Misses, stats.Size
	})
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}

	return &Store{
		Options: cache,
		Cache:   cache,
		DBPool:  pool,
	}, nil
}
