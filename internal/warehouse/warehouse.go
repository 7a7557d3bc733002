// Package warehouse opens the configured stores and wraps them with the
// circuit breaker and memoisation decorators.
package warehouse

import (
	"context"
	"fmt"
	"log/slog"

	"australia-analytics/internal/config"
	"australia-analytics/internal/fixtures"
	"australia-analytics/internal/storage"
	"australia-analytics/internal/storage/cached"
	chstore "australia-analytics/internal/storage/clickhouse"
	"australia-analytics/internal/storage/memory"
	"australia-analytics/internal/storage/migrations"
	pgstore "australia-analytics/internal/storage/postgres"
	"australia-analytics/internal/storage/resilient"
)

// Stores holds the stores used by the dashboard and the report.
type Stores struct {
	Population storage.PopulationStore
	Elections  storage.ElectionStore
	Breaker    *resilient.Breaker // nil for the in-memory warehouse
	closeFn    func()
}

// Close releases warehouse connections.
func (s *Stores) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

// Open connects to cfg.Warehouse. The memory warehouse is seeded with the
// bundled fixtures; remote warehouses are guarded by a breaker and memoised
// for cfg.CacheTTL.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Stores, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Warehouse {
	case config.WarehouseMemory:
		population := memory.NewPopulationStore()
		elections := memory.NewElectionStore()
		if err := fixtures.Load(ctx, population, elections); err != nil {
			return nil, fmt.Errorf("load fixtures: %w", err)
		}
		logger.Info("using in-memory warehouse with sample data")
		return &Stores{Population: population, Elections: elections}, nil

	case config.WarehouseClickHouse:
		conn, err := chstore.NewConn(ctx, cfg.ClickHouseDSN)
		if err != nil {
			return nil, fmt.Errorf("connect to clickhouse: %w", err)
		}
		s := decorate(chstore.NewPopulationStore(conn), chstore.NewElectionStore(conn), cfg, logger)
		s.closeFn = func() { _ = conn.Close() }
		logger.Info("connected to clickhouse")
		return s, nil

	case config.WarehousePostgres:
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		s := decorate(pgstore.NewPopulationStore(pool), pgstore.NewElectionStore(pool), cfg, logger)
		s.closeFn = pool.Close
		logger.Info("connected to postgres")
		return s, nil

	default:
		return nil, fmt.Errorf("unknown warehouse %q", cfg.Warehouse)
	}
}

// Migrate creates the marts for cfg.Warehouse. The ClickHouse database is
// created first when missing. The memory warehouse has nothing to migrate.
func Migrate(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	dialect, ok := migrations.ForWarehouse(cfg.Warehouse)
	if !ok {
		return fmt.Errorf("warehouse %q has no migrations", cfg.Warehouse)
	}

	var (
		exec    migrations.ExecFunc
		closeFn func()
	)
	switch cfg.Warehouse {
	case config.WarehouseClickHouse:
		if err := chstore.EnsureDatabase(ctx, cfg.ClickHouseDSN); err != nil {
			return err
		}
		conn, err := chstore.NewConn(ctx, cfg.ClickHouseDSN)
		if err != nil {
			return fmt.Errorf("connect to clickhouse: %w", err)
		}
		exec = func(ctx context.Context, sql string) error { return conn.Exec(ctx, sql) }
		closeFn = func() { _ = conn.Close() }

	case config.WarehousePostgres:
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		exec = pool.ExecSQL
		closeFn = pool.Close
	}
	defer closeFn()

	applied, err := migrations.Apply(ctx, dialect, exec)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", "warehouse", cfg.Warehouse, "files", applied)
	return nil
}

// decorate wraps raw stores as cached(resilient(raw)) so memo hits never
// reach the breaker.
func decorate(population storage.PopulationStore, elections storage.ElectionStore, cfg config.Config, logger *slog.Logger) *Stores {
	settings := resilient.DefaultSettings(cfg.Warehouse, cfg.Warehouse)
	if cfg.BreakerTimeout > 0 {
		settings.Timeout = cfg.BreakerTimeout
	}
	breaker := resilient.NewBreaker(settings, logger.With("component", "breaker"))

	var (
		pop storage.PopulationStore = resilient.NewPopulationStore(population, breaker)
		el  storage.ElectionStore   = resilient.NewElectionStore(elections, breaker)
	)
	if cfg.CacheTTL > 0 {
		pop = cached.NewPopulationStore(pop, cfg.CacheTTL)
		el = cached.NewElectionStore(el, cfg.CacheTTL)
	}
	return &Stores{Population: pop, Elections: el, Breaker: breaker}
}
