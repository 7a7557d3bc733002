// Package main applies the embedded warehouse migrations and loads the
// bundled sample data.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"australia-analytics/internal/config"
	"australia-analytics/internal/fixtures"
	"australia-analytics/internal/logging"
	"australia-analytics/internal/storage"
	"australia-analytics/internal/warehouse"
)

func main() {
	// Load .env file if exists
	config.LoadEnvFile(".env")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Warehouse, "warehouse", cfg.Warehouse, "Warehouse backend (clickhouse, postgres)")
	flag.StringVar(&cfg.ClickHouseDSN, "clickhouse-dsn", cfg.ClickHouseDSN, "ClickHouse connection string")
	flag.StringVar(&cfg.PostgresDSN, "postgres-dsn", cfg.PostgresDSN, "PostgreSQL connection string")
	migrateOnly := flag.Bool("migrate-only", false, "Apply migrations without loading sample data")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, "dev", "australia-analytics-seed")
	if err := seed(context.Background(), cfg, *migrateOnly, logger); err != nil {
		logger.Error("seed failed", "warehouse", cfg.Warehouse, "error", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, cfg config.Config, migrateOnly bool, logger *slog.Logger) error {
	if err := warehouse.Migrate(ctx, cfg, logger); err != nil {
		return err
	}
	if migrateOnly {
		return nil
	}

	stores, err := warehouse.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	err = fixtures.Load(ctx, stores.Population, stores.Elections)
	switch {
	case errors.Is(err, storage.ErrDuplicateKey):
		logger.Info("sample data already present, skipping")
		return nil
	case err != nil:
		return err
	}
	logger.Info("sample data loaded", "warehouse", cfg.Warehouse)
	return nil
}
