// Package main serves the analytics dashboard: HTML pages, chart JSON,
// /health, /status and /metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paulmach/orb/geojson"

	"australia-analytics/internal/config"
	"australia-analytics/internal/dashboard"
	"australia-analytics/internal/election"
	"australia-analytics/internal/fixtures"
	"australia-analytics/internal/logging"
	"australia-analytics/internal/warehouse"
)

const appName = "australia-analytics"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if exists
	config.LoadEnvFile(".env")

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	// Flags override env
	flag.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	flag.StringVar(&cfg.Warehouse, "warehouse", cfg.Warehouse, "Warehouse backend (memory, clickhouse, postgres)")
	flag.StringVar(&cfg.ClickHouseDSN, "clickhouse-dsn", cfg.ClickHouseDSN, "ClickHouse connection string")
	flag.StringVar(&cfg.PostgresDSN, "postgres-dsn", cfg.PostgresDSN, "PostgreSQL connection string")
	flag.StringVar(&cfg.GeoJSONPath, "geojson", cfg.GeoJSONPath, "Division boundaries GeoJSON (default: bundled sample)")
	flag.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "Query memoisation TTL (0 disables)")
	flag.IntVar(&cfg.ForecastHorizon, "horizon", cfg.ForecastHorizon, "Forecast horizon in years")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := warehouse.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	divisions, err := loadDivisions(cfg.GeoJSONPath)
	if err != nil {
		return err
	}
	logger.Info("division boundaries loaded", "features", len(divisions.Features))

	svc := dashboard.NewService(stores.Population, stores.Elections, divisions, dashboard.Options{
		ForecastHorizon:    cfg.ForecastHorizon,
		TrendFromYear:      cfg.TrendFromYear,
		PolicyFromYear:     cfg.PolicyFromYear,
		PopulationFromYear: cfg.PopulationFromYear,
	}, logger)

	info := dashboard.Info{Version: version, Warehouse: cfg.Warehouse}
	if stores.Breaker != nil {
		info.Breaker = stores.Breaker
	}
	handler, err := dashboard.NewHandler(svc, info, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", cfg.HTTPAddr, "warehouse", cfg.Warehouse)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("received signal, initiating graceful shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// loadDivisions reads boundaries from path, or the bundled sample when empty.
func loadDivisions(path string) (*geojson.FeatureCollection, error) {
	if path == "" {
		return fixtures.Divisions()
	}
	return election.LoadGeoJSON(path)
}
