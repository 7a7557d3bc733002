// Package config loads dashboard and report settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Warehouse backends.
const (
	WarehouseMemory     = "memory"
	WarehouseClickHouse = "clickhouse"
	WarehousePostgres   = "postgres"
)

type Config struct {
	AppEnv   string `validate:"oneof=dev prod"`
	LogLevel slog.Level
	HTTPAddr string `validate:"required"`

	Warehouse     string `validate:"oneof=memory clickhouse postgres"`
	ClickHouseDSN string `validate:"required_if=Warehouse clickhouse"`
	PostgresDSN   string `validate:"required_if=Warehouse postgres"`

	// GeoJSONPath points at a division boundary FeatureCollection. Empty uses
	// the bundled sample boundaries.
	GeoJSONPath string

	CacheTTL       time.Duration `validate:"gte=0"`
	BreakerTimeout time.Duration `validate:"gt=0"`

	ForecastHorizon    int `validate:"min=1,max=100"`
	TrendFromYear      int `validate:"min=1900,max=2100"`
	PolicyFromYear     int `validate:"min=1900,max=2100"`
	PopulationFromYear int `validate:"min=1900,max=2100"`
}

// LoadFromEnv reads settings from the environment. It reports only malformed
// values; call Validate once command-line overrides have been applied.
func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:        appEnv,
		LogLevel:      level,
		HTTPAddr:      envString("HTTP_ADDR", ":8050"),
		Warehouse:     strings.ToLower(envString("WAREHOUSE", WarehouseMemory)),
		ClickHouseDSN: envString("CLICKHOUSE_DSN", ""),
		PostgresDSN:   envString("POSTGRES_DSN", ""),
		GeoJSONPath:   envString("GEOJSON_PATH", ""),
	}

	if cfg.CacheTTL, err = envDuration("CACHE_TTL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.BreakerTimeout, err = envDuration("BREAKER_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ForecastHorizon, err = envInt("FORECAST_HORIZON", 24); err != nil {
		return Config{}, err
	}
	if cfg.TrendFromYear, err = envInt("TREND_FROM_YEAR", 2012); err != nil {
		return Config{}, err
	}
	if cfg.PolicyFromYear, err = envInt("POLICY_FROM_YEAR", 2000); err != nil {
		return Config{}, err
	}
	if cfg.PopulationFromYear, err = envInt("POPULATION_FROM_YEAR", 1982); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Field(), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
