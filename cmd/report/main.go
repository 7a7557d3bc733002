package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"australia-analytics/internal/config"
	"australia-analytics/internal/logging"
	"australia-analytics/internal/reporting"
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

	// Parse flags (env as defaults)
	outputDir := flag.String("output-dir", "docs", "Output directory for generated files")
	generatedAt := flag.String("generated-at", "", "Fixed report timestamp (RFC3339) for reproducible output")
	flag.StringVar(&cfg.Warehouse, "warehouse", cfg.Warehouse, "Warehouse backend (memory, clickhouse, postgres)")
	flag.StringVar(&cfg.ClickHouseDSN, "clickhouse-dsn", cfg.ClickHouseDSN, "ClickHouse connection string")
	flag.StringVar(&cfg.PostgresDSN, "postgres-dsn", cfg.PostgresDSN, "PostgreSQL connection string")
	flag.IntVar(&cfg.ForecastHorizon, "horizon", cfg.ForecastHorizon, "Forecast horizon in years")
	flag.IntVar(&cfg.PopulationFromYear, "population-from", cfg.PopulationFromYear, "First year of the population table")
	flag.IntVar(&cfg.TrendFromYear, "trend-from", cfg.TrendFromYear, "First year of the births/deaths trend")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, "dev", "australia-analytics-report")
	ctx := context.Background()

	stores, err := warehouse.Open(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening warehouse: %v\n", err)
		os.Exit(1)
	}
	defer stores.Close()

	generator := reporting.NewGenerator(stores.Population).
		WithYears(cfg.PopulationFromYear, cfg.TrendFromYear).
		WithHorizon(cfg.ForecastHorizon)
	if *generatedAt != "" {
		fixedTime, err := time.Parse(time.RFC3339, *generatedAt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --generated-at: %v\n", err)
			os.Exit(1)
		}
		generator = generator.WithClock(func() time.Time { return fixedTime })
	}

	report, err := generator.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}
	if report.ForecastError != "" {
		logger.Warn("forecast unavailable", "error", report.ForecastError)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	files := map[string]string{
		"REPORT_POPULATION.md": reporting.RenderMarkdown(report),
		"population.csv":       reporting.RenderPopulationCSV(report.Population),
		"forecast.csv":         reporting.RenderForecastCSV(report.Forecast),
	}
	for _, name := range []string{"REPORT_POPULATION.md", "population.csv", "forecast.csv"} {
		if err := os.WriteFile(filepath.Join(*outputDir, name), []byte(files[name]), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			os.Exit(1)
		}
	}

	fmt.Println("Population report generated successfully:")
	fmt.Printf("  - %s/REPORT_POPULATION.md\n", *outputDir)
	fmt.Printf("  - %s/population.csv\n", *outputDir)
	fmt.Printf("  - %s/forecast.csv\n", *outputDir)
}
