// Package dashboard serves the analytics pages and the chart JSON they render.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/paulmach/orb/geojson"

	"australia-analytics/internal/chart"
	"australia-analytics/internal/domain"
	"australia-analytics/internal/election"
	"australia-analytics/internal/observability"
	"australia-analytics/internal/reporting"
	"australia-analytics/internal/storage"
	"australia-analytics/internal/trend"
)

// ErrUnknownState is returned when a state has no winning candidates.
var ErrUnknownState = errors.New("unknown state")

// Options sets the year windows and forecast horizon used by the charts.
type Options struct {
	ForecastHorizon    int
	TrendFromYear      int
	PolicyFromYear     int
	PopulationFromYear int
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		ForecastHorizon:    24,
		TrendFromYear:      2012,
		PolicyFromYear:     2000,
		PopulationFromYear: 1982,
	}
}

// Service builds figures from the injected stores.
type Service struct {
	population storage.PopulationStore
	elections  storage.ElectionStore
	divisions  *geojson.FeatureCollection
	opts       Options
	logger     *slog.Logger
}

// NewService creates a Service. divisions may be nil, in which case maps are
// drawn without boundaries.
func NewService(
	population storage.PopulationStore,
	elections storage.ElectionStore,
	divisions *geojson.FeatureCollection,
	opts Options,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		population: population,
		elections:  elections,
		divisions:  divisions,
		opts:       opts,
		logger:     logger.With("component", "dashboard"),
	}
}

// ImmigrationSummary holds the figures quoted in the immigration page text.
type ImmigrationSummary struct {
	TrendFromYear int
	LastYear      int
	Observations  int
	Fitted        bool
	BirthsSlope   float64
	DeathsSlope   float64
	CrossoverYear int
	HasCrossover  bool
	HorizonYears  int
}

// Forecast draws births and deaths since the trend year with their forecasts.
// A series that cannot be forecast is drawn without its forecast traces.
func (s *Service) Forecast(ctx context.Context) (chart.Figure, error) {
	records, err := s.population.GetFromYear(ctx, s.opts.TrendFromYear)
	if err != nil {
		return chart.Figure{}, fmt.Errorf("load births and deaths: %w", err)
	}
	births := domain.BirthsSeries(records)
	deaths := domain.DeathsSeries(records)

	return chart.BirthsDeathsForecast(
		chart.Series{Observed: births, Forecast: s.forecast("births", births)},
		chart.Series{Observed: deaths, Forecast: s.forecast("deaths", deaths)},
	), nil
}

// Summary computes the trend slopes and crossover quoted on the immigration page.
func (s *Service) Summary(ctx context.Context) (ImmigrationSummary, error) {
	records, err := s.population.GetFromYear(ctx, s.opts.TrendFromYear)
	if err != nil {
		return ImmigrationSummary{}, fmt.Errorf("load births and deaths: %w", err)
	}
	births := domain.BirthsSeries(records)
	deaths := domain.DeathsSeries(records)

	summary := ImmigrationSummary{
		TrendFromYear: s.opts.TrendFromYear,
		LastYear:      births.LastYear(),
		Observations:  len(births),
		HorizonYears:  s.opts.ForecastHorizon,
	}
	bf, df := s.forecast("births", births), s.forecast("deaths", deaths)
	if bf == nil || df == nil {
		return summary, nil
	}
	summary.Fitted = true
	summary.BirthsSlope = bf.Model.Slope
	summary.DeathsSlope = df.Model.Slope
	summary.CrossoverYear, summary.HasCrossover = trend.Crossover(*bf, *df)
	return summary, nil
}

func (s *Service) forecast(name string, series domain.TimeSeries) *domain.Forecast {
	f, err := trend.Forecast(series, s.opts.ForecastHorizon)
	observability.RecordForecast(name, err)
	if err != nil {
		s.logger.Warn("forecast unavailable", "series", name, "observations", len(series), "error", err)
		return nil
	}
	return &f
}

// Policy draws births and deaths since the policy year with baby bonus milestones.
func (s *Service) Policy(ctx context.Context) (chart.Figure, error) {
	records, err := s.population.GetFromYear(ctx, s.opts.PolicyFromYear)
	if err != nil {
		return chart.Figure{}, fmt.Errorf("load births and deaths: %w", err)
	}
	return chart.PolicyTimeline(
		domain.BirthsSeries(records),
		domain.DeathsSeries(records),
		chart.BabyBonusMilestones,
	), nil
}

// NetMigration draws net overseas migration for every stored year.
func (s *Service) NetMigration(ctx context.Context) (chart.Figure, error) {
	records, err := s.population.GetAll(ctx)
	if err != nil {
		return chart.Figure{}, fmt.Errorf("load net migration: %w", err)
	}
	return chart.NetMigrationLollipop(records), nil
}

// Population draws total population since the population year.
func (s *Service) Population(ctx context.Context) (chart.Figure, error) {
	records, err := s.population.GetFromYear(ctx, s.opts.PopulationFromYear)
	if err != nil {
		return chart.Figure{}, fmt.Errorf("load population: %w", err)
	}
	return chart.PopulationGrowth(records), nil
}

// States lists the states with at least one winning candidate.
func (s *Service) States(ctx context.Context) ([]string, error) {
	winners, err := s.elections.GetWinningCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load winners: %w", err)
	}
	return election.States(winners), nil
}

// ElectionMap draws the winning party of each division in state.
func (s *Service) ElectionMap(ctx context.Context, state string) (chart.Figure, error) {
	winners, err := s.elections.GetWinningCandidates(ctx)
	if err != nil {
		return chart.Figure{}, fmt.Errorf("load winners: %w", err)
	}
	if len(election.FilterByState(winners, state)) == 0 {
		return chart.Figure{}, fmt.Errorf("%w: %q", ErrUnknownState, state)
	}
	return chart.ElectionMap(state, winners, s.divisions), nil
}

// FirstPreferences draws won and lost seats among first-preference leaders.
func (s *Service) FirstPreferences(ctx context.Context) (chart.Figure, error) {
	prefs, err := s.elections.GetFirstPreferences(ctx)
	if err != nil {
		return chart.Figure{}, fmt.Errorf("load first preferences: %w", err)
	}
	return chart.FirstPreferenceOutcomes(prefs), nil
}

// Seats draws seats won per party against the majority line.
func (s *Service) Seats(ctx context.Context) (chart.Figure, error) {
	seats, err := s.elections.GetPartySeats(ctx)
	if err != nil {
		return chart.Figure{}, fmt.Errorf("load party seats: %w", err)
	}
	return chart.SeatsLollipop(seats), nil
}

// ElectionSummary holds the figures quoted in the election page text.
type ElectionSummary struct {
	States     []string
	TotalSeats int
	Majority   int
	Leader     domain.PartySeats
}

// ElectionOverview returns the state list and seat totals for the election page.
func (s *Service) ElectionOverview(ctx context.Context) (ElectionSummary, error) {
	states, err := s.States(ctx)
	if err != nil {
		return ElectionSummary{}, err
	}
	seats, err := s.elections.GetPartySeats(ctx)
	if err != nil {
		return ElectionSummary{}, fmt.Errorf("load party seats: %w", err)
	}

	summary := ElectionSummary{
		States:     states,
		TotalSeats: election.TotalSeats(seats),
		Majority:   election.Majority,
	}
	if ordered := election.SeatsAscending(seats); len(ordered) > 0 {
		summary.Leader = *ordered[len(ordered)-1]
	}
	return summary, nil
}

// Report generates the population report over the configured windows.
func (s *Service) Report(ctx context.Context) (*reporting.Report, error) {
	report, err := reporting.NewGenerator(s.population).
		WithYears(s.opts.PopulationFromYear, s.opts.TrendFromYear).
		WithHorizon(s.opts.ForecastHorizon).
		Generate(ctx)
	if err != nil {
		return nil, err
	}
	observability.RecordReportGenerated(report.GeneratedAt)
	return report, nil
}
