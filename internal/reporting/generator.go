package reporting

import (
	"context"
	"fmt"
	"time"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
	"australia-analytics/internal/trend"
)

// Default report windows.
const (
	DefaultPopulationFromYear = 1982
	DefaultTrendFromYear      = 2012
	DefaultHorizonYears       = 24
)

// Generator produces reports from stored population data.
type Generator struct {
	store              storage.PopulationStore
	populationFromYear int
	trendFromYear      int
	horizonYears       int
	now                func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator with the default windows.
func NewGenerator(store storage.PopulationStore) *Generator {
	return &Generator{
		store:              store,
		populationFromYear: DefaultPopulationFromYear,
		trendFromYear:      DefaultTrendFromYear,
		horizonYears:       DefaultHorizonYears,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// WithYears sets the first year of the population table and of the trend fit.
func (g *Generator) WithYears(populationFrom, trendFrom int) *Generator {
	g.populationFromYear = populationFrom
	g.trendFromYear = trendFrom
	return g
}

// WithHorizon sets how many years past the last observation are projected.
func (g *Generator) WithHorizon(years int) *Generator {
	g.horizonYears = years
	return g
}

// Generate produces a complete population report. A forecast that cannot be
// computed is recorded in the report rather than failing it.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	records, err := g.store.GetFromYear(ctx, min(g.populationFromYear, g.trendFromYear))
	if err != nil {
		return nil, fmt.Errorf("load population: %w", err)
	}

	report := &Report{
		GeneratedAt:        g.now(),
		PopulationFromYear: g.populationFromYear,
		TrendFromYear:      g.trendFromYear,
		HorizonYears:       g.horizonYears,
	}

	report.Population, report.Growth = g.generatePopulation(since(records, g.populationFromYear))

	recent := since(records, g.trendFromYear)
	bd, err := trend.ForecastBirthsDeaths(recent, g.horizonYears)
	if err != nil {
		report.ForecastError = err.Error()
		report.Trends = fitOnly(recent)
		return report, nil
	}

	report.Trends = []TrendRow{trendRow("Births", bd.Births), trendRow("Deaths", bd.Deaths)}
	report.Forecast = forecastRows(bd)
	report.Crossover.Year, report.Crossover.Found = bd.Crossover()

	return report, nil
}

// generatePopulation converts totals to millions and summarises growth.
func (g *Generator) generatePopulation(records []*domain.PopulationRecord) ([]PopulationRow, GrowthSummary) {
	series := domain.TotalSeries(records)
	rows := make([]PopulationRow, len(series))
	for i, o := range series {
		rows[i] = PopulationRow{Year: o.Year, Millions: o.Value / 1e6}
	}
	if len(rows) == 0 {
		return rows, GrowthSummary{}
	}
	first, last := rows[0], rows[len(rows)-1]
	return rows, GrowthSummary{
		FirstYear:     first.Year,
		LastYear:      last.Year,
		FirstMillions: first.Millions,
		LastMillions:  last.Millions,
	}
}

func since(records []*domain.PopulationRecord, year int) []*domain.PopulationRecord {
	var out []*domain.PopulationRecord
	for _, r := range records {
		if r != nil && r.Year >= year {
			out = append(out, r)
		}
	}
	return out
}

func trendRow(name string, f domain.Forecast) TrendRow {
	return TrendRow{
		Series:         name,
		Equation:       trend.Equation(f.Model),
		Slope:          f.Model.Slope,
		Intercept:      f.Model.Intercept,
		ResidualStdDev: f.ResidualStdDev,
		Observations:   f.Observations,
	}
}

// fitOnly reports whichever trend lines can still be fitted when the
// forecast failed.
func fitOnly(records []*domain.PopulationRecord) []TrendRow {
	var rows []TrendRow
	for _, s := range []struct {
		name   string
		series domain.TimeSeries
	}{
		{"Births", domain.BirthsSeries(records)},
		{"Deaths", domain.DeathsSeries(records)},
	} {
		model, err := trend.Fit(s.series)
		if err != nil {
			continue
		}
		rows = append(rows, TrendRow{
			Series:       s.name,
			Equation:     trend.Equation(model),
			Slope:        model.Slope,
			Intercept:    model.Intercept,
			Observations: len(s.series),
		})
	}
	return rows
}

// forecastRows joins births and deaths points by year. Both forecasts start
// from the same records so their years line up.
func forecastRows(bd trend.BirthsDeaths) []ForecastRow {
	deaths := make(map[int]domain.ForecastPoint, len(bd.Deaths.Points))
	for _, p := range bd.Deaths.Points {
		deaths[p.Year] = p
	}
	rows := make([]ForecastRow, 0, len(bd.Births.Points))
	for _, b := range bd.Births.Points {
		d := deaths[b.Year]
		rows = append(rows, ForecastRow{
			Year:        b.Year,
			Births:      b.Estimate,
			BirthsLower: b.Lower,
			BirthsUpper: b.Upper,
			Deaths:      d.Estimate,
			DeathsLower: d.Lower,
			DeathsUpper: d.Upper,
		})
	}
	return rows
}
