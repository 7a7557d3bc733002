package trend

import (
	"fmt"

	"australia-analytics/internal/domain"
)

// BirthsDeaths holds paired projections for births and deaths.
type BirthsDeaths struct {
	Births domain.Forecast
	Deaths domain.Forecast
}

// ForecastBirthsDeaths projects births and deaths from the same records.
func ForecastBirthsDeaths(records []*domain.PopulationRecord, horizonYears int) (BirthsDeaths, error) {
	births, err := Forecast(domain.BirthsSeries(records), horizonYears)
	if err != nil {
		return BirthsDeaths{}, fmt.Errorf("forecast births: %w", err)
	}
	deaths, err := Forecast(domain.DeathsSeries(records), horizonYears)
	if err != nil {
		return BirthsDeaths{}, fmt.Errorf("forecast deaths: %w", err)
	}
	return BirthsDeaths{Births: births, Deaths: deaths}, nil
}

// Crossover returns the first forecast year where projected deaths reach or
// exceed projected births. ok is false when the lines do not cross within
// the shared horizon.
func Crossover(births, deaths domain.Forecast) (year int, ok bool) {
	projected := make(map[int]float64, len(deaths.Points))
	for _, p := range deaths.Points {
		projected[p.Year] = p.Estimate
	}
	for _, p := range births.Points {
		d, found := projected[p.Year]
		if found && d >= p.Estimate {
			return p.Year, true
		}
	}
	return 0, false
}

// Crossover is a convenience for BirthsDeaths.
func (bd BirthsDeaths) Crossover() (int, bool) {
	return Crossover(bd.Births, bd.Deaths)
}
