package reporting

import "time"

// Report is the population growth and births/deaths trend report.
type Report struct {
	// Metadata
	GeneratedAt        time.Time
	PopulationFromYear int
	TrendFromYear      int
	HorizonYears       int

	// Population in millions, ordered by year
	Population []PopulationRow
	Growth     GrowthSummary

	// Trend lines fitted on births and deaths (births first)
	Trends []TrendRow

	// Forecast rows, one per projected year; empty when the forecast failed
	Forecast      []ForecastRow
	ForecastError string

	Crossover CrossoverSection
}

// PopulationRow is one year of resident population.
type PopulationRow struct {
	Year     int
	Millions float64
}

// GrowthSummary compares the first and last reported years.
type GrowthSummary struct {
	FirstYear     int
	LastYear      int
	FirstMillions float64
	LastMillions  float64
}

// Change returns the growth in millions between the first and last years.
func (g GrowthSummary) Change() float64 {
	return g.LastMillions - g.FirstMillions
}

// TrendRow describes one fitted series.
type TrendRow struct {
	Series         string
	Equation       string
	Slope          float64
	Intercept      float64
	ResidualStdDev float64
	Observations   int
}

// ForecastRow pairs births and deaths projections for one year.
type ForecastRow struct {
	Year        int
	Births      float64
	BirthsLower float64
	BirthsUpper float64
	Deaths      float64
	DeathsLower float64
	DeathsUpper float64
}

// CrossoverSection reports the first year projected deaths reach births.
type CrossoverSection struct {
	Year  int
	Found bool
}
