package domain

// Observation is a single yearly data point.
type Observation struct {
	Year  int     // calendar year
	Value float64 // observed count for that year (non-negative)
}

// TimeSeries is a yearly series ordered by Year ASC.
// Built from a query snapshot and never mutated afterwards.
type TimeSeries []Observation

// Years returns the years of the series in order.
func (s TimeSeries) Years() []int {
	years := make([]int, len(s))
	for i, o := range s {
		years[i] = o.Year
	}
	return years
}

// LastYear returns the largest observed year. Returns 0 for an empty series.
func (s TimeSeries) LastYear() int {
	if len(s) == 0 {
		return 0
	}
	last := s[0].Year
	for _, o := range s[1:] {
		if o.Year > last {
			last = o.Year
		}
	}
	return last
}

// ValueAt returns the value observed for year.
func (s TimeSeries) ValueAt(year int) (float64, bool) {
	for _, o := range s {
		if o.Year == year {
			return o.Value, true
		}
	}
	return 0, false
}

// LinearModel is a fitted straight line value = Slope*year + Intercept.
type LinearModel struct {
	Slope     float64
	Intercept float64
}

// Predict evaluates the model at year.
func (m LinearModel) Predict(year int) float64 {
	return m.Slope*float64(year) + m.Intercept
}

// ForecastPoint is a projected value with its uncertainty band.
type ForecastPoint struct {
	Year     int     // forecast year, beyond the last observed year
	Estimate float64 // point estimate from the fitted model
	Lower    float64 // lower band bound
	Upper    float64 // upper band bound
}

// HalfWidth returns the distance from the estimate to either bound.
func (p ForecastPoint) HalfWidth() float64 {
	return p.Upper - p.Estimate
}

// Forecast is the result of extrapolating a TimeSeries.
// Renderers read it and must not mutate Points.
type Forecast struct {
	Model          LinearModel     // model fitted on the observed series
	ResidualStdDev float64         // sample standard deviation of residuals (n-1)
	Observations   int             // number of observed points the model was fitted on
	Points         []ForecastPoint // ordered by Year ASC
}

// Years returns the forecast years in order.
func (f Forecast) Years() []int {
	years := make([]int, len(f.Points))
	for i, p := range f.Points {
		years[i] = p.Year
	}
	return years
}
