// Package trend fits ordinary-least-squares lines to yearly series and
// projects them forward with a widening uncertainty band.
package trend

import (
	"errors"
	"fmt"
	"math"

	"australia-analytics/internal/domain"
)

// Errors returned by Fit and Forecast. Both describe the input itself, so
// callers should skip the forecast rather than retry.
var (
	ErrInsufficientData = errors.New("at least 2 observations required to fit a trend")
	ErrDegenerateInput  = errors.New("all observations share the same year, slope undefined")
	ErrInvalidHorizon   = errors.New("forecast horizon must be positive")
)

// BandZ is the normal quantile used for the approximate 95% band.
const BandZ = 1.96

// Fit returns the least-squares line through (year, value) pairs:
// slope = cov(year, value) / var(year), intercept = mean(value) - slope*mean(year).
func Fit(series domain.TimeSeries) (domain.LinearModel, error) {
	n := len(series)
	if n < 2 {
		return domain.LinearModel{}, fmt.Errorf("%w: got %d", ErrInsufficientData, n)
	}

	meanX, meanY := means(series)

	// Centered sums keep precision with year-sized x values.
	var sxx, sxy float64
	for _, o := range series {
		dx := float64(o.Year) - meanX
		sxx += dx * dx
		sxy += dx * (o.Value - meanY)
	}
	if sxx == 0 {
		return domain.LinearModel{}, ErrDegenerateInput
	}

	slope := sxy / sxx
	return domain.LinearModel{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}

// Forecast fits series and projects it horizonYears past the last observed year.
// The band half-width at offset k is BandZ * sigma * sqrt(1 + k/n), where sigma
// is the sample standard deviation of the fit residuals and n the number of
// observations.
func Forecast(series domain.TimeSeries, horizonYears int) (domain.Forecast, error) {
	if horizonYears <= 0 {
		return domain.Forecast{}, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizonYears)
	}

	model, err := Fit(series)
	if err != nil {
		return domain.Forecast{}, err
	}

	n := len(series)
	sigma := residualStdDev(series, model)
	last := series.LastYear()

	points := make([]domain.ForecastPoint, horizonYears)
	for k := 1; k <= horizonYears; k++ {
		year := last + k
		estimate := model.Predict(year)
		halfWidth := BandZ * sigma * math.Sqrt(1+float64(k)/float64(n))
		points[k-1] = domain.ForecastPoint{
			Year:     year,
			Estimate: estimate,
			Lower:    estimate - halfWidth,
			Upper:    estimate + halfWidth,
		}
	}

	return domain.Forecast{
		Model:          model,
		ResidualStdDev: sigma,
		Observations:   n,
		Points:         points,
	}, nil
}

// Residuals returns value - model.Predict(year) for each observation, in order.
func Residuals(series domain.TimeSeries, model domain.LinearModel) []float64 {
	out := make([]float64, len(series))
	for i, o := range series {
		out[i] = o.Value - model.Predict(o.Year)
	}
	return out
}

// SumSquaredResiduals returns the fit's residual sum of squares.
func SumSquaredResiduals(series domain.TimeSeries, model domain.LinearModel) float64 {
	var ssr float64
	for _, r := range Residuals(series, model) {
		ssr += r * r
	}
	return ssr
}

// Equation formats model as "y = <slope>year + <intercept>" with two decimals.
func Equation(model domain.LinearModel) string {
	return fmt.Sprintf("y = %.2fyear + %.2f", model.Slope, model.Intercept)
}

func means(series domain.TimeSeries) (meanX, meanY float64) {
	var sumX, sumY float64
	for _, o := range series {
		sumX += float64(o.Year)
		sumY += o.Value
	}
	n := float64(len(series))
	return sumX / n, sumY / n
}

// residualStdDev uses the n-1 denominator. Callers guarantee n >= 2.
func residualStdDev(series domain.TimeSeries, model domain.LinearModel) float64 {
	residuals := Residuals(series, model)

	var mean float64
	for _, r := range residuals {
		mean += r
	}
	mean /= float64(len(residuals))

	var sumSq float64
	for _, r := range residuals {
		d := r - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(residuals)-1))
}
