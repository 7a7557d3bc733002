// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Warehouse metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Circuit breaker metrics
	BreakerState       *prometheus.GaugeVec
	BreakerTransitions *prometheus.CounterVec

	// Forecast metrics
	ForecastsComputed *prometheus.CounterVec
	ForecastsFailed   *prometheus.CounterVec

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	// Reporting metrics
	ReportsGenerated prometheus.Counter

	// Health metrics
	LastSuccessfulReport prometheus.Gauge
}

// NewMetrics creates a new Metrics instance registered with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "australia_analytics"
	}
	factory := promauto.With(reg)

	return &Metrics{
		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "warehouse",
			Name:      "query_duration_seconds",
			Help:      "Warehouse query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"warehouse", "operation"}),
		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "warehouse",
			Name:      "query_errors_total",
			Help:      "Total number of warehouse query errors",
		}, []string{"warehouse", "operation"}),

		CacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Query results served from the memo cache",
		}, []string{"query"}),
		CacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Query results loaded from the warehouse",
		}, []string{"query"}),

		BreakerState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "breaker",
			Name:      "state",
			Help:      "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		}, []string{"name"}),
		BreakerTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "breaker",
			Name:      "transitions_total",
			Help:      "Circuit breaker state transitions",
		}, []string{"name", "to"}),

		ForecastsComputed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trend",
			Name:      "forecasts_computed_total",
			Help:      "Forecasts computed by series",
		}, []string{"series"}),
		ForecastsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trend",
			Name:      "forecasts_failed_total",
			Help:      "Forecasts that could not be computed, by series",
		}, []string{"series"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		ReportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "generated_total",
			Help:      "Total number of population reports generated",
		}),
		LastSuccessfulReport: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_report_timestamp",
			Help:      "Unix timestamp of last successful report",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("", prometheus.DefaultRegisterer)

// RecordDBQuery records warehouse query metrics.
func RecordDBQuery(warehouse, operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(warehouse, operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(warehouse, operation).Inc()
	}
}

// RecordCacheLookup records a memo cache hit or miss for a query.
func RecordCacheLookup(query string, hit bool) {
	if hit {
		DefaultMetrics.CacheHits.WithLabelValues(query).Inc()
		return
	}
	DefaultMetrics.CacheMisses.WithLabelValues(query).Inc()
}

// RecordBreakerState records a circuit breaker transition. state follows
// gobreaker's numbering: 0 closed, 1 half-open, 2 open.
func RecordBreakerState(name string, state int, label string) {
	DefaultMetrics.BreakerState.WithLabelValues(name).Set(float64(state))
	DefaultMetrics.BreakerTransitions.WithLabelValues(name, label).Inc()
}

// RecordForecast records the outcome of a forecast for a series.
func RecordForecast(series string, err error) {
	if err != nil {
		DefaultMetrics.ForecastsFailed.WithLabelValues(series).Inc()
		return
	}
	DefaultMetrics.ForecastsComputed.WithLabelValues(series).Inc()
}

// RecordHTTPRequest records a served HTTP request.
func RecordHTTPRequest(route string, status int, elapsed time.Duration) {
	DefaultMetrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	DefaultMetrics.HTTPLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}

// RecordReportGenerated records a successful report run.
func RecordReportGenerated(at time.Time) {
	DefaultMetrics.ReportsGenerated.Inc()
	DefaultMetrics.LastSuccessfulReport.Set(float64(at.Unix()))
}
