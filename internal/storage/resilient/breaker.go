// Package resilient guards warehouse stores with a circuit breaker.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"australia-analytics/internal/observability"
	"australia-analytics/internal/storage"
)

// ErrUnavailable is returned while the breaker rejects calls.
var ErrUnavailable = errors.New("warehouse temporarily unavailable")

// Settings configures a Breaker.
type Settings struct {
	Name        string
	Warehouse   string // metrics label
	MaxRequests uint32 // allowed through while half-open
	Interval    time.Duration
	Timeout     time.Duration
	// Trip once at least MinRequests were seen and the failure ratio reaches FailureThreshold.
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultSettings returns the settings used by the dashboard.
func DefaultSettings(name, warehouse string) Settings {
	return Settings{
		Name:             name,
		Warehouse:        warehouse,
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// Breaker wraps gobreaker with store-aware success rules and metrics.
type Breaker struct {
	cb        *gobreaker.CircuitBreaker
	warehouse string
}

// NewBreaker creates a Breaker. Transitions are logged and exported.
func NewBreaker(settings Settings, logger *slog.Logger) *Breaker {
	if logger == nil {
		logger = slog.Default()
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= settings.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			observability.RecordBreakerState(name, int(to), to.String())
		},
		IsSuccessful: isSuccessful,
	})

	return &Breaker{cb: cb, warehouse: settings.Warehouse}
}

// State reports the current breaker state ("closed", "half-open", "open").
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// isSuccessful treats caller mistakes and cancellations as healthy warehouse calls.
func isSuccessful(err error) bool {
	return err == nil ||
		storage.IsClientError(err) ||
		errors.Is(err, context.Canceled)
}

// call runs fn through the breaker and records warehouse query metrics.
func call[T any](b *Breaker, operation string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	observability.RecordDBQuery(b.warehouse, operation, time.Since(start).Seconds(), err)

	var zero T
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%s: %w: %w", operation, ErrUnavailable, err)
		}
		return zero, err
	}
	return v.(T), nil
}

// exec is call for operations without a result.
func exec(b *Breaker, operation string, fn func() error) error {
	_, err := call(b, operation, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
