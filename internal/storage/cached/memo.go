// Package cached memoises warehouse reads for a fixed time window.
//
// Concurrent misses for the same query are collapsed into one warehouse call.
// Any successful write through the decorator drops every memoised result.
package cached

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"australia-analytics/internal/observability"
)

// DefaultTTL matches the hourly refresh of the upstream marts.
const DefaultTTL = time.Hour

// Option configures a cached store.
type Option func(*memo)

// WithClock overrides the time source (for testing).
func WithClock(now func() time.Time) Option {
	return func(m *memo) {
		m.now = now
	}
}

type item struct {
	value     any
	expiresAt time.Time
}

type memo struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu    sync.Mutex
	gen   uint64
	items map[string]item
}

func newMemo(ttl time.Duration, opts ...Option) *memo {
	m := &memo{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]item),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// load returns the memoised value for key or calls fn to produce it.
// label names the query for metrics; key may carry parameters.
func (m *memo) load(ctx context.Context, label, key string, fn func(context.Context) (any, error)) (any, error) {
	m.mu.Lock()
	if it, ok := m.items[key]; ok && m.now().Before(it.expiresAt) {
		m.mu.Unlock()
		observability.RecordCacheLookup(label, true)
		return it.value, nil
	}
	gen := m.gen
	m.mu.Unlock()

	observability.RecordCacheLookup(label, false)

	v, err, _ := m.group.Do(key, func() (any, error) {
		// One caller cancelling must not fail the others waiting on this load.
		v, err := fn(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		// A write landed while loading; the result may predate it.
		if m.gen == gen {
			m.items[key] = item{value: v, expiresAt: m.now().Add(m.ttl)}
		}
		m.mu.Unlock()
		return v, nil
	})
	return v, err
}

// invalidate drops every memoised value.
func (m *memo) invalidate() {
	m.mu.Lock()
	m.gen++
	m.items = make(map[string]item)
	m.mu.Unlock()
}
