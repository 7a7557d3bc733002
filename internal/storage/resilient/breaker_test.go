package resilient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
	"australia-analytics/internal/storage/memory"
)

var errWarehouseDown = errors.New("dial tcp: connection refused")

// flakyPopulation fails reads with err while it is set.
type flakyPopulation struct {
	storage.PopulationStore
	err   error
	calls int
}

func (f *flakyPopulation) GetFromYear(ctx context.Context, fromYear int) ([]*domain.PopulationRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.PopulationStore.GetFromYear(ctx, fromYear)
}

func testSettings() Settings {
	s := DefaultSettings("test", "memory")
	s.MinRequests = 3
	s.FailureThreshold = 0.5
	s.Timeout = time.Hour
	return s
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPopulationStore_PassesThrough(t *testing.T) {
	inner := memory.NewPopulationStore()
	store := NewPopulationStore(inner, NewBreaker(testSettings(), quietLogger()))
	ctx := context.Background()

	require.NoError(t, store.InsertBulk(ctx, []*domain.PopulationRecord{{Year: 2012, Births: 1}}))

	got, err := store.GetFromYear(ctx, 2000)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPopulationStore_TripsOnWarehouseFailures(t *testing.T) {
	inner := &flakyPopulation{PopulationStore: memory.NewPopulationStore(), err: errWarehouseDown}
	breaker := NewBreaker(testSettings(), quietLogger())
	store := NewPopulationStore(inner, breaker)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.GetFromYear(ctx, 2012)
		assert.ErrorIs(t, err, errWarehouseDown)
	}
	assert.Equal(t, "open", breaker.State())

	// Open breaker short-circuits without reaching the store
	_, err := store.GetFromYear(ctx, 2012)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 3, inner.calls)
}

func TestPopulationStore_ClientErrorsDoNotTrip(t *testing.T) {
	breaker := NewBreaker(testSettings(), quietLogger())
	store := NewPopulationStore(memory.NewPopulationStore(), breaker)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := store.InsertBulk(ctx, []*domain.PopulationRecord{nil})
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	}
	assert.Equal(t, "closed", breaker.State())
}

func TestIsSuccessful(t *testing.T) {
	assert.True(t, isSuccessful(nil))
	assert.True(t, isSuccessful(fmt.Errorf("insert: %w", storage.ErrDuplicateKey)))
	assert.True(t, isSuccessful(context.Canceled))
	assert.False(t, isSuccessful(errWarehouseDown))
	assert.False(t, isSuccessful(context.DeadlineExceeded))
}

func TestElectionStore_SharesBreaker(t *testing.T) {
	breaker := NewBreaker(testSettings(), quietLogger())
	population := NewPopulationStore(&flakyPopulation{PopulationStore: memory.NewPopulationStore(), err: errWarehouseDown}, breaker)
	election := NewElectionStore(memory.NewElectionStore(), breaker)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = population.GetFromYear(ctx, 2012)
	}

	_, err := election.GetPartySeats(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
}
