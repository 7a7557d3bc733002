package cached

import (
	"context"
	"strconv"
	"time"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

// PopulationStore memoises reads of an underlying storage.PopulationStore.
type PopulationStore struct {
	next storage.PopulationStore
	memo *memo
}

// NewPopulationStore wraps next with a ttl-bounded memo.
func NewPopulationStore(next storage.PopulationStore, ttl time.Duration, opts ...Option) *PopulationStore {
	return &PopulationStore{next: next, memo: newMemo(ttl, opts...)}
}

// Compile-time interface check.
var _ storage.PopulationStore = (*PopulationStore)(nil)

// InsertBulk writes through and invalidates memoised reads on success.
func (s *PopulationStore) InsertBulk(ctx context.Context, records []*domain.PopulationRecord) error {
	if err := s.next.InsertBulk(ctx, records); err != nil {
		return err
	}
	s.memo.invalidate()
	return nil
}

// GetFromYear returns memoised records with year >= fromYear.
func (s *PopulationStore) GetFromYear(ctx context.Context, fromYear int) ([]*domain.PopulationRecord, error) {
	v, err := s.memo.load(ctx, "population_from_year", "population:"+strconv.Itoa(fromYear), func(ctx context.Context) (any, error) {
		return s.next.GetFromYear(ctx, fromYear)
	})
	if err != nil {
		return nil, err
	}
	return cloneAll(v.([]*domain.PopulationRecord)), nil
}

// GetAll returns every memoised record.
func (s *PopulationStore) GetAll(ctx context.Context) ([]*domain.PopulationRecord, error) {
	v, err := s.memo.load(ctx, "population_all", "population:all", func(ctx context.Context) (any, error) {
		return s.next.GetAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return cloneAll(v.([]*domain.PopulationRecord)), nil
}
