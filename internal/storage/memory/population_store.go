package memory

import (
	"context"
	"sort"
	"sync"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

// PopulationStore is an in-memory implementation of storage.PopulationStore.
type PopulationStore struct {
	mu   sync.RWMutex
	data map[int]*domain.PopulationRecord // keyed by year
}

// NewPopulationStore creates a new in-memory population store.
func NewPopulationStore() *PopulationStore {
	return &PopulationStore{
		data: make(map[int]*domain.PopulationRecord),
	}
}

// InsertBulk adds multiple records. Fails entire batch on duplicate year.
func (s *PopulationStore) InsertBulk(_ context.Context, records []*domain.PopulationRecord) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// First pass: validate and check duplicates (existing + intra-batch)
	batchYears := make(map[int]struct{}, len(records))
	for _, r := range records {
		if r == nil || r.Year <= 0 {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[r.Year]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchYears[r.Year]; exists {
			return storage.ErrDuplicateKey
		}
		batchYears[r.Year] = struct{}{}
	}

	// Second pass: insert all
	for _, r := range records {
		recordCopy := *r
		s.data[r.Year] = &recordCopy
	}

	return nil
}

// GetFromYear retrieves records with year >= fromYear, ordered by year ASC.
func (s *PopulationStore) GetFromYear(_ context.Context, fromYear int) ([]*domain.PopulationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.PopulationRecord
	for _, r := range s.data {
		if r.Year >= fromYear {
			recordCopy := *r
			result = append(result, &recordCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Year < result[j].Year
	})

	return result, nil
}

// GetAll retrieves all records, ordered by year ASC.
func (s *PopulationStore) GetAll(ctx context.Context) ([]*domain.PopulationRecord, error) {
	return s.GetFromYear(ctx, 0)
}

var _ storage.PopulationStore = (*PopulationStore)(nil)
