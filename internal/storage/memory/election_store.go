package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

// ElectionStore is an in-memory implementation of storage.ElectionStore.
type ElectionStore struct {
	mu          sync.RWMutex
	results     map[string]*domain.DivisionResult         // keyed by division|surname|given
	preferences map[string]*domain.FirstPreferenceOutcome // keyed by party|victorious
	seats       map[string]*domain.PartySeats             // keyed by party
}

// NewElectionStore creates a new in-memory election store.
func NewElectionStore() *ElectionStore {
	return &ElectionStore{
		results:     make(map[string]*domain.DivisionResult),
		preferences: make(map[string]*domain.FirstPreferenceOutcome),
		seats:       make(map[string]*domain.PartySeats),
	}
}

func resultKey(r *domain.DivisionResult) string {
	return r.DivisionNm + "|" + r.Surname + "|" + r.GivenNm
}

func preferenceKey(p *domain.FirstPreferenceOutcome) string {
	return fmt.Sprintf("%s|%t", p.PartyAb, p.Victorious)
}

// InsertDivisionResults adds candidate results. Fails entire batch on duplicate.
func (s *ElectionStore) InsertDivisionResults(_ context.Context, results []*domain.DivisionResult) error {
	if len(results) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(results))
	for _, r := range results {
		if r == nil || r.DivisionNm == "" || r.StateAb == "" {
			return storage.ErrInvalidInput
		}
		key := resultKey(r)
		if _, exists := s.results[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, r := range results {
		resultCopy := *r
		s.results[resultKey(r)] = &resultCopy
	}
	return nil
}

// InsertFirstPreferences adds first-preference outcomes. Fails entire batch on duplicate.
func (s *ElectionStore) InsertFirstPreferences(_ context.Context, outcomes []*domain.FirstPreferenceOutcome) error {
	if len(outcomes) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(outcomes))
	for _, o := range outcomes {
		if o == nil || o.PartyAb == "" || o.Counts < 0 {
			return storage.ErrInvalidInput
		}
		key := preferenceKey(o)
		if _, exists := s.preferences[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, o := range outcomes {
		outcomeCopy := *o
		s.preferences[preferenceKey(o)] = &outcomeCopy
	}
	return nil
}

// InsertPartySeats adds seat totals. Fails entire batch on duplicate party.
func (s *ElectionStore) InsertPartySeats(_ context.Context, seats []*domain.PartySeats) error {
	if len(seats) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(seats))
	for _, p := range seats {
		if p == nil || p.PartyAb == "" || p.WinCount < 0 {
			return storage.ErrInvalidInput
		}
		if _, exists := s.seats[p.PartyAb]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[p.PartyAb]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[p.PartyAb] = struct{}{}
	}

	for _, p := range seats {
		seatsCopy := *p
		s.seats[p.PartyAb] = &seatsCopy
	}
	return nil
}

// GetWinningCandidates retrieves victorious candidates ordered by state, division.
func (s *ElectionStore) GetWinningCandidates(_ context.Context) ([]*domain.DivisionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.DivisionResult
	for _, r := range s.results {
		if r.Victorious {
			resultCopy := *r
			result = append(result, &resultCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StateAb != result[j].StateAb {
			return result[i].StateAb < result[j].StateAb
		}
		return result[i].DivisionNm < result[j].DivisionNm
	})
	return result, nil
}

// GetFirstPreferences retrieves all outcomes ordered by party, victorious.
func (s *ElectionStore) GetFirstPreferences(_ context.Context) ([]*domain.FirstPreferenceOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.FirstPreferenceOutcome, 0, len(s.preferences))
	for _, o := range s.preferences {
		outcomeCopy := *o
		result = append(result, &outcomeCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].PartyAb != result[j].PartyAb {
			return result[i].PartyAb < result[j].PartyAb
		}
		return !result[i].Victorious && result[j].Victorious
	})
	return result, nil
}

// GetPartySeats retrieves seat totals ordered by party.
func (s *ElectionStore) GetPartySeats(_ context.Context) ([]*domain.PartySeats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.PartySeats, 0, len(s.seats))
	for _, p := range s.seats {
		seatsCopy := *p
		result = append(result, &seatsCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PartyAb < result[j].PartyAb
	})
	return result, nil
}

var _ storage.ElectionStore = (*ElectionStore)(nil)
