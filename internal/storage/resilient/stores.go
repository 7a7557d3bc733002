package resilient

import (
	"context"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

// PopulationStore routes every call of a storage.PopulationStore through a Breaker.
type PopulationStore struct {
	next    storage.PopulationStore
	breaker *Breaker
}

// NewPopulationStore wraps next.
func NewPopulationStore(next storage.PopulationStore, breaker *Breaker) *PopulationStore {
	return &PopulationStore{next: next, breaker: breaker}
}

// Compile-time interface check.
var _ storage.PopulationStore = (*PopulationStore)(nil)

func (s *PopulationStore) InsertBulk(ctx context.Context, records []*domain.PopulationRecord) error {
	return exec(s.breaker, "population_insert", func() error {
		return s.next.InsertBulk(ctx, records)
	})
}

func (s *PopulationStore) GetFromYear(ctx context.Context, fromYear int) ([]*domain.PopulationRecord, error) {
	return call(s.breaker, "population_from_year", func() ([]*domain.PopulationRecord, error) {
		return s.next.GetFromYear(ctx, fromYear)
	})
}

func (s *PopulationStore) GetAll(ctx context.Context) ([]*domain.PopulationRecord, error) {
	return call(s.breaker, "population_all", func() ([]*domain.PopulationRecord, error) {
		return s.next.GetAll(ctx)
	})
}

// ElectionStore routes every call of a storage.ElectionStore through a Breaker.
type ElectionStore struct {
	next    storage.ElectionStore
	breaker *Breaker
}

// NewElectionStore wraps next.
func NewElectionStore(next storage.ElectionStore, breaker *Breaker) *ElectionStore {
	return &ElectionStore{next: next, breaker: breaker}
}

// Compile-time interface check.
var _ storage.ElectionStore = (*ElectionStore)(nil)

func (s *ElectionStore) InsertDivisionResults(ctx context.Context, results []*domain.DivisionResult) error {
	return exec(s.breaker, "division_results_insert", func() error {
		return s.next.InsertDivisionResults(ctx, results)
	})
}

func (s *ElectionStore) InsertFirstPreferences(ctx context.Context, outcomes []*domain.FirstPreferenceOutcome) error {
	return exec(s.breaker, "first_preferences_insert", func() error {
		return s.next.InsertFirstPreferences(ctx, outcomes)
	})
}

func (s *ElectionStore) InsertPartySeats(ctx context.Context, seats []*domain.PartySeats) error {
	return exec(s.breaker, "party_seats_insert", func() error {
		return s.next.InsertPartySeats(ctx, seats)
	})
}

func (s *ElectionStore) GetWinningCandidates(ctx context.Context) ([]*domain.DivisionResult, error) {
	return call(s.breaker, "winning_candidates", func() ([]*domain.DivisionResult, error) {
		return s.next.GetWinningCandidates(ctx)
	})
}

func (s *ElectionStore) GetFirstPreferences(ctx context.Context) ([]*domain.FirstPreferenceOutcome, error) {
	return call(s.breaker, "first_preferences", func() ([]*domain.FirstPreferenceOutcome, error) {
		return s.next.GetFirstPreferences(ctx)
	})
}

func (s *ElectionStore) GetPartySeats(ctx context.Context) ([]*domain.PartySeats, error) {
	return call(s.breaker, "party_seats", func() ([]*domain.PartySeats, error) {
		return s.next.GetPartySeats(ctx)
	})
}
