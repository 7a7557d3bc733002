package cached

import (
	"context"
	"time"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

// ElectionStore memoises reads of an underlying storage.ElectionStore.
type ElectionStore struct {
	next storage.ElectionStore
	memo *memo
}

// NewElectionStore wraps next with a ttl-bounded memo.
func NewElectionStore(next storage.ElectionStore, ttl time.Duration, opts ...Option) *ElectionStore {
	return &ElectionStore{next: next, memo: newMemo(ttl, opts...)}
}

// Compile-time interface check.
var _ storage.ElectionStore = (*ElectionStore)(nil)

func (s *ElectionStore) InsertDivisionResults(ctx context.Context, results []*domain.DivisionResult) error {
	return s.write(s.next.InsertDivisionResults(ctx, results))
}

func (s *ElectionStore) InsertFirstPreferences(ctx context.Context, outcomes []*domain.FirstPreferenceOutcome) error {
	return s.write(s.next.InsertFirstPreferences(ctx, outcomes))
}

func (s *ElectionStore) InsertPartySeats(ctx context.Context, seats []*domain.PartySeats) error {
	return s.write(s.next.InsertPartySeats(ctx, seats))
}

func (s *ElectionStore) write(err error) error {
	if err != nil {
		return err
	}
	s.memo.invalidate()
	return nil
}

func (s *ElectionStore) GetWinningCandidates(ctx context.Context) ([]*domain.DivisionResult, error) {
	v, err := s.memo.load(ctx, "winning_candidates", "election:winners", func(ctx context.Context) (any, error) {
		return s.next.GetWinningCandidates(ctx)
	})
	if err != nil {
		return nil, err
	}
	return cloneAll(v.([]*domain.DivisionResult)), nil
}

func (s *ElectionStore) GetFirstPreferences(ctx context.Context) ([]*domain.FirstPreferenceOutcome, error) {
	v, err := s.memo.load(ctx, "first_preferences", "election:first_preferences", func(ctx context.Context) (any, error) {
		return s.next.GetFirstPreferences(ctx)
	})
	if err != nil {
		return nil, err
	}
	return cloneAll(v.([]*domain.FirstPreferenceOutcome)), nil
}

func (s *ElectionStore) GetPartySeats(ctx context.Context) ([]*domain.PartySeats, error) {
	v, err := s.memo.load(ctx, "party_seats", "election:party_seats", func(ctx context.Context) (any, error) {
		return s.next.GetPartySeats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return cloneAll(v.([]*domain.PartySeats)), nil
}

func cloneAll[T any](in []*T) []*T {
	if in == nil {
		return nil
	}
	out := make([]*T, len(in))
	for i, v := range in {
		c := *v
		out[i] = &c
	}
	return out
}
