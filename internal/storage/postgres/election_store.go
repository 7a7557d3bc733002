package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

// ElectionStore implements storage.ElectionStore using PostgreSQL.
type ElectionStore struct {
	pool *Pool
}

// NewElectionStore creates a new ElectionStore.
func NewElectionStore(pool *Pool) *ElectionStore {
	return &ElectionStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ElectionStore = (*ElectionStore)(nil)

// InsertDivisionResults adds candidate results atomically.
func (s *ElectionStore) InsertDivisionResults(ctx context.Context, results []*domain.DivisionResult) error {
	for _, r := range results {
		if r == nil || r.DivisionNm == "" || r.StateAb == "" {
			return storage.ErrInvalidInput
		}
	}

	query := `
		INSERT INTO au_first_count_results_mart (
			state_ab, division_nm, party_ab, party_nm, given_nm, surname, victorious
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	return s.insertAll(ctx, "division result", len(results), func(tx pgx.Tx, i int) error {
		r := results[i]
		_, err := tx.Exec(ctx, query,
			r.StateAb, r.DivisionNm, r.PartyAb, r.PartyNm, r.GivenNm, r.Surname, r.Victorious,
		)
		return err
	})
}

// InsertFirstPreferences adds first-preference outcomes atomically.
func (s *ElectionStore) InsertFirstPreferences(ctx context.Context, outcomes []*domain.FirstPreferenceOutcome) error {
	for _, o := range outcomes {
		if o == nil || o.PartyAb == "" || o.Counts < 0 {
			return storage.ErrInvalidInput
		}
	}

	query := `
		INSERT INTO au_first_preference_results_mart (party_ab, victorious, counts)
		VALUES ($1, $2, $3)
	`
	return s.insertAll(ctx, "first preference", len(outcomes), func(tx pgx.Tx, i int) error {
		o := outcomes[i]
		_, err := tx.Exec(ctx, query, o.PartyAb, o.Victorious, o.Counts)
		return err
	})
}

// InsertPartySeats adds seat summaries atomically.
func (s *ElectionStore) InsertPartySeats(ctx context.Context, seats []*domain.PartySeats) error {
	for _, p := range seats {
		if p == nil || p.PartyAb == "" || p.WinCount < 0 {
			return storage.ErrInvalidInput
		}
	}

	query := `INSERT INTO au_election_result_summary (party_ab, win_count) VALUES ($1, $2)`
	return s.insertAll(ctx, "party seats", len(seats), func(tx pgx.Tx, i int) error {
		_, err := tx.Exec(ctx, query, seats[i].PartyAb, seats[i].WinCount)
		return err
	})
}

// insertAll runs n inserts in one transaction; constraint violations reject the batch.
func (s *ElectionStore) insertAll(ctx context.Context, what string, n int, insert func(pgx.Tx, int) error) error {
	if n == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for i := 0; i < n; i++ {
		if err := insert(tx, i); err != nil {
			return classifyWriteError(what, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetWinningCandidates returns the victorious candidate of every division,
// ordered by state then division.
func (s *ElectionStore) GetWinningCandidates(ctx context.Context) ([]*domain.DivisionResult, error) {
	query := `
		SELECT state_ab, division_nm, party_ab, party_nm, given_nm, surname, victorious
		FROM au_first_count_results_mart
		WHERE victorious
		ORDER BY state_ab ASC, division_nm ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get winning candidates: %w", err)
	}
	defer rows.Close()

	var results []*domain.DivisionResult
	for rows.Next() {
		var r domain.DivisionResult
		err := rows.Scan(&r.StateAb, &r.DivisionNm, &r.PartyAb, &r.PartyNm, &r.GivenNm, &r.Surname, &r.Victorious)
		if err != nil {
			return nil, fmt.Errorf("scan division result: %w", err)
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate division results: %w", err)
	}
	return results, nil
}

// GetFirstPreferences returns first-preference outcomes ordered by party, lost before won.
func (s *ElectionStore) GetFirstPreferences(ctx context.Context) ([]*domain.FirstPreferenceOutcome, error) {
	query := `
		SELECT party_ab, victorious, counts
		FROM au_first_preference_results_mart
		ORDER BY party_ab ASC, victorious ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get first preferences: %w", err)
	}
	defer rows.Close()

	var outcomes []*domain.FirstPreferenceOutcome
	for rows.Next() {
		var o domain.FirstPreferenceOutcome
		if err := rows.Scan(&o.PartyAb, &o.Victorious, &o.Counts); err != nil {
			return nil, fmt.Errorf("scan first preference: %w", err)
		}
		outcomes = append(outcomes, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate first preferences: %w", err)
	}
	return outcomes, nil
}

// GetPartySeats returns seat summaries ordered by party.
func (s *ElectionStore) GetPartySeats(ctx context.Context) ([]*domain.PartySeats, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT party_ab, win_count
		FROM au_election_result_summary
		ORDER BY party_ab ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("get party seats: %w", err)
	}
	defer rows.Close()

	var seats []*domain.PartySeats
	for rows.Next() {
		var p domain.PartySeats
		if err := rows.Scan(&p.PartyAb, &p.WinCount); err != nil {
			return nil, fmt.Errorf("scan party seats: %w", err)
		}
		seats = append(seats, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate party seats: %w", err)
	}
	return seats, nil
}
