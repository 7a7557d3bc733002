package clickhouse

import (
	"context"
	"fmt"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

// ElectionStore implements storage.ElectionStore over the election result marts.
type ElectionStore struct {
	conn *Conn
}

// NewElectionStore creates a new ElectionStore.
func NewElectionStore(conn *Conn) *ElectionStore {
	return &ElectionStore{conn: conn}
}

// Compile-time interface check.
var _ storage.ElectionStore = (*ElectionStore)(nil)

// InsertDivisionResults adds candidate results. Fails entire batch on duplicate
// (DivisionNm, Surname, GivenNm).
func (s *ElectionStore) InsertDivisionResults(ctx context.Context, results []*domain.DivisionResult) error {
	if len(results) == 0 {
		return nil
	}

	type key struct {
		division, surname, given string
	}
	seen := make(map[key]struct{})
	for _, r := range results {
		if r == nil || r.DivisionNm == "" || r.StateAb == "" {
			return storage.ErrInvalidInput
		}
		k := key{r.DivisionNm, r.Surname, r.GivenNm}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	for _, r := range results {
		exists, err := s.count(ctx, `
			SELECT count(*) FROM au_first_count_results_mart
			WHERE DivisionNm = ? AND Surname = ? AND GivenNm = ?
		`, r.DivisionNm, r.Surname, r.GivenNm)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO au_first_count_results_mart (
			StateAb, DivisionNm, PartyAb, PartyNm, GivenNm, Surname, Victorious
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range results {
		err = batch.Append(
			r.StateAb, r.DivisionNm, r.PartyAb, r.PartyNm,
			r.GivenNm, r.Surname, flag(r.Victorious),
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// InsertFirstPreferences adds first-preference outcomes. Fails entire batch on
// duplicate (PartyAb, Victorious).
func (s *ElectionStore) InsertFirstPreferences(ctx context.Context, outcomes []*domain.FirstPreferenceOutcome) error {
	if len(outcomes) == 0 {
		return nil
	}

	type key struct {
		party      string
		victorious bool
	}
	seen := make(map[key]struct{})
	for _, o := range outcomes {
		if o == nil || o.PartyAb == "" || o.Counts < 0 {
			return storage.ErrInvalidInput
		}
		k := key{o.PartyAb, o.Victorious}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	for _, o := range outcomes {
		exists, err := s.count(ctx, `
			SELECT count(*) FROM au_first_preference_results_mart
			WHERE PartyAb = ? AND Victorious = ?
		`, o.PartyAb, flag(o.Victorious))
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO au_first_preference_results_mart (PartyAb, Victorious, Counts)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, o := range outcomes {
		if err := batch.Append(o.PartyAb, flag(o.Victorious), uint32(o.Counts)); err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// InsertPartySeats adds seat summaries. Fails entire batch on duplicate PartyAb.
func (s *ElectionStore) InsertPartySeats(ctx context.Context, seats []*domain.PartySeats) error {
	if len(seats) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	for _, p := range seats {
		if p == nil || p.PartyAb == "" || p.WinCount < 0 {
			return storage.ErrInvalidInput
		}
		if _, exists := seen[p.PartyAb]; exists {
			return storage.ErrDuplicateKey
		}
		seen[p.PartyAb] = struct{}{}
	}

	for _, p := range seats {
		exists, err := s.count(ctx, `
			SELECT count(*) FROM au_election_result_summary WHERE PartyAb = ?
		`, p.PartyAb)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO au_election_result_summary (PartyAb, WinCount)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, p := range seats {
		if err := batch.Append(p.PartyAb, uint32(p.WinCount)); err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// GetWinningCandidates returns the victorious candidate of every division,
// ordered by state then division.
func (s *ElectionStore) GetWinningCandidates(ctx context.Context) ([]*domain.DivisionResult, error) {
	query := `
		SELECT StateAb, DivisionNm, PartyAb, PartyNm, GivenNm, Surname, Victorious
		FROM au_first_count_results_mart
		WHERE Victorious = 'Y'
		ORDER BY StateAb ASC, DivisionNm ASC
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query winning candidates: %w", err)
	}
	defer rows.Close()

	var results []*domain.DivisionResult
	for rows.Next() {
		var r domain.DivisionResult
		var victorious string
		err := rows.Scan(
			&r.StateAb, &r.DivisionNm, &r.PartyAb, &r.PartyNm,
			&r.GivenNm, &r.Surname, &victorious,
		)
		if err != nil {
			return nil, fmt.Errorf("scan division result row: %w", err)
		}
		r.Victorious = victorious == "Y"
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate division result rows: %w", err)
	}
	return results, nil
}

// GetFirstPreferences returns first-preference outcomes ordered by party, lost before won.
func (s *ElectionStore) GetFirstPreferences(ctx context.Context) ([]*domain.FirstPreferenceOutcome, error) {
	query := `
		SELECT PartyAb, Victorious, Counts
		FROM au_first_preference_results_mart
		ORDER BY PartyAb ASC, Victorious ASC
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query first preferences: %w", err)
	}
	defer rows.Close()

	var outcomes []*domain.FirstPreferenceOutcome
	for rows.Next() {
		var o domain.FirstPreferenceOutcome
		var victorious string
		var counts uint32
		if err := rows.Scan(&o.PartyAb, &victorious, &counts); err != nil {
			return nil, fmt.Errorf("scan first preference row: %w", err)
		}
		o.Victorious = victorious == "Y"
		o.Counts = int(counts)
		outcomes = append(outcomes, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate first preference rows: %w", err)
	}
	return outcomes, nil
}

// GetPartySeats returns seat summaries ordered by party.
func (s *ElectionStore) GetPartySeats(ctx context.Context) ([]*domain.PartySeats, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT PartyAb, WinCount
		FROM au_election_result_summary
		ORDER BY PartyAb ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query party seats: %w", err)
	}
	defer rows.Close()

	var seats []*domain.PartySeats
	for rows.Next() {
		var p domain.PartySeats
		var winCount uint32
		if err := rows.Scan(&p.PartyAb, &winCount); err != nil {
			return nil, fmt.Errorf("scan party seats row: %w", err)
		}
		p.WinCount = int(winCount)
		seats = append(seats, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate party seats rows: %w", err)
	}
	return seats, nil
}

func (s *ElectionStore) count(ctx context.Context, query string, args ...any) (bool, error) {
	var count uint64
	if err := s.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
