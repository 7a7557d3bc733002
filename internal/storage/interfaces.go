package storage

import (
	"context"

	"australia-analytics/internal/domain"
)

// PopulationStore provides access to au_population_mart storage.
type PopulationStore interface {
	// InsertBulk adds multiple yearly records. Fails entire batch on any duplicate year.
	InsertBulk(ctx context.Context, records []*domain.PopulationRecord) error

	// GetFromYear retrieves records with year >= fromYear, ordered by year ASC.
	GetFromYear(ctx context.Context, fromYear int) ([]*domain.PopulationRecord, error)

	// GetAll retrieves all records, ordered by year ASC.
	GetAll(ctx context.Context) ([]*domain.PopulationRecord, error)
}

// ElectionStore provides access to the election result marts.
type ElectionStore interface {
	// InsertDivisionResults adds candidate results. Fails entire batch if a
	// (division, surname, given name) already exists.
	InsertDivisionResults(ctx context.Context, results []*domain.DivisionResult) error

	// InsertFirstPreferences adds first-preference outcomes. Fails entire batch
	// if a (party, victorious) pair already exists.
	InsertFirstPreferences(ctx context.Context, outcomes []*domain.FirstPreferenceOutcome) error

	// InsertPartySeats adds seat totals. Fails entire batch if a party already exists.
	InsertPartySeats(ctx context.Context, seats []*domain.PartySeats) error

	// GetWinningCandidates retrieves victorious candidates ordered by state, division.
	GetWinningCandidates(ctx context.Context) ([]*domain.DivisionResult, error)

	// GetFirstPreferences retrieves all first-preference outcomes ordered by party, victorious.
	GetFirstPreferences(ctx context.Context) ([]*domain.FirstPreferenceOutcome, error)

	// GetPartySeats retrieves seat totals ordered by party.
	GetPartySeats(ctx context.Context) ([]*domain.PartySeats, error)
}
