// Package fixtures bundles demo warehouse data so the dashboard and report
// run without a live warehouse.
package fixtures

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/election"
	"australia-analytics/internal/storage"
)

// divisionsGeoJSON holds simplified rectangular boundaries for the sample divisions.
//
//go:embed divisions.geojson
var divisionsGeoJSON []byte

// Population returns fresh copies of the yearly population records, 1982-2024.
func Population() []*domain.PopulationRecord {
	return copyAll(population)
}

// DivisionResults returns fresh copies of the sample first-count results.
func DivisionResults() []*domain.DivisionResult {
	return copyAll(divisionResults)
}

// FirstPreferences returns fresh copies of the first-preference outcomes.
func FirstPreferences() []*domain.FirstPreferenceOutcome {
	return copyAll(firstPreferences)
}

// PartySeats returns fresh copies of the seat totals.
func PartySeats() []*domain.PartySeats {
	return copyAll(partySeats)
}

// Divisions decodes the bundled division boundaries.
func Divisions() (*geojson.FeatureCollection, error) {
	return election.ParseGeoJSON(divisionsGeoJSON)
}

// Load inserts every fixture into the given stores.
func Load(ctx context.Context, population storage.PopulationStore, elections storage.ElectionStore) error {
	if err := population.InsertBulk(ctx, Population()); err != nil {
		return fmt.Errorf("load population: %w", err)
	}
	if err := elections.InsertDivisionResults(ctx, DivisionResults()); err != nil {
		return fmt.Errorf("load division results: %w", err)
	}
	if err := elections.InsertFirstPreferences(ctx, FirstPreferences()); err != nil {
		return fmt.Errorf("load first preferences: %w", err)
	}
	if err := elections.InsertPartySeats(ctx, PartySeats()); err != nil {
		return fmt.Errorf("load party seats: %w", err)
	}
	return nil
}

func copyAll[T any](in []T) []*T {
	out := make([]*T, len(in))
	for i := range in {
		c := in[i]
		out[i] = &c
	}
	return out
}
