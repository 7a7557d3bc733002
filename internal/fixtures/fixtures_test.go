package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"australia-analytics/internal/election"
	"australia-analytics/internal/storage/memory"
)

func TestPopulation_ContiguousYears(t *testing.T) {
	records := Population()
	require.NotEmpty(t, records)
	assert.Equal(t, 1982, records[0].Year)
	assert.Equal(t, 2024, records[len(records)-1].Year)
	for i := 1; i < len(records); i++ {
		assert.Equal(t, records[i-1].Year+1, records[i].Year)
	}
}

func TestPopulation_ReturnsCopies(t *testing.T) {
	Population()[0].Births = 0
	assert.NotZero(t, Population()[0].Births)
}

func TestPartySeats_FillTheHouse(t *testing.T) {
	assert.Equal(t, 150, election.TotalSeats(PartySeats()))
}

func TestDivisions_CoverEveryResult(t *testing.T) {
	fc, err := Divisions()
	require.NoError(t, err)

	names := election.DivisionNames(DivisionResults())
	filtered := election.FilterDivisions(fc, names)
	assert.Len(t, filtered.Features, len(names))
}

func TestLoad_IntoMemory(t *testing.T) {
	population := memory.NewPopulationStore()
	elections := memory.NewElectionStore()
	ctx := context.Background()

	require.NoError(t, Load(ctx, population, elections))

	all, err := population.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 43)

	winners, err := elections.GetWinningCandidates(ctx)
	require.NoError(t, err)
	assert.Len(t, winners, 24)

	// Loading twice hits the append-only guard
	assert.Error(t, Load(ctx, population, elections))
}
