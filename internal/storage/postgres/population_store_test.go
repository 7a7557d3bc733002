package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

func TestPopulationStore_InsertBulkAndGetFromYear(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewPopulationStore(pool)
	ctx := context.Background()

	records := []*domain.PopulationRecord{
		{Year: 2011, Births: 301617, Deaths: 146932, NetMigration: 180400, Total: 22340024},
		{Year: 2013, Births: 308065, Deaths: 147678, NetMigration: 227900, Total: 23128129},
		{Year: 2012, Births: 309582, Deaths: 147098, NetMigration: 231900, Total: 22733465},
	}
	require.NoError(t, store.InsertBulk(ctx, records))

	got, err := store.GetFromYear(ctx, 2012)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2012, got[0].Year)
	assert.Equal(t, 309582.0, got[0].Births)
	assert.Equal(t, 2013, got[1].Year)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPopulationStore_InsertBulk_Atomic(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewPopulationStore(pool)
	ctx := context.Background()

	require.NoError(t, store.InsertBulk(ctx, []*domain.PopulationRecord{{Year: 2012}}))

	// Second batch holds a new year and an existing one; neither is kept.
	err := store.InsertBulk(ctx, []*domain.PopulationRecord{{Year: 2013}, {Year: 2012}})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPopulationStore_InsertBulk_InvalidInput(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewPopulationStore(pool)
	err := store.InsertBulk(context.Background(), []*domain.PopulationRecord{{Year: 0}})
	assert.ErrorIs(t, err, storage.ErrInvalidInput)
}
