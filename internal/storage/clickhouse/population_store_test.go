package clickhouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

func TestPopulationStore_InsertBulk(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewPopulationStore(conn)
	ctx := context.Background()

	// Test empty insert
	assert.NoError(t, store.InsertBulk(ctx, nil))

	records := []*domain.PopulationRecord{
		{Year: 2013, Births: 308065, Deaths: 147678, NetMigration: 227900, Total: 23128129},
		{Year: 2012, Births: 309582, Deaths: 147098, NetMigration: 231900, Total: 22733465},
	}
	require.NoError(t, store.InsertBulk(ctx, records))

	got, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2012, got[0].Year)
	assert.Equal(t, 309582.0, got[0].Births)
	assert.Equal(t, 147098.0, got[0].Deaths)
	assert.Equal(t, 231900.0, got[0].NetMigration)
	assert.Equal(t, 22733465.0, got[0].Total)
	assert.Equal(t, 2013, got[1].Year)
}

func TestPopulationStore_GetFromYear(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewPopulationStore(conn)
	ctx := context.Background()

	var records []*domain.PopulationRecord
	for year := 2000; year <= 2024; year++ {
		records = append(records, &domain.PopulationRecord{Year: year, Births: float64(year), Deaths: 1})
	}
	require.NoError(t, store.InsertBulk(ctx, records))

	got, err := store.GetFromYear(ctx, 2012)
	require.NoError(t, err)
	require.Len(t, got, 13)
	for i, r := range got {
		assert.Equal(t, 2012+i, r.Year)
	}
}

func TestPopulationStore_InsertBulk_DuplicateKey(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewPopulationStore(conn)
	ctx := context.Background()

	records := []*domain.PopulationRecord{{Year: 2012, Births: 1, Deaths: 1}}
	require.NoError(t, store.InsertBulk(ctx, records))

	err := store.InsertBulk(ctx, records)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestPopulationStore_InsertBulk_IntraBatchDuplicate(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewPopulationStore(conn)
	ctx := context.Background()

	records := []*domain.PopulationRecord{
		{Year: 2012, Births: 1},
		{Year: 2012, Births: 2},
	}
	err := store.InsertBulk(ctx, records)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	// Nothing was written
	got, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
