package memory

import (
	"context"
	"errors"
	"testing"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

func TestPopulationStore_InsertBulkAndGet(t *testing.T) {
	store := NewPopulationStore()
	ctx := context.Background()

	records := []*domain.PopulationRecord{
		{Year: 2013, Births: 308100, Deaths: 147700, NetMigration: 228100, Total: 23128100},
		{Year: 2012, Births: 309600, Deaths: 147100, NetMigration: 232100, Total: 22733500},
	}

	if err := store.InsertBulk(ctx, records); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	result, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(result))
	}
	if result[0].Year != 2012 || result[1].Year != 2013 {
		t.Errorf("Expected years ordered ASC, got %d, %d", result[0].Year, result[1].Year)
	}
}

func TestPopulationStore_GetFromYear(t *testing.T) {
	store := NewPopulationStore()
	ctx := context.Background()

	var records []*domain.PopulationRecord
	for year := 2008; year <= 2016; year++ {
		records = append(records, &domain.PopulationRecord{Year: year, Births: 1, Deaths: 1})
	}
	if err := store.InsertBulk(ctx, records); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	result, err := store.GetFromYear(ctx, 2012)
	if err != nil {
		t.Fatalf("GetFromYear failed: %v", err)
	}
	if len(result) != 5 {
		t.Fatalf("Expected 5 records from 2012, got %d", len(result))
	}
	if result[0].Year != 2012 {
		t.Errorf("Expected first year 2012, got %d", result[0].Year)
	}
}

func TestPopulationStore_DuplicateYear(t *testing.T) {
	store := NewPopulationStore()
	ctx := context.Background()

	records := []*domain.PopulationRecord{{Year: 2012, Births: 1}}
	if err := store.InsertBulk(ctx, records); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	err := store.InsertBulk(ctx, records)
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestPopulationStore_IntraBatchDuplicate(t *testing.T) {
	store := NewPopulationStore()
	ctx := context.Background()

	records := []*domain.PopulationRecord{
		{Year: 2012, Births: 1},
		{Year: 2013, Births: 2},
		{Year: 2012, Births: 3},
	}

	err := store.InsertBulk(ctx, records)
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey for intra-batch duplicate, got %v", err)
	}

	// Verify nothing was inserted
	result, _ := store.GetAll(ctx)
	if len(result) != 0 {
		t.Errorf("Expected 0 records (rollback), got %d", len(result))
	}
}

func TestPopulationStore_InvalidInput(t *testing.T) {
	store := NewPopulationStore()
	ctx := context.Background()

	err := store.InsertBulk(ctx, []*domain.PopulationRecord{nil})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil record, got %v", err)
	}
}

func TestPopulationStore_ReturnsCopies(t *testing.T) {
	store := NewPopulationStore()
	ctx := context.Background()

	if err := store.InsertBulk(ctx, []*domain.PopulationRecord{{Year: 2012, Births: 100}}); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	first, _ := store.GetAll(ctx)
	first[0].Births = 999

	second, _ := store.GetAll(ctx)
	if second[0].Births != 100 {
		t.Errorf("Expected stored value to be unaffected, got %v", second[0].Births)
	}
}
