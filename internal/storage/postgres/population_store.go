package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

// PopulationStore implements storage.PopulationStore using PostgreSQL.
type PopulationStore struct {
	pool *Pool
}

// NewPopulationStore creates a new PopulationStore.
func NewPopulationStore(pool *Pool) *PopulationStore {
	return &PopulationStore{pool: pool}
}

// Compile-time interface check.
var _ storage.PopulationStore = (*PopulationStore)(nil)

// InsertBulk adds yearly records atomically. Fails entire batch on any duplicate year.
func (s *PopulationStore) InsertBulk(ctx context.Context, records []*domain.PopulationRecord) error {
	if len(records) == 0 {
		return nil
	}
	for _, r := range records {
		if r == nil || r.Year <= 0 {
			return storage.ErrInvalidInput
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO au_population_mart (year, births, deaths, net_migration, total)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, r := range records {
		_, err := tx.Exec(ctx, query, r.Year, r.Births, r.Deaths, r.NetMigration, r.Total)
		if err != nil {
			return classifyWriteError(fmt.Sprintf("population year %d", r.Year), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetFromYear retrieves records with year >= fromYear, ordered by year ASC.
func (s *PopulationStore) GetFromYear(ctx context.Context, fromYear int) ([]*domain.PopulationRecord, error) {
	query := `
		SELECT year, births, deaths, net_migration, total
		FROM au_population_mart
		WHERE year >= $1
		ORDER BY year ASC
	`

	rows, err := s.pool.Query(ctx, query, fromYear)
	if err != nil {
		return nil, fmt.Errorf("get population from year: %w", err)
	}
	defer rows.Close()

	return scanPopulation(rows)
}

// GetAll retrieves every record, ordered by year ASC.
func (s *PopulationStore) GetAll(ctx context.Context) ([]*domain.PopulationRecord, error) {
	return s.GetFromYear(ctx, 0)
}

func scanPopulation(rows pgx.Rows) ([]*domain.PopulationRecord, error) {
	var records []*domain.PopulationRecord
	for rows.Next() {
		var r domain.PopulationRecord
		if err := rows.Scan(&r.Year, &r.Births, &r.Deaths, &r.NetMigration, &r.Total); err != nil {
			return nil, fmt.Errorf("scan population record: %w", err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate population rows: %w", err)
	}
	return records, nil
}
