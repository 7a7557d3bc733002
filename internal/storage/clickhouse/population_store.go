package clickhouse

import (
	"context"
	"fmt"

	"australia-analytics/internal/domain"
	"australia-analytics/internal/storage"
)

// PopulationStore implements storage.PopulationStore over au_population_mart.
type PopulationStore struct {
	conn *Conn
}

// NewPopulationStore creates a new PopulationStore.
func NewPopulationStore(conn *Conn) *PopulationStore {
	return &PopulationStore{conn: conn}
}

// Compile-time interface check.
var _ storage.PopulationStore = (*PopulationStore)(nil)

// InsertBulk adds yearly records. Fails entire batch on duplicate year.
func (s *PopulationStore) InsertBulk(ctx context.Context, records []*domain.PopulationRecord) error {
	if len(records) == 0 {
		return nil
	}

	// Check for intra-batch duplicates
	seen := make(map[int]struct{})
	for _, r := range records {
		if r == nil || r.Year <= 0 {
			return storage.ErrInvalidInput
		}
		if _, exists := seen[r.Year]; exists {
			return storage.ErrDuplicateKey
		}
		seen[r.Year] = struct{}{}
	}

	// Check for duplicates against existing rows
	for _, r := range records {
		exists, err := s.exists(ctx, r.Year)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO au_population_mart (
			year, births, deaths, net_migration, total
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range records {
		err = batch.Append(uint16(r.Year), r.Births, r.Deaths, r.NetMigration, r.Total)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetFromYear retrieves records with year >= fromYear, ordered by year ASC.
func (s *PopulationStore) GetFromYear(ctx context.Context, fromYear int) ([]*domain.PopulationRecord, error) {
	if fromYear < 0 {
		fromYear = 0
	}

	query := `
		SELECT year, births, deaths, net_migration, total
		FROM au_population_mart
		WHERE year >= ?
		ORDER BY year ASC
	`

	rows, err := s.conn.Query(ctx, query, uint16(fromYear))
	if err != nil {
		return nil, fmt.Errorf("query population from year: %w", err)
	}
	defer rows.Close()

	return scanPopulation(rows)
}

// GetAll retrieves every record, ordered by year ASC.
func (s *PopulationStore) GetAll(ctx context.Context) ([]*domain.PopulationRecord, error) {
	return s.GetFromYear(ctx, 0)
}

func (s *PopulationStore) exists(ctx context.Context, year int) (bool, error) {
	var count uint64
	err := s.conn.QueryRow(ctx, `SELECT count(*) FROM au_population_mart WHERE year = ?`, uint16(year)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanPopulation(rows chRows) ([]*domain.PopulationRecord, error) {
	var records []*domain.PopulationRecord

	for rows.Next() {
		var r domain.PopulationRecord
		var year uint16

		if err := rows.Scan(&year, &r.Births, &r.Deaths, &r.NetMigration, &r.Total); err != nil {
			return nil, fmt.Errorf("scan population row: %w", err)
		}

		r.Year = int(year)
		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate population rows: %w", err)
	}

	return records, nil
}
