// Package postgres stores the population and election marts in PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"australia-analytics/internal/storage"
)

const (
	minPoolConns    = 4
	applicationName = "australia-analytics"
)

// Pool wraps pgxpool.Pool for dependency injection.
type Pool struct {
	*pgxpool.Pool
}

// NewPool opens a pool and pings it. The DSN's application_name is kept
// when set.
func NewPool(ctx context.Context, dsn string) (*Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns < minPoolConns {
		cfg.MaxConns = minPoolConns
	}
	if cfg.ConnConfig.RuntimeParams["application_name"] == "" {
		cfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Pool{Pool: pool}, nil
}

// Close closes the connection pool.
func (p *Pool) Close() {
	p.Pool.Close()
}

// ExecSQL runs a statement without arguments, discarding the command tag.
func (p *Pool) ExecSQL(ctx context.Context, sql string) error {
	_, err := p.Exec(ctx, sql)
	return err
}

// SQLSTATE codes that describe the rows being written rather than the server.
var writeErrors = map[string]error{
	"23505": storage.ErrDuplicateKey, // unique_violation
	"23502": storage.ErrInvalidInput, // not_null_violation
	"23514": storage.ErrInvalidInput, // check_violation
	"22003": storage.ErrInvalidInput, // numeric_value_out_of_range
}

// classifyWriteError maps constraint violations onto storage errors so the
// breaker and callers treat them as client errors.
func classifyWriteError(what string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := writeErrors[pgErr.Code]; ok {
			return fmt.Errorf("insert %s: %w", what, mapped)
		}
	}
	return fmt.Errorf("insert %s: %w", what, err)
}
