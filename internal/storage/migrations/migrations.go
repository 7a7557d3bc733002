// Package migrations holds the warehouse mart definitions and applies them
// through a caller-supplied executor.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed clickhouse/*.sql postgres/*.sql
var files embed.FS

// Dialect names a set of mart definitions and how its files are executed.
type Dialect struct {
	Name string
	// PerStatement splits each file on ";" for drivers that reject
	// multi-statement Exec.
	PerStatement bool
}

var (
	ClickHouse = Dialect{Name: "clickhouse", PerStatement: true}
	Postgres   = Dialect{Name: "postgres"}
)

var dialects = map[string]Dialect{
	ClickHouse.Name: ClickHouse,
	Postgres.Name:   Postgres,
}

// ForWarehouse returns the dialect for a warehouse setting.
func ForWarehouse(name string) (Dialect, bool) {
	d, ok := dialects[name]
	return d, ok
}

// ExecFunc runs one SQL text against the warehouse.
type ExecFunc func(ctx context.Context, sql string) error

// Migration is an embedded file ready to execute.
type Migration struct {
	Name       string
	Statements []string
}

// Load reads the dialect's files in lexical order. Empty files are skipped.
func Load(d Dialect) ([]Migration, error) {
	entries, err := fs.ReadDir(files, d.Name)
	if err != nil {
		return nil, fmt.Errorf("read %s migrations: %w", d.Name, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(files, path.Join(d.Name, name))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		sql := string(data)

		var stmts []string
		if d.PerStatement {
			if err := validateNoSemicolonInStrings(sql); err != nil {
				return nil, fmt.Errorf("validate migration %s: %w", name, err)
			}
			stmts = splitStatements(sql)
		} else if strings.TrimSpace(sql) != "" {
			stmts = []string{sql}
		}
		if len(stmts) == 0 {
			continue
		}
		out = append(out, Migration{Name: name, Statements: stmts})
	}
	return out, nil
}

// Apply executes every migration for d and returns the file names applied.
// The mart definitions are idempotent, so re-running is safe.
func Apply(ctx context.Context, d Dialect, exec ExecFunc) ([]string, error) {
	migrations, err := Load(d)
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(migrations))
	for _, m := range migrations {
		for _, stmt := range m.Statements {
			if err := exec(ctx, stmt); err != nil {
				return applied, fmt.Errorf("apply %s migration %s: %w", d.Name, m.Name, err)
			}
		}
		applied = append(applied, m.Name)
	}
	return applied, nil
}
