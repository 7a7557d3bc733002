package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	input := `
-- population
CREATE TABLE a (x UInt8) ENGINE = Memory;

-- election
CREATE TABLE b (y UInt8) ENGINE = Memory;
`
	stmts := splitStatements(input)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (x UInt8) ENGINE = Memory", stmts[0])
	assert.Equal(t, "CREATE TABLE b (y UInt8) ENGINE = Memory", stmts[1])
}

func TestSplitStatements_CommentsOnly(t *testing.T) {
	assert.Empty(t, splitStatements("-- nothing here\n\n"))
}

func TestValidateNoSemicolonInStrings(t *testing.T) {
	assert.NoError(t, validateNoSemicolonInStrings(`SELECT 'a' FROM t WHERE x = 'it''s';`))
	assert.Error(t, validateNoSemicolonInStrings(`INSERT INTO t VALUES ('a;b');`))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		dialect    Dialect
		files      []string
		statements int
	}{
		// population mart plus three election marts, one Exec each
		{ClickHouse, []string{"001_population.sql", "002_election.sql"}, 4},
		// each file runs as a single multi-statement Exec
		{Postgres, []string{"001_population.sql", "002_election.sql"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.Name, func(t *testing.T) {
			migrations, err := Load(tt.dialect)
			require.NoError(t, err)

			var names []string
			statements := 0
			for _, m := range migrations {
				names = append(names, m.Name)
				statements += len(m.Statements)
			}
			assert.Equal(t, tt.files, names)
			assert.Equal(t, tt.statements, statements)
		})
	}
}

func TestLoad_UnknownDialect(t *testing.T) {
	_, err := Load(Dialect{Name: "bigquery"})
	assert.Error(t, err)
}

func TestForWarehouse(t *testing.T) {
	d, ok := ForWarehouse("clickhouse")
	require.True(t, ok)
	assert.True(t, d.PerStatement)

	d, ok = ForWarehouse("postgres")
	require.True(t, ok)
	assert.False(t, d.PerStatement)

	_, ok = ForWarehouse("memory")
	assert.False(t, ok)
}

func TestApply_RunsStatementsInOrder(t *testing.T) {
	var executed []string
	applied, err := Apply(context.Background(), ClickHouse, func(_ context.Context, sql string) error {
		executed = append(executed, sql)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"001_population.sql", "002_election.sql"}, applied)
	require.Len(t, executed, 4)
	assert.Contains(t, executed[0], "au_population_mart")
	for _, stmt := range executed {
		assert.False(t, strings.HasSuffix(stmt, ";"), "statement should be split: %q", stmt)
	}
}

func TestApply_StopsAtFirstFailure(t *testing.T) {
	errWarehouse := errors.New("syntax error")
	calls := 0
	applied, err := Apply(context.Background(), Postgres, func(_ context.Context, sql string) error {
		calls++
		if strings.Contains(sql, "au_election_result_summary") {
			return errWarehouse
		}
		return nil
	})

	require.ErrorIs(t, err, errWarehouse)
	assert.Contains(t, err.Error(), "002_election.sql")
	assert.Equal(t, []string{"001_population.sql"}, applied)
	assert.Equal(t, 2, calls)
}
