package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSQLStatements(t *testing.T) {
	script := `
-- users
CREATE TABLE users (id TEXT PRIMARY KEY, note TEXT DEFAULT 'a;b');
INSERT INTO users (id) VALUES ('x');
`
	stmts := ParseSQLStatements(script)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "'a;b'")
	assert.Equal(t, "INSERT INTO users (id) VALUES ('x')", stmts[1])
}

func TestParseSQLStatementsTrailingStatement(t *testing.T) {
	stmts := ParseSQLStatements("SELECT 1; SELECT 2")
	assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, stmts)
}

func TestExecStatementsStopsOnError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	err := ExecStatements(func(stmt string) error {
		ran = append(ran, stmt)
		if stmt == "B" {
			return boom
		}
		return nil
	}, "A; B; C;")

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B"}, ran)
	assert.Contains(t, err.Error(), "statement 2")
}

func TestConstraintWrapsBoth(t *testing.T) {
	driverErr := errors.New("UNIQUE constraint failed: users.email")
	err := Constraint(driverErr)
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.ErrorIs(t, err, driverErr)
}
