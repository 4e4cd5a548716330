package common

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	commentRegex = regexp.MustCompile(`(?m)^\s*--.*$`)
	stringRegex  = regexp.MustCompile(`'(?:[^']|'')*'|"(?:[^"]|"")*"|` + "`(?:[^`]|``)*`")
)

// ErrConstraintViolation is returned by adapters when the store rejects a
// write because of a uniqueness, foreign-key, not-null or check constraint.
var ErrConstraintViolation = errors.New("constraint violation")

// ExecFunc executes one statement and reports the rows it affected.
type ExecFunc func(query string, args ...interface{}) (int64, error)

type QueryResult struct {
	Columns []string
	Rows    []map[string]interface{}
}

// ParseSQLStatements splits a script on semicolons that are not inside
// string literals. Line comments are dropped.
func ParseSQLStatements(sql string) []string {
	sql = commentRegex.ReplaceAllString(sql, "")

	stringPositions := make(map[int]bool)
	for _, match := range stringRegex.FindAllStringIndex(sql, -1) {
		for i := match[0]; i < match[1]; i++ {
			stringPositions[i] = true
		}
	}

	estimatedStmts := strings.Count(sql, ";") + 1
	statements := make([]string, 0, estimatedStmts)

	var currentStatement strings.Builder
	currentStatement.Grow(len(sql) / estimatedStmts)

	for i, char := range sql {
		if char == ';' && !stringPositions[i] {
			stmt := strings.TrimSpace(currentStatement.String())
			if stmt != "" && !strings.HasPrefix(stmt, "/*") {
				statements = append(statements, stmt)
			}
			currentStatement.Reset()
		} else {
			currentStatement.WriteRune(char)
		}
	}

	if currentStatement.Len() > 0 {
		stmt := strings.TrimSpace(currentStatement.String())
		if stmt != "" && !strings.HasPrefix(stmt, "/*") {
			statements = append(statements, stmt)
		}
	}

	return statements
}

// CollectRows drains rows into a QueryResult. []byte values are converted to
// strings since both the MySQL and SQLite drivers return text that way.
func CollectRows(rows *sql.Rows) (*QueryResult, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var results []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range columns {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return &QueryResult{Columns: columns, Rows: results}, nil
}

// ExecStatements feeds every statement of script to exec, stopping at the
// first failure.
func ExecStatements(exec func(stmt string) error, script string) error {
	for i, stmt := range ParseSQLStatements(script) {
		if err := exec(stmt); err != nil {
			return fmt.Errorf("failed to execute statement %d: %w", i+1, err)
		}
	}
	return nil
}

// Constraint wraps a driver error so callers can match it with
// errors.Is(err, ErrConstraintViolation) while keeping the driver message.
func Constraint(err error) error {
	return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
}
