package common

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB implements the query side of an adapter on top of database/sql.
// Classify maps driver errors onto ErrConstraintViolation.
type SQLDB struct {
	DB       *sql.DB
	Classify func(error) error
}

func (s *SQLDB) classify(err error) error {
	if err == nil || s.Classify == nil {
		return err
	}
	return s.Classify(err)
}

func (s *SQLDB) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

func (s *SQLDB) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *SQLDB) ExecuteQuery(ctx context.Context, query string, args ...interface{}) (*QueryResult, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", s.classify(err))
	}
	return CollectRows(rows)
}

func (s *SQLDB) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return affected, nil
}

func (s *SQLDB) ExecuteMigration(ctx context.Context, migrationSQL string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = ExecStatements(func(stmt string) error {
		_, err := tx.ExecContext(ctx, stmt)
		return err
	}, migrationSQL)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration transaction: %w", err)
	}
	return nil
}

func (s *SQLDB) ExecInTx(ctx context.Context, fn func(exec ExecFunc) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = fn(func(query string, args ...interface{}) (int64, error) {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, s.classify(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, nil
		}
		return affected, nil
	})
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// TableNames runs query and returns the first column of every row.
func (s *SQLDB) TableNames(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
