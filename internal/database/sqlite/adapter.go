package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/capopt/platform/internal/database/common"
	"github.com/mattn/go-sqlite3"
)

type Adapter struct {
	common.SQLDB
}

func New() *Adapter {
	return &Adapter{SQLDB: common.SQLDB{Classify: classify}}
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("sqlite3", dsn(url))
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// One connection: keeps :memory: databases alive and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s.DB = db
	return nil
}

// dsn strips the sqlite:// scheme and makes sure foreign keys are enforced.
func dsn(url string) string {
	path := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(path, "?") {
		return path + "?_journal_mode=WAL&_foreign_keys=on"
	}
	if !strings.Contains(path, "_foreign_keys") && !strings.Contains(path, "_fk") {
		path += "&_foreign_keys=on"
	}
	return path
}

func (s *Adapter) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Question
}

func (s *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	return s.TableNames(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
}

func classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return common.Constraint(err)
	}
	return err
}
