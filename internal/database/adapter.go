package database

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/capopt/platform/internal/database/common"
)

// DatabaseAdapter is the narrow view of a relational store used by the
// seeding tool. Errors from Exec and ExecuteQuery that stem from a constraint
// violation wrap common.ErrConstraintViolation.
type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Placeholder is the bind-variable format squirrel should emit.
	Placeholder() squirrel.PlaceholderFormat

	ExecuteQuery(ctx context.Context, query string, args ...interface{}) (*common.QueryResult, error)
	Exec(ctx context.Context, query string, args ...interface{}) (int64, error)
	ExecuteMigration(ctx context.Context, migrationSQL string) error
	// ExecInTx runs fn inside one transaction. The transaction commits only
	// when fn returns nil.
	ExecInTx(ctx context.Context, fn func(exec common.ExecFunc) error) error

	GetAllTableNames(ctx context.Context) ([]string, error)
}
