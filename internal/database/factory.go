package database

import (
	"fmt"

	"github.com/capopt/platform/internal/database/mysql"
	"github.com/capopt/platform/internal/database/postgres"
	"github.com/capopt/platform/internal/database/sqlite"
)

// NewAdapter returns an unconnected adapter for provider. driver only matters
// for PostgreSQL, where "pq" selects lib/pq instead of the pgx pool.
func NewAdapter(provider, driver string) (DatabaseAdapter, error) {
	switch provider {
	case "postgresql", "postgres":
		if driver == "pq" {
			return postgres.NewPQ(), nil
		}
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	case "sqlite", "sqlite3":
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
