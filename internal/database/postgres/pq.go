package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/capopt/platform/internal/database/common"
	"github.com/lib/pq"
)

// PQAdapter talks to PostgreSQL through database/sql and lib/pq. Useful behind
// poolers that do not cope with pgx's extended protocol.
type PQAdapter struct {
	common.SQLDB
}

func NewPQ() *PQAdapter {
	return &PQAdapter{SQLDB: common.SQLDB{Classify: classifyPQ}}
}

func (p *PQAdapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	p.DB = db
	return nil
}

func (p *PQAdapter) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Dollar
}

func (p *PQAdapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	return p.TableNames(ctx, tableNamesQuery)
}

func classifyPQ(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == integrityClass {
		return common.Constraint(err)
	}
	return err
}
