package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/capopt/platform/internal/database/common"
	"github.com/go-sql-driver/mysql"
)

type Adapter struct {
	common.SQLDB
}

func New() *Adapter {
	return &Adapter{SQLDB: common.SQLDB{Classify: classify}}
}

func (m *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("mysql", ToDSN(url))
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.DB = db
	return nil
}

// ToDSN converts a mysql:// URL into a go-sql-driver DSN. Plain DSNs are
// returned unchanged.
func ToDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}
	dsn := strings.TrimPrefix(url, "mysql://")

	atIndex := strings.Index(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}
	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return dsn
	}
	hostPort := remainder[:slashIndex]
	dbAndParams := remainder[slashIndex+1:]

	replacer := strings.NewReplacer(
		"ssl-mode=REQUIRED", "tls=skip-verify",
		"ssl-mode=DISABLED", "tls=false",
		"ssl-mode=VERIFY_CA", "tls=true",
		"ssl-mode=VERIFY_IDENTITY", "tls=true",
		"sslmode=require", "tls=skip-verify",
		"sslmode=disable", "tls=false",
		"sslmode=verify-ca", "tls=true",
		"sslmode=verify-full", "tls=true",
	)
	dbAndParams = replacer.Replace(dbAndParams)

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

func (m *Adapter) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Question
}

func (m *Adapter) GetAllTableNames(ctx context.Context) ([]string, error) {
	return m.TableNames(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		AND table_type = 'BASE TABLE'
		ORDER BY table_name`)
}

// Server error numbers for duplicate keys, NOT NULL and foreign keys.
var constraintErrors = map[uint16]bool{
	1048: true,
	1062: true,
	1216: true,
	1217: true,
	1451: true,
	1452: true,
}

func classify(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && constraintErrors[myErr.Number] {
		return common.Constraint(err)
	}
	return err
}
