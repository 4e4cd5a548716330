package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/capopt/platform/internal/database"
	"github.com/capopt/platform/internal/database/common"
	"github.com/google/uuid"
)

//go:embed schema.sql
var Schema string

var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Key is the natural key of a row: column name to value.
type Key map[string]interface{}

// Record holds the mutable columns written by an upsert.
type Record map[string]interface{}

// Row is one result row keyed by column name.
type Row map[string]interface{}

// String returns the column as a string, converting driver types.
func (r Row) String(column string) string {
	return asString(r[column])
}

// Outcome reports what an upsert did.
type Outcome struct {
	ID      string
	Created bool
}

// Store is the record upserter shared by every seed module. It owns no rows;
// it only knows how to converge one natural key onto one row.
type Store struct {
	adapter database.DatabaseAdapter
	qb      squirrel.StatementBuilderType
	now     func() time.Time
	newID   func() string
}

func New(adapter database.DatabaseAdapter) *Store {
	return &Store{
		adapter: adapter,
		qb:      squirrel.StatementBuilder.PlaceholderFormat(adapter.Placeholder()),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (s *Store) Adapter() database.DatabaseAdapter {
	return s.adapter
}

// ApplySchema creates the development schema if it does not exist.
func (s *Store) ApplySchema(ctx context.Context) error {
	if err := s.adapter.ExecuteMigration(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

type upsertOptions struct {
	insertOnly Record
}

type UpsertOption func(*upsertOptions)

// WithInsertOnly sets columns that are written when the row is created and
// left untouched on later runs.
func WithInsertOnly(fields Record) UpsertOption {
	return func(o *upsertOptions) {
		o.insertOnly = fields
	}
}

// Upsert inserts a row for key or updates the single row already matching it.
func (s *Store) Upsert(ctx context.Context, table string, key Key, record Record, opts ...UpsertOption) (Outcome, error) {
	var o upsertOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(key) == 0 {
		return Outcome{}, fmt.Errorf("upsert %s: %w", table, ErrEmptyKey)
	}
	if err := checkIdentifiers(table, key, record, o.insertOnly); err != nil {
		return Outcome{}, fmt.Errorf("upsert %s: %w", table, err)
	}

	ids, err := s.findIDs(ctx, table, key, 2)
	if err != nil {
		return Outcome{}, fmt.Errorf("upsert %s: %w", table, err)
	}

	switch len(ids) {
	case 0:
		id, err := s.insert(ctx, table, key, record, o.insertOnly)
		if err != nil {
			return Outcome{}, fmt.Errorf("insert %s %s: %w", table, describeKey(key), err)
		}
		return Outcome{ID: id, Created: true}, nil
	case 1:
		if err := s.update(ctx, table, ids[0], record); err != nil {
			return Outcome{}, fmt.Errorf("update %s %s: %w", table, describeKey(key), err)
		}
		return Outcome{ID: ids[0]}, nil
	default:
		return Outcome{}, fmt.Errorf("upsert %s %s: %w", table, describeKey(key), ErrAmbiguousKey)
	}
}

func (s *Store) insert(ctx context.Context, table string, key Key, record, insertOnly Record) (string, error) {
	now := s.now()
	id := s.newID()

	values := make(map[string]interface{}, len(key)+len(record)+len(insertOnly)+3)
	for col, v := range record {
		values[col] = v
	}
	for col, v := range insertOnly {
		values[col] = v
	}
	for col, v := range key {
		values[col] = v
	}
	values["id"] = id
	values["created_at"] = now
	values["updated_at"] = now

	query, args, err := s.qb.Insert(table).SetMap(values).ToSql()
	if err != nil {
		return "", err
	}
	if _, err := s.adapter.Exec(ctx, query, args...); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) update(ctx context.Context, table, id string, record Record) error {
	set := make(map[string]interface{}, len(record)+1)
	for col, v := range record {
		set[col] = v
	}
	set["updated_at"] = s.now()

	query, args, err := s.qb.Update(table).SetMap(set).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.adapter.Exec(ctx, query, args...)
	return err
}

func (s *Store) findIDs(ctx context.Context, table string, key Key, limit uint64) ([]string, error) {
	query, args, err := s.qb.Select("id").From(table).Where(squirrel.Eq(key)).Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}
	res, err := s.adapter.ExecuteQuery(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		ids = append(ids, asString(row["id"]))
	}
	return ids, nil
}

// FindID returns the id of the row matching key, or ErrNotFound.
func (s *Store) FindID(ctx context.Context, table string, key Key) (string, error) {
	if err := checkIdentifiers(table, key, nil, nil); err != nil {
		return "", err
	}
	ids, err := s.findIDs(ctx, table, key, 2)
	if err != nil {
		return "", fmt.Errorf("find %s: %w", table, err)
	}
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%s %s: %w", table, describeKey(key), ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%s %s: %w", table, describeKey(key), ErrAmbiguousKey)
	}
}

// Require is FindID for rows a module cannot run without. A miss is
// reported as ErrMissingPrerequisite.
func (s *Store) Require(ctx context.Context, table string, key Key, what string) (string, error) {
	id, err := s.FindID(ctx, table, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", fmt.Errorf("%w: %s (%s %s)", ErrMissingPrerequisite, what, table, describeKey(key))
		}
		return "", err
	}
	return id, nil
}

// Select returns columns of every row matching where, ordered by orderBy.
func (s *Store) Select(ctx context.Context, table string, columns []string, where Key, orderBy ...string) ([]Row, error) {
	if err := checkIdentifiers(table, where, nil, nil); err != nil {
		return nil, err
	}
	q := s.qb.Select(columns...).From(table)
	if len(where) > 0 {
		q = q.Where(squirrel.Eq(where))
	}
	if len(orderBy) > 0 {
		q = q.OrderBy(orderBy...)
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	res, err := s.adapter.ExecuteQuery(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	rows := make([]Row, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, Row(r))
	}
	return rows, nil
}

// Count returns the number of rows in table.
func (s *Store) Count(ctx context.Context, table string) (int64, error) {
	if !validIdentifier.MatchString(table) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidIdentifier, table)
	}
	query, args, err := s.qb.Select("COUNT(*) AS n").From(table).ToSql()
	if err != nil {
		return 0, err
	}
	res, err := s.adapter.ExecuteQuery(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	if len(res.Rows) == 0 {
		return 0, nil
	}
	return asInt64(res.Rows[0]["n"])
}

// Truncate deletes every row of tables in the given order inside a single
// transaction. Callers pass children before parents. On error nothing is
// deleted.
func (s *Store) Truncate(ctx context.Context, tables []string) (int64, error) {
	queries := make([]string, 0, len(tables))
	for _, table := range tables {
		if !validIdentifier.MatchString(table) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidIdentifier, table)
		}
		query, _, err := s.qb.Delete(table).ToSql()
		if err != nil {
			return 0, err
		}
		queries = append(queries, query)
	}

	var total int64
	err := s.adapter.ExecInTx(ctx, func(exec common.ExecFunc) error {
		for i, query := range queries {
			n, err := exec(query)
			if err != nil {
				return fmt.Errorf("failed to truncate %s: %w", tables[i], err)
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func checkIdentifiers(table string, key Key, records ...Record) error {
	if !validIdentifier.MatchString(table) {
		return fmt.Errorf("%w: table %q", ErrInvalidIdentifier, table)
	}
	for col := range key {
		if !validIdentifier.MatchString(col) {
			return fmt.Errorf("%w: column %q", ErrInvalidIdentifier, col)
		}
	}
	for _, r := range records {
		for col := range r {
			if !validIdentifier.MatchString(col) {
				return fmt.Errorf("%w: column %q", ErrInvalidIdentifier, col)
			}
		}
	}
	return nil
}

func describeKey(key Key) string {
	cols := make([]string, 0, len(key))
	for col := range key {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	out := "{"
	for i, col := range cols {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%v", col, key[col])
	}
	return out + "}"
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case [16]byte:
		return uuid.UUID(t).String()
	default:
		return fmt.Sprint(t)
	}
}

func asInt64(v interface{}) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int32:
		return int64(t), nil
	case int:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	case []byte:
		return strconv.ParseInt(string(t), 10, 64)
	default:
		return 0, fmt.Errorf("unexpected count type %T", v)
	}
}
