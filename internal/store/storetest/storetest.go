// Package storetest provides an in-memory SQLite store with the development
// schema applied, for tests in other packages.
package storetest

import (
	"context"
	"testing"

	"github.com/capopt/platform/internal/database/sqlite"
	"github.com/capopt/platform/internal/store"
)

// New returns a migrated store that is closed when the test completes.
func New(t testing.TB) *store.Store {
	t.Helper()
	ctx := context.Background()

	adapter := sqlite.New()
	if err := adapter.Connect(ctx, "sqlite://:memory:"); err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = adapter.Close()
	})

	st := store.New(adapter)
	if err := st.ApplySchema(ctx); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return st
}

// Count is Store.Count that fails the test on error.
func Count(t testing.TB, st *store.Store, table string) int64 {
	t.Helper()
	n, err := st.Count(context.Background(), table)
	if err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
