package sample

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/stackframe/bentographer/internal/db/sqlite"
	"github.com/stackframe/bentographer/internal/db/sqlite/sqlitetest"
	"github.com/stackframe/bentographer/internal/domain/collection"
	"github.com/stackframe/bentographer/internal/domain/collection/field"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	selectFn func(ctx context.Context, dest any, q sq.Sqlizer) error
}

func (m *mockStore) Select(ctx context.Context, dest any, q sq.Sqlizer) error {
	if m.selectFn != nil {
		return m.selectFn(ctx, dest, q)
	}
	return nil
}

var (
	weightLog = collection.Reconstruct("Domain1", "Weight Log", 1)
	dateField = field.Reconstruct(uuid.New(), "Date", field.Date, "gn_field1")
	weight    = field.Reconstruct(uuid.New(), "Weight", "com.filemaker.bento.field.core.number", "gn_field2")
)

func newSQLiteRepo(t *testing.T, stmts ...string) *Repo {
	t.Helper()
	stmts = append([]string{`CREATE TABLE gn_Domain1 (gnpk INTEGER PRIMARY KEY, gn_field1 REAL, gn_field2)`}, stmts...)
	s, err := sqlite.NewStore(sqlite.Config{Path: sqlitetest.Create(t, stmts...)})
	if err != nil {
		t.Fatalf("sqlite.NewStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return New(s)
}
