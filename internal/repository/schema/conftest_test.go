package schema

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/stackframe/bentographer/internal/db/sqlite"
	"github.com/stackframe/bentographer/internal/db/sqlite/sqlitetest"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	selectFn func(ctx context.Context, dest any, q sq.Sqlizer) error
	queries  []string
}

func (m *mockStore) Select(ctx context.Context, dest any, q sq.Sqlizer) error {
	query, _, _ := q.ToSql()
	m.queries = append(m.queries, query)
	if m.selectFn != nil {
		return m.selectFn(ctx, dest, q)
	}
	return nil
}

// bentoFixture populates a data file with three libraries, one of them nested.
var bentoFixture = []string{
	`INSERT INTO gn_domain (gnpk, gn_name) VALUES (1, 'Domain1'), (2, 'Domain2'), (3, 'Domain3')`,
	`INSERT INTO gn_sourceitem (gnpk, gn_label, gn_domain, gn_parent) VALUES
		(10, 'Weight Log', 1, NULL),
		(11, 'Workouts', 2, NULL),
		(12, 'Smart Collection', 1, 10)`,
	`INSERT INTO gn_field (gnpk, gn_label, gn_name, gn_typeName, gn_domain) VALUES
		(100, 'Date', 'field1', 'com.filemaker.bento.field.core.date', 1),
		(101, 'Weight', 'field2', 'com.filemaker.bento.field.core.number', 1),
		(102, 'Notes', 'field3', 'com.filemaker.bento.field.core.text', 1),
		(103, 'Date Created', 'createdDate', 'com.filemaker.bento.field.private.timestamp.dateCreated', 1),
		(200, 'Minutes', 'field1', 'com.filemaker.bento.field.core.number', 2)`,
}

func newSQLiteRepo(t *testing.T, stmts ...string) *Repo {
	t.Helper()
	s, err := sqlite.NewStore(sqlite.Config{Path: sqlitetest.Create(t, stmts...)})
	if err != nil {
		t.Fatalf("sqlite.NewStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return New(s)
}
