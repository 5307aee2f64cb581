// Package sqlitetest builds small Bento-shaped data files for tests.
package sqlitetest

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// Schema is the subset of Bento metadata tables the grapher reads.
const Schema = `
CREATE TABLE gn_domain (gnpk INTEGER PRIMARY KEY, gn_name TEXT NOT NULL);
CREATE TABLE gn_sourceitem (gnpk INTEGER PRIMARY KEY, gn_label TEXT NOT NULL, gn_domain INTEGER, gn_parent INTEGER);
CREATE TABLE gn_field (gnpk INTEGER PRIMARY KEY, gn_label TEXT NOT NULL, gn_name TEXT NOT NULL, gn_typeName TEXT NOT NULL, gn_domain INTEGER);
`

// Create writes a data file with Schema plus stmts and returns its path.
// The file lives in t.TempDir and is removed with it.
func Create(t testing.TB, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Database")

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer func() { _ = conn.Close() }()

	for _, stmt := range append([]string{Schema}, stmts...) {
		if _, err := conn.Exec(stmt); err != nil {
			t.Fatalf("exec fixture %q: %v", stmt, err)
		}
	}
	return path
}
