package db

import (
	"errors"
	"testing"
)

func TestLibrariesQuery(t *testing.T) {
	sql, args, err := LibrariesQuery().ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "SELECT gn_sourceitem.gn_label AS label, gn_domain.gn_name AS name, gn_domain.gnpk AS domain " +
		"FROM gn_sourceitem INNER JOIN gn_domain ON (gn_sourceitem.gn_domain = gn_domain.gnpk) " +
		"WHERE gn_sourceitem.gn_parent IS NULL"
	if sql != want {
		t.Errorf("sql:\ngot:  %s\nwant: %s", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestFieldsQuery(t *testing.T) {
	sql, args, err := FieldsQuery(7).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "SELECT gn_label AS label, gn_name AS column_name, gn_typeName AS type FROM gn_field WHERE gn_domain = ?"
	if sql != want {
		t.Errorf("sql:\ngot:  %s\nwant: %s", sql, want)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("args = %v, want [7]", args)
	}
}

func TestSamplesQuery(t *testing.T) {
	q, err := SamplesQuery("gn_Domain3", "gn_field1", "gn_field2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "SELECT gn_field1 AS x, gn_field2 AS y FROM gn_Domain3 WHERE gn_field2 IS NOT NULL"
	if sql != want {
		t.Errorf("sql:\ngot:  %s\nwant: %s", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestSamplesQuery_RejectsUnsafeIdentifiers(t *testing.T) {
	tests := []struct {
		table, x, y string
	}{
		{"gn_t; DROP TABLE gn_field", "gn_a", "gn_b"},
		{"gn_t", "gn_a AS x, 1", "gn_b"},
		{"gn_t", "gn_a", "gn b"},
		{"", "gn_a", "gn_b"},
		{"gn_t", "1gn", "gn_b"},
	}
	for _, tt := range tests {
		_, err := SamplesQuery(tt.table, tt.x, tt.y)
		if err == nil {
			t.Errorf("SamplesQuery(%q, %q, %q) expected error", tt.table, tt.x, tt.y)
			continue
		}
		if !errors.Is(err, ErrInvalidIdentity) {
			t.Errorf("expected ErrInvalidIdentity, got %v", err)
		}
		var dbErr *Error
		if !errors.As(err, &dbErr) || dbErr.Op != OpBuild {
			t.Errorf("expected db.Error with op %s, got %v", OpBuild, err)
		}
	}
}

func TestError_Format(t *testing.T) {
	err := &Error{Op: OpSelect, Err: errors.New("no such table: gn_field")}
	if err.Error() != "SELECT: no such table: gn_field" {
		t.Errorf("Error() = %q", err.Error())
	}
}
