package db

import (
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"
)

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// LibrariesQuery selects the top-level libraries joined to their domains.
func LibrariesQuery() sq.SelectBuilder {
	return builder.
		Select(
			"gn_sourceitem.gn_label AS label",
			"gn_domain.gn_name AS name",
			"gn_domain.gnpk AS domain",
		).
		From("gn_sourceitem").
		InnerJoin("gn_domain ON (gn_sourceitem.gn_domain = gn_domain.gnpk)").
		Where(sq.Eq{"gn_sourceitem.gn_parent": nil})
}

// FieldsQuery selects the field definitions of one domain.
func FieldsQuery(domainID int64) sq.SelectBuilder {
	return builder.
		Select("gn_label AS label", "gn_name AS column_name", "gn_typeName AS type").
		From("gn_field").
		Where(sq.Eq{"gn_domain": domainID})
}

// SamplesQuery selects (x, y) pairs from table, skipping rows where y is NULL.
// Identifiers come from schema metadata and are interpolated, so each one is
// checked to be a plain SQL identifier.
func SamplesQuery(table, xColumn, yColumn string) (sq.SelectBuilder, error) {
	for _, ident := range []string{table, xColumn, yColumn} {
		if !identRegex.MatchString(ident) {
			return sq.SelectBuilder{}, &Error{Op: OpBuild, Err: fmt.Errorf("%w: %q", ErrInvalidIdentity, ident)}
		}
	}
	return builder.
		Select(xColumn+" AS x", yColumn+" AS y").
		From(table).
		Where(sq.NotEq{yColumn: nil}), nil
}
