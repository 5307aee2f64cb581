package schema

import (
	"github.com/stackframe/bentographer/internal/domain/collection"
	"github.com/stackframe/bentographer/internal/domain/collection/field"
)

// libraryRow is one row of db.LibrariesQuery.
type libraryRow struct {
	Label  string `db:"label"`
	Name   string `db:"name"`
	Domain int64  `db:"domain"`
}

func (r libraryRow) toDomain() (collection.Collection, error) {
	return collection.New(r.Name, r.Label, r.Domain)
}

// fieldRow is one row of db.FieldsQuery.
type fieldRow struct {
	Label  string `db:"label"`
	Column string `db:"column_name"`
	Type   string `db:"type"`
}

func (r fieldRow) toDomain() (field.Field, error) {
	return field.New(r.Label, field.Type(r.Type), r.Column)
}
