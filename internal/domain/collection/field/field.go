package field

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Type is the dotted Bento type tag of a field.
type Type string

const typePrefix = "com.filemaker.bento.field."

// Field type constants.
const (
	// Date is a user-entered date.
	Date Type = typePrefix + "core.date"
	// DateCreated is the record creation timestamp maintained by Bento.
	DateCreated Type = typePrefix + "private.timestamp.dateCreated"
	// DateModified is the record modification timestamp maintained by Bento.
	DateModified Type = typePrefix + "private.timestamp.dateModified"

	HorizontalSeparator Type = typePrefix + "layout.horizontalSeparator"
	Text                Type = typePrefix + "core.text"
	TextBox             Type = typePrefix + "layout.textBox"
	ColumnDivider       Type = typePrefix + "layout.columnDivider"
	Media               Type = typePrefix + "core.media"
)

// ColumnPrefix is prepended to raw Bento names to form storage identifiers.
const ColumnPrefix = "gn_"

// IsTemporal reports whether values of this type are timestamps.
func (t Type) IsTemporal() bool {
	return t == Date || t == DateCreated || t == DateModified
}

// Short returns the type tag without the common Bento prefix.
func (t Type) Short() string { return strings.TrimPrefix(string(t), typePrefix) }

// Field is an immutable value object describing one attribute of a library.
// Two fields are the same field only if their IDs match.
type Field struct {
	id        uuid.UUID
	name      string
	fieldType Type
	column    string
}

// New validates and creates a Field with a fresh identity.
// rawColumn is the Bento column name without the storage prefix.
func New(name string, ft Type, rawColumn string) (Field, error) {
	if rawColumn == "" {
		return Field{}, fmt.Errorf("field %q: column is required", name)
	}
	if ft == "" {
		return Field{}, fmt.Errorf("field %q: type is required", name)
	}
	return Field{
		id:        uuid.New(),
		name:      name,
		fieldType: ft,
		column:    ColumnPrefix + rawColumn,
	}, nil
}

// Reconstruct creates a Field without validation, keeping the given identity.
// column must already carry the storage prefix.
func Reconstruct(id uuid.UUID, name string, ft Type, column string) Field {
	return Field{id: id, name: name, fieldType: ft, column: column}
}

// ID returns the surrogate identity assigned when the field was loaded.
func (f Field) ID() uuid.UUID { return f.id }

// Name returns the display label.
func (f Field) Name() string { return f.name }

// FieldType returns the Bento type tag.
func (f Field) FieldType() Type { return f.fieldType }

// Column returns the queryable column name ("gn_" + raw name).
func (f Field) Column() string { return f.column }

// Same reports whether f and other are the same loaded field.
func (f Field) Same(other Field) bool { return f.id == other.id }

func (f Field) String() string {
	return fmt.Sprintf("{name=%s, type=%s, column=%s}", f.name, f.fieldType, f.column)
}

// TypeSet is a set of field types.
type TypeSet map[Type]struct{}

// NewTypeSet builds a set from the given types.
func NewTypeSet(types ...Type) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether t is in the set.
func (s TypeSet) Contains(t Type) bool {
	_, ok := s[t]
	return ok
}

// DefaultIgnorable returns the layout and non-scalar types that are never plotted.
func DefaultIgnorable() TypeSet {
	return NewTypeSet(HorizontalSeparator, Text, TextBox, ColumnDivider, Media)
}
