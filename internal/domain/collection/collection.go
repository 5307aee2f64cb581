package collection

import (
	"fmt"

	"github.com/stackframe/bentographer/internal/domain/collection/field"
)

// Collection is a top-level Bento library (immutable value object).
type Collection struct {
	name     string
	label    string
	domainID int64
}

// New validates and creates a Collection.
// name is the Bento domain name the data table is derived from.
func New(name, label string, domainID int64) (Collection, error) {
	if name == "" {
		return Collection{}, fmt.Errorf("library %q: name is required", label)
	}
	if label == "" {
		return Collection{}, fmt.Errorf("library %q: label is required", name)
	}
	return Collection{name: name, label: label, domainID: domainID}, nil
}

// Reconstruct creates a Collection without validation (storage hydration).
func Reconstruct(name, label string, domainID int64) Collection {
	return Collection{name: name, label: label, domainID: domainID}
}

// Name returns the Bento domain name.
func (c Collection) Name() string { return c.name }

// Label returns the display label.
func (c Collection) Label() string { return c.label }

// DomainID returns the domain key that scopes the library's fields.
func (c Collection) DomainID() int64 { return c.domainID }

// TableName returns the table holding the library's records.
func (c Collection) TableName() string { return field.ColumnPrefix + c.name }

// Catalog maps library labels to libraries, keeping load order.
type Catalog struct {
	labels []string
	byName map[string]Collection
}

// NewCatalog builds a catalog. Labels must be unique.
func NewCatalog(cols []Collection) (Catalog, error) {
	c := Catalog{
		labels: make([]string, 0, len(cols)),
		byName: make(map[string]Collection, len(cols)),
	}
	for _, col := range cols {
		if _, dup := c.byName[col.Label()]; dup {
			return Catalog{}, fmt.Errorf("duplicate library label: %s", col.Label())
		}
		c.labels = append(c.labels, col.Label())
		c.byName[col.Label()] = col
	}
	return c, nil
}

// Labels returns the library labels in load order.
func (c Catalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Get looks up a library by label.
func (c Catalog) Get(label string) (Collection, bool) {
	col, ok := c.byName[label]
	return col, ok
}

// Len returns the number of libraries.
func (c Catalog) Len() int { return len(c.labels) }
