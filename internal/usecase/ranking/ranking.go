// Package ranking decides which fields are offered for the X and Y axes and in
// what order.
package ranking

import (
	"sort"

	"github.com/stackframe/bentographer/internal/domain/collection/field"
)

// xPriority surfaces the fields most likely to be a meaningful horizontal axis.
var xPriority = []field.Type{field.Date, field.DateCreated, field.DateModified}

// yPriority is xPriority reversed: "what changed" ahead of "when created".
// Each key sorts matching fields first, so once a date field is taken as X
// the remaining [creation timestamp C, plain D] is offered as Y in [C, D].
var yPriority = []field.Type{field.DateModified, field.DateCreated, field.Date}

// Policy holds the field types that are never offered for plotting.
type Policy struct {
	ignorable field.TypeSet
}

// New creates a Policy ignoring the given types.
func New(ignorable field.TypeSet) *Policy {
	if ignorable == nil {
		ignorable = field.TypeSet{}
	}
	return &Policy{ignorable: ignorable}
}

// Default creates a Policy with the stock Bento layout types ignored.
func Default() *Policy {
	return New(field.DefaultIgnorable())
}

// Filter drops ignorable fields, keeping input order. The input is not modified.
func (p *Policy) Filter(fields []field.Field) []field.Field {
	out := make([]field.Field, 0, len(fields))
	for _, f := range fields {
		if p.ignorable.Contains(f.FieldType()) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// RankX returns the X-axis candidates: date fields, then creation timestamps,
// then modification timestamps, then everything else in input order.
func (p *Policy) RankX(fields []field.Field) []field.Field {
	return rank(p.Filter(fields), xPriority)
}

// RankY returns the Y-axis candidates with chosenX removed by identity,
// ordered modification timestamps, creation timestamps, dates, then the rest.
func (p *Policy) RankY(fields []field.Field, chosenX field.Field) []field.Field {
	pool := make([]field.Field, 0, len(fields))
	for _, f := range p.Filter(fields) {
		if f.Same(chosenX) {
			continue
		}
		pool = append(pool, f)
	}
	return rank(pool, yPriority)
}

type keyed struct {
	f    field.Field
	keys []bool
}

// rank stable-sorts fields by one boolean key per priority type. A field
// matching an earlier key sorts first; equal keys fall through to the next.
func rank(fields []field.Field, priority []field.Type) []field.Field {
	decorated := make([]keyed, len(fields))
	for i, f := range fields {
		keys := make([]bool, len(priority))
		for k, t := range priority {
			keys[k] = f.FieldType() == t
		}
		decorated[i] = keyed{f: f, keys: keys}
	}

	sort.SliceStable(decorated, func(i, j int) bool {
		a, b := decorated[i].keys, decorated[j].keys
		for k := range a {
			if a[k] != b[k] {
				return a[k]
			}
		}
		return false
	})

	out := make([]field.Field, len(decorated))
	for i, d := range decorated {
		out[i] = d.f
	}
	return out
}
