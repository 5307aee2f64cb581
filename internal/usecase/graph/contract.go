package graph

import (
	"context"

	"github.com/stackframe/bentographer/internal/domain/collection"
	"github.com/stackframe/bentographer/internal/domain/collection/field"
	"github.com/stackframe/bentographer/internal/domain/sample"
)

// SchemaReader loads library and field metadata.
type SchemaReader interface {
	ListCollections(ctx context.Context) (collection.Catalog, error)
	ListFields(ctx context.Context, col collection.Collection) ([]field.Field, error)
}

// Ranker produces ordered axis candidates.
type Ranker interface {
	RankX(fields []field.Field) []field.Field
	RankY(fields []field.Field, chosenX field.Field) []field.Field
}

// Prompter asks the user to pick one of labels and returns its index.
// labels[0] is the default. Returns domain.ErrCancelled when dismissed.
type Prompter interface {
	Choose(ctx context.Context, title, message string, labels []string) (int, error)
}

// Fetcher loads the samples of y against x.
type Fetcher interface {
	Fetch(ctx context.Context, col collection.Collection, x, y field.Field) (*sample.Set, error)
}

// Renderer draws the samples and returns where the chart was written.
type Renderer interface {
	Render(ctx context.Context, set *sample.Set, x, y field.Field) (string, error)
}
