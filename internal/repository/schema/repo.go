package schema

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/stackframe/bentographer/internal/db"
	"github.com/stackframe/bentographer/internal/domain"
	"github.com/stackframe/bentographer/internal/domain/collection"
	"github.com/stackframe/bentographer/internal/domain/collection/field"
	"github.com/stackframe/bentographer/internal/logger"
	"github.com/stackframe/bentographer/internal/metrics"
)

// Operation names used in data source errors and metrics.
const (
	OpListLibraries = "list libraries"
	OpListFields    = "list fields"
)

// store is the consumer interface for schema metadata (ISP).
type store interface {
	Select(ctx context.Context, dest any, q sq.Sqlizer) error
}

// Repo reads library and field metadata. Implements usecase/graph.SchemaReader.
type Repo struct {
	store store
}

// New creates a schema repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// ListCollections returns the top-level libraries keyed by label.
func (r *Repo) ListCollections(ctx context.Context) (collection.Catalog, error) {
	var rows []libraryRow
	start := time.Now()
	err := r.store.Select(ctx, &rows, db.LibrariesQuery())
	metrics.ObserveQuery("libraries", start, err)
	if err != nil {
		return collection.Catalog{}, domain.NewDataSourceError(OpListLibraries, err)
	}

	cols := make([]collection.Collection, 0, len(rows))
	for _, row := range rows {
		col, err := row.toDomain()
		if err != nil {
			return collection.Catalog{}, domain.NewDataSourceError(OpListLibraries, err)
		}
		cols = append(cols, col)
	}

	catalog, err := collection.NewCatalog(cols)
	if err != nil {
		return collection.Catalog{}, domain.NewDataSourceError(OpListLibraries, err)
	}

	logger.FromContext(ctx).Debug("libraries loaded", zap.Int("count", catalog.Len()))
	return catalog, nil
}

// ListFields returns the fields of col in storage order. Each field gets a
// fresh identity.
func (r *Repo) ListFields(ctx context.Context, col collection.Collection) ([]field.Field, error) {
	var rows []fieldRow
	start := time.Now()
	err := r.store.Select(ctx, &rows, db.FieldsQuery(col.DomainID()))
	metrics.ObserveQuery("fields", start, err)
	if err != nil {
		return nil, domain.NewDataSourceError(OpListFields, fmt.Errorf("library %q: %w", col.Label(), err))
	}

	fields := make([]field.Field, 0, len(rows))
	for _, row := range rows {
		f, err := row.toDomain()
		if err != nil {
			return nil, domain.NewDataSourceError(OpListFields, err)
		}
		fields = append(fields, f)
	}

	logger.FromContext(ctx).Debug("fields loaded",
		zap.String("library", col.Label()),
		zap.Int64("domain", col.DomainID()),
		zap.Int("count", len(fields)),
	)
	return fields, nil
}
