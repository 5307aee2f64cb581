package sample

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
	domsample "github.com/stackframe/bentographer/internal/domain/sample"
	"github.com/stackframe/bentographer/internal/logger"
	"github.com/stackframe/bentographer/internal/metrics"
)

// OpFetchSamples names the fetch step in data source errors.
const OpFetchSamples = "fetch samples"

// store is the consumer interface for record data (ISP).
type store interface {
	Select(ctx context.Context, dest any, q sq.Sqlizer) error
}

// Repo reads (x, y) pairs from a library table. Implements usecase/graph.Fetcher.
type Repo struct {
	store store
}

// New creates a sample repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Fetch returns the samples of y against x for col. Rows with a NULL y are
// skipped by the query; rows sharing an x keep the last y read.
func (r *Repo) Fetch(ctx context.Context, col collection.Collection, x, y field.Field) (*domsample.Set, error) {
	q, err := db.SamplesQuery(col.TableName(), x.Column(), y.Column())
	if err != nil {
		return nil, domain.NewDataSourceError(OpFetchSamples, err)
	}

	var rows []pointRow
	start := time.Now()
	err = r.store.Select(ctx, &rows, q)
	metrics.ObserveQuery("samples", start, err)
	if err != nil {
		return nil, domain.NewDataSourceError(OpFetchSamples,
			fmt.Errorf("%s vs %s in %q: %w", y.Name(), x.Name(), col.Label(), err))
	}

	set := domsample.NewSet()
	for _, row := range rows {
		set.Put(toFloat(row.X), toFloat(row.Y))
	}

	logger.FromContext(ctx).Debug("samples fetched",
		zap.String("table", col.TableName()),
		zap.Int("rows", len(rows)),
		zap.Int("distinct_x", set.Len()),
	)
	return set, nil
}
