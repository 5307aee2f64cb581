package graph

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/stackframe/bentographer/internal/domain"
	"github.com/stackframe/bentographer/internal/domain/collection"
	"github.com/stackframe/bentographer/internal/domain/collection/field"
	"github.com/stackframe/bentographer/internal/logger"
	"github.com/stackframe/bentographer/internal/metrics"
)

// Prompt titles. Presets are keyed by these titles.
const (
	TitleLibrary = "Library"
	TitleX       = "X"
	TitleY       = "Y"
)

// Result describes a completed run.
type Result struct {
	Collection collection.Collection
	X          field.Field
	Y          field.Field
	Samples    int
	Output     string
}

// Service walks the user from library selection to a rendered chart.
type Service struct {
	schema   SchemaReader
	ranker   Ranker
	prompter Prompter
	fetcher  Fetcher
	renderer Renderer
}

// New creates a graph service.
func New(schema SchemaReader, ranker Ranker, prompter Prompter, fetcher Fetcher, renderer Renderer) *Service {
	return &Service{
		schema:   schema,
		ranker:   ranker,
		prompter: prompter,
		fetcher:  fetcher,
		renderer: renderer,
	}
}

// Run executes one selection and render pass. Every step completes before the
// next starts; the first error aborts the run.
func (s *Service) Run(ctx context.Context) (Result, error) {
	log := logger.FromContext(ctx)

	catalog, err := s.schema.ListCollections(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list libraries: %w", err)
	}
	labels := catalog.Labels()
	idx, err := s.choose(ctx, TitleLibrary, "Choose Library", labels)
	if err != nil {
		return Result{}, err
	}
	col, _ := catalog.Get(labels[idx])
	log.Info("library selected", zap.String("library", col.Label()), zap.String("table", col.TableName()))

	fields, err := s.schema.ListFields(ctx, col)
	if err != nil {
		return Result{}, fmt.Errorf("list fields: %w", err)
	}

	xs := s.ranker.RankX(fields)
	idx, err = s.choose(ctx, TitleX, "Choose X", fieldLabels(xs))
	if err != nil {
		return Result{}, err
	}
	x := xs[idx]
	log.Info("x selected", zap.String("field", x.Name()), zap.String("type", x.FieldType().Short()))

	ys := s.ranker.RankY(fields, x)
	idx, err = s.choose(ctx, TitleY, "Choose Y", fieldLabels(ys))
	if err != nil {
		return Result{}, err
	}
	y := ys[idx]
	log.Info("y selected", zap.String("field", y.Name()), zap.String("type", y.FieldType().Short()))

	set, err := s.fetcher.Fetch(ctx, col, x, y)
	if err != nil {
		return Result{}, fmt.Errorf("fetch samples: %w", err)
	}
	if set.Len() == 0 {
		return Result{}, fmt.Errorf("%w: %s has no values in %s", domain.ErrNoSamples, y.Name(), col.Label())
	}
	metrics.SamplesPlotted.Set(float64(set.Len()))

	out, err := s.renderer.Render(ctx, set, x, y)
	metrics.RendersTotal.WithLabelValues(metrics.Status(err)).Inc()
	if err != nil {
		return Result{}, fmt.Errorf("render chart: %w", err)
	}
	log.Info("chart rendered", zap.String("output", out), zap.Int("samples", set.Len()))

	return Result{Collection: col, X: x, Y: y, Samples: set.Len(), Output: out}, nil
}

// choose prompts for one of labels. An empty list is an error before any
// prompt is shown; a single option is still offered for confirmation.
func (s *Service) choose(ctx context.Context, title, message string, labels []string) (int, error) {
	if len(labels) == 0 {
		metrics.PromptsTotal.WithLabelValues(title, "empty").Inc()
		return 0, domain.NewEmptyCandidates(title)
	}

	idx, err := s.prompter.Choose(ctx, title, message, labels)
	if err != nil {
		outcome := "error"
		if errors.Is(err, domain.ErrCancelled) {
			outcome = "cancelled"
		}
		metrics.PromptsTotal.WithLabelValues(title, outcome).Inc()
		return 0, fmt.Errorf("choose %s: %w", title, err)
	}
	if idx < 0 || idx >= len(labels) {
		metrics.PromptsTotal.WithLabelValues(title, "error").Inc()
		return 0, fmt.Errorf("choose %s: index %d out of range [0, %d)", title, idx, len(labels))
	}

	metrics.PromptsTotal.WithLabelValues(title, "chosen").Inc()
	return idx, nil
}

func fieldLabels(fields []field.Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name()
	}
	return out
}
