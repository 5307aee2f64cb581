package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/stackframe/bentographer/internal/config"
	dbSqlite "github.com/stackframe/bentographer/internal/db/sqlite"
	"github.com/stackframe/bentographer/internal/domain"
	"github.com/stackframe/bentographer/internal/domain/collection/field"
	logpkg "github.com/stackframe/bentographer/internal/logger"
	"github.com/stackframe/bentographer/internal/metrics"
	samplerepo "github.com/stackframe/bentographer/internal/repository/sample"
	schemarepo "github.com/stackframe/bentographer/internal/repository/schema"
	"github.com/stackframe/bentographer/internal/transport/chart"
	chiTransport "github.com/stackframe/bentographer/internal/transport/chi"
	"github.com/stackframe/bentographer/internal/transport/prompt"
	"github.com/stackframe/bentographer/internal/usecase/graph"
	healthuc "github.com/stackframe/bentographer/internal/usecase/health"
	"github.com/stackframe/bentographer/internal/usecase/ranking"
	"github.com/stackframe/bentographer/internal/version"
)

// opOpenDataFile labels failures to open or read the Bento data file.
const opOpenDataFile = "open data file"

func main() {
	var overrides config.Overrides
	flag.StringVar(&overrides.DatabasePath, "db", "", "Bento data file (default: database.path)")
	flag.StringVar(&overrides.Library, "library", "", "library label to plot without prompting")
	flag.StringVar(&overrides.X, "x", "", "X field label to plot without prompting")
	flag.StringVar(&overrides.Y, "y", "", "Y field label to plot without prompting")
	flag.StringVar(&overrides.Output, "out", "", "chart PNG path (default: chart.output)")
	flag.StringVar(&overrides.ServeAddr, "serve", "", "serve the chart on this address after rendering, e.g. :8080")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid flags:", err)
		os.Exit(1)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}

	logger.Debug("Starting bentographer",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("database", cfg.Database.Path),
	)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("bentographer failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run opens the data file, walks the prompts, renders the chart and optionally serves it.
// The data file is closed on every path out.
func run(ctx context.Context, cfg config.Config, logger *zap.Logger) (err error) {
	metrics.RegisterRunMetrics()
	if cfg.Metrics.Textfile != "" {
		defer func() { err = multierr.Append(err, metrics.WriteTextfile(cfg.Metrics.Textfile)) }()
	}

	store, err := dbSqlite.NewStore(dbSqlite.Config{Path: cfg.Database.Path})
	if err != nil {
		return domain.NewDataSourceError(opOpenDataFile, err)
	}
	defer func() { err = multierr.Append(err, store.Close()) }()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		return domain.NewDataSourceError(opOpenDataFile, err)
	}
	logger.Debug("Opened data file", zap.String("path", store.Path()))

	renderer := chart.NewFileRenderer(
		chart.NewRenderer(chart.Config{Width: cfg.Chart.Width, Height: cfg.Chart.Height}),
		cfg.Chart.Output,
	)
	prompter := prompt.NewPreset(prompt.NewTerminal(os.Stdin, os.Stdout), map[string]string{
		graph.TitleLibrary: cfg.Selection.Library,
		graph.TitleX:       cfg.Selection.X,
		graph.TitleY:       cfg.Selection.Y,
	})

	svc := graph.New(
		schemarepo.New(store),
		rankingPolicy(cfg.Ranking),
		prompter,
		samplerepo.New(store),
		renderer,
	)

	res, err := svc.Run(logpkg.ContextWithLogger(ctx, logger))
	if err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	logger.Info("Chart written",
		zap.String("library", res.Collection.Label()),
		zap.String("x", res.X.Name()),
		zap.String("y", res.Y.Name()),
		zap.Int("samples", res.Samples),
		zap.String("output", res.Output),
	)

	if cfg.Serve.Addr == "" {
		return nil
	}
	return serve(cfg.Serve, healthuc.New(store, renderer), renderer, logger)
}

func rankingPolicy(cfg config.RankingConfig) *ranking.Policy {
	if len(cfg.IgnorableTypes) == 0 {
		return ranking.Default()
	}
	types := make([]field.Type, len(cfg.IgnorableTypes))
	for i, t := range cfg.IgnorableTypes {
		types[i] = field.Type(t)
	}
	return ranking.New(field.NewTypeSet(types...))
}

// serve keeps the chart available over HTTP until SIGINT or SIGTERM.
func serve(cfg config.ServeConfig, health *healthuc.Service, renderer *chart.FileRenderer, logger *zap.Logger) error {
	server := chiTransport.NewServer(health, renderer, logger)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.Router(cfg.APIKeys),
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Serving chart", zap.String("addr", cfg.Addr), zap.String("path", chiTransport.PathChart))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("chart server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown chart server: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
