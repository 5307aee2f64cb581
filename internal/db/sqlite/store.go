package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/stackframe/bentographer/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds parameters for opening a Bento data file.
type Config struct {
	Path string
}

// Store implements db.Store over a read-only SQLite connection.
type Store struct {
	db   *sql.DB
	path string
}

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// NewStore opens the data file read-only. The file must already exist.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, &db.Error{Op: db.OpOpen, Err: fmt.Errorf("path is required")}
	}
	info, err := os.Stat(cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &db.Error{Op: db.OpOpen, Err: fmt.Errorf("%w: %s", db.ErrFileNotFound, cfg.Path)}
		}
		return nil, &db.Error{Op: db.OpOpen, Err: err}
	}
	if info.IsDir() {
		return nil, &db.Error{Op: db.OpOpen, Err: fmt.Errorf("%s is a directory", cfg.Path)}
	}

	conn, err := sql.Open("sqlite", "file:"+uriEscaper.Replace(cfg.Path)+"?mode=ro")
	if err != nil {
		return nil, &db.Error{Op: db.OpOpen, Err: err}
	}
	// One connection: the run is sequential and the file is opened once.
	conn.SetMaxOpenConns(1)

	return &Store{db: conn, path: cfg.Path}, nil
}

// Path returns the opened data file path.
func (s *Store) Path() string { return s.path }

// Ping checks that the file can be opened and read as a database.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM sqlite_master").Scan(&n); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Select runs q and scans all rows into dest.
func (s *Store) Select(ctx context.Context, dest any, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return &db.Error{Op: db.OpBuild, Err: err}
	}
	if err := sqlscan.Select(ctx, s.db, dest, query, args...); err != nil {
		return &db.Error{Op: db.OpSelect, Err: err}
	}
	return nil
}

// Close releases the connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return &db.Error{Op: db.OpClose, Err: err}
	}
	return nil
}

// WaitForReady polls Ping until the file responds or timeout expires.
// Bento may hold a write lock for a moment after saving.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	lastErr := s.Ping(ctx)
	for lastErr != nil {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for data file: %w", lastErr)
		case <-ticker.C:
			lastErr = s.Ping(ctx)
		}
	}
	return nil
}
