package db

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// Store is the data file facade combining all sub-interfaces.
type Store interface {
	Pinger
	Querier
	Close() error
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks that the data file is readable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Querier runs read-only queries and scans every row into dest,
// which must be a pointer to a slice of structs tagged with `db`.
type Querier interface {
	Select(ctx context.Context, dest any, q sq.Sqlizer) error
}
