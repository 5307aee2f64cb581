package db

import "errors"

// Sentinel errors for data file operations.
var (
	ErrFileNotFound    = errors.New("db: data file not found")
	ErrInvalidIdentity = errors.New("db: invalid identifier")
)

// Op constants name the failing step for error context.
const (
	OpOpen   = "OPEN"
	OpPing   = "PING"
	OpSelect = "SELECT"
	OpBuild  = "BUILD"
	OpClose  = "CLOSE"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
