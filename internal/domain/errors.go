package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDataSource signals an unreadable data file or a failed query.
	ErrDataSource = errors.New("data source error")
	// ErrEmptyCandidates signals that no field or library is eligible for selection.
	ErrEmptyCandidates = errors.New("no eligible candidates")
	// ErrCancelled signals that the user dismissed a selection prompt.
	ErrCancelled = errors.New("selection cancelled")
	// ErrUnknownChoice signals a preset selection that matches no candidate.
	ErrUnknownChoice = errors.New("unknown choice")
	// ErrNoSamples signals that the data query returned nothing to plot.
	ErrNoSamples = errors.New("no samples to plot")
)

// DataSourceError wraps ErrDataSource with the failed operation.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDataSource.Error(), e.Op, e.Err)
}

// Is reports ErrDataSource so callers can match the category without unwrapping.
func (e *DataSourceError) Is(target error) bool { return target == ErrDataSource }

func (e *DataSourceError) Unwrap() error { return e.Err }

// NewDataSourceError creates a data source error for op.
func NewDataSourceError(op string, err error) error {
	return &DataSourceError{Op: op, Err: err}
}

// EmptyCandidatesError wraps ErrEmptyCandidates with the prompt that had nothing to offer.
type EmptyCandidatesError struct {
	Prompt string
}

func (e *EmptyCandidatesError) Error() string {
	return fmt.Sprintf("%s for %s", ErrEmptyCandidates.Error(), e.Prompt)
}

func (e *EmptyCandidatesError) Unwrap() error { return ErrEmptyCandidates }

// NewEmptyCandidates creates an empty candidate set error for prompt.
func NewEmptyCandidates(prompt string) error {
	return &EmptyCandidatesError{Prompt: prompt}
}
