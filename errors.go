package speedshift

import "errors"

// Sentinel errors returned by this package. Wrap these with fmt.Errorf's
// %w verb rather than constructing new error values, so callers can match
// on them with errors.Is.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid speedshift configuration")

	// ErrAllocation indicates a queue failed to grow, the Go-idiomatic
	// equivalent of sonic.c's realloc-returns-NULL path. Tests reach it by
	// injecting a failing queue allocator.
	ErrAllocation = errors.New("speedshift: buffer allocation failed")

	// ErrClosed indicates an operation on a Stream after Close.
	ErrClosed = errors.New("speedshift: stream is closed")
)
