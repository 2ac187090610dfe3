// File: pkg/expand/config.go
package expand

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySource is returned when the source holds no bytes but the
	// threshold asks for more, since no number of copies could reach it.
	ErrEmptySource = errors.New("source file is empty, threshold can never be reached")

	// ErrInvalidThreshold is returned for zero or negative thresholds.
	ErrInvalidThreshold = errors.New("threshold must be a positive number of bytes")

	// ErrThresholdTooLarge is returned when the output size needed to reach
	// the threshold does not fit in an int64.
	ErrThresholdTooLarge = errors.New("threshold too large")

	// ErrInvalidSize is returned when a size passed to Plan is negative.
	ErrInvalidSize = errors.New("size must not be negative")

	// ErrSameFile is returned when input and output refer to the same file.
	ErrSameFile = errors.New("input and output refer to the same file")
)

// IOError records a failed filesystem operation on a path.
type IOError struct {
	Op   string // Operation that failed: open, stat, read, create, write, flush, close.
	Path string // Path the operation was applied to.
	Err  error  // Underlying error.
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Config holds the options for a single expansion run.
type Config struct {
	InputPath  string    // Source file whose content is duplicated.
	OutputPath string    // Destination file, truncated if present.
	Threshold  Threshold // Target size; duplication stops once it is met or exceeded.
	Reporter   Reporter  // Receives progress and the final summary. Nil disables reporting.
}

// Validate checks that the configuration can be used by Expand.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path is required")
	}
	if c.OutputPath == "" {
		return errors.New("output path is required")
	}
	if c.Threshold <= 0 {
		return ErrInvalidThreshold
	}
	return nil
}

// Result describes the file produced by Expand.
type Result struct {
	OutputPath  string // Path of the written file.
	InitialSize int64  // Size of the source on disk when it was opened.
	ContentSize int64  // Byte length of the content unit written per copy.
	Copies      int64  // Total copies written, including the unconditional first one.
	FinalSize   int64  // Running size when duplication stopped.
}
