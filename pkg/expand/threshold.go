package expand

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Threshold is a target output size in bytes.
type Threshold int64

// Size units. Decimal gigabytes and binary gibibytes are kept apart so callers
// say which one they mean.
const (
	DecimalGB Threshold = 1000 * 1000 * 1000
	BinaryGiB Threshold = 1024 * 1024 * 1024
)

// DefaultThreshold is 1.28 decimal gigabytes.
const DefaultThreshold Threshold = 128 * DecimalGB / 100

// GB returns a threshold of n decimal gigabytes.
func GB(n float64) (Threshold, error) {
	return scale(n, DecimalGB)
}

// GiB returns a threshold of n binary gibibytes.
func GiB(n float64) (Threshold, error) {
	return scale(n, BinaryGiB)
}

func scale(n float64, unit Threshold) (Threshold, error) {
	f := n * float64(unit)
	if math.IsNaN(f) || f < 1 {
		return 0, fmt.Errorf("%g x %d bytes: %w", n, unit, ErrInvalidThreshold)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if f >= float64(math.MaxInt64) {
		return 0, fmt.Errorf("%g x %d bytes: %w", n, unit, ErrThresholdTooLarge)
	}
	return Threshold(f), nil
}

// ParseThreshold parses a plain byte count ("5", "1280000000") or a human
// readable size ("1.28GB", "1 GiB", "512MiB").
func ParseThreshold(s string) (Threshold, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty threshold: %w", ErrInvalidThreshold)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("threshold %q: %w", s, ErrInvalidThreshold)
		}
		return Threshold(n), nil
	}

	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse threshold %q: %w", s, err)
	}
	if n == 0 || n > uint64(1<<63-1) {
		return 0, fmt.Errorf("threshold %q: %w", s, ErrInvalidThreshold)
	}
	return Threshold(n), nil
}

// Bytes returns the threshold as a byte count.
func (t Threshold) Bytes() int64 { return int64(t) }

// String renders the threshold in decimal units, e.g. "1.3 GB".
func (t Threshold) String() string {
	if t < 0 {
		return strconv.FormatInt(int64(t), 10) + " B"
	}
	return humanize.Bytes(uint64(t))
}
