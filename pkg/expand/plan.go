package expand

import (
	"fmt"
	"math"
)

// Plan returns how many copies must be appended after the first write, and the
// resulting running size, for a source seeded at initial bytes whose content
// unit is content bytes long. The result is the smallest k >= 0 such that
// initial + k*content >= threshold.
func Plan(initial, content int64, threshold Threshold) (k int64, final int64, err error) {
	if threshold <= 0 {
		return 0, 0, ErrInvalidThreshold
	}
	if initial < 0 || content < 0 {
		return 0, 0, fmt.Errorf("initial=%d content=%d: %w", initial, content, ErrInvalidSize)
	}

	remaining := threshold.Bytes() - initial
	if remaining <= 0 {
		return 0, initial, nil
	}
	if content == 0 {
		return 0, 0, ErrEmptySource
	}

	k = remaining / content
	if remaining%content != 0 {
		k++
	}
	if k > (math.MaxInt64-initial)/content {
		return 0, 0, fmt.Errorf("threshold %d with content of %d bytes: %w", threshold, content, ErrThresholdTooLarge)
	}
	return k, initial + k*content, nil
}
