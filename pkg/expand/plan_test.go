package expand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		initial   int64
		content   int64
		threshold Threshold
		wantK     int64
		wantFinal int64
		wantErr   error
	}{
		{name: "two byte source to five", initial: 2, content: 2, threshold: 5, wantK: 2, wantFinal: 6},
		{name: "exact multiple", initial: 2, content: 2, threshold: 6, wantK: 2, wantFinal: 6},
		{name: "threshold equals initial", initial: 10, content: 10, threshold: 10, wantK: 0, wantFinal: 10},
		{name: "threshold below initial", initial: 10, content: 10, threshold: 3, wantK: 0, wantFinal: 10},
		{name: "one byte over", initial: 10, content: 10, threshold: 11, wantK: 1, wantFinal: 20},
		{name: "seed differs from content", initial: 3, content: 2, threshold: 8, wantK: 3, wantFinal: 9},
		{name: "default threshold", initial: 1000, content: 1000, threshold: DefaultThreshold, wantK: 1279999, wantFinal: 1280000000},
		{name: "empty source", initial: 0, content: 0, threshold: 1, wantErr: ErrEmptySource},
		{name: "empty source already large enough", initial: 5, content: 0, threshold: 5, wantK: 0, wantFinal: 5},
		{name: "zero threshold", initial: 1, content: 1, threshold: 0, wantErr: ErrInvalidThreshold},
		{name: "final size overflows", initial: 2, content: 2, threshold: math.MaxInt64, wantErr: ErrThresholdTooLarge},
		{name: "large seed overflows", initial: math.MaxInt64 - 10, content: 7, threshold: math.MaxInt64, wantErr: ErrThresholdTooLarge},
		{name: "largest reachable", initial: 1, content: 1, threshold: math.MaxInt64, wantK: math.MaxInt64 - 1, wantFinal: math.MaxInt64},
		{name: "negative content", initial: 1, content: -1, threshold: 4, wantErr: ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, final, err := Plan(tt.initial, tt.content, tt.threshold)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantK, k)
			assert.Equal(t, tt.wantFinal, final)
		})
	}
}

func TestPlan_SmallestK(t *testing.T) {
	for initial := int64(1); initial <= 7; initial++ {
		for threshold := Threshold(1); threshold <= 40; threshold++ {
			k, final, err := Plan(initial, initial, threshold)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, final, threshold.Bytes())
			if k > 0 {
				assert.Less(t, final-initial, threshold.Bytes(), "k=%d is not minimal", k)
			}
		}
	}
}
