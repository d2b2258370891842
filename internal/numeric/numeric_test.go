package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparisons(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		lt   bool
		le   bool
		eq   bool
	}{
		{"clearly less", 1, 2, true, true, false},
		{"equal", 2, 2, false, true, true},
		{"within tolerance", 1, 1 + 1e-9, false, true, true},
		{"greater", 3, 2, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lt, IsLT(tt.a, tt.b))
			assert.Equal(t, tt.le, IsLE(tt.a, tt.b))
			assert.Equal(t, tt.eq, IsEqual(tt.a, tt.b))
		})
	}
}

func TestIsZeroAndSnap(t *testing.T) {
	assert.True(t, IsZero(1e-8))
	assert.False(t, IsZero(1e-3))
	assert.Equal(t, 1.0, Snap(1.0000000001, 1.0))
	assert.Equal(t, 0.75, Snap(0.75, 1.0))
	assert.True(t, InRange(1.0000000001, 0, 1))
	assert.False(t, InRange(1.1, 0, 1))
}
