package misc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 23, 5},
		{-1, 0, 23, 0},
		{24, 0, 23, 23},
		{3, 5, 4, 5},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
	}
}

func TestMinTime(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.Add(time.Hour)

	require.Equal(t, a, MinTime(a, b))
	require.Equal(t, a, MinTime(b, a))
	require.Equal(t, a, MinTime(time.Time{}, a))
	require.Equal(t, a, MinTime(a, time.Time{}))
	require.True(t, MinTime(time.Time{}, time.Time{}).IsZero())
}
