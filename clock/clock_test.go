package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixedFollowsNow(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 25, 0, 0, time.UTC)
	c := NewFixed(now)

	require.Equal(t, now, c.Now())
	require.Equal(t, 14, c.CurrentHour())

	c.Advance(2 * time.Hour)
	require.Equal(t, 16, c.CurrentHour())
}

func TestFixedPinnedHour(t *testing.T) {
	c := NewFixed(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	c.SetHour(23)

	r := Read(c)
	require.Equal(t, 23, r.Hour)
	require.Equal(t, 9, r.Now.Hour())

	c.Set(time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC))
	require.Equal(t, 23, c.CurrentHour())
}

func TestSystem(t *testing.T) {
	r := Read(System{})
	require.False(t, r.Now.IsZero())
	require.GreaterOrEqual(t, r.Hour, 0)
	require.LessOrEqual(t, r.Hour, 23)
}
