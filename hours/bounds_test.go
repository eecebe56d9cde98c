package hours

import (
	"testing"
	"time"

	"github.com/hoyle1974/interval/clock"
	"github.com/hoyle1974/interval/dates"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func readingAt(hour int) clock.Reading {
	c := clock.NewFixed(testNow)
	c.SetHour(hour)
	return clock.Read(c)
}

func TestComputeBounds(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	tests := []struct {
		name      string
		period    dates.Period
		startHour Hour
		want      Bounds
	}{
		{
			name:      "same day not today",
			period:    dates.Period{Start: yesterday, End: yesterday},
			startHour: At(10),
			want:      Bounds{Start: Range{0, 23}, End: Range{11, 23}},
		},
		{
			name:   "same day no start hour",
			period: dates.Period{Start: yesterday, End: yesterday},
			want:   Bounds{Start: Range{0, 23}, End: Range{0, 23}},
		},
		{
			name:      "today",
			period:    dates.Period{Start: testNow, End: testNow},
			startHour: At(13),
			want:      Bounds{Start: Range{0, 20}, End: Range{14, 20}},
		},
		{
			name:      "different days ending today",
			period:    dates.Period{Start: yesterday, End: testNow},
			startHour: At(13),
			want:      Bounds{Start: Range{0, 23}, End: Range{0, 20}},
		},
		{
			name:   "no dates",
			period: dates.Period{},
			want:   Bounds{Start: Range{0, 23}, End: Range{0, 23}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeBounds(tt.period, tt.startHour, readingAt(20)))
		})
	}
}

func TestRange(t *testing.T) {
	r := Range{Min: 11, Max: 23}
	require.False(t, r.Empty())
	require.True(t, r.Contains(11))
	require.False(t, r.Contains(10))
	require.Equal(t, 11, r.Clamp(3))
	require.Equal(t, 23, r.Clamp(30))
	require.True(t, Range{Min: 24, Max: 23}.Empty())
}

func TestDefaults(t *testing.T) {
	start, end := Defaults(readingAt(23), 0)
	require.Equal(t, 22, start.Hour)
	require.Equal(t, 23, end.Hour)
	require.Equal(t, dates.StartOfDay(testNow), start.Date)
	require.Equal(t, dates.StartOfDay(testNow), end.Date)

	start, end = Defaults(readingAt(10), 3)
	require.Equal(t, 6, start.Hour)
	require.Equal(t, 7, end.Hour)
}

func TestDefaultsAtMidnightWrapToPreviousDay(t *testing.T) {
	start, end := Defaults(readingAt(0), 0)

	require.Equal(t, 23, start.Hour)
	require.Equal(t, dates.StartOfDay(testNow.AddDate(0, 0, -1)), start.Date)
	require.Equal(t, 0, end.Hour)
	require.Equal(t, dates.StartOfDay(testNow), end.Date)
}

func TestHour(t *testing.T) {
	h, ok := At(5).Get()
	require.True(t, ok)
	require.Equal(t, 5, h)
	require.False(t, At(24).IsSet())
	require.False(t, At(-1).IsSet())
	require.Equal(t, -1, Unset.Or(-1))
	require.Equal(t, "unset", Unset.String())
	require.Equal(t, "7", At(7).String())
}
