package interval

import (
	"testing"
	"time"

	"github.com/hoyle1974/interval/clock"
	"github.com/hoyle1974/interval/dates"
	"github.com/hoyle1974/interval/hours"
	"github.com/stretchr/testify/require"
)

func reading(hour int) clock.Reading {
	return clock.Reading{Now: testNow, Hour: hour}
}

func TestResolveDefaults(t *testing.T) {
	cfg := DefaultConfig()
	v := resolveDefaults(cfg, reading(14))
	require.True(t, v.Period.Equal(dates.Period{Start: today, End: dates.EndOfDay(testNow)}))
	require.False(t, v.StartHour.IsSet())
	require.False(t, v.EndHour.IsSet())

	cfg.ChangeHours = true
	cfg.DueTimeOffsetHours = 2
	v = resolveDefaults(cfg, reading(14))
	require.Equal(t, hours.At(11), v.StartHour)
	require.Equal(t, hours.At(12), v.EndHour)
}

func TestResolveDefaultsAcrossMidnight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChangeHours = true

	v := resolveDefaults(cfg, reading(0))
	require.Equal(t, hours.At(23), v.StartHour)
	require.Equal(t, hours.At(0), v.EndHour)
	require.True(t, v.Period.Start.Equal(yesterday))
	require.True(t, v.Period.End.Equal(dates.EndOfDay(testNow)))

	cfg.MaxIntervalDays = 1
	v = resolveDefaults(cfg, reading(0))
	require.False(t, v.StartHour.IsSet())
	require.Equal(t, hours.At(0), v.EndHour)
	require.True(t, v.Period.Start.Equal(today))
}

func TestValueInstants(t *testing.T) {
	v := Value{
		Period:    dates.Period{Start: yesterday, End: dates.EndOfDay(testNow)},
		StartHour: hours.At(23),
		EndHour:   hours.At(1),
	}
	start, end := v.Instants()
	require.Equal(t, yesterday.Add(23*time.Hour), start)
	require.Equal(t, today.Add(time.Hour), end)

	v.EndHour = hours.Unset
	_, end = v.Instants()
	require.Equal(t, dates.EndOfDay(testNow), end)
}
