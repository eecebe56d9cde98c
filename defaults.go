package interval

import (
	"time"

	"github.com/hoyle1974/interval/clock"
	"github.com/hoyle1974/interval/dates"
	"github.com/hoyle1974/interval/hours"
)

// resolveDefaults builds the value a widget starts with: today's period and,
// when hours are enabled, the hour before the due time up to the due time.
func resolveDefaults(cfg Config, r clock.Reading) Value {
	if !cfg.ChangeHours {
		return Value{Period: dates.Period{Start: dates.StartOfDay(r.Now), End: dates.EndOfDay(r.Now)}}
	}

	w := hourWindow(cfg, r, cfg.DueTimeOffsetHours)
	return Value{
		Period:    dates.Period{Start: w.startDate, End: dates.EndOfDay(w.endDate)},
		StartHour: w.start,
		EndHour:   w.end,
	}
}

// window is a default pair of hour slots.
type window struct {
	startDate time.Time
	start     hours.Hour
	endDate   time.Time
	end       hours.Hour
}

// hourWindow is the one hour window ending dueOffset hours before the current
// hour. A single-day window can not cross midnight: when the end falls on
// 0h00 there is no earlier hour on that day and the start is left unset.
func hourWindow(cfg Config, r clock.Reading, dueOffset int) window {
	s, e := hours.Defaults(r, dueOffset)
	w := window{
		startDate: s.Date,
		start:     hours.At(s.Hour),
		endDate:   e.Date,
		end:       hours.At(e.Hour),
	}
	if !dates.SameDay(s.Date, e.Date) && cfg.MaxIntervalDays < 2 {
		w.startDate = e.Date
		w.start = hours.Unset
	}
	return w
}
