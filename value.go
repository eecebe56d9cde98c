package interval

import (
	"time"

	"github.com/hoyle1974/interval/dates"
	"github.com/hoyle1974/interval/hours"
)

// Field names one side of the interval.
type Field int

const (
	Start Field = iota
	End
)

func (f Field) String() string {
	if f == Start {
		return "start"
	}
	return "end"
}

// Value is what the widget hands to the enclosing form.
type Value struct {
	Period    dates.Period
	StartHour hours.Hour
	EndHour   hours.Hour
}

// Instants combines dates and hours into the boundary instants. Without hours
// the period dates are returned unchanged.
func (v Value) Instants() (start, end time.Time) {
	start, end = v.Period.Start, v.Period.End
	if h, ok := v.StartHour.Get(); ok && !start.IsZero() {
		start = atHour(start, h)
	}
	if h, ok := v.EndHour.Get(); ok && !end.IsZero() {
		end = atHour(end, h)
	}
	return start, end
}

func atHour(day time.Time, h int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location())
}
