package hours

import (
	"time"

	"github.com/hoyle1974/interval/clock"
	"github.com/hoyle1974/interval/dates"
	"github.com/hoyle1974/interval/misc"
)

// Range is a closed range of hours. It is empty when Min > Max.
type Range struct {
	Min int
	Max int
}

func (r Range) Empty() bool {
	return r.Min > r.Max
}

func (r Range) Contains(h int) bool {
	return h >= r.Min && h <= r.Max
}

// Clamp limits h to the range.
func (r Range) Clamp(h int) int {
	return misc.Clamp(h, r.Min, r.Max)
}

// Bounds are the live hour limits for the start and end fields.
type Bounds struct {
	Start Range
	End   Range
}

// ComputeBounds derives the hour limits from an already date-bounded period.
// On a single-day interval the end hour must be strictly after the start hour.
func ComputeBounds(p dates.Period, startHour Hour, r clock.Reading) Bounds {
	var b Bounds

	b.Start = Range{Min: MinHour, Max: MaxHour}
	if dates.SameDay(p.Start, r.Now) {
		b.Start.Max = r.Hour
	}

	b.End = Range{Min: MinHour, Max: MaxHour}
	if dates.SameDay(p.Start, p.End) {
		b.End.Min = startHour.Or(-1) + 1
	}
	if dates.SameDay(p.End, r.Now) {
		b.End.Max = r.Hour
	}
	return b
}

// Slot is a date paired with an hour of that date.
type Slot struct {
	Date time.Time
	Hour int
}

// Defaults returns the default start and end slots: the end is the current
// hour minus dueOffset, the start one hour before. Both are computed as
// instants so a start before midnight lands on 23h00 of the previous day.
func Defaults(r clock.Reading, dueOffset int) (start, end Slot) {
	now := r.Now
	top := time.Date(now.Year(), now.Month(), now.Day(), r.Hour, 0, 0, 0, now.Location())
	e := top.Add(-time.Duration(dueOffset) * time.Hour)
	s := e.Add(-time.Hour)
	return Slot{Date: dates.StartOfDay(s), Hour: s.Hour()}, Slot{Date: dates.StartOfDay(e), Hour: e.Hour()}
}
