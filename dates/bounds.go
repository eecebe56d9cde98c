package dates

import (
	"github.com/hoyle1974/interval/clock"
	"github.com/hoyle1974/interval/misc"
)

// Clamp is a set of flags reporting which correction rules fired.
type Clamp uint8

const (
	// ClampStart means the start was pulled back to the end of today.
	ClampStart Clamp = 1 << iota
	// ClampEnd means the end was pulled back to the end of today.
	ClampEnd
	// ClampWidth means the end was trimmed to the maximum interval width.
	ClampWidth
	// ClampOrder means the end was raised to the start.
	ClampOrder
)

func (c Clamp) Has(flag Clamp) bool {
	return c&flag != 0
}

func (c Clamp) String() string {
	if c == 0 {
		return "none"
	}
	s := ""
	for _, f := range []struct {
		flag Clamp
		name string
	}{{ClampStart, "start"}, {ClampEnd, "end"}, {ClampWidth, "width"}, {ClampOrder, "order"}} {
		if c.Has(f.flag) {
			if s != "" {
				s += "|"
			}
			s += f.name
		}
	}
	return s
}

type Result struct {
	Period  Period
	Bounds  Bounds
	Clamped Clamp
}

// Compute corrects p against the past-only restriction and the maximum
// interval width, then derives the date bounds from the corrected period.
// Past-only clamps are applied before the width clamp.
func Compute(p Period, onlyInPast bool, maxDays int, r clock.Reading) Result {
	var res Result
	endOfToday := EndOfDay(r.Now)

	if onlyInPast {
		res.Bounds.MaxStart = endOfToday
		if p.HasStart() && p.Start.After(endOfToday) {
			p.Start = endOfToday
			res.Clamped |= ClampStart
		}
		if !p.HasEnd() || p.End.After(endOfToday) {
			p.End = endOfToday
			res.Clamped |= ClampEnd
		}
	}

	if p.Complete() {
		if limit := WindowEnd(p.Start, maxDays); p.End.After(limit) {
			p.End = limit
			res.Clamped |= ClampWidth
		}
		if p.End.Before(p.Start) {
			p.End = p.Start
			res.Clamped |= ClampOrder
		}
	}

	if p.HasStart() {
		res.Bounds.MinEnd = p.Start
		res.Bounds.MaxEnd = WindowEnd(p.Start, maxDays)
		if onlyInPast {
			res.Bounds.MaxEnd = misc.MinTime(res.Bounds.MaxEnd, endOfToday)
		}
	}

	res.Period = p
	return res
}
