package dates

import (
	"github.com/hoyle1974/interval/clock"
)

// Normalizer applies Compute to arbitrary user input. Missing boundaries are
// filled from defaults unless the widget is empty by default.
type Normalizer struct {
	MaxDays        int
	OnlyInPast     bool
	EmptyByDefault bool
}

// Apply returns the corrected period and its bounds. Apply is a fixed point:
// applying it to its own output returns the same period.
func (n Normalizer) Apply(raw Period, r clock.Reading) Result {
	p := raw
	if !n.EmptyByDefault && !p.HasEnd() {
		p.End = EndOfDay(r.Now)
	}

	res := Compute(p, n.OnlyInPast, n.MaxDays, r)
	if n.EmptyByDefault || res.Period.HasStart() || !res.Period.HasEnd() {
		return res
	}

	// Start is derived from the already corrected end.
	p = res.Period
	p.Start = res.Period.End.AddDate(0, 0, -(n.MaxDays - 1))
	second := Compute(p, n.OnlyInPast, n.MaxDays, r)
	second.Clamped |= res.Clamped
	return second
}
