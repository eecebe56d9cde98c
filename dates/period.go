package dates

import (
	"fmt"
	"time"
)

// Period is a start/end pair of dates. A zero time means the boundary has
// not been chosen yet.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) HasStart() bool {
	return !p.Start.IsZero()
}

func (p Period) HasEnd() bool {
	return !p.End.IsZero()
}

// Complete reports whether both boundaries are set.
func (p Period) Complete() bool {
	return p.HasStart() && p.HasEnd()
}

// Equal compares instants, ignoring monotonic clock readings and locations.
func (p Period) Equal(o Period) bool {
	return p.Start.Equal(o.Start) && p.End.Equal(o.End)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s, %s]", formatDate(p.Start), formatDate(p.End))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}

// Bounds are the live limits the date pickers must honour. Zero values mean
// "no constraint".
type Bounds struct {
	MaxStart time.Time
	MinEnd   time.Time
	MaxEnd   time.Time
}
