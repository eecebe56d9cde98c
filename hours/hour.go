// Package hours holds the hour-of-day rules of the interval widget: bounds,
// autocomplete suggestions, text parsing/formatting and keyboard stepping.
package hours

import "strconv"

const (
	MinHour = 0
	MaxHour = 23
)

// Hour is an optional hour of day. The zero value is Unset.
type Hour struct {
	value int
	set   bool
}

// Unset is the Hour with no value.
var Unset = Hour{}

// At returns a set Hour. Values outside 0..23 yield Unset.
func At(h int) Hour {
	if h < MinHour || h > MaxHour {
		return Unset
	}
	return Hour{value: h, set: true}
}

// Get returns the hour and whether it is set.
func (h Hour) Get() (int, bool) {
	return h.value, h.set
}

func (h Hour) IsSet() bool {
	return h.set
}

// Or returns the hour, or def when unset.
func (h Hour) Or(def int) int {
	if !h.set {
		return def
	}
	return h.value
}

func (h Hour) String() string {
	if !h.set {
		return "unset"
	}
	return strconv.Itoa(h.value)
}
