package misc

import (
	"cmp"
	"time"
)

// NoCopy may be embedded into structs which must not be copied after first use.
// go vet's copylocks check reports copies of structs that contain it.
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}

// Clamp returns v limited to [lo, hi]. When lo > hi the lower bound wins.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// MinTime returns the earlier of a and b, ignoring zero values.
func MinTime(a, b time.Time) time.Time {
	if a.IsZero() {
		return b
	}
	if b.IsZero() || a.Before(b) {
		return a
	}
	return b
}
