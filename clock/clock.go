// Package clock is the time source used by every bounds computation.
// Production code uses System; tests pin "today" and the current hour with Fixed.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	// CurrentHour returns the hour of day, 0..23.
	CurrentHour() int
}

// Reading is a single sample of a Clock. A computation pass takes one Reading
// so that "today" and "current hour" always agree.
type Reading struct {
	Now  time.Time
	Hour int
}

// Read samples c once.
func Read(c Clock) Reading {
	return Reading{Now: c.Now(), Hour: c.CurrentHour()}
}

// System reads the wall clock in the local time zone.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

func (System) CurrentHour() int {
	return time.Now().Hour()
}

// Fixed is a controllable clock. The current hour follows Now unless it has
// been pinned with SetHour.
type Fixed struct {
	lock   sync.Mutex
	now    time.Time
	hour   int
	pinned bool
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.now
}

func (f *Fixed) CurrentHour() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.pinned {
		return f.hour
	}
	return f.now.Hour()
}

// Set moves the clock to t.
func (f *Fixed) Set(t time.Time) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.now = t
}

// SetHour pins the value returned by CurrentHour independently of Now.
func (f *Fixed) SetHour(h int) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.hour = h
	f.pinned = true
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.now = f.now.Add(d)
}

var (
	_ Clock = System{}
	_ Clock = (*Fixed)(nil)
)
