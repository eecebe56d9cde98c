// Package interval resolves a user-edited date interval against a maximum
// width and an optional past-only restriction, with optional hour fields.
//
// A Controller owns the widget state. Every event recomputes the period and
// all bounds from the latest clock reading, performs at most one round of
// field writes and delivers at most one change notification.
//
// Controller is threadsafe.
package interval

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hoyle1974/interval/clock"
	"github.com/hoyle1974/interval/dates"
	"github.com/hoyle1974/interval/hours"
	"github.com/hoyle1974/interval/misc"
	"github.com/hoyle1974/interval/telemetry"
)

type hourField struct {
	text string
	hour hours.Hour
}

type Controller struct {
	_       misc.NoCopy
	lock    sync.Mutex
	id      uuid.UUID
	cfg     Config
	norm    dates.Normalizer
	clock   clock.Clock
	logger  telemetry.Logger
	metrics telemetry.Metrics

	// reading is the clock sample of the event being processed.
	reading    clock.Reading
	period     dates.Period
	dateBounds dates.Bounds
	hourBounds hours.Bounds
	fields     [2]hourField
	listOpen   [2]bool

	listeners []func(Value)
	pending   bool
}

type Option func(*Controller)

// WithClock replaces the system clock.
func WithClock(c clock.Clock) Option {
	return func(ctl *Controller) {
		ctl.clock = c
	}
}

func WithLogger(l telemetry.Logger) Option {
	return func(ctl *Controller) {
		ctl.logger = l
	}
}

func WithMetrics(m telemetry.Metrics) Option {
	return func(ctl *Controller) {
		ctl.metrics = m
	}
}

// New builds a Controller. Unless cfg.EmptyByDefault is set the widget
// starts populated with today's defaults.
func New(cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		id:  uuid.New(),
		cfg: cfg,
		norm: dates.Normalizer{
			MaxDays:        cfg.MaxIntervalDays,
			OnlyInPast:     cfg.OnlyInPast,
			EmptyByDefault: cfg.EmptyByDefault,
		},
		clock:   clock.System{},
		logger:  telemetry.NOPLogger{},
		metrics: telemetry.NOPMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.reading = clock.Read(c.clock)
	if cfg.EmptyByDefault {
		c.dateBounds = dates.Compute(dates.Period{}, cfg.OnlyInPast, cfg.MaxIntervalDays, c.reading).Bounds
		c.recomputeHours()
	} else {
		c.writeValue(resolveDefaults(cfg, c.reading))
	}
	c.metrics.SetGauge("max_interval_days", float64(cfg.MaxIntervalDays))
	c.logger.Info("interval controller created", "id", c.id.String(), "period", c.period.String())
	return c, nil
}

// ID identifies the controller in logs.
func (c *Controller) ID() uuid.UUID {
	return c.id
}

func (c *Controller) Config() Config {
	return c.cfg
}

// OnChange registers fn to receive the value after every event that raises a
// change notification. fn is called without the controller lock held.
func (c *Controller) OnChange(fn func(Value)) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.listeners = append(c.listeners, fn)
}

// update runs one event: a single clock reading, the state change, then at
// most one notification once the lock is released.
func (c *Controller) update(fn func()) {
	c.lock.Lock()
	c.reading = clock.Read(c.clock)
	fn()
	notify := c.flush()
	c.lock.Unlock()
	notify()
}

func (c *Controller) flush() func() {
	if !c.pending {
		return func() {}
	}
	c.pending = false
	v := c.value()
	listeners := slices.Clone(c.listeners)
	c.metrics.IncCount("change")
	return func() {
		for _, l := range listeners {
			l(v)
		}
	}
}

func (c *Controller) value() Value {
	return Value{
		Period:    c.period,
		StartHour: c.fields[Start].hour,
		EndHour:   c.fields[End].hour,
	}
}

// Value returns the current widget value.
func (c *Controller) Value() Value {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.value()
}

func (c *Controller) Period() dates.Period {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.period
}

func (c *Controller) DateBounds() dates.Bounds {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.dateBounds
}

// HourBounds recomputes the hour bounds against the current clock.
func (c *Controller) HourBounds() hours.Bounds {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.reading = clock.Read(c.clock)
	c.recomputeHours()
	return c.hourBounds
}

// HourText returns the text currently shown in an hour field.
func (c *Controller) HourText(f Field) string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.fields[f].text
}

// Defaults returns the value the widget would reset to right now.
func (c *Controller) Defaults() Value {
	return resolveDefaults(c.cfg, clock.Read(c.clock))
}

// WriteValue replaces the whole value without raising a change notification.
func (c *Controller) WriteValue(v Value) {
	c.update(func() {
		c.writeValue(v)
	})
}

func (c *Controller) writeValue(v Value) {
	c.fields[Start] = fieldFor(v.StartHour)
	c.fields[End] = fieldFor(v.EndHour)
	c.applyPeriod(v.Period)
}

func fieldFor(h hours.Hour) hourField {
	if v, ok := h.Get(); ok {
		return hourField{text: hours.Format(v), hour: h}
	}
	return hourField{}
}

// ResetToDefaults restores the default period and hours.
func (c *Controller) ResetToDefaults() {
	c.update(func() {
		c.writeValue(resolveDefaults(c.cfg, c.reading))
		c.pending = true
	})
}

// ResetToDefaultDates restores the default period, keeping the hours.
func (c *Controller) ResetToDefaultDates() {
	c.update(func() {
		c.applyPeriod(resolveDefaults(c.cfg, c.reading).Period)
		c.pending = true
	})
}

// SetPeriod replaces both dates.
func (c *Controller) SetPeriod(p dates.Period) {
	c.update(func() {
		c.applyPeriod(p)
		c.pending = true
	})
}

func (c *Controller) SetStartDate(d time.Time) {
	c.update(func() {
		p := c.period
		p.Start = d
		c.applyPeriod(p)
		c.pending = true
	})
}

func (c *Controller) SetEndDate(d time.Time) {
	c.update(func() {
		p := c.period
		p.End = d
		c.applyPeriod(p)
		c.pending = true
	})
}

// applyPeriod normalizes p and recomputes every bound. Date bounds are always
// settled before hour bounds are derived from them.
func (c *Controller) applyPeriod(p dates.Period) {
	res := c.norm.Apply(p, c.reading)
	c.metrics.IncCount("normalize")
	if res.Clamped != 0 {
		c.metrics.IncCount("clamp")
		c.logger.Debug("period corrected",
			"id", c.id.String(),
			"rules", res.Clamped.String(),
			"input", p.String(),
			"period", res.Period.String())
	}
	c.period = res.Period
	c.dateBounds = res.Bounds
	c.recomputeHours()
}

func (c *Controller) recomputeHours() {
	c.hourBounds = hours.ComputeBounds(c.period, c.fields[Start].hour, c.reading)
}
