package interval

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/interval/clock"
	"github.com/hoyle1974/interval/dates"
	"github.com/hoyle1974/interval/hours"
)

func (c *Controller) rangeFor(f Field) hours.Range {
	if f == Start {
		return c.hourBounds.Start
	}
	return c.hourBounds.End
}

// fieldWriter lets the hours package write into a controller field.
type fieldWriter struct {
	c *Controller
	f Field
}

func (w fieldWriter) Write(text string, emit bool) {
	w.c.writeHour(w.f, text, emit)
}

func (c *Controller) writeHour(f Field, text string, emit bool) {
	c.fields[f] = hourField{text: text, hour: hours.ParseHour(text)}
	c.recomputeHours()
	if emit {
		c.pending = true
	}
}

// SetHourText records text typed into an hour field and then canonicalizes
// or corrects it.
func (c *Controller) SetHourText(f Field, text string) {
	c.update(func() {
		prev := c.fields[f].hour
		if strings.TrimSpace(text) == "" {
			c.writeHour(f, "", true)
			return
		}
		c.handleChange(f, text, prev)
	})
}

func (c *Controller) SetStartHourText(text string) {
	c.SetHourText(Start, text)
}

func (c *Controller) SetEndHourText(text string) {
	c.SetHourText(End, text)
}

// HandleChange reacts to a new formatted value of an hour field. Empty text is
// ignored. When the hour did not change only the canonical text is restored,
// silently; otherwise the field is validated and corrected, which notifies.
func (c *Controller) HandleChange(f Field, newText, prevRaw string) {
	c.update(func() {
		c.handleChange(f, newText, hours.ParseHour(prevRaw))
	})
}

func (c *Controller) handleChange(f Field, newText string, prev hours.Hour) {
	if strings.TrimSpace(newText) == "" {
		return
	}
	h := hours.ParseHour(newText)
	c.fields[f] = hourField{text: newText, hour: h}
	c.recomputeHours()
	if h.IsSet() && h == prev {
		c.patch(f, newText, false)
		return
	}
	c.validateHourOrChangeIt(f)
}

// validateHourOrChangeIt clears an unparsable field or pulls its hour into
// the field's bounds, writing the result with a change notification.
func (c *Controller) validateHourOrChangeIt(f Field) {
	h, err := hours.Parse(c.fields[f].text)
	if err != nil {
		c.metrics.IncCount("hour.cleared")
		c.logger.Debug("hour cleared", "id", c.id.String(), "field", f.String(), "error", err.Error())
		c.writeHour(f, "", true)
		return
	}
	rng := c.rangeFor(f)
	if rng.Empty() {
		c.metrics.IncCount("hour.cleared")
		c.logger.Debug("no hour available", "id", c.id.String(), "field", f.String())
		c.writeHour(f, "", true)
		return
	}
	if clamped := rng.Clamp(h); clamped != h {
		c.metrics.IncCount("hour.clamped")
		c.logger.Debug("hour clamped", "id", c.id.String(), "field", f.String(), "from", h, "to", clamped)
		h = clamped
	}
	c.writeHour(f, hours.Format(h), true)
	c.handleHoursChanged()
}

// PatchHour writes the canonical form of raw into the field if it is a valid
// hour within the field's bounds. See hours.Patch.
func (c *Controller) PatchHour(f Field, raw string, emit bool) hours.Outcome {
	var out hours.Outcome
	c.update(func() {
		out = c.patch(f, raw, emit)
	})
	return out
}

func (c *Controller) patch(f Field, raw string, emit bool) hours.Outcome {
	out := hours.Patch(raw, fieldWriter{c: c, f: f}, c.rangeFor(f), emit)
	c.metrics.IncCount("hour." + out.String())
	switch out {
	case hours.OutcomeWritten:
		c.handleHoursChanged()
	case hours.OutcomeRejected:
		c.logger.Debug("hour out of bounds",
			"id", c.id.String(),
			"field", f.String(),
			"input", raw,
			"error", errors.Wrapf(hours.ErrOutOfBounds, "%s not in %d..%d", raw, c.rangeFor(f).Min, c.rangeFor(f).Max).Error())
	}
	return out
}

// SetHour writes h into the field. Hours outside 0..23 are ignored.
func (c *Controller) SetHour(f Field, h int, emit bool) {
	if !hours.At(h).IsSet() {
		c.metrics.IncCount("hour.rejected")
		c.logger.Debug("hour ignored", "id", c.id.String(), "field", f.String(), "hour", h)
		return
	}
	c.update(func() {
		c.writeHour(f, hours.Format(h), emit)
		c.handleHoursChanged()
	})
}

func (c *Controller) SetStartHour(h int, emit bool) {
	c.SetHour(Start, h, emit)
}

func (c *Controller) SetEndHour(h int, emit bool) {
	c.SetHour(End, h, emit)
}

// SetSuggestionsOpen records whether the field's suggestion list is showing.
func (c *Controller) SetSuggestionsOpen(f Field, open bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.listOpen[f] = open
}

// KeyHour applies an arrow key to an hour field. It does nothing while the
// field's suggestion list is open.
func (c *Controller) KeyHour(f Field, dir hours.Direction) {
	c.update(func() {
		h, ok := hours.Step(dir, c.fields[f].hour, c.rangeFor(f), c.listOpen[f])
		if !ok {
			return
		}
		c.metrics.IncCount("hour.step")
		c.writeHour(f, hours.Format(h), true)
		c.handleHoursChanged()
	})
}

func (c *Controller) KeyStartHour(dir hours.Direction) {
	c.KeyHour(Start, dir)
}

func (c *Controller) KeyEndHour(dir hours.Direction) {
	c.KeyHour(End, dir)
}

// CompleteHour returns the autocomplete list of the field for query.
func (c *Controller) CompleteHour(f Field, query string) []int {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.reading = clock.Read(c.clock)
	c.recomputeHours()
	return hours.Suggest(c.rangeFor(f), query)
}

func (c *Controller) CompleteStartHour(query string) []int {
	return c.CompleteHour(Start, query)
}

func (c *Controller) CompleteEndHour(query string) []int {
	return c.CompleteHour(End, query)
}

// HandleHoursChanged applies the cross-field hour rules. The 23h00 start
// rule only moves the end when the end is on the same day as the start.
func (c *Controller) HandleHoursChanged() {
	c.update(func() {
		c.handleHoursChanged()
	})
}

// handleHoursChanged keeps the hour pair consistent after an hour write:
// a 23h00 start on a past single day rolls the end over midnight, and a start
// at the current hour of today is moved back so the pair ends now.
func (c *Controller) handleHoursChanged() {
	start, ok := c.fields[Start].hour.Get()
	if !ok {
		return
	}
	startToday := dates.SameDay(c.period.Start, c.reading.Now)

	switch {
	case start == hours.MaxHour && !startToday:
		if !dates.SameDay(c.period.Start, c.period.End) {
			return
		}
		c.applyPeriod(dates.Period{Start: c.period.Start, End: c.period.End.AddDate(0, 0, 1)})
		if dates.SameDay(c.period.Start, c.period.End) {
			// the window is a single day, keep the last hour of it
			c.writeHour(Start, hours.Format(hours.MaxHour-1), false)
			c.writeHour(End, hours.Format(hours.MaxHour), false)
			c.logger.Debug("start hour pulled back", "id", c.id.String(), "period", c.period.String())
			return
		}
		c.writeHour(End, hours.Format(hours.MinHour), false)
		c.logger.Debug("end hour rolled over midnight", "id", c.id.String(), "period", c.period.String())

	case startToday && start == c.reading.Hour:
		w := hourWindow(c.cfg, c.reading, 0)
		if !dates.SameDay(w.startDate, c.period.Start) {
			c.applyPeriod(dates.Period{Start: w.startDate, End: c.period.End})
		}
		c.writeHour(Start, fieldFor(w.start).text, false)
		c.writeHour(End, fieldFor(w.end).text, false)
		c.logger.Debug("hours moved before now", "id", c.id.String(), "start", w.start.String(), "end", w.end.String())
	}
}

// Validate returns nil when the value is complete, or an error matching
// ErrIncompleteValue naming the empty hour fields.
func (c *Controller) Validate() error {
	c.lock.Lock()
	defer c.lock.Unlock()
	if !c.cfg.ChangeHours {
		return nil
	}
	var missing []string
	for _, f := range []Field{Start, End} {
		if !c.fields[f].hour.IsSet() {
			missing = append(missing, f.String())
		}
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrIncompleteValue, "%s hour required", strings.Join(missing, " and "))
	}
	return nil
}
