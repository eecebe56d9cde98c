package hours

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrParse is returned when text does not start with an hour of day.
	ErrParse = errors.New("not an hour of day")
	// ErrOutOfBounds marks an hour outside the field's current range.
	ErrOutOfBounds = errors.New("hour out of bounds")
)

var leadingInt = regexp.MustCompile(`^(\d+)`)

// Parse extracts the leading integer of text. Both "14" and the canonical
// "14h00" decode to 14.
func Parse(text string) (int, error) {
	m := leadingInt.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, errors.Wrapf(ErrParse, "parse %q", text)
	}
	h, err := strconv.Atoi(m[1])
	if err != nil || h < MinHour || h > MaxHour {
		return 0, errors.Wrapf(ErrParse, "parse %q: outside %d..%d", text, MinHour, MaxHour)
	}
	return h, nil
}

// ParseHour is Parse returning an optional.
func ParseHour(text string) Hour {
	h, err := Parse(text)
	if err != nil {
		return Unset
	}
	return At(h)
}

// Format returns the canonical display text of h.
func Format(h int) string {
	return fmt.Sprintf("%dh00", h)
}

// Field is a text control that Patch writes to. emit tells the field whether
// the write should raise a change notification.
type Field interface {
	Write(text string, emit bool)
}

type Outcome int

const (
	// OutcomeWritten means the canonical text was written.
	OutcomeWritten Outcome = iota
	// OutcomeCleared means the input did not parse and the field was emptied.
	OutcomeCleared
	// OutcomeRejected means the hour was outside the range and nothing was written.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWritten:
		return "written"
	case OutcomeCleared:
		return "cleared"
	case OutcomeRejected:
		return "rejected"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Patch writes the canonical form of raw to f when it is an hour inside r.
// Unparsable input clears the field silently; out of range hours are dropped
// and the field keeps its previous value.
func Patch(raw string, f Field, r Range, emit bool) Outcome {
	h, err := Parse(raw)
	if err != nil {
		f.Write("", false)
		return OutcomeCleared
	}
	if !r.Contains(h) {
		return OutcomeRejected
	}
	f.Write(Format(h), emit)
	return OutcomeWritten
}
