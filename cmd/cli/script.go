package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/hoyle1974/interval"
	"github.com/hoyle1974/interval/dates"
	"github.com/hoyle1974/interval/hours"
)

const dateLayout = "2006-01-02"

// script replays widget events, one per line, against a controller.
type script struct {
	ctl  *interval.Controller
	loc  *time.Location
	out  io.Writer
	json bool
}

// Run executes every line of r. Blank lines and lines starting with # are
// skipped. The first failing line stops the run.
func (s *script) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(strings.Fields(line)); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
	}
	return errors.Wrap(scanner.Err(), "read event script")
}

func (s *script) exec(args []string) error {
	cmd, args := args[0], args[1:]
	switch cmd {
	case "period":
		if len(args) != 2 {
			return errors.New("usage: period START END")
		}
		start, err := s.parseDate(args[0])
		if err != nil {
			return err
		}
		end, err := s.parseDate(args[1])
		if err != nil {
			return err
		}
		s.ctl.SetPeriod(dates.Period{Start: start, End: end})

	case "start-date", "end-date":
		if len(args) != 1 {
			return errors.Newf("usage: %s DATE", cmd)
		}
		d, err := s.parseDate(args[0])
		if err != nil {
			return err
		}
		if cmd == "start-date" {
			s.ctl.SetStartDate(d)
		} else {
			s.ctl.SetEndDate(d)
		}

	case "start-hour", "end-hour":
		f := interval.Start
		if cmd == "end-hour" {
			f = interval.End
		}
		s.ctl.SetHourText(f, strings.Join(args, " "))

	case "key":
		if len(args) != 2 {
			return errors.New("usage: key start|end up|down")
		}
		f, err := parseField(args[0])
		if err != nil {
			return err
		}
		var dir hours.Direction
		switch args[1] {
		case "up":
			dir = hours.Up
		case "down":
			dir = hours.Down
		default:
			return errors.Newf("unknown direction %q", args[1])
		}
		s.ctl.KeyHour(f, dir)

	case "open", "close":
		if len(args) != 1 {
			return errors.Newf("usage: %s start|end", cmd)
		}
		f, err := parseField(args[0])
		if err != nil {
			return err
		}
		s.ctl.SetSuggestionsOpen(f, cmd == "open")

	case "complete":
		if len(args) < 1 || len(args) > 2 {
			return errors.New("usage: complete start|end [QUERY]")
		}
		f, err := parseField(args[0])
		if err != nil {
			return err
		}
		query := ""
		if len(args) == 2 {
			query = args[1]
		}
		return s.printSuggestions(f, query, s.ctl.CompleteHour(f, query))

	case "reset":
		s.ctl.ResetToDefaults()

	case "show":
		return s.show()

	default:
		return errors.Newf("unknown command %q", cmd)
	}
	return nil
}

func parseField(v string) (interval.Field, error) {
	switch v {
	case "start":
		return interval.Start, nil
	case "end":
		return interval.End, nil
	}
	return 0, errors.Newf("unknown field %q", v)
}

// parseDate reads a calendar date. Empty text and "-" are the null date.
func (s *script) parseDate(v string) (time.Time, error) {
	if v == "" || v == "-" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, s.loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", v)
	}
	return t, nil
}

type hourRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type snapshot struct {
	Start      string    `json:"start"`
	End        string    `json:"end"`
	StartHour  *int      `json:"start_hour"`
	EndHour    *int      `json:"end_hour"`
	MaxStart   string    `json:"max_start,omitempty"`
	MinEnd     string    `json:"min_end,omitempty"`
	MaxEnd     string    `json:"max_end,omitempty"`
	StartHours hourRange `json:"start_hours"`
	EndHours   hourRange `json:"end_hours"`
	Valid      bool      `json:"valid"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func optionalHour(h hours.Hour) *int {
	if v, ok := h.Get(); ok {
		return &v
	}
	return nil
}

func (s *script) snapshot() snapshot {
	v := s.ctl.Value()
	b := s.ctl.DateBounds()
	hb := s.ctl.HourBounds()
	return snapshot{
		Start:      formatDate(v.Period.Start),
		End:        formatDate(v.Period.End),
		StartHour:  optionalHour(v.StartHour),
		EndHour:    optionalHour(v.EndHour),
		MaxStart:   formatDate(b.MaxStart),
		MinEnd:     formatDate(b.MinEnd),
		MaxEnd:     formatDate(b.MaxEnd),
		StartHours: hourRange{Min: hb.Start.Min, Max: hb.Start.Max},
		EndHours:   hourRange{Min: hb.End.Min, Max: hb.End.Max},
		Valid:      s.ctl.Validate() == nil,
	}
}

func (s *script) show() error {
	snap := s.snapshot()
	if s.json {
		return s.writeJSON(snap)
	}

	orDash := func(v string) string {
		if v == "" {
			return "-"
		}
		return v
	}
	line := fmt.Sprintf("period %s %s", orDash(snap.Start), orDash(snap.End))
	if s.ctl.Config().ChangeHours {
		v := s.ctl.Value()
		line += fmt.Sprintf(" hours %s %s", hourText(v.StartHour), hourText(v.EndHour))
	}
	_, err := fmt.Fprintln(s.out, line)
	return err
}

func hourText(h hours.Hour) string {
	if v, ok := h.Get(); ok {
		return hours.Format(v)
	}
	return "-"
}

func (s *script) printSuggestions(f interval.Field, query string, list []int) error {
	if s.json {
		return s.writeJSON(struct {
			Field string `json:"field"`
			Query string `json:"query"`
			Hours []int  `json:"hours"`
		}{f.String(), query, list})
	}
	texts := make([]string, len(list))
	for i, h := range list {
		texts[i] = fmt.Sprint(h)
	}
	_, err := fmt.Fprintf(s.out, "complete %s %q: %s\n", f, query, strings.Join(texts, " "))
	return err
}

func (s *script) writeJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	_, err = fmt.Fprintln(s.out, string(data))
	return err
}
