package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/interval"
	"github.com/hoyle1974/interval/clock"
	"github.com/hoyle1974/interval/dates"
	"github.com/hoyle1974/interval/telemetry"
	flag "github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, logLevel, envProblems := envConfig()

	fs := flag.NewFlagSet("interval", flag.ContinueOnError)
	fs.IntVarP(&cfg.MaxIntervalDays, "max-days", "d", cfg.MaxIntervalDays, "Maximum number of calendar days in the interval")
	fs.BoolVar(&cfg.OnlyInPast, "only-in-past", cfg.OnlyInPast, "Forbid dates after today")
	fs.BoolVar(&cfg.ChangeHours, "change-hours", cfg.ChangeHours, "Enable the hour fields")
	fs.BoolVar(&cfg.EmptyByDefault, "empty-by-default", cfg.EmptyByDefault, "Start with an empty interval")
	fs.IntVar(&cfg.DueTimeOffsetHours, "due-offset", cfg.DueTimeOffsetHours, "Hours subtracted from the current hour for the default end hour")
	start := fs.StringP("start", "s", "", "Initial start date (YYYY-MM-DD)")
	end := fs.StringP("end", "e", "", "Initial end date (YYYY-MM-DD)")
	now := fs.String("now", "", "Pin the clock to this RFC3339 instant")
	hour := fs.Int("current-hour", -1, "Pin the current hour (0-23)")
	fs.StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error)")
	asJSON := fs.Bool("json", false, "Print JSON instead of text")
	events := fs.String("events", "", "Event script to replay, - for stdin")

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := telemetry.NewZapLogger(logLevel)
	if err != nil {
		return err
	}
	for _, p := range envProblems {
		logger.Error("ignoring environment value", p)
	}

	clk, err := buildClock(*now, *hour)
	if err != nil {
		return err
	}

	ctl, err := interval.New(cfg, interval.WithClock(clk), interval.WithLogger(logger))
	if err != nil {
		return err
	}

	sc := &script{ctl: ctl, loc: clk.Now().Location(), out: stdout, json: *asJSON}
	if *start != "" || *end != "" {
		s, err := sc.parseDate(*start)
		if err != nil {
			return err
		}
		e, err := sc.parseDate(*end)
		if err != nil {
			return err
		}
		ctl.SetPeriod(dates.Period{Start: s, End: e})
	}

	switch *events {
	case "":
	case "-":
		if err := sc.Run(stdin); err != nil {
			return err
		}
	default:
		f, err := os.Open(*events)
		if err != nil {
			return errors.Wrap(err, "open event script")
		}
		defer f.Close()
		if err := sc.Run(f); err != nil {
			return err
		}
	}

	return sc.show()
}

func buildClock(now string, hour int) (clock.Clock, error) {
	if now == "" && hour < 0 {
		return clock.System{}, nil
	}
	t := time.Now()
	if now != "" {
		var err error
		t, err = time.Parse(time.RFC3339, now)
		if err != nil {
			return nil, errors.Wrapf(err, "parse --now %q", now)
		}
	}
	clk := clock.NewFixed(t)
	if hour >= 0 {
		if hour > 23 {
			return nil, errors.Newf("--current-hour %d outside 0..23", hour)
		}
		clk.SetHour(hour)
	}
	return clk, nil
}
