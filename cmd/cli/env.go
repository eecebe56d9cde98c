package main

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/interval"
	"github.com/joho/godotenv"
)

// env reads INTERVAL_* variables. Values that do not parse keep the default
// and are reported in problems.
type env struct {
	problems []error
}

func (e *env) getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func (e *env) getInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.problems = append(e.problems, errors.Wrapf(err, "%s", key))
		return def
	}
	return n
}

func (e *env) getBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.problems = append(e.problems, errors.Wrapf(err, "%s", key))
		return def
	}
	return b
}

// envConfig loads a .env file from the working directory if there is one,
// then builds the configuration and log level from the environment.
func envConfig() (interval.Config, string, []error) {
	_ = godotenv.Load()

	var e env
	def := interval.DefaultConfig()
	cfg := interval.Config{
		MaxIntervalDays:    e.getInt("INTERVAL_MAX_DAYS", def.MaxIntervalDays),
		OnlyInPast:         e.getBool("INTERVAL_ONLY_IN_PAST", def.OnlyInPast),
		ChangeHours:        e.getBool("INTERVAL_CHANGE_HOURS", def.ChangeHours),
		EmptyByDefault:     e.getBool("INTERVAL_EMPTY_BY_DEFAULT", def.EmptyByDefault),
		DueTimeOffsetHours: e.getInt("INTERVAL_DUE_OFFSET", def.DueTimeOffsetHours),
	}
	return cfg, e.getString("INTERVAL_LOG_LEVEL", "info"), e.problems
}
