package interval

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Config is fixed when a Controller is built.
type Config struct {
	// MaxIntervalDays is the number of calendar days an interval may span.
	MaxIntervalDays int `validate:"gte=1"`
	// OnlyInPast forbids instants after the end of today.
	OnlyInPast bool
	// ChangeHours enables the hour fields.
	ChangeHours bool
	// EmptyByDefault leaves the widget blank instead of filling in today.
	EmptyByDefault bool
	// DueTimeOffsetHours is subtracted from the current hour to build the
	// default end hour.
	DueTimeOffsetHours int `validate:"gte=0,lte=23"`
}

func DefaultConfig() Config {
	return Config{
		MaxIntervalDays: 7,
	}
}

var validate = validator.New()

// Validate checks the configuration, returning an error marked with
// ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Mark(errors.Wrap(err, "invalid interval config"), ErrInvalidConfig)
	}
	return nil
}
