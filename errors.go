package interval

import "github.com/cockroachdb/errors"

var (
	// ErrIncompleteValue is reported by Validate when a required hour is empty.
	ErrIncompleteValue = errors.New("incomplete interval")
	ErrInvalidConfig   = errors.New("invalid config")
)
