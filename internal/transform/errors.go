package transform

import (
	"errors"
	"fmt"
)

// Domain errors for transform operations.
var (
	// ErrInvalidConfiguration indicates a non-positive or non-finite temperature
	// or an unknown algorithm.
	ErrInvalidConfiguration = errors.New("transform: invalid configuration")

	// ErrMalformedInput indicates non-numeric or non-finite vector entries.
	ErrMalformedInput = errors.New("transform: malformed input")

	// ErrEmptyInput indicates an empty vector where at least one value is required.
	ErrEmptyInput = errors.New("transform: empty input")
)

// ConfigError wraps ErrInvalidConfiguration with the offending field.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%v %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
