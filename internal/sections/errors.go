package sections

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when an override or edit names a key the section does not define.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned when an override value has the wrong type for its key.
	ErrInvalidValue = errors.New("invalid value")
	// ErrIncompleteDefaults is returned when a default configuration leaves a field empty.
	ErrIncompleteDefaults = errors.New("default configuration is incomplete")
	// ErrInvalidLayout is returned when a projection layout and the schema keys drift apart.
	ErrInvalidLayout = errors.New("layout does not match schema")
	// ErrInvalidTag is returned when an editable tag cannot be parsed or does not fit its field.
	ErrInvalidTag = errors.New("invalid editable tag")
	// ErrUnknownSection is returned when a registry lookup misses.
	ErrUnknownSection = errors.New("unknown section")
)

// ConfigValidationError describes a configuration problem found at a merge,
// decode or startup boundary.
type ConfigValidationError struct {
	Section string
	Field   string
	Reason  string
	Err     error
}

func (e *ConfigValidationError) Error() string {
	msg := e.Section
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %v: %s", msg, e.Err, e.Reason)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ConfigValidationError) Unwrap() error {
	return e.Err
}

func validationError(section, field string, err error, reason string) *ConfigValidationError {
	return &ConfigValidationError{
		Section: section,
		Field:   field,
		Reason:  reason,
		Err:     err,
	}
}
