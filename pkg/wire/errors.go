package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue matches any InvalidValueError via errors.Is.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidHeaderLength indicates a header buffer that is not exactly HeaderSize bytes.
	ErrInvalidHeaderLength = errors.New("invalid header length")

	// ErrShortBuffer indicates a read past the end of a payload.
	ErrShortBuffer = errors.New("short buffer")
)

// InvalidValueError reports a field value outside its documented domain.
type InvalidValueError struct {
	// Field names the offending field (e.g. "hue", "source").
	Field string

	// Value is the rejected input.
	Value any

	// Reason describes the violated constraint.
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v (%s)", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func invalidValue(field string, value any, reason string) error {
	return &InvalidValueError{Field: field, Value: value, Reason: reason}
}
