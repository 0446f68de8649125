package message

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMessageType matches UnknownMessageTypeError.
	ErrUnknownMessageType = errors.New("unknown message type")

	// ErrInvalidPayloadLength matches InvalidPayloadLengthError.
	ErrInvalidPayloadLength = errors.New("invalid payload length")

	// ErrMalformedPayload matches MalformedPayloadError.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrNilMessage is returned when encoding a nil Message.
	ErrNilMessage = errors.New("nil message")
)

// UnknownMessageTypeError reports a type id absent from the catalog.
type UnknownMessageTypeError struct {
	Type Type
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnknownMessageType, uint16(e.Type))
}

// Is reports whether target is ErrUnknownMessageType.
func (e *UnknownMessageTypeError) Is(target error) bool {
	return target == ErrUnknownMessageType
}

// InvalidPayloadLengthError reports a payload whose size differs from the
// catalog size of its type.
type InvalidPayloadLengthError struct {
	Type     Type
	Expected int
	Actual   int
}

func (e *InvalidPayloadLengthError) Error() string {
	return fmt.Sprintf("%s for %s: expected %d bytes, got %d", ErrInvalidPayloadLength, e.Type, e.Expected, e.Actual)
}

// Is reports whether target is ErrInvalidPayloadLength.
func (e *InvalidPayloadLengthError) Is(target error) bool {
	return target == ErrInvalidPayloadLength
}

// MalformedPayloadError reports a payload field that failed domain
// validation. Err holds the underlying wire.InvalidValueError.
type MalformedPayloadError struct {
	Type Type
	Err  error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("%s for %s: %v", ErrMalformedPayload, e.Type, e.Err)
}

// Is reports whether target is ErrMalformedPayload.
func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload
}

// Unwrap returns the validation error.
func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}
