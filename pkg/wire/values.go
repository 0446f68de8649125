package wire

import (
	"bytes"
	"math"
	"time"
)

// LabelSize is the fixed width of every label field on the wire.
const LabelSize = 32

const nanosPerSecond = uint64(time.Second)

// CheckUint8 validates v into the unsigned 8-bit range.
func CheckUint8(field string, v int64) (uint8, error) {
	if v < 0 || v > math.MaxUint8 {
		return 0, invalidValue(field, v, "must be in [0, 255]")
	}
	return uint8(v), nil
}

// CheckUint16 validates v into the unsigned 16-bit range.
func CheckUint16(field string, v int64) (uint16, error) {
	if v < 0 || v > math.MaxUint16 {
		return 0, invalidValue(field, v, "must be in [0, 65535]")
	}
	return uint16(v), nil
}

// CheckUint32 validates v into the unsigned 32-bit range.
func CheckUint32(field string, v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, invalidValue(field, v, "must be in [0, 4294967295]")
	}
	return uint32(v), nil
}

// CheckInt16 validates v into the signed 16-bit range.
func CheckInt16(field string, v int64) (int16, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, invalidValue(field, v, "must be in [-32768, 32767]")
	}
	return int16(v), nil
}

// Int16FromWire reinterprets an unsigned wire value as two's complement.
// 0xFFFF decodes to -1 and 0x8000 to -32768.
func Int16FromWire(u uint16) int16 {
	return int16(u)
}

// Int16ToWire is the inverse of Int16FromWire.
func Int16ToWire(v int16) uint16 {
	return uint16(v)
}

// TimestampFromWire converts nanoseconds since the Unix epoch into a UTC time.
// The full uint64 range is representable. Zero means unset and decodes as
// the zero time.
func TimestampFromWire(ns uint64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(int64(ns/nanosPerSecond), int64(ns%nanosPerSecond)).UTC()
}

// TimestampToWire converts t into nanoseconds since the Unix epoch using
// integer arithmetic only. The zero time encodes as 0. Other times before
// the epoch or past the uint64 range are rejected.
func TimestampToWire(field string, t time.Time) (uint64, error) {
	if t.IsZero() {
		return 0, nil
	}
	sec := t.Unix()
	if sec < 0 {
		return 0, invalidValue(field, t, "before the Unix epoch")
	}
	nsec := uint64(t.Nanosecond())
	if uint64(sec) > (math.MaxUint64-nsec)/nanosPerSecond {
		return 0, invalidValue(field, t, "overflows 64-bit nanoseconds")
	}
	return uint64(sec)*nanosPerSecond + nsec, nil
}

// DurationFromWire converts a nanosecond count into a time.Duration.
func DurationFromWire(field string, ns uint64) (time.Duration, error) {
	if ns > math.MaxInt64 {
		return 0, invalidValue(field, ns, "exceeds the duration range")
	}
	return time.Duration(ns), nil
}

// DurationToWire converts a non-negative duration into nanoseconds.
func DurationToWire(field string, d time.Duration) (uint64, error) {
	if d < 0 {
		return 0, invalidValue(field, d, "must not be negative")
	}
	return uint64(d), nil
}

// MillisFromWire converts a 32-bit millisecond count into a duration.
func MillisFromWire(ms uint32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// MillisToWire converts d into a 32-bit millisecond count. Negative
// durations, sub-millisecond remainders and values past 2^32-1 ms are
// rejected rather than rounded.
func MillisToWire(field string, d time.Duration) (uint32, error) {
	if d < 0 {
		return 0, invalidValue(field, d, "must not be negative")
	}
	if d%time.Millisecond != 0 {
		return 0, invalidValue(field, d, "must be a whole number of milliseconds")
	}
	ms := int64(d / time.Millisecond)
	if ms > math.MaxUint32 {
		return 0, invalidValue(field, d, "exceeds 4294967295 ms")
	}
	return uint32(ms), nil
}

// CheckLabel validates text for a fixed-width label field. Text longer than
// LabelSize bytes is rejected, never truncated. Trailing NUL bytes are
// rejected too because they would not survive a decode.
func CheckLabel(field, text string) error {
	if len(text) > LabelSize {
		return invalidValue(field, len(text), "label exceeds 32 bytes")
	}
	if len(text) > 0 && text[len(text)-1] == 0 {
		return invalidValue(field, text, "label ends with a NUL byte")
	}
	return nil
}

// TrimLabel strips the trailing NUL padding of a label field.
func TrimLabel(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}
