package wire

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderDecoderRoundTrip(t *testing.T) {
	enc := NewEncoder(1 + 1 + 2 + 2 + 4 + 8 + 4 + 4)
	enc.PutUint8(0xAB)
	enc.PutBool(true)
	enc.PutUint16(0xBEEF)
	enc.PutInt16(-2)
	enc.PutUint32(0xDEADBEEF)
	enc.PutUint64(0x0102030405060708)
	enc.PutFloat32(-0.5)
	enc.Zero(4)
	require.NoError(t, enc.Err())

	dec := NewDecoder(enc.Bytes())
	assert.Equal(t, uint8(0xAB), dec.Uint8())
	assert.True(t, dec.Bool("flag"))
	assert.Equal(t, uint16(0xBEEF), dec.Uint16())
	assert.Equal(t, int16(-2), dec.Int16())
	assert.Equal(t, uint32(0xDEADBEEF), dec.Uint32())
	assert.Equal(t, uint64(0x0102030405060708), dec.Uint64())
	assert.Equal(t, float32(-0.5), dec.Float32())
	dec.Skip(4)
	require.NoError(t, dec.Err())
	assert.Equal(t, 0, dec.Remaining())
}

func TestEncoderLittleEndianLayout(t *testing.T) {
	enc := NewEncoder(6)
	enc.PutUint16(0x0102)
	enc.PutUint32(0x03040506)
	assert.Equal(t, []byte{0x02, 0x01, 0x06, 0x05, 0x04, 0x03}, enc.Bytes())
}

func TestFloat32FixedByteOrder(t *testing.T) {
	enc := NewEncoder(4)
	enc.PutFloat32(1.0)
	// 1.0f is 0x3F800000.
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, enc.Bytes())

	dec := NewDecoder([]byte{0x00, 0x00, 0xC0, 0x7F})
	assert.True(t, math.IsNaN(float64(dec.Float32())))
}

func TestEncoderOverflowIsSticky(t *testing.T) {
	enc := NewEncoder(2)
	enc.PutUint32(1)
	enc.PutUint8(1)
	require.Error(t, enc.Err())
	assert.True(t, errors.Is(enc.Err(), ErrShortBuffer))
}

func TestDecoderShortRead(t *testing.T) {
	dec := NewDecoder([]byte{1, 2, 3})
	assert.Equal(t, uint32(0), dec.Uint32())
	assert.ErrorIs(t, dec.Err(), ErrShortBuffer)
	assert.Equal(t, uint8(0), dec.Uint8(), "reads after a failure return zero")
}

func TestDecoderRejectsNonBinaryBool(t *testing.T) {
	dec := NewDecoder([]byte{2})
	dec.Bool("transient")

	var ive *InvalidValueError
	require.ErrorAs(t, dec.Err(), &ive)
	assert.Equal(t, "transient", ive.Field)
}

func TestPutFixedPadsAndRejects(t *testing.T) {
	enc := NewEncoder(4)
	enc.PutFixed("data", []byte{0xAA}, 4)
	require.NoError(t, enc.Err())
	assert.Equal(t, []byte{0xAA, 0, 0, 0}, enc.Bytes())

	enc = NewEncoder(4)
	enc.PutFixed("data", []byte{1, 2, 3, 4, 5}, 4)
	assert.ErrorIs(t, enc.Err(), ErrInvalidValue)
}

func TestSignedReinterpretation(t *testing.T) {
	tests := []struct {
		value int16
		wire  uint16
	}{
		{-1, 0xFFFF},
		{32767, 0x7FFF},
		{-32768, 0x8000},
		{0, 0x0000},
		{1, 0x0001},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wire, Int16ToWire(tt.value), "encode %d", tt.value)
		assert.Equal(t, tt.value, Int16FromWire(tt.wire), "decode 0x%04x", tt.wire)
	}
}

func TestRangeChecks(t *testing.T) {
	_, err := CheckUint32("source", -1)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = CheckUint32("source", math.MaxUint32+1)
	assert.ErrorIs(t, err, ErrInvalidValue)

	v, err := CheckUint32("source", math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), v)

	_, err = CheckUint16("hue", 65536)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = CheckUint8("service", 256)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = CheckInt16("skew_ratio", -32769)
	assert.ErrorIs(t, err, ErrInvalidValue)

	s, err := CheckInt16("skew_ratio", -32768)
	require.NoError(t, err)
	assert.Equal(t, int16(-32768), s)
}

func TestTimestampPrecision(t *testing.T) {
	in := time.Date(2024, 3, 9, 17, 45, 12, 123456789, time.UTC)

	ns, err := TimestampToWire("updated_at", in)
	require.NoError(t, err)
	assert.Equal(t, uint64(in.UnixNano()), ns)

	out := TimestampFromWire(ns)
	assert.True(t, in.Equal(out), "got %v, want %v", out, in)
	assert.Equal(t, 123456789, out.Nanosecond())
	assert.Equal(t, time.UTC, out.Location())
}

func TestTimestampZeroValue(t *testing.T) {
	ns, err := TimestampToWire("build", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), ns)
	assert.True(t, TimestampFromWire(0).IsZero())

	_, err = TimestampToWire("build", time.Date(1, 1, 1, 0, 0, 1, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestTimestampFullRange(t *testing.T) {
	out := TimestampFromWire(math.MaxUint64)
	ns, err := TimestampToWire("build", out)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), ns)

	_, err = TimestampToWire("build", out.Add(time.Nanosecond))
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = TimestampToWire("build", time.Unix(-1, 0))
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestMillis(t *testing.T) {
	ms, err := MillisToWire("duration", 1500*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, uint32(1500), ms)
	assert.Equal(t, 1500*time.Millisecond, MillisFromWire(ms))

	_, err = MillisToWire("duration", -time.Millisecond)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = MillisToWire("duration", time.Millisecond+time.Microsecond)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = MillisToWire("duration", (math.MaxUint32+1)*time.Millisecond)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestDurations(t *testing.T) {
	d, err := DurationFromWire("uptime", uint64(90*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	_, err = DurationFromWire("uptime", math.MaxInt64+1)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = DurationToWire("uptime", -time.Second)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLabels(t *testing.T) {
	exact := "abcdefghijklmnopqrstuvwxyz012345"
	require.Len(t, exact, LabelSize)
	assert.NoError(t, CheckLabel("label", exact))
	assert.ErrorIs(t, CheckLabel("label", exact+"6"), ErrInvalidValue)
	assert.ErrorIs(t, CheckLabel("label", "kitchen\x00"), ErrInvalidValue)
	assert.NoError(t, CheckLabel("label", ""))

	enc := NewEncoder(LabelSize)
	enc.PutFixed("label", []byte("kitchen"), LabelSize)
	require.NoError(t, enc.Err())
	assert.Equal(t, "kitchen", NewDecoder(enc.Bytes()).Label())
}
