package model

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

func TestNewHSBK(t *testing.T) {
	c, err := NewHSBK(21845, 65535, 65535, 3500)
	require.NoError(t, err)
	assert.Equal(t, HSBK{Hue: 21845, Saturation: 65535, Brightness: 65535, Kelvin: 3500}, c)

	tests := []struct {
		name  string
		h     int
		s     int
		b     int
		k     int
		field string
	}{
		{"negative hue", -1, 0, 0, 0, "hue"},
		{"saturation overflow", 0, 65536, 0, 0, "saturation"},
		{"brightness overflow", 0, 0, 70000, 0, "brightness"},
		{"negative kelvin", 0, 0, 0, -3500, "kelvin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHSBK(tt.h, tt.s, tt.b, tt.k)
			var ive *wire.InvalidValueError
			require.ErrorAs(t, err, &ive)
			assert.Equal(t, tt.field, ive.Field)
		})
	}
}

func TestLabelBounds(t *testing.T) {
	exact := strings.Repeat("x", LabelSize)
	l, err := NewLabel(exact)
	require.NoError(t, err)
	assert.Equal(t, exact, l.String())
	assert.Len(t, l.Bytes(), LabelSize)

	_, err = NewLabel(exact + "y")
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	// Multi-byte text counts bytes, not runes.
	_, err = NewLabel(strings.Repeat("é", 17))
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	assert.Equal(t, "", Label{}.String())
	assert.Panics(t, func() { MustLabel(exact + "y") })
}

func TestNewGroupAndLocation(t *testing.T) {
	id := uuid.MustParse("b8a4e6c2-1f0d-4b7e-9a4d-2c3e5f6a7b8c")
	at := time.Date(2023, 11, 2, 8, 0, 0, 42, time.FixedZone("CET", 3600))

	g, err := NewGroup(id, "Downstairs", at)
	require.NoError(t, err)
	assert.Equal(t, id, g.ID)
	assert.Equal(t, "Downstairs", g.Label.String())
	assert.True(t, g.UpdatedAt.Equal(at))
	assert.Equal(t, time.UTC, g.UpdatedAt.Location())

	loc, err := NewLocation(id, "Home", at)
	require.NoError(t, err)
	assert.Equal(t, "Home", loc.Label.String())

	_, err = NewGroup(id, strings.Repeat("g", 33), at)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = NewLocation(id, "Home", time.Unix(-10, 0))
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestUint32Domains(t *testing.T) {
	_, err := NewService(1, -1)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = NewService(256, 56700)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	s, err := NewService(1, 56700)
	require.NoError(t, err)
	assert.Equal(t, ServiceUDP, s.Type)
	assert.Equal(t, "UDP", s.Type.String())

	_, err = NewVersion(1, math.MaxUint32+1, 0)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	v, err := NewVersion(1, 27, 0)
	require.NoError(t, err)
	assert.Equal(t, Version{Vendor: 1, Product: 27}, v)

	_, err = NewNetworkInfo(0.001, -5, 0)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = NewFirmware(time.Unix(1500000000, 0), math.MaxUint32+1)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestNewInfo(t *testing.T) {
	now := time.Unix(1700000000, 5).UTC()
	info, err := NewInfo(now, time.Hour, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, info.Uptime)

	_, err = NewInfo(now, -time.Second, 0)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestEchoPayload(t *testing.T) {
	p, err := NewEchoPayload([]byte("ping"))
	require.NoError(t, err)
	assert.Equal(t, byte('p'), p[0])
	assert.Equal(t, byte(0), p[EchoPayloadSize-1])

	_, err = NewEchoPayload(make([]byte, EchoPayloadSize+1))
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestTransitions(t *testing.T) {
	c := HSBK{Hue: 1}
	ct, err := NewColorTransition(c, time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, ct.Duration)

	_, err = NewColorTransition(c, 1500*time.Microsecond)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	pt, err := NewPowerTransition(int(PowerOn), 250*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, PowerOn, pt.Level)

	_, err = NewPowerTransition(65536, 0)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestNewEffect(t *testing.T) {
	c := HSBK{Hue: 100, Saturation: 200, Brightness: 300, Kelvin: 3500}

	e, err := NewEffect(true, c, 2*time.Second, 3.5, -32768, WaveformPulse, SetHue|SetKelvin)
	require.NoError(t, err)
	assert.Equal(t, int16(-32768), e.SkewRatio)
	assert.Equal(t, "HUE|KELVIN", e.Options.String())

	_, err = NewEffect(false, c, time.Second, 1, 32768, WaveformSine, 0)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = NewEffect(false, c, time.Second, float32(math.Inf(1)), 0, WaveformSine, 0)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = NewEffect(false, c, time.Second, 1, 0, Waveform(9), 0)
	assert.ErrorIs(t, err, wire.ErrInvalidValue)

	_, err = NewEffect(false, c, time.Second, 1, 0, WaveformSaw, WaveformOptions(0x10))
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestWaveformStrings(t *testing.T) {
	assert.Equal(t, "HALF_SINE", WaveformHalfSine.String())
	assert.Equal(t, "UNKNOWN", Waveform(42).String())
	assert.Equal(t, "NONE", WaveformOptions(0).String())
	assert.True(t, SetAll.Has(SetBrightness))
}
