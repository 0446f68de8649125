package model

import (
	"math"
	"strings"
	"time"

	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// Waveform is the shape of a color modulation.
type Waveform uint8

const (
	WaveformSaw      Waveform = 0
	WaveformSine     Waveform = 1
	WaveformHalfSine Waveform = 2
	WaveformTriangle Waveform = 3
	WaveformPulse    Waveform = 4
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WaveformSaw:
		return "SAW"
	case WaveformSine:
		return "SINE"
	case WaveformHalfSine:
		return "HALF_SINE"
	case WaveformTriangle:
		return "TRIANGLE"
	case WaveformPulse:
		return "PULSE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether w is a known waveform.
func (w Waveform) Valid() bool {
	return w <= WaveformPulse
}

// WaveformOptions selects which HSBK channels an optional waveform applies.
type WaveformOptions uint8

const (
	SetHue WaveformOptions = 1 << iota
	SetSaturation
	SetBrightness
	SetKelvin

	// SetAll applies every channel.
	SetAll = SetHue | SetSaturation | SetBrightness | SetKelvin
)

// Has reports whether all bits of o are set.
func (w WaveformOptions) Has(o WaveformOptions) bool {
	return w&o == o
}

// String lists the set channels, e.g. "HUE|KELVIN".
func (w WaveformOptions) String() string {
	var parts []string
	for _, opt := range []struct {
		bit  WaveformOptions
		name string
	}{
		{SetHue, "HUE"},
		{SetSaturation, "SATURATION"},
		{SetBrightness, "BRIGHTNESS"},
		{SetKelvin, "KELVIN"},
	} {
		if w.Has(opt.bit) {
			parts = append(parts, opt.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// Effect describes a timed color modulation.
type Effect struct {
	// Transient returns the light to its original color when the effect ends.
	Transient bool

	// Color is the target color of the modulation.
	Color HSBK

	// Period is the duration of one cycle, in whole milliseconds.
	Period time.Duration

	// Cycles is the number of cycles to run.
	Cycles float32

	// SkewRatio shifts the waveform peak; the full int16 range is allowed.
	SkewRatio int16

	// Waveform is the modulation shape.
	Waveform Waveform

	// Options selects the applied channels. Only used by optional waveforms.
	Options WaveformOptions
}

// NewEffect validates an effect. skewRatio must fit int16.
func NewEffect(transient bool, color HSBK, period time.Duration, cycles float32, skewRatio int, waveform Waveform, options WaveformOptions) (Effect, error) {
	skew, err := wire.CheckInt16("skew_ratio", int64(skewRatio))
	if err != nil {
		return Effect{}, err
	}
	e := Effect{
		Transient: transient,
		Color:     color,
		Period:    period,
		Cycles:    cycles,
		SkewRatio: skew,
		Waveform:  waveform,
		Options:   options,
	}
	if err := e.Validate(); err != nil {
		return Effect{}, err
	}
	return e, nil
}

// Validate checks period, cycles, waveform and options.
func (e Effect) Validate() error {
	if _, err := wire.MillisToWire("period", e.Period); err != nil {
		return err
	}
	if math.IsNaN(float64(e.Cycles)) || math.IsInf(float64(e.Cycles), 0) {
		return &wire.InvalidValueError{Field: "cycles", Value: e.Cycles, Reason: "must be finite"}
	}
	if !e.Waveform.Valid() {
		return &wire.InvalidValueError{Field: "waveform", Value: uint8(e.Waveform), Reason: "unknown waveform"}
	}
	if e.Options&^SetAll != 0 {
		return &wire.InvalidValueError{Field: "options", Value: uint8(e.Options), Reason: "unknown option bits"}
	}
	return nil
}
