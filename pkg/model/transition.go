package model

import (
	"time"

	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// ColorTransition moves a light to Color over Duration.
type ColorTransition struct {
	Color    HSBK
	Duration time.Duration
}

// NewColorTransition validates the duration against the 32-bit millisecond field.
func NewColorTransition(color HSBK, duration time.Duration) (ColorTransition, error) {
	if _, err := wire.MillisToWire("duration", duration); err != nil {
		return ColorTransition{}, err
	}
	return ColorTransition{Color: color, Duration: duration}, nil
}

// PowerTransition moves a light to power Level over Duration.
type PowerTransition struct {
	Level    uint16
	Duration time.Duration
}

// NewPowerTransition validates the level and duration.
func NewPowerTransition(level int, duration time.Duration) (PowerTransition, error) {
	l, err := wire.CheckUint16("level", int64(level))
	if err != nil {
		return PowerTransition{}, err
	}
	if _, err := wire.MillisToWire("duration", duration); err != nil {
		return PowerTransition{}, err
	}
	return PowerTransition{Level: l, Duration: duration}, nil
}
