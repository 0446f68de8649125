package model

import "github.com/lifx-protocol/lifx-go/pkg/wire"

// Power levels. Devices only report these two values.
const (
	PowerOff uint16 = 0
	PowerOn  uint16 = 65535
)

// HSBK is a hue, saturation, brightness and Kelvin color.
//
// Hue, saturation and brightness are scaled across the full 16-bit range.
// Kelvin is bounded per product; see version.Features.CheckKelvin.
type HSBK struct {
	Hue        uint16
	Saturation uint16
	Brightness uint16
	Kelvin     uint16
}

// NewHSBK validates each channel into [0, 65535].
func NewHSBK(hue, saturation, brightness, kelvin int) (HSBK, error) {
	h, err := wire.CheckUint16("hue", int64(hue))
	if err != nil {
		return HSBK{}, err
	}
	s, err := wire.CheckUint16("saturation", int64(saturation))
	if err != nil {
		return HSBK{}, err
	}
	b, err := wire.CheckUint16("brightness", int64(brightness))
	if err != nil {
		return HSBK{}, err
	}
	k, err := wire.CheckUint16("kelvin", int64(kelvin))
	if err != nil {
		return HSBK{}, err
	}
	return HSBK{Hue: h, Saturation: s, Brightness: b, Kelvin: k}, nil
}
