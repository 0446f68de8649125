package message

import (
	"github.com/lifx-protocol/lifx-go/pkg/model"
	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// LightGet asks a light for its LightState.
type LightGet struct{}

func (LightGet) Type() Type             { return TypeLightGet }
func (LightGet) encode(e *wire.Encoder) {}

// LightSetColor moves a light to a color over a duration.
type LightSetColor struct {
	Transition model.ColorTransition
}

func (LightSetColor) Type() Type { return TypeLightSetColor }

func (m LightSetColor) encode(e *wire.Encoder) {
	e.Zero(1)
	putHSBK(e, m.Transition.Color)
	putMillis(e, "duration", m.Transition.Duration)
}

func decodeLightSetColor(d *wire.Decoder) Message {
	d.Skip(1)
	color := readHSBK(d)
	return LightSetColor{Transition: model.ColorTransition{
		Color:    color,
		Duration: wire.MillisFromWire(d.Uint32()),
	}}
}

// LightSetWaveform runs an effect on every channel. Effect.Options is not
// part of this payload and decodes as zero.
type LightSetWaveform struct {
	Effect model.Effect
}

func (LightSetWaveform) Type() Type { return TypeLightSetWaveform }

func (m LightSetWaveform) encode(e *wire.Encoder) {
	putEffect(e, m.Effect)
}

func decodeLightSetWaveform(d *wire.Decoder) Message {
	return LightSetWaveform{Effect: readEffect(d)}
}

// LightSetWaveformOptional runs an effect on the channels selected by
// Effect.Options.
type LightSetWaveformOptional struct {
	Effect model.Effect
}

func (LightSetWaveformOptional) Type() Type { return TypeLightSetWaveformOptional }

func (m LightSetWaveformOptional) encode(e *wire.Encoder) {
	putEffect(e, m.Effect)
	putOptions(e, m.Effect.Options)
}

func decodeLightSetWaveformOptional(d *wire.Decoder) Message {
	eff := readEffect(d)
	eff.Options = readOptions(d)
	return LightSetWaveformOptional{Effect: eff}
}

// LightState reports the color, power and label of a light.
type LightState struct {
	Color model.HSBK
	Power uint16
	Label model.Label
}

func (LightState) Type() Type { return TypeLightState }

func (m LightState) encode(e *wire.Encoder) {
	putHSBK(e, m.Color)
	e.Zero(2)
	e.PutUint16(m.Power)
	putLabel(e, m.Label)
	e.Zero(8)
}

func decodeLightState(d *wire.Decoder) Message {
	color := readHSBK(d)
	d.Skip(2)
	power := d.Uint16()
	label := readLabel(d)
	d.Skip(8)
	return LightState{Color: color, Power: power, Label: label}
}

// LightGetPower asks a light for its power level.
type LightGetPower struct{}

func (LightGetPower) Type() Type             { return TypeLightGetPower }
func (LightGetPower) encode(e *wire.Encoder) {}

// LightSetPower changes the power level of a light over a duration.
type LightSetPower struct {
	Transition model.PowerTransition
}

func (LightSetPower) Type() Type { return TypeLightSetPower }

func (m LightSetPower) encode(e *wire.Encoder) {
	e.PutUint16(m.Transition.Level)
	putMillis(e, "duration", m.Transition.Duration)
}

func decodeLightSetPower(d *wire.Decoder) Message {
	level := d.Uint16()
	return LightSetPower{Transition: model.PowerTransition{
		Level:    level,
		Duration: wire.MillisFromWire(d.Uint32()),
	}}
}

// LightStatePower reports the power level of a light.
type LightStatePower struct {
	Level uint16
}

func (LightStatePower) Type() Type { return TypeLightStatePower }

func (m LightStatePower) encode(e *wire.Encoder) { e.PutUint16(m.Level) }

func decodeLightStatePower(d *wire.Decoder) Message {
	return LightStatePower{Level: d.Uint16()}
}

// LightGetInfrared asks for the infrared brightness.
type LightGetInfrared struct{}

func (LightGetInfrared) Type() Type             { return TypeLightGetInfrared }
func (LightGetInfrared) encode(e *wire.Encoder) {}

// LightSetInfrared sets the infrared brightness.
type LightSetInfrared struct {
	Brightness uint16
}

func (LightSetInfrared) Type() Type { return TypeLightSetInfrared }

func (m LightSetInfrared) encode(e *wire.Encoder) { e.PutUint16(m.Brightness) }

func decodeLightSetInfrared(d *wire.Decoder) Message {
	return LightSetInfrared{Brightness: d.Uint16()}
}

// LightStateInfrared reports the infrared brightness.
type LightStateInfrared struct {
	Brightness uint16
}

func (LightStateInfrared) Type() Type { return TypeLightStateInfrared }

func (m LightStateInfrared) encode(e *wire.Encoder) { e.PutUint16(m.Brightness) }

func decodeLightStateInfrared(d *wire.Decoder) Message {
	return LightStateInfrared{Brightness: d.Uint16()}
}
