package message

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifx-protocol/lifx-go/pkg/model"
	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// Shared field codecs for value types that appear in several payloads.

func putHSBK(e *wire.Encoder, c model.HSBK) {
	e.PutUint16(c.Hue)
	e.PutUint16(c.Saturation)
	e.PutUint16(c.Brightness)
	e.PutUint16(c.Kelvin)
}

func readHSBK(d *wire.Decoder) model.HSBK {
	return model.HSBK{
		Hue:        d.Uint16(),
		Saturation: d.Uint16(),
		Brightness: d.Uint16(),
		Kelvin:     d.Uint16(),
	}
}

func putLabel(e *wire.Encoder, l model.Label) {
	e.PutFixed("label", l.Bytes(), model.LabelSize)
}

func readLabel(d *wire.Decoder) model.Label {
	l, err := model.NewLabel(d.Label())
	if err != nil {
		d.Fail(err)
	}
	return l
}

func putTimestamp(e *wire.Encoder, field string, v time.Time) {
	ns, err := wire.TimestampToWire(field, v)
	if err != nil {
		e.Fail(err)
		return
	}
	e.PutUint64(ns)
}

func putMillis(e *wire.Encoder, field string, v time.Duration) {
	ms, err := wire.MillisToWire(field, v)
	if err != nil {
		e.Fail(err)
		return
	}
	e.PutUint32(ms)
}

func putNanos(e *wire.Encoder, field string, v time.Duration) {
	ns, err := wire.DurationToWire(field, v)
	if err != nil {
		e.Fail(err)
		return
	}
	e.PutUint64(ns)
}

func readNanos(d *wire.Decoder, field string) time.Duration {
	v, err := wire.DurationFromWire(field, d.Uint64())
	if err != nil {
		d.Fail(err)
	}
	return v
}

func putMembership(e *wire.Encoder, id uuid.UUID, label model.Label, updatedAt time.Time) {
	e.PutFixed("id", id[:], 16)
	putLabel(e, label)
	putTimestamp(e, "updated_at", updatedAt)
}

func readMembership(d *wire.Decoder) (uuid.UUID, model.Label, time.Time) {
	var id uuid.UUID
	copy(id[:], d.Fixed(16))
	label := readLabel(d)
	at := wire.TimestampFromWire(d.Uint64())
	return id, label, at
}

func putNetworkInfo(e *wire.Encoder, n model.NetworkInfo, reserved int16) {
	e.PutFloat32(n.Signal)
	e.PutUint32(n.Tx)
	e.PutUint32(n.Rx)
	e.PutInt16(reserved)
}

func readNetworkInfo(d *wire.Decoder) (model.NetworkInfo, int16) {
	n := model.NetworkInfo{
		Signal: d.Float32(),
		Tx:     d.Uint32(),
		Rx:     d.Uint32(),
	}
	return n, d.Int16()
}

func putFirmware(e *wire.Encoder, f model.Firmware) {
	putTimestamp(e, "build", f.Build)
	e.Zero(8)
	e.PutUint32(f.Version)
}

func readFirmware(d *wire.Decoder) model.Firmware {
	build := wire.TimestampFromWire(d.Uint64())
	d.Skip(8)
	return model.Firmware{Build: build, Version: d.Uint32()}
}

// putEffect writes the waveform fields shared by SetWaveform and
// SetWaveformOptional, starting with the reserved byte.
func putEffect(e *wire.Encoder, eff model.Effect) {
	if err := eff.Validate(); err != nil {
		e.Fail(err)
		return
	}
	e.Zero(1)
	e.PutBool(eff.Transient)
	putHSBK(e, eff.Color)
	putMillis(e, "period", eff.Period)
	e.PutFloat32(eff.Cycles)
	e.PutInt16(eff.SkewRatio)
	e.PutUint8(uint8(eff.Waveform))
}

func readEffect(d *wire.Decoder) model.Effect {
	d.Skip(1)
	eff := model.Effect{
		Transient: d.Bool("transient"),
		Color:     readHSBK(d),
		Period:    wire.MillisFromWire(d.Uint32()),
		Cycles:    d.Float32(),
		SkewRatio: d.Int16(),
		Waveform:  model.Waveform(d.Uint8()),
	}
	if d.Err() == nil {
		if err := eff.Validate(); err != nil {
			d.Fail(err)
		}
	}
	return eff
}

func putOptions(e *wire.Encoder, o model.WaveformOptions) {
	e.PutBool(o.Has(model.SetHue))
	e.PutBool(o.Has(model.SetSaturation))
	e.PutBool(o.Has(model.SetBrightness))
	e.PutBool(o.Has(model.SetKelvin))
}

func readOptions(d *wire.Decoder) model.WaveformOptions {
	var o model.WaveformOptions
	for _, f := range []struct {
		name string
		bit  model.WaveformOptions
	}{
		{"set_hue", model.SetHue},
		{"set_saturation", model.SetSaturation},
		{"set_brightness", model.SetBrightness},
		{"set_kelvin", model.SetKelvin},
	} {
		if d.Bool(f.name) {
			o |= f.bit
		}
	}
	return o
}
