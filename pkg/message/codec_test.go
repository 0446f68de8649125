package message

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifx-protocol/lifx-go/pkg/model"
	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

var (
	sampleColor = model.HSBK{Hue: 21845, Saturation: 65535, Brightness: 32768, Kelvin: 3500}
	sampleTime  = time.Date(2024, 6, 1, 12, 30, 45, 987654321, time.UTC)
	sampleID    = uuid.MustParse("0e8b1f5c-7a2d-4e61-b0c3-9d4f5a6b7c8d")
)

func sampleEcho() model.EchoPayload {
	var p model.EchoPayload
	for i := range p {
		p[i] = byte(i * 3)
	}
	return p
}

func sampleEffect(options model.WaveformOptions) model.Effect {
	return model.Effect{
		Transient: true,
		Color:     sampleColor,
		Period:    1500 * time.Millisecond,
		Cycles:    2.5,
		SkewRatio: -16384,
		Waveform:  model.WaveformTriangle,
		Options:   options,
	}
}

// sampleMessages returns one populated message per catalog type.
func sampleMessages() map[Type]Message {
	firmware := model.Firmware{Build: sampleTime, Version: 0x00030046}
	network := model.NetworkInfo{Signal: 1.2589254e-05, Tx: 123456, Rx: 654321}
	group := model.Group{ID: sampleID, Label: model.MustLabel("Downstairs"), UpdatedAt: sampleTime}
	location := model.Location{ID: sampleID, Label: model.MustLabel("Home"), UpdatedAt: sampleTime}

	return map[Type]Message{
		TypeGetService:        GetService{},
		TypeStateService:      StateService{Service: model.Service{Type: model.ServiceUDP, Port: 56700}},
		TypeGetHostInfo:       GetHostInfo{},
		TypeStateHostInfo:     StateHostInfo{Info: network, Reserved: -2},
		TypeGetHostFirmware:   GetHostFirmware{},
		TypeStateHostFirmware: StateHostFirmware{Firmware: firmware},
		TypeGetWifiFirmware:   GetWifiFirmware{},
		TypeStateWifiFirmware: StateWifiFirmware{Firmware: firmware},
		TypeGetWifiInfo:       GetWifiInfo{},
		TypeStateWifiInfo:     StateWifiInfo{Info: network},
		TypeGetPower:          GetPower{},
		TypeSetPower:          SetPower{Level: model.PowerOn},
		TypeStatePower:        StatePower{Level: model.PowerOff},
		TypeGetLabel:          GetLabel{},
		TypeSetLabel:          SetLabel{Label: model.MustLabel("Kitchen")},
		TypeStateLabel:        StateLabel{Label: model.MustLabel("Bedroom lamp")},
		TypeGetVersion:        GetVersion{},
		TypeStateVersion:      StateVersion{Version: model.Version{Vendor: 1, Product: 27, Version: 0}},
		TypeGetInfo:           GetInfo{},
		TypeStateInfo:         StateInfo{Info: model.Info{Time: sampleTime, Uptime: 36 * time.Hour, Downtime: 90 * time.Second}},
		TypeAcknowledgement:   Acknowledgement{},
		TypeGetLocation:       GetLocation{},
		TypeSetLocation:       SetLocation{Location: location},
		TypeStateLocation:     StateLocation{Location: location},
		TypeGetGroup:          GetGroup{},
		TypeSetGroup:          SetGroup{Group: group},
		TypeStateGroup:        StateGroup{Group: group},
		TypeEchoRequest:       EchoRequest{Payload: sampleEcho()},
		TypeEchoResponse:      EchoResponse{Payload: sampleEcho()},

		TypeLightGet:                 LightGet{},
		TypeLightSetColor:            LightSetColor{Transition: model.ColorTransition{Color: sampleColor, Duration: time.Second}},
		TypeLightSetWaveform:         LightSetWaveform{Effect: sampleEffect(0)},
		TypeLightState:               LightState{Color: sampleColor, Power: model.PowerOn, Label: model.MustLabel("Porch")},
		TypeLightGetPower:            LightGetPower{},
		TypeLightSetPower:            LightSetPower{Transition: model.PowerTransition{Level: model.PowerOn, Duration: 250 * time.Millisecond}},
		TypeLightStatePower:          LightStatePower{Level: model.PowerOn},
		TypeLightSetWaveformOptional: LightSetWaveformOptional{Effect: sampleEffect(model.SetHue | model.SetBrightness)},
		TypeLightGetInfrared:         LightGetInfrared{},
		TypeLightSetInfrared:         LightSetInfrared{Brightness: 32768},
		TypeLightStateInfrared:       LightStateInfrared{Brightness: 65535},
	}
}

func TestRoundTripEveryType(t *testing.T) {
	samples := sampleMessages()
	require.Len(t, samples, len(Types()), "every catalog type needs a sample")

	for _, typ := range Types() {
		m, ok := samples[typ]
		require.True(t, ok, "missing sample for %s", typ)

		t.Run(typ.String(), func(t *testing.T) {
			require.Equal(t, typ, m.Type())

			payload, err := Encode(m)
			require.NoError(t, err)
			entry, _ := Lookup(typ)
			require.Len(t, payload, entry.Size)

			decoded, err := Decode(typ, payload)
			require.NoError(t, err)
			assert.Equal(t, m, decoded)

			again, err := Encode(decoded)
			require.NoError(t, err)
			assert.Equal(t, payload, again)
		})
	}
}

func TestPayloadLengthEnforcement(t *testing.T) {
	for _, typ := range Types() {
		entry, _ := Lookup(typ)
		t.Run(typ.String(), func(t *testing.T) {
			for _, size := range []int{entry.Size - 1, entry.Size + 1} {
				if size < 0 {
					continue
				}
				_, err := Decode(typ, make([]byte, size))
				var ple *InvalidPayloadLengthError
				require.ErrorAs(t, err, &ple)
				assert.Equal(t, typ, ple.Type)
				assert.Equal(t, entry.Size, ple.Expected)
				assert.Equal(t, size, ple.Actual)
				assert.True(t, errors.Is(err, ErrInvalidPayloadLength))
			}
		})
	}
}

func TestDecodeNilPayloadForEmptyMessage(t *testing.T) {
	m, err := Decode(TypeGetService, nil)
	require.NoError(t, err)
	assert.Equal(t, GetService{}, m)
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := Decode(Type(65535), nil)

	var ute *UnknownMessageTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, Type(65535), ute.Type)
	assert.ErrorIs(t, err, ErrUnknownMessageType)
	assert.Contains(t, err.Error(), "65535")
}

func TestSkewRatioWireRepresentation(t *testing.T) {
	tests := []struct {
		skew int16
		wire uint16
	}{
		{-1, 0xFFFF},
		{32767, 0x7FFF},
		{-32768, 0x8000},
	}

	// Skew ratio sits after reserved(1), transient(1), HSBK(8), period(4), cycles(4).
	const skewOffset = 18

	for _, tt := range tests {
		eff := sampleEffect(0)
		eff.SkewRatio = tt.skew

		payload, err := Encode(LightSetWaveform{Effect: eff})
		require.NoError(t, err)
		assert.Equal(t, tt.wire, binary.LittleEndian.Uint16(payload[skewOffset:]))

		decoded, err := Decode(TypeLightSetWaveform, payload)
		require.NoError(t, err)
		assert.Equal(t, tt.skew, decoded.(LightSetWaveform).Effect.SkewRatio)
	}
}

func TestLabelExactWidthRoundTrip(t *testing.T) {
	text := strings.Repeat("L", model.LabelSize)
	label, err := model.NewLabel(text)
	require.NoError(t, err)

	payload, err := Encode(SetLabel{Label: label})
	require.NoError(t, err)
	assert.Equal(t, []byte(text), payload)

	decoded, err := Decode(TypeSetLabel, payload)
	require.NoError(t, err)
	assert.Equal(t, text, decoded.(SetLabel).Label.String())

	_, err = model.NewLabel(text + "!")
	assert.ErrorIs(t, err, wire.ErrInvalidValue)
}

func TestLabelNullPadding(t *testing.T) {
	payload, err := Encode(StateLabel{Label: model.MustLabel("Desk")})
	require.NoError(t, err)
	assert.Equal(t, []byte("Desk"), payload[:4])
	assert.Equal(t, make([]byte, model.LabelSize-4), payload[4:])
}

func TestTimestampSubMicrosecondPrecision(t *testing.T) {
	at := time.Date(2021, 1, 2, 3, 4, 5, 123456789, time.UTC)
	group := model.Group{ID: sampleID, Label: model.MustLabel("Office"), UpdatedAt: at}

	payload, err := Encode(StateGroup{Group: group})
	require.NoError(t, err)
	assert.Equal(t, uint64(at.UnixNano()), binary.LittleEndian.Uint64(payload[48:]))

	decoded, err := Decode(TypeStateGroup, payload)
	require.NoError(t, err)
	got := decoded.(StateGroup).Group.UpdatedAt
	assert.True(t, at.Equal(got))
	assert.Equal(t, 123456789, got.Nanosecond())
}

func TestGroupIDBytes(t *testing.T) {
	payload, err := Encode(SetGroup{Group: model.Group{ID: sampleID}})
	require.NoError(t, err)
	assert.Equal(t, sampleID[:], payload[:16])
}

func TestZeroValueTimestampsRoundTrip(t *testing.T) {
	for _, m := range []Message{
		StateGroup{},
		StateLocation{},
		StateHostFirmware{Firmware: model.Firmware{Version: 0x00030046}},
		StateInfo{},
	} {
		t.Run(m.Type().String(), func(t *testing.T) {
			payload, err := Encode(m)
			require.NoError(t, err)
			assert.Equal(t, make([]byte, 8), payload[timestampOffset(m.Type()):][:8])

			decoded, err := Decode(m.Type(), payload)
			require.NoError(t, err)
			assert.Equal(t, m, decoded)
		})
	}
}

func timestampOffset(t Type) int {
	switch t {
	case TypeStateGroup, TypeStateLocation:
		return 48
	default:
		return 0
	}
}

func TestFloatFieldsLittleEndian(t *testing.T) {
	payload, err := Encode(StateWifiInfo{Info: model.NetworkInfo{Signal: 1.0}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, payload[:4])
}

func TestReservedLeadingByte(t *testing.T) {
	payload, err := Encode(LightSetColor{Transition: model.ColorTransition{Color: sampleColor, Duration: time.Second}})
	require.NoError(t, err)
	assert.Equal(t, byte(0), payload[0])

	payload[0] = 0xAA
	decoded, err := Decode(TypeLightSetColor, payload)
	require.NoError(t, err)
	assert.Equal(t, sampleColor, decoded.(LightSetColor).Transition.Color)
}

func TestMalformedPayloads(t *testing.T) {
	validWaveform, err := Encode(LightSetWaveformOptional{Effect: sampleEffect(model.SetAll)})
	require.NoError(t, err)

	nanCycles := bytes.Clone(validWaveform)
	binary.LittleEndian.PutUint32(nanCycles[14:], math.Float32bits(float32(math.NaN())))

	badTransient := bytes.Clone(validWaveform)
	badTransient[1] = 2

	badWaveform := bytes.Clone(validWaveform)
	badWaveform[20] = 9

	badOption := bytes.Clone(validWaveform)
	badOption[23] = 7

	hugeUptime := make([]byte, 24)
	binary.LittleEndian.PutUint64(hugeUptime[8:], math.MaxUint64)

	tests := []struct {
		name    string
		typ     Type
		payload []byte
		field   string
	}{
		{"nan cycles", TypeLightSetWaveformOptional, nanCycles, "cycles"},
		{"non-binary transient", TypeLightSetWaveformOptional, badTransient, "transient"},
		{"unknown waveform", TypeLightSetWaveformOptional, badWaveform, "waveform"},
		{"non-binary option flag", TypeLightSetWaveformOptional, badOption, "set_brightness"},
		{"uptime overflow", TypeStateInfo, hugeUptime, "uptime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.typ, tt.payload)

			var mpe *MalformedPayloadError
			require.ErrorAs(t, err, &mpe)
			assert.Equal(t, tt.typ, mpe.Type)
			assert.ErrorIs(t, err, ErrMalformedPayload)

			var ive *wire.InvalidValueError
			require.ErrorAs(t, err, &ive, "cause must be preserved")
			assert.Equal(t, tt.field, ive.Field)
		})
	}
}

func TestDecodeIsStateless(t *testing.T) {
	_, err := Decode(TypeStateInfo, make([]byte, 3))
	require.Error(t, err)

	m, err := Decode(TypeStatePower, []byte{0xFF, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, StatePower{Level: model.PowerOn}, m)
}

func TestEncodeRejectsOutOfDomainValues(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
	}{
		{"sub-millisecond duration", LightSetColor{Transition: model.ColorTransition{Duration: time.Microsecond}}},
		{"negative power duration", LightSetPower{Transition: model.PowerTransition{Duration: -time.Second}}},
		{"pre-epoch timestamp", StateHostFirmware{Firmware: model.Firmware{Build: time.Unix(-1, 0)}}},
		{"negative uptime", StateInfo{Info: model.Info{Time: sampleTime, Uptime: -1}}},
		{"infinite cycles", LightSetWaveform{Effect: model.Effect{Cycles: float32(math.Inf(-1))}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.msg)
			assert.ErrorIs(t, err, wire.ErrInvalidValue)
		})
	}
}

func TestEncodeNilMessage(t *testing.T) {
	_, err := Encode(nil)
	assert.ErrorIs(t, err, ErrNilMessage)
}

func TestRawPassThrough(t *testing.T) {
	raw := Raw{MessageType: 510, Payload: []byte{1, 2, 3, 4, 5}}
	payload, err := Encode(raw)
	require.NoError(t, err)
	assert.Equal(t, raw.Payload, payload)

	payload[0] = 0xFF
	assert.Equal(t, byte(1), raw.Payload[0], "encoded payload must not alias the input")

	_, err = Decode(raw.Type(), payload)
	assert.ErrorIs(t, err, ErrUnknownMessageType)
}

func TestSetWaveformDropsOptions(t *testing.T) {
	payload, err := Encode(LightSetWaveform{Effect: sampleEffect(model.SetAll)})
	require.NoError(t, err)

	decoded, err := Decode(TypeLightSetWaveform, payload)
	require.NoError(t, err)
	assert.Equal(t, model.WaveformOptions(0), decoded.(LightSetWaveform).Effect.Options)
}
