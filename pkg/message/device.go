package message

import (
	"github.com/lifx-protocol/lifx-go/pkg/model"
	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// GetService asks devices to report their services. Used for discovery.
type GetService struct{}

func (GetService) Type() Type             { return TypeGetService }
func (GetService) encode(e *wire.Encoder) {}

// StateService reports a service the device offers.
type StateService struct {
	Service model.Service
}

func (StateService) Type() Type { return TypeStateService }

func (m StateService) encode(e *wire.Encoder) {
	e.PutUint8(uint8(m.Service.Type))
	e.PutUint32(m.Service.Port)
}

func decodeStateService(d *wire.Decoder) Message {
	return StateService{Service: model.Service{
		Type: model.ServiceType(d.Uint8()),
		Port: d.Uint32(),
	}}
}

// GetHostInfo asks for host MCU radio statistics.
type GetHostInfo struct{}

func (GetHostInfo) Type() Type             { return TypeGetHostInfo }
func (GetHostInfo) encode(e *wire.Encoder) {}

// StateHostInfo reports host MCU radio statistics.
type StateHostInfo struct {
	Info model.NetworkInfo

	// Reserved is a signed field devices fill in; carried for fidelity.
	Reserved int16
}

func (StateHostInfo) Type() Type { return TypeStateHostInfo }

func (m StateHostInfo) encode(e *wire.Encoder) {
	putNetworkInfo(e, m.Info, m.Reserved)
}

func decodeStateHostInfo(d *wire.Decoder) Message {
	info, reserved := readNetworkInfo(d)
	return StateHostInfo{Info: info, Reserved: reserved}
}

// GetHostFirmware asks for the host firmware description.
type GetHostFirmware struct{}

func (GetHostFirmware) Type() Type             { return TypeGetHostFirmware }
func (GetHostFirmware) encode(e *wire.Encoder) {}

// StateHostFirmware reports the host firmware description.
type StateHostFirmware struct {
	Firmware model.Firmware
}

func (StateHostFirmware) Type() Type { return TypeStateHostFirmware }

func (m StateHostFirmware) encode(e *wire.Encoder) {
	putFirmware(e, m.Firmware)
}

func decodeStateHostFirmware(d *wire.Decoder) Message {
	return StateHostFirmware{Firmware: readFirmware(d)}
}

// GetWifiFirmware asks for the wifi firmware description.
type GetWifiFirmware struct{}

func (GetWifiFirmware) Type() Type             { return TypeGetWifiFirmware }
func (GetWifiFirmware) encode(e *wire.Encoder) {}

// StateWifiFirmware reports the wifi firmware description.
type StateWifiFirmware struct {
	Firmware model.Firmware
}

func (StateWifiFirmware) Type() Type { return TypeStateWifiFirmware }

func (m StateWifiFirmware) encode(e *wire.Encoder) {
	putFirmware(e, m.Firmware)
}

func decodeStateWifiFirmware(d *wire.Decoder) Message {
	return StateWifiFirmware{Firmware: readFirmware(d)}
}

// GetWifiInfo asks for wifi radio statistics.
type GetWifiInfo struct{}

func (GetWifiInfo) Type() Type             { return TypeGetWifiInfo }
func (GetWifiInfo) encode(e *wire.Encoder) {}

// StateWifiInfo reports wifi radio statistics.
type StateWifiInfo struct {
	Info     model.NetworkInfo
	Reserved int16
}

func (StateWifiInfo) Type() Type { return TypeStateWifiInfo }

func (m StateWifiInfo) encode(e *wire.Encoder) {
	putNetworkInfo(e, m.Info, m.Reserved)
}

func decodeStateWifiInfo(d *wire.Decoder) Message {
	info, reserved := readNetworkInfo(d)
	return StateWifiInfo{Info: info, Reserved: reserved}
}

// GetPower asks for the device power level.
type GetPower struct{}

func (GetPower) Type() Type             { return TypeGetPower }
func (GetPower) encode(e *wire.Encoder) {}

// SetPower sets the device power level immediately.
type SetPower struct {
	Level uint16
}

func (SetPower) Type() Type { return TypeSetPower }

func (m SetPower) encode(e *wire.Encoder) { e.PutUint16(m.Level) }

func decodeSetPower(d *wire.Decoder) Message {
	return SetPower{Level: d.Uint16()}
}

// StatePower reports the device power level.
type StatePower struct {
	Level uint16
}

func (StatePower) Type() Type { return TypeStatePower }

func (m StatePower) encode(e *wire.Encoder) { e.PutUint16(m.Level) }

func decodeStatePower(d *wire.Decoder) Message {
	return StatePower{Level: d.Uint16()}
}

// GetLabel asks for the device label.
type GetLabel struct{}

func (GetLabel) Type() Type             { return TypeGetLabel }
func (GetLabel) encode(e *wire.Encoder) {}

// SetLabel sets the device label.
type SetLabel struct {
	Label model.Label
}

func (SetLabel) Type() Type { return TypeSetLabel }

func (m SetLabel) encode(e *wire.Encoder) { putLabel(e, m.Label) }

func decodeSetLabel(d *wire.Decoder) Message {
	return SetLabel{Label: readLabel(d)}
}

// StateLabel reports the device label.
type StateLabel struct {
	Label model.Label
}

func (StateLabel) Type() Type { return TypeStateLabel }

func (m StateLabel) encode(e *wire.Encoder) { putLabel(e, m.Label) }

func decodeStateLabel(d *wire.Decoder) Message {
	return StateLabel{Label: readLabel(d)}
}

// GetVersion asks for the hardware version.
type GetVersion struct{}

func (GetVersion) Type() Type             { return TypeGetVersion }
func (GetVersion) encode(e *wire.Encoder) {}

// StateVersion reports the hardware version.
type StateVersion struct {
	Version model.Version
}

func (StateVersion) Type() Type { return TypeStateVersion }

func (m StateVersion) encode(e *wire.Encoder) {
	e.PutUint32(m.Version.Vendor)
	e.PutUint32(m.Version.Product)
	e.PutUint32(m.Version.Version)
}

func decodeStateVersion(d *wire.Decoder) Message {
	return StateVersion{Version: model.Version{
		Vendor:  d.Uint32(),
		Product: d.Uint32(),
		Version: d.Uint32(),
	}}
}

// GetInfo asks for the device clock and run statistics.
type GetInfo struct{}

func (GetInfo) Type() Type             { return TypeGetInfo }
func (GetInfo) encode(e *wire.Encoder) {}

// StateInfo reports the device clock and run statistics.
type StateInfo struct {
	Info model.Info
}

func (StateInfo) Type() Type { return TypeStateInfo }

func (m StateInfo) encode(e *wire.Encoder) {
	putTimestamp(e, "time", m.Info.Time)
	putNanos(e, "uptime", m.Info.Uptime)
	putNanos(e, "downtime", m.Info.Downtime)
}

func decodeStateInfo(d *wire.Decoder) Message {
	now := wire.TimestampFromWire(d.Uint64())
	uptime := readNanos(d, "uptime")
	downtime := readNanos(d, "downtime")
	return StateInfo{Info: model.Info{Time: now, Uptime: uptime, Downtime: downtime}}
}

// Acknowledgement confirms receipt of a message sent with AckRequired.
type Acknowledgement struct{}

func (Acknowledgement) Type() Type             { return TypeAcknowledgement }
func (Acknowledgement) encode(e *wire.Encoder) {}

// GetLocation asks for the device location.
type GetLocation struct{}

func (GetLocation) Type() Type             { return TypeGetLocation }
func (GetLocation) encode(e *wire.Encoder) {}

// SetLocation assigns the device to a location.
type SetLocation struct {
	Location model.Location
}

func (SetLocation) Type() Type { return TypeSetLocation }

func (m SetLocation) encode(e *wire.Encoder) {
	putMembership(e, m.Location.ID, m.Location.Label, m.Location.UpdatedAt)
}

func decodeSetLocation(d *wire.Decoder) Message {
	id, label, at := readMembership(d)
	return SetLocation{Location: model.Location{ID: id, Label: label, UpdatedAt: at}}
}

// StateLocation reports the device location.
type StateLocation struct {
	Location model.Location
}

func (StateLocation) Type() Type { return TypeStateLocation }

func (m StateLocation) encode(e *wire.Encoder) {
	putMembership(e, m.Location.ID, m.Location.Label, m.Location.UpdatedAt)
}

func decodeStateLocation(d *wire.Decoder) Message {
	id, label, at := readMembership(d)
	return StateLocation{Location: model.Location{ID: id, Label: label, UpdatedAt: at}}
}

// GetGroup asks for the device group.
type GetGroup struct{}

func (GetGroup) Type() Type             { return TypeGetGroup }
func (GetGroup) encode(e *wire.Encoder) {}

// SetGroup assigns the device to a group.
type SetGroup struct {
	Group model.Group
}

func (SetGroup) Type() Type { return TypeSetGroup }

func (m SetGroup) encode(e *wire.Encoder) {
	putMembership(e, m.Group.ID, m.Group.Label, m.Group.UpdatedAt)
}

func decodeSetGroup(d *wire.Decoder) Message {
	id, label, at := readMembership(d)
	return SetGroup{Group: model.Group{ID: id, Label: label, UpdatedAt: at}}
}

// StateGroup reports the device group.
type StateGroup struct {
	Group model.Group
}

func (StateGroup) Type() Type { return TypeStateGroup }

func (m StateGroup) encode(e *wire.Encoder) {
	putMembership(e, m.Group.ID, m.Group.Label, m.Group.UpdatedAt)
}

func decodeStateGroup(d *wire.Decoder) Message {
	id, label, at := readMembership(d)
	return StateGroup{Group: model.Group{ID: id, Label: label, UpdatedAt: at}}
}

// EchoRequest asks the device to return Payload unchanged.
type EchoRequest struct {
	Payload model.EchoPayload
}

func (EchoRequest) Type() Type { return TypeEchoRequest }

func (m EchoRequest) encode(e *wire.Encoder) {
	e.PutFixed("payload", m.Payload[:], model.EchoPayloadSize)
}

func decodeEchoRequest(d *wire.Decoder) Message {
	var m EchoRequest
	copy(m.Payload[:], d.Fixed(model.EchoPayloadSize))
	return m
}

// EchoResponse returns the payload of an EchoRequest.
type EchoResponse struct {
	Payload model.EchoPayload
}

func (EchoResponse) Type() Type { return TypeEchoResponse }

func (m EchoResponse) encode(e *wire.Encoder) {
	e.PutFixed("payload", m.Payload[:], model.EchoPayloadSize)
}

func decodeEchoResponse(d *wire.Decoder) Message {
	var m EchoResponse
	copy(m.Payload[:], d.Fixed(model.EchoPayloadSize))
	return m
}
