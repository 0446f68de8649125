package message

import "fmt"

// Type is the numeric message type identifier carried in the packet header.
type Type uint16

// Device messages.
const (
	TypeGetService        Type = 2
	TypeStateService      Type = 3
	TypeGetHostInfo       Type = 12
	TypeStateHostInfo     Type = 13
	TypeGetHostFirmware   Type = 14
	TypeStateHostFirmware Type = 15
	TypeGetWifiFirmware   Type = 16
	TypeStateWifiFirmware Type = 17
	TypeGetWifiInfo       Type = 18
	TypeStateWifiInfo     Type = 19
	TypeGetPower          Type = 20
	TypeSetPower          Type = 21
	TypeStatePower        Type = 22
	TypeGetLabel          Type = 23
	TypeSetLabel          Type = 24
	TypeStateLabel        Type = 25
	TypeGetVersion        Type = 32
	TypeStateVersion      Type = 33
	TypeGetInfo           Type = 34
	TypeStateInfo         Type = 35
	TypeAcknowledgement   Type = 45
	TypeGetLocation       Type = 48
	TypeSetLocation       Type = 49
	TypeStateLocation     Type = 50
	TypeGetGroup          Type = 51
	TypeSetGroup          Type = 52
	TypeStateGroup        Type = 53
	TypeEchoRequest       Type = 58
	TypeEchoResponse      Type = 59
)

// Light messages.
const (
	TypeLightGet                 Type = 101
	TypeLightSetColor            Type = 102
	TypeLightSetWaveform         Type = 103
	TypeLightState               Type = 107
	TypeLightGetPower            Type = 116
	TypeLightSetPower            Type = 117
	TypeLightStatePower          Type = 118
	TypeLightSetWaveformOptional Type = 119
	TypeLightGetInfrared         Type = 120
	TypeLightSetInfrared         Type = 121
	TypeLightStateInfrared       Type = 122
)

// String returns the catalog name, or Unknown(n) for types outside the catalog.
func (t Type) String() string {
	if e, ok := catalog[t]; ok {
		return e.Name
	}
	return fmt.Sprintf("Unknown(%d)", uint16(t))
}

// Known reports whether t is in the catalog.
func (t Type) Known() bool {
	_, ok := catalog[t]
	return ok
}

// Role returns the catalog role of t, or RoleUnknown.
func (t Type) Role() Role {
	return catalog[t].Role
}

// Domain returns the catalog domain of t, or DomainUnknown.
func (t Type) Domain() Domain {
	return catalog[t].Domain
}

// Role classifies what a message does.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleCommand
	RoleRequest
	RoleResponse
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleCommand:
		return "COMMAND"
	case RoleRequest:
		return "REQUEST"
	case RoleResponse:
		return "RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// Domain classifies what a message targets.
type Domain uint8

const (
	DomainUnknown Domain = iota
	DomainDevice
	DomainLight
)

// String returns the domain name.
func (d Domain) String() string {
	switch d {
	case DomainDevice:
		return "DEVICE"
	case DomainLight:
		return "LIGHT"
	default:
		return "UNKNOWN"
	}
}
