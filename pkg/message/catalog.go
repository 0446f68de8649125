package message

import (
	"sort"

	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// decodeFunc reads the fields of one message type. Field errors are
// recorded on the decoder.
type decodeFunc func(d *wire.Decoder) Message

// Entry is one row of the message catalog.
type Entry struct {
	Type   Type
	Name   string
	Size   int
	Role   Role
	Domain Domain

	decode decodeFunc
}

// empty returns a decoder for payload-less messages.
func empty(m Message) decodeFunc {
	return func(*wire.Decoder) Message { return m }
}

var catalog = map[Type]Entry{
	TypeGetService:        {Name: "GetService", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetService{})},
	TypeStateService:      {Name: "StateService", Size: 5, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateService},
	TypeGetHostInfo:       {Name: "GetHostInfo", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetHostInfo{})},
	TypeStateHostInfo:     {Name: "StateHostInfo", Size: 14, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateHostInfo},
	TypeGetHostFirmware:   {Name: "GetHostFirmware", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetHostFirmware{})},
	TypeStateHostFirmware: {Name: "StateHostFirmware", Size: 20, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateHostFirmware},
	TypeGetWifiFirmware:   {Name: "GetWifiFirmware", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetWifiFirmware{})},
	TypeStateWifiFirmware: {Name: "StateWifiFirmware", Size: 20, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateWifiFirmware},
	TypeGetWifiInfo:       {Name: "GetWifiInfo", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetWifiInfo{})},
	TypeStateWifiInfo:     {Name: "StateWifiInfo", Size: 14, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateWifiInfo},
	TypeGetPower:          {Name: "GetPower", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetPower{})},
	TypeSetPower:          {Name: "SetPower", Size: 2, Role: RoleCommand, Domain: DomainDevice, decode: decodeSetPower},
	TypeStatePower:        {Name: "StatePower", Size: 2, Role: RoleResponse, Domain: DomainDevice, decode: decodeStatePower},
	TypeGetLabel:          {Name: "GetLabel", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetLabel{})},
	TypeSetLabel:          {Name: "SetLabel", Size: 32, Role: RoleCommand, Domain: DomainDevice, decode: decodeSetLabel},
	TypeStateLabel:        {Name: "StateLabel", Size: 32, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateLabel},
	TypeGetVersion:        {Name: "GetVersion", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetVersion{})},
	TypeStateVersion:      {Name: "StateVersion", Size: 12, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateVersion},
	TypeGetInfo:           {Name: "GetInfo", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetInfo{})},
	TypeStateInfo:         {Name: "StateInfo", Size: 24, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateInfo},
	TypeAcknowledgement:   {Name: "Acknowledgement", Size: 0, Role: RoleResponse, Domain: DomainDevice, decode: empty(Acknowledgement{})},
	TypeGetLocation:       {Name: "GetLocation", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetLocation{})},
	TypeSetLocation:       {Name: "SetLocation", Size: 56, Role: RoleCommand, Domain: DomainDevice, decode: decodeSetLocation},
	TypeStateLocation:     {Name: "StateLocation", Size: 56, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateLocation},
	TypeGetGroup:          {Name: "GetGroup", Size: 0, Role: RoleRequest, Domain: DomainDevice, decode: empty(GetGroup{})},
	TypeSetGroup:          {Name: "SetGroup", Size: 56, Role: RoleCommand, Domain: DomainDevice, decode: decodeSetGroup},
	TypeStateGroup:        {Name: "StateGroup", Size: 56, Role: RoleResponse, Domain: DomainDevice, decode: decodeStateGroup},
	TypeEchoRequest:       {Name: "EchoRequest", Size: 64, Role: RoleRequest, Domain: DomainDevice, decode: decodeEchoRequest},
	TypeEchoResponse:      {Name: "EchoResponse", Size: 64, Role: RoleResponse, Domain: DomainDevice, decode: decodeEchoResponse},

	TypeLightGet:                 {Name: "LightGet", Size: 0, Role: RoleRequest, Domain: DomainLight, decode: empty(LightGet{})},
	TypeLightSetColor:            {Name: "LightSetColor", Size: 13, Role: RoleCommand, Domain: DomainLight, decode: decodeLightSetColor},
	TypeLightSetWaveform:         {Name: "LightSetWaveform", Size: 21, Role: RoleCommand, Domain: DomainLight, decode: decodeLightSetWaveform},
	TypeLightState:               {Name: "LightState", Size: 52, Role: RoleResponse, Domain: DomainLight, decode: decodeLightState},
	TypeLightGetPower:            {Name: "LightGetPower", Size: 0, Role: RoleRequest, Domain: DomainLight, decode: empty(LightGetPower{})},
	TypeLightSetPower:            {Name: "LightSetPower", Size: 6, Role: RoleCommand, Domain: DomainLight, decode: decodeLightSetPower},
	TypeLightStatePower:          {Name: "LightStatePower", Size: 2, Role: RoleResponse, Domain: DomainLight, decode: decodeLightStatePower},
	TypeLightSetWaveformOptional: {Name: "LightSetWaveformOptional", Size: 25, Role: RoleCommand, Domain: DomainLight, decode: decodeLightSetWaveformOptional},
	TypeLightGetInfrared:         {Name: "LightGetInfrared", Size: 0, Role: RoleRequest, Domain: DomainLight, decode: empty(LightGetInfrared{})},
	TypeLightSetInfrared:         {Name: "LightSetInfrared", Size: 2, Role: RoleCommand, Domain: DomainLight, decode: decodeLightSetInfrared},
	TypeLightStateInfrared:       {Name: "LightStateInfrared", Size: 2, Role: RoleResponse, Domain: DomainLight, decode: decodeLightStateInfrared},
}

func init() {
	for t, e := range catalog {
		e.Type = t
		catalog[t] = e
	}
}

// Lookup returns the catalog entry for t.
func Lookup(t Type) (Entry, bool) {
	e, ok := catalog[t]
	return e, ok
}

// Types returns every catalog type in ascending order.
func Types() []Type {
	types := make([]Type, 0, len(catalog))
	for t := range catalog {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
