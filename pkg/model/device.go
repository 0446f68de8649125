package model

import (
	"time"

	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// ServiceType identifies a transport service advertised by a device.
type ServiceType uint8

// ServiceUDP is the only service devices advertise.
const ServiceUDP ServiceType = 1

// String returns the service name.
func (s ServiceType) String() string {
	if s == ServiceUDP {
		return "UDP"
	}
	return "UNKNOWN"
}

// Service describes a transport service and its port.
type Service struct {
	Type ServiceType
	Port uint32
}

// NewService validates a service type and port.
func NewService(typ int, port int64) (Service, error) {
	t, err := wire.CheckUint8("service", int64(typ))
	if err != nil {
		return Service{}, err
	}
	p, err := wire.CheckUint32("port", port)
	if err != nil {
		return Service{}, err
	}
	return Service{Type: ServiceType(t), Port: p}, nil
}

// Version identifies the hardware of a device.
type Version struct {
	Vendor  uint32
	Product uint32
	Version uint32
}

// NewVersion validates the three identifiers.
func NewVersion(vendor, product, version int64) (Version, error) {
	v, err := wire.CheckUint32("vendor", vendor)
	if err != nil {
		return Version{}, err
	}
	p, err := wire.CheckUint32("product", product)
	if err != nil {
		return Version{}, err
	}
	ver, err := wire.CheckUint32("version", version)
	if err != nil {
		return Version{}, err
	}
	return Version{Vendor: v, Product: p, Version: ver}, nil
}

// Firmware describes a host or wifi firmware image.
type Firmware struct {
	// Build is the firmware build time.
	Build time.Time

	// Version is the firmware version number.
	Version uint32
}

// NewFirmware validates the build time and version.
func NewFirmware(build time.Time, version int64) (Firmware, error) {
	if _, err := wire.TimestampToWire("build", build); err != nil {
		return Firmware{}, err
	}
	v, err := wire.CheckUint32("version", version)
	if err != nil {
		return Firmware{}, err
	}
	return Firmware{Build: build.UTC(), Version: v}, nil
}

// NetworkInfo reports radio statistics of a device.
type NetworkInfo struct {
	// Signal is the received signal strength in mW.
	Signal float32

	// Tx is the number of bytes transmitted.
	Tx uint32

	// Rx is the number of bytes received.
	Rx uint32
}

// NewNetworkInfo validates the byte counters.
func NewNetworkInfo(signal float32, tx, rx int64) (NetworkInfo, error) {
	t, err := wire.CheckUint32("tx", tx)
	if err != nil {
		return NetworkInfo{}, err
	}
	r, err := wire.CheckUint32("rx", rx)
	if err != nil {
		return NetworkInfo{}, err
	}
	return NetworkInfo{Signal: signal, Tx: t, Rx: r}, nil
}

// Info reports the device clock and its run statistics.
type Info struct {
	// Time is the current device time.
	Time time.Time

	// Uptime is the time since the last power on.
	Uptime time.Duration

	// Downtime is the time the device was last powered off.
	Downtime time.Duration
}

// NewInfo validates the device time and durations.
func NewInfo(now time.Time, uptime, downtime time.Duration) (Info, error) {
	if _, err := wire.TimestampToWire("time", now); err != nil {
		return Info{}, err
	}
	if _, err := wire.DurationToWire("uptime", uptime); err != nil {
		return Info{}, err
	}
	if _, err := wire.DurationToWire("downtime", downtime); err != nil {
		return Info{}, err
	}
	return Info{Time: now.UTC(), Uptime: uptime, Downtime: downtime}, nil
}

// EchoPayloadSize is the fixed size of an echo payload.
const EchoPayloadSize = 64

// EchoPayload is the opaque data echoed back by a device.
type EchoPayload [EchoPayloadSize]byte

// NewEchoPayload copies data into an EchoPayload, zero-padding shorter
// input. Input longer than 64 bytes is rejected.
func NewEchoPayload(data []byte) (EchoPayload, error) {
	var p EchoPayload
	if len(data) > EchoPayloadSize {
		return p, &wire.InvalidValueError{Field: "echo_payload", Value: len(data), Reason: "exceeds 64 bytes"}
	}
	copy(p[:], data)
	return p, nil
}
