// Package version provides firmware version parsing and the product
// registry.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// FirmwareVersion is a "major.minor" firmware version. On the wire it is a
// single u32 with the major number in the upper 16 bits.
type FirmwareVersion struct {
	Major uint16
	Minor uint16
}

// FirmwareFromWire splits a wire firmware version.
func FirmwareFromWire(v uint32) FirmwareVersion {
	return FirmwareVersion{Major: uint16(v >> 16), Minor: uint16(v)}
}

// Wire packs v into its u32 wire form.
func (v FirmwareVersion) Wire() uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)
}

// Parse parses a "major.minor" version string.
func Parse(s string) (FirmwareVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return FirmwareVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return FirmwareVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return FirmwareVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return FirmwareVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v FirmwareVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v is the same as or newer than other.
func (v FirmwareVersion) AtLeast(other FirmwareVersion) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}
