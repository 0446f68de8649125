package wire

import (
	"fmt"
	"net"
	"strings"
)

// Target is the 8-byte device identifier of the FrameAddress. Devices use
// their 6-byte MAC address followed by two zero bytes.
type Target [8]byte

// Broadcast addresses every device on the network.
var Broadcast = Target{}

// TargetFromMAC builds a Target from a 6-byte MAC or an 8-byte EUI-64.
func TargetFromMAC(mac net.HardwareAddr) (Target, error) {
	var t Target
	if len(mac) != 6 && len(mac) != 8 {
		return t, invalidValue("target", mac.String(), "must be 6 or 8 bytes")
	}
	copy(t[:], mac)
	return t, nil
}

// IsBroadcast reports whether t is the all-zero target.
func (t Target) IsBroadcast() bool {
	return t == Broadcast
}

// String formats t as colon-separated hex. Trailing zero padding of a MAC
// based target is omitted.
func (t Target) String() string {
	n := len(t)
	if t[6] == 0 && t[7] == 0 {
		n = 6
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%02x", t[i])
	}
	return strings.Join(parts, ":")
}
