// Package packet frames protocol messages into datagrams.
//
// A datagram is the 36-byte wire.Header followed by the payload of exactly
// one message. Encode and Decode are pure functions and safe for concurrent
// use:
//
//	b, err := packet.Encode(message.LightSetColor{...}, packet.Options{
//	    Source: 1,
//	    Tagged: true,
//	})
//
//	p, err := packet.Decode(datagram)
//	switch m := p.Message.(type) {
//	case message.LightState:
//	    ...
//	}
//
// Codec wraps the same operations with protocol capture (see package log)
// and debug logging of dropped datagrams.
package packet
