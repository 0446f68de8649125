// Package wire holds the byte-level primitives of the LAN lighting protocol.
//
// Every packet starts with a fixed 36-byte header made of three
// sub-structures, all little-endian:
//
//	Frame          (8 bytes)  size, origin/tagged/addressable/protocol, source
//	FrameAddress   (16 bytes) target, reserved, res/ack flags, sequence
//	ProtocolHeader (12 bytes) reserved, message type, reserved
//
// The package also provides the value codecs shared by every message
// payload: a cursor-style Encoder and Decoder for little-endian integers,
// IEEE-754 single-precision floats, fixed-width byte fields and labels,
// nanosecond timestamps and millisecond durations, together with the
// range checks that turn out-of-domain input into InvalidValueError.
//
// # Fixed byte order
//
// Floats are written with math.Float32bits in little-endian order. The
// encoding never depends on the host platform.
package wire
