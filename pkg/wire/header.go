package wire

import (
	"encoding/binary"
	"fmt"
)

// Header sizes in bytes.
const (
	FrameSize          = 8
	FrameAddressSize   = 16
	ProtocolHeaderSize = 12

	// HeaderSize is the size of the complete packet header.
	HeaderSize = FrameSize + FrameAddressSize + ProtocolHeaderSize
)

// ProtocolNumber is the protocol version carried in every Frame.
const ProtocolNumber uint16 = 1024

// Bit layout of the second Frame word.
const (
	protocolMask    = 0x0FFF
	addressableBit  = 1 << 12
	taggedBit       = 1 << 13
	originShift     = 14
	maxOrigin       = 0x3
	resRequiredBit  = 1 << 0
	ackRequiredBit  = 1 << 1
	frameAddrFlagAt = 22
)

// Frame is the first header section.
type Frame struct {
	// Size is the total packet length including the header.
	Size uint16

	// Origin is a 2-bit field, always zero in practice.
	Origin uint8

	// Tagged selects broadcast semantics for the target.
	Tagged bool

	// Addressable must be true on every packet.
	Addressable bool

	// Protocol is the 12-bit protocol number (ProtocolNumber).
	Protocol uint16

	// Source is the caller-chosen correlation id.
	Source uint32
}

// FrameAddress is the addressing header section.
type FrameAddress struct {
	// Target identifies the device; the zero value addresses all devices.
	Target Target

	// ResRequired asks the device for a state response.
	ResRequired bool

	// AckRequired asks the device for an Acknowledgement.
	AckRequired bool

	// Sequence is the caller-chosen wrap-around sequence number.
	Sequence uint8
}

// ProtocolHeader carries the message type.
type ProtocolHeader struct {
	// Type is the message type identifier.
	Type uint16
}

// Header is the fixed 36-byte packet header.
type Header struct {
	Frame
	FrameAddress
	ProtocolHeader
}

// PayloadSize returns the payload length implied by Size, or -1 if Size is
// smaller than the header itself.
func (h Header) PayloadSize() int {
	if int(h.Size) < HeaderSize {
		return -1
	}
	return int(h.Size) - HeaderSize
}

// EncodeHeader serializes h into HeaderSize bytes. Reserved bits are zero.
// Origin and Protocol must fit their 2- and 12-bit fields.
func EncodeHeader(h Header) ([]byte, error) {
	if h.Origin > maxOrigin {
		return nil, invalidValue("origin", h.Origin, "must fit in 2 bits")
	}
	if h.Protocol > protocolMask {
		return nil, invalidValue("protocol", h.Protocol, "must fit in 12 bits")
	}

	buf := make([]byte, HeaderSize)

	// Frame
	binary.LittleEndian.PutUint16(buf[0:2], h.Size)
	word := h.Protocol & protocolMask
	if h.Addressable {
		word |= addressableBit
	}
	if h.Tagged {
		word |= taggedBit
	}
	word |= uint16(h.Origin) << originShift
	binary.LittleEndian.PutUint16(buf[2:4], word)
	binary.LittleEndian.PutUint32(buf[4:8], h.Source)

	// FrameAddress
	copy(buf[8:16], h.Target[:])
	var flags uint8
	if h.ResRequired {
		flags |= resRequiredBit
	}
	if h.AckRequired {
		flags |= ackRequiredBit
	}
	buf[frameAddrFlagAt] = flags
	buf[23] = h.Sequence

	// ProtocolHeader
	binary.LittleEndian.PutUint16(buf[32:34], h.Type)

	return buf, nil
}

// DecodeHeader extracts the header fields from exactly HeaderSize bytes.
// Reserved bits are ignored and no field is validated.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) != HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidHeaderLength, len(b), HeaderSize)
	}

	word := binary.LittleEndian.Uint16(b[2:4])
	flags := b[frameAddrFlagAt]

	var h Header
	h.Size = binary.LittleEndian.Uint16(b[0:2])
	h.Protocol = word & protocolMask
	h.Addressable = word&addressableBit != 0
	h.Tagged = word&taggedBit != 0
	h.Origin = uint8(word >> originShift)
	h.Source = binary.LittleEndian.Uint32(b[4:8])
	copy(h.Target[:], b[8:16])
	h.ResRequired = flags&resRequiredBit != 0
	h.AckRequired = flags&ackRequiredBit != 0
	h.Sequence = b[23]
	h.Type = binary.LittleEndian.Uint16(b[32:34])
	return h, nil
}
