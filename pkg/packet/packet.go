package packet

import (
	"errors"
	"fmt"
	"math"

	"github.com/lifx-protocol/lifx-go/pkg/message"
	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// Framing errors.
var (
	// ErrShortPacket indicates a datagram smaller than the header.
	ErrShortPacket = errors.New("packet shorter than header")

	// ErrInvalidSize indicates a header whose Size is smaller than the header.
	ErrInvalidSize = errors.New("header size smaller than header")

	// ErrTruncated indicates a datagram shorter than its header Size.
	ErrTruncated = errors.New("packet truncated")
)

// MaxPayloadSize is the largest payload a 16-bit Size field can frame.
const MaxPayloadSize = math.MaxUint16 - wire.HeaderSize

// Options carries the addressing metadata of an outgoing packet.
type Options struct {
	// Source is the caller-chosen correlation id echoed in responses.
	Source uint32

	// Target addresses one device. The zero value is wire.Broadcast.
	Target wire.Target

	// Sequence is the caller-chosen wrap-around sequence number.
	Sequence uint8

	AckRequired bool
	ResRequired bool

	// Tagged marks the packet as addressed to all devices.
	Tagged bool
}

// Packet is a decoded or to-be-encoded datagram.
type Packet struct {
	Header  wire.Header
	Message message.Message
}

// New builds a packet for m. The header type, size, protocol number and
// addressable flag are filled in from m; the rest comes from opts.
func New(m message.Message, opts Options) (*Packet, error) {
	p, _, err := build(m, opts)
	return p, err
}

// Encode serializes m with the addressing in opts into a single datagram.
func Encode(m message.Message, opts Options) ([]byte, error) {
	p, payload, err := build(m, opts)
	if err != nil {
		return nil, err
	}
	return p.frame(payload)
}

// Decode parses one datagram. Bytes past the header Size are ignored.
func Decode(b []byte) (*Packet, error) {
	if len(b) < wire.HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortPacket, len(b))
	}
	h, err := wire.DecodeHeader(b[:wire.HeaderSize])
	if err != nil {
		return nil, err
	}
	if int(h.Size) < wire.HeaderSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidSize, h.Size)
	}
	if len(b) < int(h.Size) {
		return nil, fmt.Errorf("%w: %d of %d bytes", ErrTruncated, len(b), h.Size)
	}

	m, err := message.Decode(message.Type(h.Type), b[wire.HeaderSize:h.Size])
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &Packet{Header: h, Message: m}, nil
}

// MarshalBinary encodes the packet. Header.Size and Header.Type are
// recomputed from Message; every other header field is written as is.
func (p *Packet) MarshalBinary() ([]byte, error) {
	payload, err := encodePayload(p.Message)
	if err != nil {
		return nil, err
	}
	return p.frame(payload)
}

// Type returns the catalog type of the carried message.
func (p *Packet) Type() message.Type {
	return message.Type(p.Header.Type)
}

// NewSource validates a caller-chosen source id.
func NewSource(v int64) (uint32, error) {
	return wire.CheckUint32("source", v)
}

func (p *Packet) frame(payload []byte) ([]byte, error) {
	h := p.Header
	h.Size = uint16(wire.HeaderSize + len(payload))
	h.Type = uint16(p.Message.Type())

	header, err := wire.EncodeHeader(h)
	if err != nil {
		return nil, err
	}
	return append(header, payload...), nil
}

func build(m message.Message, opts Options) (*Packet, []byte, error) {
	payload, err := encodePayload(m)
	if err != nil {
		return nil, nil, err
	}

	var h wire.Header
	h.Size = uint16(wire.HeaderSize + len(payload))
	h.Tagged = opts.Tagged
	h.Addressable = true
	h.Protocol = wire.ProtocolNumber
	h.Source = opts.Source
	h.Target = opts.Target
	h.ResRequired = opts.ResRequired
	h.AckRequired = opts.AckRequired
	h.Sequence = opts.Sequence
	h.Type = uint16(m.Type())

	return &Packet{Header: h, Message: m}, payload, nil
}

func encodePayload(m message.Message) ([]byte, error) {
	if m == nil {
		return nil, message.ErrNilMessage
	}
	payload, err := message.Encode(m)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", m.Type(), err)
	}
	if len(payload) > MaxPayloadSize {
		return nil, &wire.InvalidValueError{Field: "payload", Value: len(payload), Reason: "does not fit a 16-bit packet size"}
	}
	return payload, nil
}
