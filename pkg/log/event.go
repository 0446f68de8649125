package log

import "time"

// Event represents a protocol capture event at either layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the codec that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates packet flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Target is the device address in the packet header, as printed by
	// wire.Target.String.
	Target string `cbor:"6,keyasint,omitempty"`

	// Source is the client correlation id in the packet header.
	Source uint32 `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame   *FrameEvent     `cbor:"10,keyasint,omitempty"` // Packet layer
	Message *MessageEvent   `cbor:"11,keyasint,omitempty"` // Message layer
	Error   *ErrorEventData `cbor:"14,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of packet flow.
type Direction uint8

const (
	// DirectionIn indicates a decoded packet.
	DirectionIn Direction = 0
	// DirectionOut indicates an encoded packet.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which codec layer captured the event.
type Layer uint8

const (
	// LayerPacket is the datagram layer (raw bytes).
	LayerPacket Layer = 0
	// LayerMessage is the catalog layer (decoded header and payload).
	LayerMessage Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerPacket:
		return "PACKET"
	case LayerMessage:
		return "MESSAGE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a protocol message.
	CategoryMessage Category = 0
	// CategoryError indicates an error event.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures raw datagram bytes.
type FrameEvent struct {
	// Size is the datagram size in bytes.
	Size int `cbor:"1,keyasint"`

	// Data is the raw datagram (may be truncated for large packets).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`
}

// MessageEvent captures a decoded message with its header metadata.
type MessageEvent struct {
	// Type is the numeric message type from the protocol header.
	Type uint16 `cbor:"1,keyasint"`

	// Name is the catalog name of the type, e.g. "LightSetColor".
	Name string `cbor:"2,keyasint"`

	// Role is "COMMAND", "REQUEST" or "RESPONSE".
	Role string `cbor:"3,keyasint,omitempty"`

	// Domain is "DEVICE" or "LIGHT".
	Domain string `cbor:"4,keyasint,omitempty"`

	// Sequence is the wrap-around sequence number.
	Sequence uint8 `cbor:"5,keyasint"`

	// PayloadSize is the payload length in bytes.
	PayloadSize int `cbor:"6,keyasint"`

	AckRequired bool `cbor:"7,keyasint,omitempty"`
	ResRequired bool `cbor:"8,keyasint,omitempty"`
	Tagged      bool `cbor:"9,keyasint,omitempty"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Kind names the error class, e.g. "INVALID_PAYLOAD_LENGTH".
	Kind string `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
