package message

import "github.com/lifx-protocol/lifx-go/pkg/wire"

// Message is a protocol message. The set of implementations is closed:
// the catalog variants defined in this package plus Raw.
type Message interface {
	// Type returns the catalog type identifier of the message.
	Type() Type

	encode(e *wire.Encoder)
}

// Raw is an opaque pass-through message. Encode returns its payload
// unchanged and never consults the catalog.
type Raw struct {
	MessageType Type
	Payload     []byte
}

// Type returns the carried type identifier.
func (m Raw) Type() Type { return m.MessageType }

func (Raw) encode(*wire.Encoder) {}
