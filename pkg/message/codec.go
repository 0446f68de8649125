package message

import (
	"bytes"

	"github.com/lifx-protocol/lifx-go/pkg/wire"
)

// Decode turns a payload into the message variant registered for t.
//
// The payload length must equal the catalog size of t exactly. Field values
// outside their domain produce a MalformedPayloadError wrapping the
// validation error.
func Decode(t Type, payload []byte) (Message, error) {
	entry, ok := catalog[t]
	if !ok {
		return nil, &UnknownMessageTypeError{Type: t}
	}
	if len(payload) != entry.Size {
		return nil, &InvalidPayloadLengthError{Type: t, Expected: entry.Size, Actual: len(payload)}
	}

	d := wire.NewDecoder(payload)
	m := entry.decode(d)
	if err := d.Err(); err != nil {
		return nil, &MalformedPayloadError{Type: t, Err: err}
	}
	return m, nil
}

// Encode serializes the payload of m.
//
// Raw messages are returned unchanged. Every other message is written into
// a buffer of its catalog size; an error means a field value was built
// outside its domain, for example a duration that is not whole milliseconds.
func Encode(m Message) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMessage
	}
	if raw, ok := m.(Raw); ok {
		return bytes.Clone(raw.Payload), nil
	}
	entry, ok := catalog[m.Type()]
	if !ok {
		return nil, &UnknownMessageTypeError{Type: m.Type()}
	}

	e := wire.NewEncoder(entry.Size)
	m.encode(e)
	if err := e.Err(); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}
