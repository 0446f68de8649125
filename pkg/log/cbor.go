package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Capture events are flat: an Event map holding at most one nested section
// map, so the decoder limits are tight.
const (
	maxEventNesting  = 4
	maxEventMapPairs = 32
)

var eventEncMode, eventDecMode = mustEventModes()

// mustEventModes builds the capture codec. Map keys are the integer tags
// of Event and sorted canonically, so equal events encode to equal bytes.
// Timestamps keep nanoseconds to line up with wire timestamps.
func mustEventModes() (cbor.EncMode, cbor.DecMode) {
	enc, err := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("log: capture encoder: %v", err))
	}

	dec, err := cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		IndefLength:     cbor.IndefLengthForbidden,
		MaxNestedLevels: maxEventNesting,
		MaxMapPairs:     maxEventMapPairs,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("log: capture decoder: %v", err))
	}
	return enc, dec
}

// EncodeEvent encodes a single capture record.
func EncodeEvent(event Event) ([]byte, error) {
	return eventEncMode.Marshal(event)
}

// DecodeEvent decodes exactly one capture record. Trailing bytes are an
// error; use DecodeEvents for a concatenated capture.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// DecodeEvents splits a capture buffer into its records. On a damaged
// record it returns the events decoded so far together with the error.
func DecodeEvents(data []byte) ([]Event, error) {
	var events []Event
	for len(data) > 0 {
		var event Event
		rest, err := eventDecMode.UnmarshalFirst(data, &event)
		if err != nil {
			return events, fmt.Errorf("capture record %d: %w", len(events), err)
		}
		events = append(events, event)
		data = rest
	}
	return events, nil
}

// NewEncoder returns a streaming capture writer.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return eventEncMode.NewEncoder(w)
}

// NewDecoder returns a streaming capture reader.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return eventDecMode.NewDecoder(r)
}
