package model

import "github.com/lifx-protocol/lifx-go/pkg/wire"

// LabelSize is the wire width of a label.
const LabelSize = wire.LabelSize

// Label is a text label of at most 32 bytes. The zero value is the empty
// label. Labels can only be obtained through NewLabel or decoding, so every
// Label fits its field.
type Label struct {
	text string
}

// NewLabel validates text as a label. Longer text is rejected.
func NewLabel(text string) (Label, error) {
	if err := wire.CheckLabel("label", text); err != nil {
		return Label{}, err
	}
	return Label{text: text}, nil
}

// MustLabel is like NewLabel but panics on invalid input.
// Intended for constants and tests.
func MustLabel(text string) Label {
	l, err := NewLabel(text)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the label text.
func (l Label) String() string {
	return l.text
}

// Bytes returns the unpadded label bytes.
func (l Label) Bytes() []byte {
	return []byte(l.text)
}
