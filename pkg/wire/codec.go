package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encoder writes little-endian fields into a fixed-size buffer.
//
// The first failure is sticky: later writes are ignored and Err returns it.
type Encoder struct {
	buf []byte
	off int
	err error
}

// NewEncoder creates an encoder over a zeroed buffer of size bytes.
func NewEncoder(size int) *Encoder {
	return &Encoder{buf: make([]byte, size)}
}

// Bytes returns the encoded buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Err returns the first error recorded by the encoder.
func (e *Encoder) Err() error {
	return e.err
}

// Fail records err unless an earlier error is already pending.
func (e *Encoder) Fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *Encoder) next(n int) []byte {
	if e.err != nil {
		return nil
	}
	if e.off+n > len(e.buf) {
		e.err = fmt.Errorf("%w: write of %d bytes at offset %d exceeds %d", ErrShortBuffer, n, e.off, len(e.buf))
		return nil
	}
	b := e.buf[e.off : e.off+n]
	e.off += n
	return b
}

// PutUint8 writes a single byte.
func (e *Encoder) PutUint8(v uint8) {
	if b := e.next(1); b != nil {
		b[0] = v
	}
}

// PutBool writes 1 for true and 0 for false.
func (e *Encoder) PutBool(v bool) {
	var u uint8
	if v {
		u = 1
	}
	e.PutUint8(u)
}

// PutUint16 writes a little-endian uint16.
func (e *Encoder) PutUint16(v uint16) {
	if b := e.next(2); b != nil {
		binary.LittleEndian.PutUint16(b, v)
	}
}

// PutInt16 writes a two's complement int16.
func (e *Encoder) PutInt16(v int16) {
	e.PutUint16(Int16ToWire(v))
}

// PutUint32 writes a little-endian uint32.
func (e *Encoder) PutUint32(v uint32) {
	if b := e.next(4); b != nil {
		binary.LittleEndian.PutUint32(b, v)
	}
}

// PutUint64 writes a little-endian uint64.
func (e *Encoder) PutUint64(v uint64) {
	if b := e.next(8); b != nil {
		binary.LittleEndian.PutUint64(b, v)
	}
}

// PutFloat32 writes an IEEE-754 single in little-endian order.
func (e *Encoder) PutFloat32(v float32) {
	e.PutUint32(math.Float32bits(v))
}

// PutFixed writes v right-padded with zero bytes to width. Input longer
// than width is an error.
func (e *Encoder) PutFixed(field string, v []byte, width int) {
	if len(v) > width {
		e.Fail(invalidValue(field, len(v), fmt.Sprintf("exceeds %d bytes", width)))
		return
	}
	if b := e.next(width); b != nil {
		copy(b, v)
	}
}

// Zero skips n reserved bytes, leaving them zero.
func (e *Encoder) Zero(n int) {
	e.next(n)
}

// Decoder reads little-endian fields from a payload.
//
// Reads past the end record ErrShortBuffer and return zero values.
type Decoder struct {
	buf []byte
	off int
	err error
}

// NewDecoder creates a decoder over b.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Err returns the first error recorded by the decoder.
func (d *Decoder) Err() error {
	return d.err
}

// Fail records err unless an earlier error is already pending.
func (d *Decoder) Fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.off
}

func (d *Decoder) next(n int) []byte {
	if d.err != nil {
		return nil
	}
	if d.off+n > len(d.buf) {
		d.err = fmt.Errorf("%w: read of %d bytes at offset %d exceeds %d", ErrShortBuffer, n, d.off, len(d.buf))
		return nil
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b
}

// Uint8 reads a single byte.
func (d *Decoder) Uint8() uint8 {
	if b := d.next(1); b != nil {
		return b[0]
	}
	return 0
}

// Bool reads a byte that must be 0 or 1.
func (d *Decoder) Bool(field string) bool {
	v := d.Uint8()
	if v > 1 && d.err == nil {
		d.err = invalidValue(field, v, "boolean must be 0 or 1")
	}
	return v == 1
}

// Uint16 reads a little-endian uint16.
func (d *Decoder) Uint16() uint16 {
	if b := d.next(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

// Int16 reads a two's complement int16.
func (d *Decoder) Int16() int16 {
	return Int16FromWire(d.Uint16())
}

// Uint32 reads a little-endian uint32.
func (d *Decoder) Uint32() uint32 {
	if b := d.next(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

// Uint64 reads a little-endian uint64.
func (d *Decoder) Uint64() uint64 {
	if b := d.next(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

// Float32 reads a little-endian IEEE-754 single.
func (d *Decoder) Float32() float32 {
	return math.Float32frombits(d.Uint32())
}

// Fixed returns a copy of the next n bytes.
func (d *Decoder) Fixed(n int) []byte {
	b := d.next(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Label reads a LabelSize field and strips its NUL padding.
func (d *Decoder) Label() string {
	b := d.next(LabelSize)
	if b == nil {
		return ""
	}
	return TrimLabel(b)
}

// Skip ignores n reserved bytes.
func (d *Decoder) Skip(n int) {
	d.next(n)
}
