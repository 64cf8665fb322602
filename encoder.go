package varuint

import (
	"io"

	"github.com/calebcase/oops"
)

// Encoder writes variable-length integers to a byte sink. Successive values
// are packed contiguously; no delimiters are needed because the first byte
// of each value gives its total length.
//
// The encoder carries no state beyond a scratch buffer, so a value written
// through any of the typed methods is byte-identical to the 64-bit encoding
// of the same numeric value.
type Encoder struct {
	w   io.Writer
	buf [MaxSize]byte
}

// NewEncoder returns a new encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Uint64 writes v and returns the number of bytes written.
func (e *Encoder) Uint64(v uint64) (n int, err error) {
	size := put(&e.buf, v)

	n, err = e.w.Write(e.buf[:size])
	if err != nil {
		return n, oops.Trace(err)
	}

	return n, nil
}

// Uint32 writes v and returns the number of bytes written.
func (e *Encoder) Uint32(v uint32) (n int, err error) {
	return e.Uint64(uint64(v))
}

// Uint16 writes v and returns the number of bytes written.
func (e *Encoder) Uint16(v uint16) (n int, err error) {
	return e.Uint64(uint64(v))
}

// Uint8 writes v and returns the number of bytes written.
func (e *Encoder) Uint8(v uint8) (n int, err error) {
	return e.Uint64(uint64(v))
}

// Int64 writes v zigzag-interleaved and returns the number of bytes written.
func (e *Encoder) Int64(v int64) (n int, err error) {
	return e.Uint64(zigzag(v))
}

// Int32 writes v zigzag-interleaved and returns the number of bytes written.
func (e *Encoder) Int32(v int32) (n int, err error) {
	return e.Uint64(zigzag(int64(v)))
}

// Int16 writes v zigzag-interleaved and returns the number of bytes written.
func (e *Encoder) Int16(v int16) (n int, err error) {
	return e.Uint64(zigzag(int64(v)))
}

// Int8 writes v zigzag-interleaved and returns the number of bytes written.
func (e *Encoder) Int8(v int8) (n int, err error) {
	return e.Uint64(zigzag(int64(v)))
}
