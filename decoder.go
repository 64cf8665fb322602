package varuint

import (
	"errors"
	"io"
	"math"

	"github.com/calebcase/oops"
)

// Decoder reads variable-length integers from a byte source. Successive
// calls walk a contiguously packed stream; a source that is cleanly
// exhausted before a header byte yields io.EOF.
//
// The typed methods decode the full value and then reject values that do
// not fit the requested type with ErrOverflow, so a narrow read never wraps
// silently.
type Decoder struct {
	r   io.Reader
	buf [MaxSize]byte
}

// NewDecoder returns a new decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Uint64 reads the next value.
func (d *Decoder) Uint64() (v uint64, err error) {
	_, err = io.ReadFull(d.r, d.buf[:1])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}

		return 0, oops.Trace(err)
	}

	return decode(d.r, &d.buf)
}

// Uint32 reads the next value, rejecting values above math.MaxUint32.
func (d *Decoder) Uint32() (v uint32, err error) {
	u, err := d.Uint64()
	if err != nil {
		return 0, err
	}

	if u > math.MaxUint32 {
		return 0, ErrOverflow
	}

	return uint32(u), nil
}

// Uint16 reads the next value, rejecting values above math.MaxUint16.
func (d *Decoder) Uint16() (v uint16, err error) {
	u, err := d.Uint64()
	if err != nil {
		return 0, err
	}

	if u > math.MaxUint16 {
		return 0, ErrOverflow
	}

	return uint16(u), nil
}

// Uint8 reads the next value, rejecting values above math.MaxUint8.
func (d *Decoder) Uint8() (v uint8, err error) {
	u, err := d.Uint64()
	if err != nil {
		return 0, err
	}

	if u > math.MaxUint8 {
		return 0, ErrOverflow
	}

	return uint8(u), nil
}

// Int64 reads the next value and inverts the zigzag interleaving.
func (d *Decoder) Int64() (v int64, err error) {
	u, err := d.Uint64()
	if err != nil {
		return 0, err
	}

	return unzigzag(u), nil
}

// Int32 reads the next signed value, rejecting values outside the int32
// range.
func (d *Decoder) Int32() (v int32, err error) {
	i, err := d.Int64()
	if err != nil {
		return 0, err
	}

	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, ErrOverflow
	}

	return int32(i), nil
}

// Int16 reads the next signed value, rejecting values outside the int16
// range.
func (d *Decoder) Int16() (v int16, err error) {
	i, err := d.Int64()
	if err != nil {
		return 0, err
	}

	if i < math.MinInt16 || i > math.MaxInt16 {
		return 0, ErrOverflow
	}

	return int16(i), nil
}

// Int8 reads the next signed value, rejecting values outside the int8
// range.
func (d *Decoder) Int8() (v int8, err error) {
	i, err := d.Int64()
	if err != nil {
		return 0, err
	}

	if i < math.MinInt8 || i > math.MaxInt8 {
		return 0, ErrOverflow
	}

	return int8(i), nil
}
