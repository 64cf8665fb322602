package varuint

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/calebcase/oops"
)

// Size returns the number of bytes Encode writes for v.
func Size(v uint64) int {
	return Classes.Of(v).Size
}

// Encode writes the minimal encoding of v to w and returns the number of
// bytes written. The sink is written exactly once; its failure is surfaced
// immediately and never retried.
func Encode(w io.Writer, v uint64) (n int, err error) {
	var buf [MaxSize]byte
	size := put(&buf, v)

	n, err = w.Write(buf[:size])
	if err != nil {
		return n, oops.Trace(err)
	}

	return n, nil
}

// Decode reads one encoded value from r.
//
// A source that ends cleanly before the header byte yields io.EOF, so
// contiguously packed values can be decoded in a loop. A source that ends
// after the header byte but before the payload yields ErrTruncated.
func Decode(r io.Reader) (v uint64, err error) {
	var buf [MaxSize]byte

	_, err = io.ReadFull(r, buf[:1])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}

		return 0, oops.Trace(err)
	}

	return decode(r, &buf)
}

// put fills buf with the encoding of v and returns the encoded size.
func put(buf *[MaxSize]byte, v uint64) (size int) {
	c := Classes.Of(v)
	size = c.Size

	switch c {
	case Class1:
		buf[0] = byte(v)
	case Class2:
		v -= 240
		buf[0] = byte(v/256) + 241
		buf[1] = byte(v % 256)
	case Class3:
		v -= 2032
		buf[0] = 248
		buf[1] = byte(v / 256)
		buf[2] = byte(v % 256)
	default:
		var be [8]byte
		binary.BigEndian.PutUint64(be[:], v)

		buf[0] = c.Header
		copy(buf[1:size], be[9-size:])
	}

	return size
}

// decode finishes reading a value whose header byte is already in buf[0].
func decode(r io.Reader, buf *[MaxSize]byte) (v uint64, err error) {
	c, ok := Classes.Match(buf[0])
	if !ok {
		return 0, ErrUnsupported
	}

	if c.Size > 1 {
		_, err = io.ReadFull(r, buf[1:c.Size])
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, ErrTruncated
			}

			return 0, oops.Trace(err)
		}
	}

	switch c {
	case Class1:
		v = uint64(buf[0])
	case Class2:
		v = 240 + 256*uint64(buf[0]-241) + uint64(buf[1])
	case Class3:
		v = 2032 + 256*uint64(buf[1]) + uint64(buf[2])
	default:
		var be [8]byte
		copy(be[9-c.Size:], buf[1:c.Size])

		v = binary.BigEndian.Uint64(be[:])
	}

	return v, nil
}
