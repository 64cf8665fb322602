package varuint

import "io"

// SizeInt returns the number of bytes EncodeInt writes for v.
func SizeInt(v int64) int {
	return Size(zigzag(v))
}

// EncodeInt writes the minimal encoding of v to w and returns the number of
// bytes written. The wire format is the unsigned one: v and zigzag(v)
// produce identical bytes.
func EncodeInt(w io.Writer, v int64) (n int, err error) {
	return Encode(w, zigzag(v))
}

// DecodeInt reads one encoded signed value from r. Error conditions are
// those of Decode.
func DecodeInt(r io.Reader) (v int64, err error) {
	u, err := Decode(r)
	if err != nil {
		return 0, err
	}

	return unzigzag(u), nil
}
