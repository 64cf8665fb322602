package varuint_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/varuint"
)

func TestRoundtripMixed(t *testing.T) {
	// A packed stream of mixed widths and signs decodes back exactly, in
	// order, with no framing between values.
	mark := oops.New("unexpected")

	buf := bytes.NewBuffer(nil)
	e := varuint.NewEncoder(buf)

	written := 0

	step := func(n int, err error) {
		require.NoError(t, err, mark)
		written += n
	}

	step(e.Uint8(7))
	step(e.Int8(-7))
	step(e.Uint16(2032))
	step(e.Int16(math.MinInt16))
	step(e.Uint32(math.MaxUint32))
	step(e.Int32(-123456789))
	step(e.Uint64(math.MaxUint64))
	step(e.Int64(math.MinInt64))

	require.Equal(t, written, buf.Len(), mark)

	d := varuint.NewDecoder(buf)

	u8, err := d.Uint8()
	require.NoError(t, err, mark)
	require.Equal(t, uint8(7), u8)

	i8, err := d.Int8()
	require.NoError(t, err, mark)
	require.Equal(t, int8(-7), i8)

	u16, err := d.Uint16()
	require.NoError(t, err, mark)
	require.Equal(t, uint16(2032), u16)

	i16, err := d.Int16()
	require.NoError(t, err, mark)
	require.Equal(t, int16(math.MinInt16), i16)

	u32, err := d.Uint32()
	require.NoError(t, err, mark)
	require.Equal(t, uint32(math.MaxUint32), u32)

	i32, err := d.Int32()
	require.NoError(t, err, mark)
	require.Equal(t, int32(-123456789), i32)

	u64, err := d.Uint64()
	require.NoError(t, err, mark)
	require.Equal(t, uint64(math.MaxUint64), u64)

	i64, err := d.Int64()
	require.NoError(t, err, mark)
	require.Equal(t, int64(math.MinInt64), i64)

	require.Equal(t, 0, buf.Len(), mark)
}

func TestRoundtripFunctionsAndStream(t *testing.T) {
	// The package-level functions and the stream types share one wire
	// format: values written by one are readable by the other.
	buf := bytes.NewBuffer(nil)

	_, err := varuint.Encode(buf, 1099511627776)
	require.NoError(t, err)

	_, err = varuint.EncodeInt(buf, -1016)
	require.NoError(t, err)

	d := varuint.NewDecoder(buf)

	u, err := d.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(1099511627776), u)

	i, err := d.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-1016), i)

	buf.Reset()
	e := varuint.NewEncoder(buf)

	_, err = e.Uint64(67568)
	require.NoError(t, err)

	_, err = e.Int64(33783)
	require.NoError(t, err)

	u, err = varuint.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, uint64(67568), u)

	i, err = varuint.DecodeInt(buf)
	require.NoError(t, err)
	require.Equal(t, int64(33783), i)
}
