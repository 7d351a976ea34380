package bitio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorScalars(t *testing.T) {
	w := NewWriter()
	w.PutU8(0x12)
	w.PutU16(0x3456)
	w.PutU32(0x789ABCDE)
	w.PutI16(-2)
	w.PutI32(-3)
	w.PutF32(1.5)
	w.PutU64(0x0102030405060708)
	w.PutF64(2.5)

	c := NewCursor(w.Bytes())

	u8, err := c.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x12), u8)

	u16, err := c.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x3456), u16)

	u32, err := c.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x789ABCDE), u32)

	i16, err := c.I16()
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	i32, err := c.I32()
	require.NoError(t, err)
	assert.Equal(t, int32(-3), i32)

	f32, err := c.F32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f32)

	u64, err := c.U64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)

	f64, err := c.F64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f64)

	assert.Equal(t, 0, c.Remaining())
}

func TestCursorTruncated(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	_, err := c.U32()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestCursorBytesCopiesUnderlying(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	c := NewCursor(src)
	got, err := c.Bytes(4)
	require.NoError(t, err)
	got[0] = 0xFF
	assert.Equal(t, byte(1), src[0], "Bytes must return a copy, not a window into the source")
}

func TestBitReaderMSBFirst(t *testing.T) {
	// 0b101_11_0_01 -> field widths 3,2,1,2
	r := NewBitReader(0b10111001)
	assert.Equal(t, uint8(0b101), r.Bits(3))
	assert.Equal(t, uint8(0b11), r.Bits(2))
	assert.False(t, r.Bool())
	assert.Equal(t, uint8(0b01), r.Bits(2))
}

func TestBitWriterRoundTrip(t *testing.T) {
	w := NewBitWriter()
	w.PutBits(0b101, 3)
	w.PutBits(0b11, 2)
	w.PutBool(false)
	w.PutBits(0b01, 2)

	r := NewBitReader(w.Byte())
	assert.Equal(t, uint8(0b101), r.Bits(3))
	assert.Equal(t, uint8(0b11), r.Bits(2))
	assert.False(t, r.Bool())
	assert.Equal(t, uint8(0b01), r.Bits(2))
}
