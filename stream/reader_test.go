package stream

import (
	"bytes"
	"testing"

	"github.com/blockmap/codec/format"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadExact(t *testing.T) {
	r := New(bytes.NewReader([]byte{1, 2, 3, 4}))

	b, err := r.ReadExact(2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, b)
	require.EqualValues(t, 2, r.Offset())

	_, err = r.ReadExact(3)
	require.ErrorIs(t, err, format.ErrShortRead)
}

func TestReader_Skip(t *testing.T) {
	r := New(bytes.NewReader([]byte{1, 2, 3, 4}))

	require.NoError(t, r.Skip(2))
	require.EqualValues(t, 2, r.Offset())

	b, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(3), b)

	require.ErrorIs(t, r.Skip(10), format.ErrShortRead)
}

func TestReader_SkipZero(t *testing.T) {
	r := New(bytes.NewReader(nil))
	require.NoError(t, r.Skip(0))
}

func TestReader_IntegerReads(t *testing.T) {
	r := New(bytes.NewReader([]byte{0x01, 0x02, 0x00, 0x00, 0x00, 0x03}))

	u16le, err := r.ReadU16LE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0201), u16le)

	u32be, err := r.ReadU32BE()
	require.NoError(t, err)
	require.Equal(t, uint32(0x00000003), u32be)
}

func TestReader_ReadU16BE(t *testing.T) {
	r := New(bytes.NewReader([]byte{0x01, 0x02}))

	v, err := r.ReadU16BE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), v)
}

func TestReader_ReadF32BE(t *testing.T) {
	// 1.0f in IEEE-754 big-endian: 0x3F800000
	r := New(bytes.NewReader([]byte{0x3F, 0x80, 0x00, 0x00}))

	v, err := r.ReadF32BE()
	require.NoError(t, err)
	require.InDelta(t, float32(1.0), v, 1e-9)
}

func TestReader_ReadInto(t *testing.T) {
	r := New(bytes.NewReader([]byte{9, 8, 7}))

	buf := make([]byte, 3)
	require.NoError(t, r.ReadInto(buf))
	require.Equal(t, []byte{9, 8, 7}, buf)
}
