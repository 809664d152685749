// Package stream provides the exact-length, non-seeking byte-stream
// primitives every decoder in this module is built on.
package stream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/blockmap/codec/format"
)

// Reader wraps an io.Reader with exact-length reads and typed integer/float
// accessors in both byte orders. It never seeks and never buffers more than
// the current read requires, matching the non-seeking contract every
// decoder in this module depends on (a GZIP member or a DEFLATE payload
// cannot be rewound).
type Reader struct {
	r      io.Reader
	offset int64
}

// New wraps r for exact-length reads.
func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far, for error context.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadExact reads exactly n bytes or returns format.ErrShortRead.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, format.ErrShortRead
	}
	r.offset += int64(n)

	return buf, nil
}

// ReadInto reads exactly len(buf) bytes into buf.
func (r *Reader) ReadInto(buf []byte) error {
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return format.ErrShortRead
	}
	r.offset += int64(len(buf))

	return nil
}

// Skip discards exactly n bytes.
func (r *Reader) Skip(n int) error {
	if n == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, r.r, int64(n)); err != nil {
		return format.ErrShortRead
	}
	r.offset += int64(n)

	return nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadExact(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadU16LE reads a little-endian uint16.
func (r *Reader) ReadU16LE() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

// ReadU16BE reads a big-endian uint16.
func (r *Reader) ReadU16BE() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

// ReadU32LE reads a little-endian uint32.
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

// ReadU32BE reads a big-endian uint32.
func (r *Reader) ReadU32BE() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

// ReadI32BE reads a big-endian int32.
func (r *Reader) ReadI32BE() (int32, error) {
	v, err := r.ReadU32BE()
	if err != nil {
		return 0, err
	}

	return int32(v), nil //nolint:gosec
}

// ReadF32BE reads a big-endian IEEE-754 float32.
func (r *Reader) ReadF32BE() (float32, error) {
	v, err := r.ReadU32BE()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}
