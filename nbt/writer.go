package nbt

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer emits NBT tags to an io.Writer in the same big-endian, length-
// prefixed wire format Read consumes. Unlike Read, it has no callback or
// tree model: callers sequence writes themselves, opening and closing
// Dicts and Lists explicitly. This mirrors the decoder's tag-kind
// vocabulary rather than duplicating a separate one.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w for sequential tag writes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered by any write call, if any.
func (nw *Writer) Err() error {
	return nw.err
}

func (nw *Writer) write(b []byte) {
	if nw.err != nil {
		return
	}
	_, nw.err = nw.w.Write(b)
}

func (nw *Writer) writeName(name string) {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(name))) //nolint:gosec
	nw.write(lenBuf[:])
	nw.write([]byte(name))
}

// writeKindName writes the one-byte kind tag followed by the name, the
// prologue every named (Dict-entry) tag shares.
func (nw *Writer) writeKindName(kind Kind, name string) {
	nw.write([]byte{byte(kind)})
	nw.writeName(name)
}

// OpenDict writes a named Dict tag's header. It must be paired with an
// End call once every entry has been written.
func (nw *Writer) OpenDict(name string) {
	nw.writeKindName(KindDict, name)
}

// End writes the Dict terminator (kind End, unnamed).
func (nw *Writer) End() {
	nw.write([]byte{byte(KindEnd)})
}

// WriteI8 writes a named one-byte integer tag.
func (nw *Writer) WriteI8(name string, v int8) {
	nw.writeKindName(KindI8, name)
	nw.write([]byte{byte(v)})
}

// WriteI16 writes a named big-endian two-byte integer tag.
func (nw *Writer) WriteI16(name string, v int16) {
	nw.writeKindName(KindI16, name)
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v)) //nolint:gosec
	nw.write(buf[:])
}

// WriteI32 writes a named big-endian four-byte integer tag.
func (nw *Writer) WriteI32(name string, v int32) {
	nw.writeKindName(KindI32, name)
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v)) //nolint:gosec
	nw.write(buf[:])
}

// WriteF32 writes a named big-endian IEEE-754 float tag.
func (nw *Writer) WriteF32(name string, v float32) {
	nw.writeKindName(KindF32, name)
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(v))
	nw.write(buf[:])
}

// WriteI8Array writes a named byte-array tag: a big-endian u32 length
// prefix followed by the raw bytes.
func (nw *Writer) WriteI8Array(name string, data []byte) {
	nw.writeKindName(KindI8Array, name)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data))) //nolint:gosec
	nw.write(lenBuf[:])
	nw.write(data)
}

// WriteI8ArrayZeros writes a named byte-array tag whose content is n zero
// bytes, streamed in fixed-size chunks so the caller never has to allocate
// a parallel n-byte zero buffer.
func (nw *Writer) WriteI8ArrayZeros(name string, n int) {
	nw.writeKindName(KindI8Array, name)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(n)) //nolint:gosec
	nw.write(lenBuf[:])

	const chunkSize = 8192
	var zeros [chunkSize]byte
	for n > 0 {
		c := chunkSize
		if n < c {
			c = n
		}
		nw.write(zeros[:c])
		n -= c
	}
}

// WriteString writes a named UTF-8 string tag with a big-endian u16
// length prefix counting bytes, not runes.
func (nw *Writer) WriteString(name, s string) {
	nw.writeKindName(KindString, name)
	nw.writeName(s)
}

// OpenEmptyList writes a named List tag with the given child kind and a
// zero count; this module never writes non-empty lists (Entities and
// TileEntities are always empty on write).
func (nw *Writer) OpenEmptyList(name string, childKind Kind) {
	nw.writeKindName(KindList, name)
	nw.write([]byte{byte(childKind)})
	var countBuf [4]byte // count == 0
	nw.write(countBuf[:])
}
