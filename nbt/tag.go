package nbt

import "github.com/blockmap/codec/internal/pool"

// Kind discriminates the payload carried by a Tag. It mirrors the NBT type
// byte read directly off the wire.
type Kind uint8

const (
	KindEnd Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindR64
	KindI8Array
	KindString
	KindList
	KindDict
	KindI32Array
)

// SmallThreshold is the largest I8Array length copied into a Tag's inline
// buffer rather than allocated on the heap. Arrays at or below this size
// are cheap to copy and common (small metadata blobs); anything larger is
// almost always a block array, which callers take ownership of instead of
// copying.
const SmallThreshold = 64

// maxStringLen bounds the UTF-8 byte length of a String tag's inline
// buffer; CW never emits names or metadata strings anywhere near this long.
const maxStringLen = 1 << 15

// Tag is a single decoded NBT node. It is a borrowed view valid only for the
// duration of the callback that receives it — everything it points to is
// owned by the Reader's decode call, except a heap-allocated I8Array buffer
// which a callback may take ownership of via Take.
type Tag struct {
	Kind   Kind
	Name   string
	Parent *Tag

	I8  int8
	I16 int16
	I32 int32
	I64 int64
	F32 float32
	R64 float64

	Str string

	// array holds the I8Array bytes, whether inline-copied (small) or
	// heap-allocated (large). heap is true only in the latter case, and
	// only then is Take meaningful.
	array   []byte
	heap    bool
	taken   bool
	poolBuf *pool.ByteBuffer

	Children []*Tag // List elements (unnamed) or Dict entries (named)
}

// Depth returns the tag's distance from the root (the root Dict is depth 0).
func (t *Tag) Depth() int {
	d := 0
	for p := t.Parent; p != nil; p = p.Parent {
		d++
	}

	return d
}

// Bytes returns the I8Array payload. The returned slice is only valid until
// the decode call that produced it returns, unless the caller has taken it
// with Take.
func (t *Tag) Bytes() []byte {
	return t.array
}

// Take transfers ownership of a heap-allocated I8Array buffer to the
// caller and marks the tag as no longer owning it, so the Reader will not
// free or reuse it after the callback returns. Taking an inline (small) or
// already-taken buffer is a no-op that still returns the bytes, since inline
// buffers are never pooled.
func (t *Tag) Take() []byte {
	b := t.array
	if t.heap {
		t.taken = true
	}

	return b
}

// Child looks up a named Dict entry. It returns nil if absent or if the
// tag is not a Dict.
func (t *Tag) Child(name string) *Tag {
	for _, c := range t.Children {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// AncestorNamed reports whether any ancestor (searched from the immediate
// parent outward) has the given name, at any distance from the tag.
func (t *Tag) AncestorNamed(name string) bool {
	for p := t.Parent; p != nil; p = p.Parent {
		if p.Name == name {
			return true
		}
	}

	return false
}
