package nbt

import (
	"github.com/blockmap/codec/format"
	"github.com/blockmap/codec/internal/pool"
	"github.com/blockmap/codec/stream"
)

// Callback is invoked once per decoded tag, post-order: a Dict's children
// are all decoded (and their own callbacks fired) before the Dict's own
// callback runs. The tag's Parent chain is valid for the duration of the
// call; AncestorNamed and Depth let a callback dispatch on path rather than
// tracking state itself.
type Callback func(tag *Tag) error

// Read decodes one top-level tag from r, which must be a Dict, and drives
// cb once per tag in post-order. It returns format.ErrCwRootTag if the
// top-level kind byte is not KindDict.
func Read(r *stream.Reader, cb Callback) error {
	kindByte, err := r.ReadU8()
	if err != nil {
		return err
	}
	if Kind(kindByte) != KindDict {
		return format.ErrCwRootTag
	}

	name, err := readName(r)
	if err != nil {
		return err
	}

	root := &Tag{Kind: KindDict, Name: name}

	if err := readDictBody(r, root, cb); err != nil {
		return err
	}

	return cb(root)
}

func readName(r *stream.Reader) (string, error) {
	n, err := r.ReadU16BE()
	if err != nil {
		return "", err
	}
	if int(n) > maxStringLen {
		return "", format.ErrCwStringLen
	}

	b, err := r.ReadExact(int(n))
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// readTag decodes one tag of the given kind. named controls whether a name
// is read first (true for top-level and Dict entries, false for List
// elements). parent is the enclosing tag, used for the callback's ancestor
// chain.
func readTag(r *stream.Reader, kind Kind, named bool, parent *Tag, cb Callback) (*Tag, error) {
	tag := &Tag{Kind: kind, Parent: parent}

	if named {
		name, err := readName(r)
		if err != nil {
			return nil, err
		}
		tag.Name = name
	}

	switch kind {
	case KindEnd:
		return tag, nil

	case KindI8:
		v, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		tag.I8 = int8(v) //nolint:gosec

	case KindI16:
		v, err := r.ReadU16BE()
		if err != nil {
			return nil, err
		}
		tag.I16 = int16(v) //nolint:gosec

	case KindI32:
		v, err := r.ReadU32BE()
		if err != nil {
			return nil, err
		}
		tag.I32 = int32(v) //nolint:gosec

	case KindI64:
		hi, err := r.ReadU32BE()
		if err != nil {
			return nil, err
		}
		lo, err := r.ReadU32BE()
		if err != nil {
			return nil, err
		}
		tag.I64 = int64(hi)<<32 | int64(lo) //nolint:gosec

	case KindF32:
		v, err := r.ReadF32BE()
		if err != nil {
			return nil, err
		}
		tag.F32 = v

	case KindR64:
		// R64 (double) is never consumed by any decoder in scope; its
		// 8 bytes are discarded to keep the stream aligned.
		if err := r.Skip(8); err != nil {
			return nil, err
		}

	case KindI8Array:
		if err := readI8Array(r, tag); err != nil {
			return nil, err
		}

	case KindString:
		s, err := readName(r)
		if err != nil {
			return nil, err
		}
		tag.Str = s

	case KindList:
		if err := readList(r, tag, cb); err != nil {
			return nil, err
		}

	case KindDict:
		if err := readDictBody(r, tag, cb); err != nil {
			return nil, err
		}

	case KindI32Array:
		return nil, format.ErrNbtInt32s

	default:
		return nil, format.ErrNbtUnknown
	}

	if err := cb(tag); err != nil {
		return nil, err
	}

	if tag.heap && !tag.taken && tag.poolBuf != nil {
		pool.PutScratchBuffer(tag.poolBuf)
		tag.poolBuf = nil
	}

	return tag, nil
}

func readI8Array(r *stream.Reader, tag *Tag) error {
	n, err := r.ReadU32BE()
	if err != nil {
		return err
	}

	size := int(n) //nolint:gosec

	if size <= SmallThreshold {
		b, err := r.ReadExact(size)
		if err != nil {
			return err
		}
		tag.array = b

		return nil
	}

	bb := pool.GetScratchBuffer()
	bb.Grow(size)
	bb.SetLength(size)
	if err := r.ReadInto(bb.B); err != nil {
		pool.PutScratchBuffer(bb)

		return err
	}

	tag.array = bb.B
	tag.heap = true
	tag.poolBuf = bb

	return nil
}

func readList(r *stream.Reader, tag *Tag, cb Callback) error {
	childKindByte, err := r.ReadU8()
	if err != nil {
		return err
	}
	childKind := Kind(childKindByte)

	count, err := r.ReadU32BE()
	if err != nil {
		return err
	}

	tag.Children = make([]*Tag, 0, count)
	for range count {
		child, err := readTag(r, childKind, false, tag, cb)
		if err != nil {
			return err
		}
		tag.Children = append(tag.Children, child)
	}

	return nil
}

// readDictBody reads a Dict's named entries up to its End terminator. It
// does not invoke cb for tag itself — the caller does that once, after this
// returns, so Dict callbacks fire exactly once regardless of nesting depth.
func readDictBody(r *stream.Reader, tag *Tag, cb Callback) error {
	for {
		childKindByte, err := r.ReadU8()
		if err != nil {
			return err
		}
		childKind := Kind(childKindByte)

		if childKind == KindEnd {
			return nil
		}

		child, err := readTag(r, childKind, true, tag, cb)
		if err != nil {
			return err
		}
		tag.Children = append(tag.Children, child)
	}
}
