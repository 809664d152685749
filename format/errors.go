package format

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per wire-level validation failure a decoder can hit.
// Decoders wrap these with *DecodeError to attach format name and offset
// context; callers compare with errors.Is against the bare sentinel.
var (
	// LVL (MCSharp .lvl)
	ErrLvlVersion = errors.New("lvl: unexpected format version")

	// FCM (fCraft .fcm)
	ErrFcmIdentifier = errors.New("fcm: bad identifier")
	ErrFcmRevision   = errors.New("fcm: unsupported revision")

	// NBT (shared by CW decode and CW/Schematic encode)
	ErrNbtInt32s  = errors.New("nbt: int array tags are not supported")
	ErrNbtUnknown = errors.New("nbt: unknown tag type")

	// CW (ClassicWorld .cw)
	ErrCwRootTag   = errors.New("cw: root tag is not a compound named ClassicWorld")
	ErrCwStringLen = errors.New("cw: string tag exceeds maximum length")

	// DAT (Minecraft Classic .dat)
	ErrDatIdentifier       = errors.New("dat: bad gzip-wrapped identifier")
	ErrDatVersion          = errors.New("dat: unsupported format version")
	ErrDatJIdentifier      = errors.New("dat: bad Java serialization stream magic")
	ErrDatJVersion         = errors.New("dat: unsupported Java serialization stream version")
	ErrDatRootType         = errors.New("dat: root object is not TC_OBJECT")
	ErrDatJStringLen       = errors.New("dat: Java UTF string exceeds maximum length")
	ErrDatJClassType       = errors.New("dat: expected TC_CLASSDESC or TC_NULL")
	ErrDatJClassFields     = errors.New("dat: class descriptor has too many fields")
	ErrDatJClassAnnotation = errors.New("dat: expected TC_ENDBLOCKDATA after class fields")
	ErrDatJFieldClassName  = errors.New("dat: malformed field class name string")
	ErrDatJObjectType      = errors.New("dat: expected TC_OBJECT or TC_NULL")
	ErrDatJArrayType       = errors.New("dat: expected TC_ARRAY or TC_NULL for array field")
	ErrDatJArrayContent    = errors.New("dat: array content is not a byte array")

	// ErrShortRead is returned by the stream reader when fewer bytes are
	// available than requested; decoders propagate it unchanged or wrap it.
	ErrShortRead = errors.New("stream: short read")

	// ErrUnknownFormat is returned by the dispatcher when a file name's
	// extension matches none of the four recognized container formats, and
	// by the GZIP header skipper when the magic or method bytes are wrong.
	ErrUnknownFormat = errors.New("format: unrecognized container format")
)

// DecodeError wraps a sentinel error with the format that produced it and the
// byte offset at which the failure was detected, giving callers enough
// context to report a useful diagnostic without string-parsing the message.
type DecodeError struct {
	Format Kind
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: offset %d: %v", e.Format, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError wraps err with the format and offset it was detected at.
// It returns nil if err is nil, so callers can write
// `return NewDecodeError(KindLvl, r.Offset(), err)` unconditionally.
func NewDecodeError(kind Kind, offset int64, err error) error {
	if err == nil {
		return nil
	}

	return &DecodeError{Format: kind, Offset: offset, Err: err}
}
