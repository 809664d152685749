package section

import (
	"github.com/blockmap/codec/endian"
	"github.com/blockmap/codec/format"
)

// FcmHeader is the 79-byte fixed header at the start of an fCraft .fcm
// stream, stored uncompressed ahead of the GZIP-compressed remainder.
// Fields are little-endian except where noted; unused byte ranges
// (date stamps, layer index) are preserved but not interpreted.
type FcmHeader struct {
	Magic    uint32 // offset 0-3, must equal FcmMagic
	Revision uint8  // offset 4, must equal FcmRevision
	Width    uint16 // offset 5-6
	Height   uint16 // offset 7-8
	Length   uint16 // offset 9-10

	// SpawnX/Y/Z are stored in 1/32-block fixed point; divide by 32 to
	// recover the float block coordinate.
	SpawnX int32 // offset 11-14
	SpawnY int32 // offset 15-18
	SpawnZ int32 // offset 19-22

	Yaw   uint8 // offset 23
	Pitch uint8 // offset 24

	DateCreated  [4]byte // offset 25-28, ignored
	DateModified [4]byte // offset 29-32, ignored

	UUID [16]byte // offset 33-48

	LayerIndex [26]byte // offset 49-74, ignored

	MetaCount uint32 // offset 75-78
}

// Parse decodes an FcmHeader from exactly FcmHeaderSize bytes.
func (h *FcmHeader) Parse(data []byte) error {
	if len(data) != FcmHeaderSize {
		return format.ErrShortRead
	}

	engine := endian.GetLittleEndianEngine()

	h.Magic = engine.Uint32(data[0:4])
	if h.Magic != FcmMagic {
		return format.ErrFcmIdentifier
	}

	h.Revision = data[4]
	if h.Revision != FcmRevision {
		return format.ErrFcmRevision
	}

	h.Width = engine.Uint16(data[5:7])
	h.Height = engine.Uint16(data[7:9])
	h.Length = engine.Uint16(data[9:11])

	h.SpawnX = int32(engine.Uint32(data[11:15])) //nolint:gosec
	h.SpawnY = int32(engine.Uint32(data[15:19])) //nolint:gosec
	h.SpawnZ = int32(engine.Uint32(data[19:23])) //nolint:gosec

	h.Yaw = data[23]
	h.Pitch = data[24]

	copy(h.DateCreated[:], data[25:29])
	copy(h.DateModified[:], data[29:33])
	copy(h.UUID[:], data[33:49])
	copy(h.LayerIndex[:], data[49:75])

	h.MetaCount = engine.Uint32(data[75:79])

	return nil
}

// Bytes serializes the header back into FcmHeaderSize bytes.
func (h *FcmHeader) Bytes() []byte {
	b := make([]byte, FcmHeaderSize)

	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(b[0:4], h.Magic)
	b[4] = h.Revision
	engine.PutUint16(b[5:7], h.Width)
	engine.PutUint16(b[7:9], h.Height)
	engine.PutUint16(b[9:11], h.Length)
	engine.PutUint32(b[11:15], uint32(h.SpawnX)) //nolint:gosec
	engine.PutUint32(b[15:19], uint32(h.SpawnY)) //nolint:gosec
	engine.PutUint32(b[19:23], uint32(h.SpawnZ)) //nolint:gosec
	b[23] = h.Yaw
	b[24] = h.Pitch
	copy(b[25:29], h.DateCreated[:])
	copy(b[29:33], h.DateModified[:])
	copy(b[33:49], h.UUID[:])
	copy(b[49:75], h.LayerIndex[:])
	engine.PutUint32(b[75:79], h.MetaCount)

	return b
}

// Volume returns the number of raw block-id bytes following the metadata
// triples in the decompressed tail.
func (h *FcmHeader) Volume() int {
	return int(h.Width) * int(h.Height) * int(h.Length)
}

// SpawnXf, SpawnYf, SpawnZf return the fixed-point spawn coordinates as
// floats in block units.
func (h *FcmHeader) SpawnXf() float32 { return float32(h.SpawnX) / 32.0 }
func (h *FcmHeader) SpawnYf() float32 { return float32(h.SpawnY) / 32.0 }
func (h *FcmHeader) SpawnZf() float32 { return float32(h.SpawnZ) / 32.0 }
