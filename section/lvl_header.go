package section

import (
	"github.com/blockmap/codec/endian"
	"github.com/blockmap/codec/format"
)

// LvlHeader is the 18-byte fixed header at the start of an MCSharp .lvl
// stream (little-endian throughout), read after GZIP decompression.
type LvlHeader struct {
	Magic       uint16 // offset 0-1, must equal LvlMagic
	Width       uint16 // offset 2-3
	Length      uint16 // offset 4-5
	Height      uint16 // offset 6-7
	SpawnX      uint16 // offset 8-9
	SpawnZ      uint16 // offset 10-11
	SpawnY      uint16 // offset 12-13
	Yaw         uint8  // offset 14
	Pitch       uint8  // offset 15
	Permissions uint16 // offset 16-17, ignored
}

// Parse decodes a LvlHeader from exactly LvlHeaderSize bytes.
func (h *LvlHeader) Parse(data []byte) error {
	if len(data) != LvlHeaderSize {
		return format.ErrShortRead
	}

	engine := endian.GetLittleEndianEngine()

	h.Magic = engine.Uint16(data[0:2])
	if h.Magic != LvlMagic {
		return format.ErrLvlVersion
	}

	h.Width = engine.Uint16(data[2:4])
	h.Length = engine.Uint16(data[4:6])
	h.Height = engine.Uint16(data[6:8])
	h.SpawnX = engine.Uint16(data[8:10])
	h.SpawnZ = engine.Uint16(data[10:12])
	h.SpawnY = engine.Uint16(data[12:14])
	h.Yaw = data[14]
	h.Pitch = data[15]
	h.Permissions = engine.Uint16(data[16:18])

	return nil
}

// Bytes serializes the header back into LvlHeaderSize bytes.
func (h *LvlHeader) Bytes() []byte {
	b := make([]byte, LvlHeaderSize)

	engine := endian.GetLittleEndianEngine()

	engine.PutUint16(b[0:2], h.Magic)
	engine.PutUint16(b[2:4], h.Width)
	engine.PutUint16(b[4:6], h.Length)
	engine.PutUint16(b[6:8], h.Height)
	engine.PutUint16(b[8:10], h.SpawnX)
	engine.PutUint16(b[10:12], h.SpawnZ)
	engine.PutUint16(b[12:14], h.SpawnY)
	b[14] = h.Yaw
	b[15] = h.Pitch
	engine.PutUint16(b[16:18], h.Permissions)

	return b
}

// Volume returns the number of raw block-id bytes following the header.
func (h *LvlHeader) Volume() int {
	return int(h.Width) * int(h.Length) * int(h.Height)
}
