package encode

import (
	"io"

	"github.com/blockmap/codec/nbt"
	"github.com/blockmap/codec/world"
)

// Schematic writes w to out as a minimal Schematic NBT document:
// Materials="Classic", dimensions, the block array verbatim, a Data
// array of volume zero bytes, and empty Entities/TileEntities lists.
func Schematic(out io.Writer, w *world.World) error {
	nw := nbt.NewWriter(out)

	nw.OpenDict("Schematic")
	nw.WriteString("Materials", "Classic")
	nw.WriteI16("Width", int16(w.Width))   //nolint:gosec
	nw.WriteI16("Height", int16(w.Height)) //nolint:gosec
	nw.WriteI16("Length", int16(w.Length)) //nolint:gosec
	nw.WriteI8Array("Blocks", w.Blocks)
	nw.WriteI8ArrayZeros("Data", w.Volume())
	nw.OpenEmptyList("Entities", nbt.KindDict)
	nw.OpenEmptyList("TileEntities", nbt.KindDict)
	nw.End() // Schematic

	return nw.Err()
}
