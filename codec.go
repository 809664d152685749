package codec

import (
	"io"

	"github.com/blockmap/codec/decode"
	"github.com/blockmap/codec/encode"
	"github.com/blockmap/codec/world"
)

// Load routes r to a decoder chosen by name's case-insensitive file
// extension, per decode.Load.
func Load(name string, r io.Reader, opts ...decode.Option) (*world.World, error) {
	return decode.Load(name, r, opts...)
}

// DecodeLvl decodes an MCSharp .lvl stream.
func DecodeLvl(r io.Reader, opts ...decode.Option) (*world.World, error) {
	return decode.Lvl(r, opts...)
}

// DecodeFcm decodes an fCraft .fcm stream.
func DecodeFcm(r io.Reader, opts ...decode.Option) (*world.World, error) {
	return decode.Fcm(r, opts...)
}

// DecodeCw decodes a ClassicWorld .cw stream.
func DecodeCw(r io.Reader, opts ...decode.Option) (*world.World, error) {
	return decode.Cw(r, opts...)
}

// DecodeDat decodes a Minecraft Classic server .dat save.
func DecodeDat(r io.Reader, opts ...decode.Option) (*world.World, error) {
	return decode.Dat(r, opts...)
}

// EncodeCw writes w as a ClassicWorld NBT document.
func EncodeCw(out io.Writer, w *world.World, opts ...encode.CWOption) error {
	return encode.Cw(out, w, opts...)
}

// EncodeSchematic writes w as a minimal Schematic NBT document.
func EncodeSchematic(out io.Writer, w *world.World) error {
	return encode.Schematic(out, w)
}
