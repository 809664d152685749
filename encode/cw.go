// Package encode writes World aggregates back out to the formats this
// module can produce: the native ClassicWorld NBT document and a minimal
// Schematic export.
package encode

import (
	"io"

	"github.com/blockmap/codec/cp437"
	"github.com/blockmap/codec/nbt"
	"github.com/blockmap/codec/world"
)

const cwFormatVersion = 1

// Cw writes w to out as a ClassicWorld NBT document: FormatVersion, UUID,
// dimensions, Spawn, BlockArray (and BlockArray2 for extended-block
// worlds), a Metadata/CPE subtree of environment settings, and every
// populated block definition, written in descending id order so that
// readers honoring only the 8-bit ID tag still recover the correct
// first-256 definitions when more than 256 are present.
func Cw(out io.Writer, w *world.World, opts ...CWOption) error {
	cfg, err := newCWConfig(opts...)
	if err != nil {
		return err
	}

	nw := nbt.NewWriter(out)

	nw.OpenDict("ClassicWorld")
	nw.WriteI8("FormatVersion", cwFormatVersion)
	nw.WriteI8Array("UUID", w.UUID[:])
	nw.WriteI16("X", int16(w.Width))  //nolint:gosec
	nw.WriteI16("Y", int16(w.Height)) //nolint:gosec
	nw.WriteI16("Z", int16(w.Length)) //nolint:gosec

	nw.OpenDict("Spawn")
	nw.WriteI16("X", int16(w.Spawn.X))
	nw.WriteI16("Y", int16(w.Spawn.Y))
	nw.WriteI16("Z", int16(w.Spawn.Z))
	nw.WriteI8("H", int8(w.Spawn.Yaw))   //nolint:gosec
	nw.WriteI8("P", int8(w.Spawn.Pitch)) //nolint:gosec
	nw.End()

	nw.WriteI8Array("BlockArray", w.Blocks)

	extended := cfg.extendedBlocks || w.HasExtendedBlocks()
	if extended && w.BlocksUpper != nil {
		nw.WriteI8Array("BlockArray2", w.BlocksUpper)
	}

	writeCwMetadata(nw, w, cfg)

	nw.End() // ClassicWorld

	return nw.Err()
}

func writeCwMetadata(nw *nbt.Writer, w *world.World, cfg *CWConfig) {
	nw.OpenDict("Metadata")
	nw.OpenDict("CPE")

	nw.OpenDict("ClickDistance")
	nw.WriteI16("Distance", int16(w.Env.ClickDistance*32)) //nolint:gosec
	nw.End()

	nw.OpenDict("EnvWeatherType")
	nw.WriteI8("WeatherType", int8(w.Env.Weather)) //nolint:gosec
	nw.End()

	nw.OpenDict("EnvColors")
	writeCwColor(nw, "Sky", w.Env.SkyColor)
	writeCwColor(nw, "Cloud", w.Env.CloudColor)
	writeCwColor(nw, "Fog", w.Env.FogColor)
	writeCwColor(nw, "Ambient", w.Env.AmbientColor)
	writeCwColor(nw, "Sunlight", w.Env.SunlightColor)
	nw.End()

	nw.OpenDict("EnvMapAppearance")
	nw.WriteI8("SideBlock", int8(w.Env.SideBlock)) //nolint:gosec
	nw.WriteI8("EdgeBlock", int8(w.Env.EdgeBlock)) //nolint:gosec
	nw.WriteI16("SideLevel", w.Env.EdgeHeight)
	url := cfg.textureURL
	if url == "" {
		url = w.Env.TexturePackURL
	}
	nw.WriteString("TextureURL", url)
	nw.End()

	writeCwBlockDefs(nw, w)

	nw.End() // CPE

	nw.End() // Metadata
}

func writeCwColor(nw *nbt.Writer, name string, c world.RGB) {
	nw.OpenDict(name)
	nw.WriteI16("R", int16(c.R))
	nw.WriteI16("G", int16(c.G))
	nw.WriteI16("B", int16(c.B))
	nw.End()
}

const hexDigits = "0123456789abcdef"

// cwBlockDictName derives the four-hex-digit dict name used to give every
// per-block definition a distinct name, since the wire format needs no
// other identity for the dict itself.
func cwBlockDictName(id uint16) string {
	return string([]byte{
		hexDigits[(id>>12)&0xF],
		hexDigits[(id>>8)&0xF],
		hexDigits[(id>>4)&0xF],
		hexDigits[id&0xF],
	})
}

func writeCwBlockDefs(nw *nbt.Writer, w *world.World) {
	nw.OpenDict("BlockDefinitions")

	for id := 0xFFFF; id >= 1; id-- {
		if bd, ok := w.BlockDefs[uint16(id)]; ok {
			writeCwBlockDef(nw, bd)
		}
	}

	nw.End()
}

func writeCwBlockDef(nw *nbt.Writer, bd *world.BlockDef) {
	nw.OpenDict("Block" + cwBlockDictName(bd.ID))

	nw.WriteI8("ID", int8(bd.ID)) //nolint:gosec
	nw.WriteI16("ID2", int16(bd.ID))
	nw.WriteI8("CollideType", int8(bd.CollideType)) //nolint:gosec
	nw.WriteF32("Speed", bd.Speed)

	textures := make([]byte, 12)
	for i, t := range bd.Textures {
		textures[i] = byte(t)
		textures[6+i] = byte(t >> 8)
	}
	nw.WriteI8Array("Textures", textures)

	blocksLight := int8(1)
	if bd.BlocksLight {
		blocksLight = 0
	}
	nw.WriteI8("TransmitsLight", blocksLight)

	nw.WriteI8("WalkSound", int8(bd.WalkSound)) //nolint:gosec

	fullBright := int8(0)
	if bd.FullBright {
		fullBright = 1
	}
	nw.WriteI8("FullBright", fullBright)

	sprite := bd.Draw == world.DrawSprite

	shapeByte := int8(0)
	if !sprite {
		shapeByte = int8(bd.BBMax[1] * 16) //nolint:gosec
	}
	nw.WriteI8("Shape", shapeByte)

	drawByte := int8(bd.Draw) //nolint:gosec
	if sprite {
		drawByte = int8(bd.Shape) //nolint:gosec
	}
	nw.WriteI8("BlockDraw", drawByte)

	fogByte := byte(0)
	if bd.FogDensity != 0 {
		fogByte = world.FogDensityToByte(bd.FogDensity)
	}
	nw.WriteI8Array("Fog", []byte{fogByte, bd.FogColor.R, bd.FogColor.G, bd.FogColor.B})

	nw.WriteI8Array("Coords", []byte{
		byte(int8(bd.BBMin[0] * 16)), //nolint:gosec
		byte(int8(bd.BBMin[1] * 16)), //nolint:gosec
		byte(int8(bd.BBMin[2] * 16)), //nolint:gosec
		byte(int8(bd.BBMax[0] * 16)), //nolint:gosec
		byte(int8(bd.BBMax[1] * 16)), //nolint:gosec
		byte(int8(bd.BBMax[2] * 16)), //nolint:gosec
	})

	nw.WriteString("Name", cp437.ToUTF8([]byte(bd.Name)))

	nw.End()
}
