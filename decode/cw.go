package decode

import (
	"io"
	"strings"

	"github.com/blockmap/codec/format"
	"github.com/blockmap/codec/gzipskip"
	"github.com/blockmap/codec/nbt"
	"github.com/blockmap/codec/stream"
	"github.com/blockmap/codec/world"
)

// Default environment colors, used whenever a wire EnvColors channel
// overflows a byte (the original client's fallback for corrupt data).
var (
	defaultSkyColor      = world.RGB{R: 0x99, G: 0xCC, B: 0xFF}
	defaultCloudColor    = world.RGB{R: 0xFF, G: 0xFF, B: 0xFF}
	defaultFogColor      = world.RGB{R: 0xC0, G: 0xD8, B: 0xFF}
	defaultSunlightColor = world.RGB{R: 0xFF, G: 0xFF, B: 0xFF}
	defaultAmbientColor  = world.RGB{R: 0x9B, G: 0x9B, B: 0xFF}
)

// cwDecoder holds the per-decode mutable state the NBT callback closure
// needs across calls — the standing "current block id" and in-flight RGB
// channel accumulation mirror the original decoder's module-scope globals,
// translated into state scoped to one decode call.
type cwDecoder struct {
	w   *world.World
	cfg *Config

	curID          uint16
	colR, colG, colB int
}

// Cw decodes a ClassicWorld .cw stream: GZIP header, then a root NBT Dict
// named ClassicWorld whose tags are dispatched by depth from root.
func Cw(r io.Reader, opts ...Option) (*world.World, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	inflated, err := gzipskip.NewReader(r)
	if err != nil {
		return nil, format.NewDecodeError(format.KindCw, 0, err)
	}
	sr := stream.New(inflated)

	d := &cwDecoder{w: world.New(), cfg: cfg}

	if err := nbt.Read(sr, d.callback); err != nil {
		return nil, format.NewDecodeError(format.KindCw, sr.Offset(), err)
	}

	d.fixupSpawn()

	if err := d.w.Validate(); err != nil {
		return nil, format.NewDecodeError(format.KindCw, sr.Offset(), err)
	}

	return d.w, nil
}

// fixupSpawn corrects older writers that multiplied spawn by 32: if the
// floored spawn point falls outside the world's bounds, rescale it down.
func (d *cwDecoder) fixupSpawn() {
	s := &d.w.Spawn
	x, y, z := int(s.X), int(s.Y), int(s.Z)

	if x < 0 || y < 0 || z < 0 ||
		x >= int(d.w.Width) || y >= int(d.w.Height) || z >= int(d.w.Length) {
		s.X /= 32
		s.Y /= 32
		s.Z /= 32
	}
}

func (d *cwDecoder) callback(tag *nbt.Tag) error {
	switch tag.Depth() {
	case 1:
		return d.callback1(tag)
	case 2:
		return d.callback2(tag)
	case 4:
		return d.callback4(tag)
	case 5:
		return d.callback5(tag)
	}

	return nil
}

// callback1 handles direct children of the ClassicWorld root.
func (d *cwDecoder) callback1(tag *nbt.Tag) error {
	switch tag.Name {
	case "X":
		d.w.Width = uint16(tag.I16) //nolint:gosec
	case "Y":
		d.w.Height = uint16(tag.I16) //nolint:gosec
	case "Z":
		d.w.Length = uint16(tag.I16) //nolint:gosec
	case "UUID":
		if len(tag.Bytes()) != 16 {
			return world.ErrInvalidUUID
		}
		copy(d.w.UUID[:], tag.Bytes())
	case "BlockArray":
		d.w.Blocks = tag.Take()
	case "BlockArray2":
		d.w.BlocksUpper = tag.Take()
	}

	return nil
}

// callback2 handles the Spawn sub-dict's X/Y/Z/H/P children.
func (d *cwDecoder) callback2(tag *nbt.Tag) error {
	if tag.Parent == nil || tag.Parent.Name != "Spawn" {
		return nil
	}

	switch tag.Name {
	case "X":
		d.w.Spawn.X = float32(tag.I16)
	case "Y":
		d.w.Spawn.Y = float32(tag.I16)
	case "Z":
		d.w.Spawn.Z = float32(tag.I16)
	case "H":
		d.w.Spawn.Yaw = uint8(tag.I8) //nolint:gosec
	case "P":
		d.w.Spawn.Pitch = uint8(tag.I8) //nolint:gosec
	}

	return nil
}

// callback4 handles depth-4 tags: the closing callback for an EnvColors
// channel dict, a block definition's own dict close, and the scalar
// ClickDistance/EnvWeatherType/EnvMapAppearance leaves.
func (d *cwDecoder) callback4(tag *nbt.Tag) error {
	if !ancestorIs(tag, 2, "CPE") || !ancestorIs(tag, 3, "Metadata") {
		return nil
	}

	switch tag.Parent.Name {
	case "ClickDistance":
		if tag.Name == "Distance" {
			d.w.Env.ClickDistance = float32(uint16(tag.I16)) / 32.0 //nolint:gosec
		}

		return nil

	case "EnvWeatherType":
		if tag.Name == "WeatherType" {
			d.w.Env.Weather = format.Weather(uint8(tag.I8)) //nolint:gosec
		}

		return nil

	case "EnvMapAppearance":
		switch tag.Name {
		case "SideBlock":
			d.w.Env.SideBlock = uint8(tag.I8) //nolint:gosec
		case "EdgeBlock":
			d.w.Env.EdgeBlock = uint8(tag.I8) //nolint:gosec
		case "SideLevel":
			d.w.Env.EdgeHeight = tag.I16
		case "TextureURL":
			d.w.Env.TexturePackURL = tag.Str
			if d.cfg.allowServerTextures && tag.Str != "" && d.cfg.textureFetcher != nil {
				d.cfg.textureFetcher(tag.Str)
			}
		}

		return nil

	case "EnvColors":
		var dst *world.RGB
		var def world.RGB

		switch tag.Name {
		case "Sky":
			dst, def = &d.w.Env.SkyColor, defaultSkyColor
		case "Cloud":
			dst, def = &d.w.Env.CloudColor, defaultCloudColor
		case "Fog":
			dst, def = &d.w.Env.FogColor, defaultFogColor
		case "Sunlight":
			dst, def = &d.w.Env.SunlightColor, defaultSunlightColor
		case "Ambient":
			dst, def = &d.w.Env.AmbientColor, defaultAmbientColor
		default:
			return nil
		}

		*dst = d.parseColor(def)

		return nil

	case "BlockDefinitions":
		if !d.cfg.allowCustomBlocks || !strings.HasPrefix(tag.Name, "Block") {
			return nil
		}

		bd := d.blockDef(d.curID)
		if bd.Shape == 0 {
			bd.Shape = uint8(bd.Draw)
			bd.Draw = world.DrawSprite
		} else {
			bd.Shape = 0
		}

		d.curID = 0

		return nil
	}

	return nil
}

// parseColor reads back the R/G/B channels callback5 stashed while
// descending into this color's sub-dict, clamping to def if any channel
// overflowed a byte.
func (d *cwDecoder) parseColor(def world.RGB) world.RGB {
	if d.colR > 255 || d.colG > 255 || d.colB > 255 {
		return def
	}

	return world.RGB{R: uint8(d.colR), G: uint8(d.colG), B: uint8(d.colB)} //nolint:gosec
}

// callback5 handles depth-5 leaves: EnvColors R/G/B channels and every
// per-block-definition attribute tag.
func (d *cwDecoder) callback5(tag *nbt.Tag) error {
	if !ancestorIs(tag, 3, "CPE") || !ancestorIs(tag, 4, "Metadata") {
		return nil
	}

	if tag.Parent.Parent.Name == "EnvColors" {
		switch tag.Name {
		case "R":
			d.colR = int(uint16(tag.I16))
		case "G":
			d.colG = int(uint16(tag.I16))
		case "B":
			d.colB = int(uint16(tag.I16))
		}

		return nil
	}

	if tag.Parent.Parent.Name != "BlockDefinitions" || !d.cfg.allowCustomBlocks {
		return nil
	}

	switch tag.Name {
	case "ID":
		d.curID = uint16(uint8(tag.I8)) //nolint:gosec
		return nil
	case "ID2":
		d.curID = uint16(tag.I16) //nolint:gosec
		return nil
	}

	bd := d.blockDef(d.curID)

	switch tag.Name {
	case "CollideType":
		bd.CollideType = uint8(tag.I8) //nolint:gosec
	case "Speed":
		bd.Speed = tag.F32
	case "TransmitsLight":
		bd.BlocksLight = uint8(tag.I8) == 0 //nolint:gosec
	case "FullBright":
		bd.FullBright = uint8(tag.I8) != 0 //nolint:gosec
	case "BlockDraw":
		bd.Draw = world.Draw(uint8(tag.I8)) //nolint:gosec
	case "Shape":
		bd.Shape = uint8(tag.I8) //nolint:gosec
	case "Name":
		bd.Name = tag.Str
	case "Textures":
		arr := tag.Bytes()
		if len(arr) < 6 {
			return nil
		}
		bd.Textures[0] = uint16(arr[0])
		bd.Textures[1] = uint16(arr[1])
		bd.Textures[2] = uint16(arr[2])
		bd.Textures[3] = uint16(arr[3])
		bd.Textures[4] = uint16(arr[4])
		bd.Textures[5] = uint16(arr[5])
		if len(arr) >= 12 {
			for i := range 6 {
				bd.Textures[i] |= uint16(arr[6+i]) << 8
			}
		}
	case "WalkSound":
		sound := world.Sound(uint8(tag.I8)) //nolint:gosec
		bd.WalkSound = sound
		bd.DigSound = sound
		bd.StepSound = sound
		if sound == world.SoundGlass {
			bd.StepSound = world.SoundStone
		}
	case "Fog":
		arr := tag.Bytes()
		if len(arr) < 4 {
			return nil
		}
		bd.FogDensity = world.FogDensityFromByte(arr[0])
		bd.FogColor = world.RGB{R: arr[1], G: arr[2], B: arr[3]}
	case "Coords":
		arr := tag.Bytes()
		if len(arr) < 6 {
			return nil
		}
		bd.BBMin[0] = float32(int8(arr[0])) / 16 //nolint:gosec
		bd.BBMin[1] = float32(int8(arr[1])) / 16 //nolint:gosec
		bd.BBMin[2] = float32(int8(arr[2])) / 16 //nolint:gosec
		bd.BBMax[0] = float32(int8(arr[3])) / 16 //nolint:gosec
		bd.BBMax[1] = float32(int8(arr[4])) / 16 //nolint:gosec
		bd.BBMax[2] = float32(int8(arr[5])) / 16 //nolint:gosec
	}

	return nil
}

// blockDef returns the in-progress BlockDef for id, creating it on first
// use.
func (d *cwDecoder) blockDef(id uint16) *world.BlockDef {
	bd, ok := d.w.BlockDefs[id]
	if !ok {
		bd = &world.BlockDef{ID: id}
		d.w.BlockDefs[id] = bd
	}

	return bd
}

// ancestorIs reports whether the ancestor n levels up from tag (1 = parent,
// 2 = grandparent, ...) exists and has the given name.
func ancestorIs(tag *nbt.Tag, n int, name string) bool {
	p := tag
	for range n {
		if p == nil {
			return false
		}
		p = p.Parent
	}

	return p != nil && p.Name == name
}
