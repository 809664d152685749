package decode

import (
	"io"

	"github.com/blockmap/codec/format"
	"github.com/blockmap/codec/gzipskip"
	"github.com/blockmap/codec/section"
	"github.com/blockmap/codec/stream"
	"github.com/blockmap/codec/world"
)

// lvlTable is MCSharp's 256-entry block-id remap table, reproduced
// verbatim: every raw byte stored in an .lvl body is looked up through
// this table before being written into World.Blocks. Entries 0-63 are the
// identity mapping (MCSharp's original block set); the remainder translate
// later MCSharp/CPE block ids into ClassiCube's.
var lvlTable = [256]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
	32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47,
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63,
	64, 65, 0, 0, 0, 0, 39, 36, 36, 10, 46, 21, 22, 22, 22, 22,
	4, 0, 22, 21, 0, 22, 23, 24, 22, 26, 27, 28, 30, 31, 32, 33,
	34, 35, 36, 22, 20, 49, 45, 1, 4, 0, 9, 11, 4, 19, 5, 17,
	10, 49, 20, 1, 18, 12, 5, 25, 46, 44, 17, 49, 20, 1, 18, 12,
	5, 25, 36, 34, 0, 9, 11, 46, 44, 0, 9, 11, 8, 10, 22, 27,
	22, 8, 10, 28, 17, 49, 20, 1, 18, 12, 5, 25, 46, 44, 11, 9,
	0, 9, 11, 163, 0, 0, 9, 11, 0, 0, 0, 0, 0, 0, 0, 28,
	22, 21, 11, 0, 0, 0, 46, 46, 10, 10, 46, 20, 41, 42, 11, 9,
	0, 8, 10, 10, 8, 0, 22, 22, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 21, 10, 0, 0, 0, 0, 0, 22, 22, 42, 3, 2, 29,
	47, 0, 0, 0, 0, 0, 27, 46, 48, 24, 22, 36, 34, 8, 10, 21,
	29, 22, 10, 22, 22, 41, 19, 35, 21, 29, 49, 34, 16, 41, 0, 22,
}

// Lvl decodes an MCSharp .lvl stream (GZIP-wrapped throughout) into a
// world.World.
func Lvl(r io.Reader, opts ...Option) (*world.World, error) {
	if _, err := newConfig(opts...); err != nil {
		return nil, err
	}

	inflated, err := gzipskip.NewReader(r)
	if err != nil {
		return nil, format.NewDecodeError(format.KindLvl, 0, err)
	}
	sr := stream.New(inflated)

	headerBytes, err := sr.ReadExact(section.LvlHeaderSize)
	if err != nil {
		return nil, format.NewDecodeError(format.KindLvl, sr.Offset(), err)
	}

	var hdr section.LvlHeader
	if err := hdr.Parse(headerBytes); err != nil {
		return nil, format.NewDecodeError(format.KindLvl, sr.Offset(), err)
	}

	w := world.New()
	w.Width = hdr.Width
	w.Height = hdr.Height
	w.Length = hdr.Length
	w.Spawn.X = float32(hdr.SpawnX)
	w.Spawn.Y = float32(hdr.SpawnY)
	w.Spawn.Z = float32(hdr.SpawnZ)
	w.Spawn.Yaw = hdr.Yaw
	w.Spawn.Pitch = hdr.Pitch

	volume := hdr.Volume()

	blocks, err := sr.ReadExact(volume)
	if err != nil {
		return nil, format.NewDecodeError(format.KindLvl, sr.Offset(), err)
	}

	for i, raw := range blocks {
		blocks[i] = lvlTable[raw]
	}
	w.Blocks = blocks

	if err := readLvlCustomBlocks(sr, w); err != nil {
		return nil, format.NewDecodeError(format.KindLvl, sr.Offset(), err)
	}

	if err := w.Validate(); err != nil {
		return nil, format.NewDecodeError(format.KindLvl, sr.Offset(), err)
	}

	return w, nil
}

// readLvlCustomBlocks reads the optional sparse custom-block extension. EOF
// here (no section tag at all) is success, not failure.
func readLvlCustomBlocks(sr *stream.Reader, w *world.World) error {
	tag, err := sr.ReadU8()
	if err != nil {
		return nil //nolint:nilerr // trailing section tag is optional; short read here means EOF
	}
	if tag != section.LvlCustomChunkTag {
		return nil
	}

	chunksX := (int(w.Width) + 15) / 16
	chunksY := (int(w.Height) + 15) / 16
	chunksZ := (int(w.Length) + 15) / 16

	for cy := 0; cy < chunksY; cy++ {
		for cz := 0; cz < chunksZ; cz++ {
			for cx := 0; cx < chunksX; cx++ {
				present, err := sr.ReadU8()
				if err != nil {
					return err
				}
				if present == 0 {
					continue
				}

				chunk, err := sr.ReadExact(section.LvlChunkCells)
				if err != nil {
					return err
				}

				for i, cb := range chunk {
					xx := i & 0xF
					zz := (i >> 4) & 0xF
					yy := (i >> 8) & 0xF

					x := cx*16 + xx
					y := cy*16 + yy
					z := cz*16 + zz
					if x >= int(w.Width) || y >= int(w.Height) || z >= int(w.Length) {
						continue
					}

					idx := w.Index(x, y, z)
					if w.Blocks[idx] == section.LvlSentinelBlock {
						w.Blocks[idx] = cb
					}
				}
			}
		}
	}

	return nil
}
