package decode

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/blockmap/codec/section"
	"github.com/stretchr/testify/require"
)

func gzipBody(t *testing.T, body []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(body)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	return buf.Bytes()
}

func TestLvl_MinimalWorld(t *testing.T) {
	hdr := section.LvlHeader{
		Magic: section.LvlMagic,
		Width: 2, Length: 2, Height: 2,
		SpawnX: 1, SpawnY: 1, SpawnZ: 1,
	}

	body := append([]byte{}, hdr.Bytes()...)
	body = append(body, make([]byte, 8)...) // 8 air blocks

	w, err := Lvl(bytes.NewReader(gzipBody(t, body)))
	require.NoError(t, err)

	require.EqualValues(t, 2, w.Width)
	require.EqualValues(t, 2, w.Length)
	require.EqualValues(t, 2, w.Height)
	require.InDelta(t, float32(1), w.Spawn.X, 1e-6)
	require.InDelta(t, float32(1), w.Spawn.Y, 1e-6)
	require.InDelta(t, float32(1), w.Spawn.Z, 1e-6)
	require.Len(t, w.Blocks, 8)
	for _, b := range w.Blocks {
		require.Zero(t, b)
	}
}

func TestLvl_CustomBlocksIgnoreOutOfBoundsCells(t *testing.T) {
	const width, height, length = 17, 1, 1

	hdr := section.LvlHeader{
		Magic: section.LvlMagic,
		Width: width, Height: height, Length: length,
	}

	body := append([]byte{}, hdr.Bytes()...)
	body = append(body, bytes.Repeat([]byte{section.LvlSentinelBlock}, width*height*length)...)

	body = append(body, section.LvlCustomChunkTag)

	// chunk (cx=0): cells with yy=0,zz=0 are i=xx for xx in 0..15, all in
	// bounds (x=0..15 < width 17); mark them 7.
	chunk0 := make([]byte, section.LvlChunkCells)
	for xx := 0; xx < 16; xx++ {
		chunk0[xx] = 7
	}
	body = append(body, 1) // present
	body = append(body, chunk0...)

	// chunk (cx=1): only xx=0 (x=16) is in bounds; xx=1..15 (x=17..31) must
	// be silently discarded rather than panicking or corrupting memory.
	chunk1 := make([]byte, section.LvlChunkCells)
	for xx := 0; xx < 16; xx++ {
		chunk1[xx] = 9
	}
	body = append(body, 1) // present
	body = append(body, chunk1...)

	w, err := Lvl(bytes.NewReader(gzipBody(t, body)))
	require.NoError(t, err)

	for x := 0; x < 16; x++ {
		require.Equal(t, byte(7), w.Blocks[w.Index(x, 0, 0)], "x=%d", x)
	}
	require.Equal(t, byte(9), w.Blocks[w.Index(16, 0, 0)])
}
