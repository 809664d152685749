package encode

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/blockmap/codec/decode"
	"github.com/blockmap/codec/nbt"
	"github.com/blockmap/codec/world"
	"github.com/stretchr/testify/require"
)

func buildMinimalWorld() *world.World {
	w := world.New()
	w.Width, w.Height, w.Length = 1, 1, 1
	w.UUID = [16]byte{0xAB, 0xAB}
	w.Blocks = []byte{5}
	w.Spawn = world.Spawn{X: 0, Y: 0, Z: 0, Yaw: 10, Pitch: 20}
	w.Env.ClickDistance = 5
	w.Env.SkyColor = world.RGB{R: 1, G: 2, B: 3}

	return w
}

func TestCw_WritesClassicWorldPrologue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Cw(&buf, buildMinimalWorld()))

	got := buf.Bytes()
	require.Equal(t, byte(nbt.KindDict), got[0])
	require.Equal(t, []byte{0, 12}, got[1:3])
	require.Equal(t, "ClassicWorld", string(got[3:15]))
}

func TestCw_EncodeDecodeRoundTrip(t *testing.T) {
	w := buildMinimalWorld()

	var plain bytes.Buffer
	require.NoError(t, Cw(&plain, w))

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write(plain.Bytes())
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	got, err := decode.Cw(bytes.NewReader(gz.Bytes()))
	require.NoError(t, err)

	require.Equal(t, w.Width, got.Width)
	require.Equal(t, w.Height, got.Height)
	require.Equal(t, w.Length, got.Length)
	require.Equal(t, w.UUID, got.UUID)
	require.Equal(t, w.Blocks, got.Blocks)
	require.Equal(t, w.Spawn.Yaw, got.Spawn.Yaw)
	require.Equal(t, w.Spawn.Pitch, got.Spawn.Pitch)
	require.InDelta(t, w.Env.ClickDistance, got.Env.ClickDistance, 1e-6)
	require.Equal(t, w.Env.SkyColor, got.Env.SkyColor)
}

func TestCw_BlockArray2OnlyWhenExtended(t *testing.T) {
	w := buildMinimalWorld()

	var buf bytes.Buffer
	require.NoError(t, Cw(&buf, w))
	require.NotContains(t, buf.String(), "BlockArray2")

	w.BlocksUpper = []byte{0x01}
	buf.Reset()
	require.NoError(t, Cw(&buf, w))
	require.Contains(t, buf.String(), "BlockArray2")
}

func TestCw_WithTextureURL(t *testing.T) {
	w := buildMinimalWorld()

	var buf bytes.Buffer
	require.NoError(t, Cw(&buf, w, WithTextureURL("https://example.test/pack.zip")))
	require.Contains(t, buf.String(), "https://example.test/pack.zip")
}

func TestSpawnAnglePackingIsIdempotent(t *testing.T) {
	w := buildMinimalWorld()
	w.Spawn.Yaw = world.DegreesToAngle(90)
	w.Spawn.Pitch = world.DegreesToAngle(180)

	var plain bytes.Buffer
	require.NoError(t, Cw(&plain, w))

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write(plain.Bytes())
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	got, err := decode.Cw(bytes.NewReader(gz.Bytes()))
	require.NoError(t, err)

	require.Equal(t, w.Spawn.Yaw, got.Spawn.Yaw)
	require.Equal(t, w.Spawn.Pitch, got.Spawn.Pitch)
}
