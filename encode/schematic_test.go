package encode

import (
	"bytes"
	"testing"

	"github.com/blockmap/codec/nbt"
	"github.com/blockmap/codec/stream"
	"github.com/blockmap/codec/world"
	"github.com/stretchr/testify/require"
)

func TestSchematic_LiteralScenario(t *testing.T) {
	w := world.New()
	w.Width, w.Height, w.Length = 2, 1, 1
	w.Blocks = []byte{9, 9}

	var buf bytes.Buffer
	require.NoError(t, Schematic(&buf, w))

	tags := map[string]*nbt.Tag{}
	err := nbt.Read(stream.New(bytes.NewReader(buf.Bytes())), func(tag *nbt.Tag) error {
		tags[tag.Name] = tag

		return nil
	})
	require.NoError(t, err)

	require.Equal(t, "Classic", tags["Materials"].Str)
	require.Equal(t, int16(2), tags["Width"].I16)
	require.Equal(t, int16(1), tags["Height"].I16)
	require.Equal(t, int16(1), tags["Length"].I16)
	require.Equal(t, []byte{9, 9}, tags["Blocks"].Bytes())
	require.Equal(t, []byte{0, 0}, tags["Data"].Bytes())
	require.Empty(t, tags["Entities"].Children)
	require.Empty(t, tags["TileEntities"].Children)
}
