package decode

import (
	"bytes"
	"testing"

	"github.com/blockmap/codec/format"
	"github.com/blockmap/codec/section"
	"github.com/stretchr/testify/require"
)

func TestLoad_RoutesByExtension(t *testing.T) {
	hdr := section.LvlHeader{Magic: section.LvlMagic, Width: 1, Length: 1, Height: 1}
	body := append([]byte{}, hdr.Bytes()...)
	body = append(body, 0)

	w, err := Load("world.lvl", bytes.NewReader(gzipBody(t, body)))
	require.NoError(t, err)
	require.EqualValues(t, 1, w.Width)
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := Load("world.txt", bytes.NewReader(nil))
	require.ErrorIs(t, err, format.ErrUnknownFormat)
}

func TestLoad_IsCaseInsensitive(t *testing.T) {
	hdr := section.LvlHeader{Magic: section.LvlMagic, Width: 1, Length: 1, Height: 1}
	body := append([]byte{}, hdr.Bytes()...)
	body = append(body, 0)

	_, err := Load("World.LVL", bytes.NewReader(gzipBody(t, body)))
	require.NoError(t, err)
}
