package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	w := New()
	require.NotNil(t, w.BlockDefs)
	require.Empty(t, w.BlockDefs)
}

func TestWorld_VolumeAndIndex(t *testing.T) {
	w := New()
	w.Width, w.Height, w.Length = 2, 3, 4
	require.Equal(t, 24, w.Volume())

	// index convention: ((y*length)+z)*width + x
	require.Equal(t, 0, w.Index(0, 0, 0))
	require.Equal(t, 1, w.Index(1, 0, 0))
	require.Equal(t, 2, w.Index(0, 0, 1))
	require.Equal(t, (1*4+2)*2+1, w.Index(1, 1, 2))
}

func TestWorld_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		w := New()
		w.Width, w.Height, w.Length = 1, 1, 1
		w.Blocks = []byte{5}
		require.NoError(t, w.Validate())
	})

	t.Run("empty volume", func(t *testing.T) {
		w := New()
		require.ErrorIs(t, w.Validate(), ErrEmptyVolume)
	})

	t.Run("block array mismatch", func(t *testing.T) {
		w := New()
		w.Width, w.Height, w.Length = 1, 1, 2
		w.Blocks = []byte{5}
		require.ErrorIs(t, w.Validate(), ErrVolumeMismatch)
	})

	t.Run("upper array mismatch", func(t *testing.T) {
		w := New()
		w.Width, w.Height, w.Length = 1, 1, 1
		w.Blocks = []byte{5}
		w.BlocksUpper = []byte{0, 0}
		require.ErrorIs(t, w.Validate(), ErrVolumeMismatch)
	})
}

func TestWorld_HasExtendedBlocks(t *testing.T) {
	w := New()
	w.Width, w.Height, w.Length = 1, 1, 1
	w.Blocks = []byte{5}

	require.False(t, w.HasExtendedBlocks())

	w.BlocksUpper = []byte{0}
	require.True(t, w.HasExtendedBlocks())

	// aliasing BlocksUpper onto Blocks itself must not count as extended.
	w.BlocksUpper = w.Blocks
	require.False(t, w.HasExtendedBlocks())
}

func TestWorld_BlockAt(t *testing.T) {
	w := New()
	w.Width, w.Height, w.Length = 2, 1, 1
	w.Blocks = []byte{0xFF, 0x01}
	w.BlocksUpper = []byte{0x01, 0x00}

	require.Equal(t, uint16(0x01FF), w.BlockAt(0, 0, 0))
	require.Equal(t, uint16(0x0001), w.BlockAt(1, 0, 0))
}
