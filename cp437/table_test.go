package cp437

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToRune_ASCIIIdentity(t *testing.T) {
	for b := byte(0x20); b < 0x7F; b++ {
		require.Equal(t, rune(b), ToRune(b))
	}
}

func TestToRune_HighBytes(t *testing.T) {
	require.Equal(t, rune(0x00C7), ToRune(0x80)) // C-cedilla
	require.Equal(t, rune(0x00E9), ToRune(0x82)) // e-acute
	require.Equal(t, rune(0x2588), ToRune(0xDB)) // full block
	require.Equal(t, rune(0x00A0), ToRune(0xFF)) // non-breaking space
}

func TestToUTF8(t *testing.T) {
	require.Equal(t, "Stone", ToUTF8([]byte("Stone")))
	require.Equal(t, "café", ToUTF8([]byte{'c', 'a', 'f', 0x82}))
}
