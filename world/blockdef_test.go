package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFogDensityFromByte(t *testing.T) {
	require.Equal(t, float32(0), FogDensityFromByte(0xFF))
	require.InDelta(t, float32(1)/128, FogDensityFromByte(0), 1e-9)
	require.InDelta(t, float32(128)/128, FogDensityFromByte(127), 1e-9)
}

func TestFogDensityToByte(t *testing.T) {
	require.Equal(t, uint8(0xFF), FogDensityToByte(0))
}

func TestFogDensityRoundTrip(t *testing.T) {
	for d := uint8(0); d < 0xFF; d++ {
		density := FogDensityFromByte(d)
		require.Equal(t, d, FogDensityToByte(density), "byte %d round-trip", d)
	}
}
