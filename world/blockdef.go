package world

// BlockDef holds the custom attributes associated with one block id,
// 1..65535 (id 0 is reserved for air and never has a definition).
type BlockDef struct {
	ID uint16

	CollideType uint8
	Speed       float32

	// Textures holds one texture id per face, in order YMax, YMin, XMin,
	// XMax, ZMin, ZMax. Each may carry an upper-8-bit extension from a
	// second Textures payload, so the full range is 16-bit.
	Textures [6]uint16

	BlocksLight bool
	FullBright  bool

	WalkSound Sound
	StepSound Sound
	DigSound  Sound

	Draw Draw

	// Shape is the wire Shape byte: the block's vertical max bounding box
	// in sixteenths for a sprite/liquid block. It doubles as scratch state
	// for the sprite-draw swap fix-up CW applies on exiting a block
	// definition's dict the first time a definition is seen: if Shape is
	// still zero, Draw is swapped into it and Draw is forced to
	// DrawSprite; otherwise Shape is cleared back to zero. This mirrors
	// the wire format's own dual use of the field and is preserved as-is.
	Shape uint8

	FogDensity float32
	FogColor   RGB

	// BBMin/BBMax are in block units: the wire's signed-byte Coords tag,
	// which counts sixteenths of a block, divided by 16.
	BBMin, BBMax [3]float32

	Name string
}

// FogDensityFromByte converts a wire fog-density byte to the float density
// CW uses: (D+1)/128, except 0xFF which means "no fog" (density 0).
func FogDensityFromByte(d uint8) float32 {
	if d == 0xFF {
		return 0
	}

	return float32(d+1) / 128
}

// FogDensityToByte is the inverse of FogDensityFromByte, used by the CW
// encoder.
func FogDensityToByte(density float32) uint8 {
	if density == 0 {
		return 0xFF
	}

	return uint8(density*128 - 1) //nolint:gosec
}
