package world

import "math"

// Spawn is a player spawn position and facing: a float position in block
// units and two packed-byte angles.
type Spawn struct {
	X, Y, Z    float32
	Yaw, Pitch uint8 // packed angle bytes, see AngleToDegrees/DegreesToAngle
}

// AngleToDegrees converts a packed angle byte to degrees: deg = byte*360/256.
func AngleToDegrees(b uint8) float32 {
	return float32(b) * 360 / 256
}

// DegreesToAngle converts degrees to a packed angle byte:
// byte = round(deg*256/360) mod 256.
func DegreesToAngle(deg float32) uint8 {
	v := math.Round(float64(deg) * 256 / 360)
	return uint8(int64(v) & 0xFF) //nolint:gosec
}

// YawDegrees and PitchDegrees return the spawn's facing in degrees.
func (s Spawn) YawDegrees() float32   { return AngleToDegrees(s.Yaw) }
func (s Spawn) PitchDegrees() float32 { return AngleToDegrees(s.Pitch) }
