package world

// Sound identifies a block's walk/dig sound effect, matching the classic
// client's SoundType enum ordering.
type Sound uint8

const (
	SoundNone Sound = iota
	SoundWood
	SoundGravel
	SoundGrass
	SoundStone
	SoundMetal
	SoundGlass
	SoundCloth
	SoundSand
	SoundSnow
)

// Draw identifies a block's render mode.
type Draw uint8

const (
	DrawOpaque Draw = iota
	DrawTransparent
	DrawSprite
	DrawTranslucent
	DrawGas
)
