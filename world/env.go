package world

import "github.com/blockmap/codec/format"

// RGB is a packed color with no alpha channel; CW's env colors and block
// fog colors are both stored this way.
type RGB struct {
	R, G, B uint8
}

// Env holds the environment settings a ClassicWorld document carries under
// Metadata/CPE: ambient colors, edge blocks/height, weather, and an
// optional texture pack URL.
type Env struct {
	SkyColor      RGB
	CloudColor    RGB
	FogColor      RGB
	SunlightColor RGB
	AmbientColor  RGB

	EdgeBlock  uint8
	SideBlock  uint8
	EdgeHeight int16

	Weather format.Weather

	// ClickDistance is the reach distance in blocks, decoded from a
	// wire u16 divided by 32.
	ClickDistance float32

	TexturePackURL string
}
