package section

// Fixed header sizes, in bytes.
const (
	LvlHeaderSize = 18
	FcmHeaderSize = 79
)

// Magic numbers and version constants used to validate a container's
// fixed header before the body is read.
const (
	LvlMagic    = 1874
	FcmMagic    = 0x0FC2AF40
	FcmRevision = 13
)

// LvlCustomChunkTag marks the optional sparse custom-block extension that
// may follow an LVL body.
const LvlCustomChunkTag = 0xBD

// LvlSentinelBlock is the block id used in an LVL body to mark a cell whose
// real id is supplied by the custom-block extension.
const LvlSentinelBlock = 163

// LvlChunkCells is the number of cells in one 16x16x16 custom-block chunk.
const LvlChunkCells = 16 * 16 * 16
