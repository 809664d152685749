// Package codec provides a high-level entry point for reading and writing
// classic block-game voxel world files across four historic container
// formats: MCSharp (.lvl), fCraft (.fcm), ClassicWorld (.cw), and Minecraft
// Classic server saves (.dat).
//
// # Core Features
//
//   - Streaming decoders for all four container formats, none of which
//     require a seekable source
//   - A ClassicWorld encoder and a minimal Schematic export encoder
//   - A shared World/Env/Spawn/BlockDef data model populated uniformly by
//     every decoder
//   - Extension-based format dispatch via Load
//
// # Basic Usage
//
// Loading a world by file extension:
//
//	import "github.com/blockmap/codec"
//
//	f, _ := os.Open("map.cw")
//	defer f.Close()
//	w, err := codec.Load("map.cw", f)
//
// Loading a specific format directly, with options:
//
//	w, err := codec.DecodeCw(f, decode.WithAllowCustomBlocks(false))
//
// Encoding a world back out as ClassicWorld:
//
//	out, _ := os.Create("map.cw")
//	defer out.Close()
//	err := codec.EncodeCw(out, w)
//
// # Package Structure
//
// This package is a thin convenience wrapper around decode and encode,
// mirroring their signatures. For fine-grained control over a single
// format, use those packages directly.
package codec
