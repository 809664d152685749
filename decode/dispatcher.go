package decode

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/blockmap/codec/format"
	"github.com/blockmap/codec/world"
)

// Load routes r to a decoder chosen by name's case-insensitive file
// extension: .cw, .lvl, .fcm, or .dat. It returns format.ErrUnknownFormat
// for anything else.
func Load(name string, r io.Reader, opts ...Option) (*world.World, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cw":
		return Cw(r, opts...)
	case ".lvl":
		return Lvl(r, opts...)
	case ".fcm":
		return Fcm(r, opts...)
	case ".dat":
		return Dat(r, opts...)
	default:
		return nil, format.ErrUnknownFormat
	}
}
