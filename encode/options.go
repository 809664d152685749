package encode

import "github.com/blockmap/codec/internal/options"

// CWConfig holds the runtime-tunable behaviors a ClassicWorld encode
// honors.
type CWConfig struct {
	extendedBlocks bool
	textureURL     string
}

// CWOption configures Cw via the functional-options pattern used
// throughout this module.
type CWOption = options.Option[*CWConfig]

func newCWConfig(opts ...CWOption) (*CWConfig, error) {
	cfg := &CWConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithExtendedBlocks forces emission of BlockArray2 even when the world's
// upper-byte array happens to equal its primary array; by default
// BlockArray2 is written only when world.World.HasExtendedBlocks reports
// distinct backing storage.
func WithExtendedBlocks(enabled bool) CWOption {
	return options.NoError(func(c *CWConfig) {
		c.extendedBlocks = enabled
	})
}

// WithTextureURL sets the EnvMapAppearance TextureURL string written to
// the document; empty (the default) writes the world's own
// Env.TexturePackURL, which may itself be empty.
func WithTextureURL(url string) CWOption {
	return options.NoError(func(c *CWConfig) {
		c.textureURL = url
	})
}
