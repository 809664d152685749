package decode

import "github.com/blockmap/codec/internal/options"

// Config holds the runtime-tunable behaviors a decode honors. Everything
// else about a format's wire layout is fixed and not configurable.
type Config struct {
	allowServerTextures bool
	allowCustomBlocks   bool
	textureFetcher      func(url string)
}

// Option configures a decode call via the functional-options pattern used
// throughout this module.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{allowCustomBlocks: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithAllowServerTextures enables CW's TextureURL tag to invoke the
// supplied fetcher. It is disabled by default.
func WithAllowServerTextures(allow bool) Option {
	return options.NoError(func(c *Config) {
		c.allowServerTextures = allow
	})
}

// WithAllowCustomBlocks controls whether CW's BlockDefinitions dict is
// parsed into World.BlockDefs. It is enabled by default; disabling it skips
// the whole BlockDefinitions subtree without error.
func WithAllowCustomBlocks(allow bool) Option {
	return options.NoError(func(c *Config) {
		c.allowCustomBlocks = allow
	})
}

// WithTextureFetcher supplies the external collaborator CW's TextureURL tag
// hands off to when server textures are allowed and the URL is non-empty.
func WithTextureFetcher(fn func(url string)) Option {
	return options.NoError(func(c *Config) {
		c.textureFetcher = fn
	})
}
