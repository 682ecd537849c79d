package convergence

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/grid"
)

// Config defines map construction settings.
type Config struct {
	Mask   grid.Mask
	Logger *zap.Logger
	Kernel []core.Option
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns an unmasked map that logs nothing.
func DefaultConfig() Config {
	return Config{
		Mask:   grid.NoMask(),
		Logger: zap.NewNop(),
	}
}

// WithMask excludes the samples marked in m from every statistic that
// honors masks.
func WithMask(m grid.Mask) Option {
	return func(cfg *Config) {
		cfg.Mask = m
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithKernelOptions forwards execution options to every kernel call.
func WithKernelOptions(opts ...core.Option) Option {
	return func(cfg *Config) {
		cfg.Kernel = append(cfg.Kernel, opts...)
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
