package minkowski

import "github.com/cwbudde/algo-lensing/core"

// Kernel selects the discretization of the Dirac delta.
type Kernel int

const (
	// TopHat assigns a sample to its bin with weight 1/width.
	TopHat Kernel = iota
	// Gaussian spreads a sample over all bins with a normal profile.
	Gaussian
)

// String returns the kernel name.
func (k Kernel) String() string {
	switch k {
	case TopHat:
		return "tophat"
	case Gaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// Config defines Minkowski measurement settings.
type Config struct {
	core.Config
	Kernel Kernel
	// Width is the standard deviation of the Gaussian kernel in sigma units.
	Width float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the top-hat kernel with default execution settings.
func DefaultConfig() Config {
	return Config{
		Config: core.DefaultConfig(),
		Kernel: TopHat,
	}
}

// WithTopHat selects the top-hat delta kernel.
func WithTopHat() Option {
	return func(cfg *Config) {
		cfg.Kernel = TopHat
	}
}

// WithGaussian selects the Gaussian delta kernel of the given width. A
// non-positive width is rejected by Measure.
func WithGaussian(width float64) Option {
	return func(cfg *Config) {
		cfg.Kernel = Gaussian
		cfg.Width = width
	}
}

// WithKernelOptions applies shared execution options.
func WithKernelOptions(opts ...core.Option) Option {
	return func(cfg *Config) {
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.Config)
			}
		}
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
