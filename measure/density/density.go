// Package density measures isotropic power spectra of 3D scalar fields
// sampled on a periodic box, such as matter density contrasts.
//
// Wavenumbers are physical: an axis of length L has fundamental 2*pi/L. Power
// is normalized by V/N^2, where V is the box volume and N the sample count.
package density

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/rfft"
	"github.com/cwbudde/algo-lensing/spectrum"
)

// Config defines field construction settings.
type Config struct {
	Logger *zap.Logger
	Kernel []core.Option
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a config that logs nothing.
func DefaultConfig() Config {
	return Config{Logger: zap.NewNop()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithKernelOptions forwards execution options to the averaging kernel.
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

// Field is an nx x ny x nz periodic field in a box of side lengths Box.
type Field struct {
	cube grid.Cube
	box  [3]float64
	cfg  Config
}

// New wraps data, stored with the last axis fastest, as a Field. data is not
// copied.
func New(data []float64, nx, ny, nz int, box [3]float64, opts ...Option) (*Field, error) {
	c, err := grid.NewCube(nx, ny, nz, data)
	if err != nil {
		return nil, fmt.Errorf("density: %w", err)
	}
	for a, l := range box {
		if err := grid.ValidatePositive(fmt.Sprintf("box side %d", a), l); err != nil {
			return nil, fmt.Errorf("density: %w", err)
		}
	}
	cfg := ApplyOptions(opts...)
	cfg.Logger.Debug("density field loaded",
		zap.Int("nx", nx), zap.Int("ny", ny), zap.Int("nz", nz),
		zap.Float64s("box", box[:]))
	return &Field{cube: c, box: box, cfg: cfg}, nil
}

// Cube returns the underlying samples.
func (f *Field) Cube() grid.Cube { return f.cube }

// Box returns the side lengths.
func (f *Field) Box() [3]float64 { return f.box }

// KPix returns the fundamental wavenumber of each axis.
func (f *Field) KPix() [3]float64 {
	return [3]float64{2 * math.Pi / f.box[0], 2 * math.Pi / f.box[1], 2 * math.Pi / f.box[2]}
}

// PowerSpectrum returns the power spectrum at the centers of kEdges together
// with the number of Fourier modes in each shell.
func (f *Field) PowerSpectrum(kEdges bins.Edges) (k []float64, hits []int64, power []float64, err error) {
	return f.CrossPowerSpectrum(f, kEdges)
}

// CrossPowerSpectrum returns the cross power spectrum of f and other, which
// must share shape and box.
func (f *Field) CrossPowerSpectrum(other *Field, kEdges bins.Edges) (k []float64, hits []int64, power []float64, err error) {
	if other == nil {
		return nil, nil, nil, fmt.Errorf("density: %w: other field is nil", grid.ErrInvalidParameter)
	}
	a, b := f.cube, other.cube
	if a.Nx != b.Nx || a.Ny != b.Ny || a.Nz != b.Nz {
		return nil, nil, nil, fmt.Errorf("density: %w: fields are %dx%dx%d and %dx%dx%d",
			grid.ErrInvalidShape, a.Nx, a.Ny, a.Nz, b.Nx, b.Ny, b.Nz)
	}
	if f.box != other.box {
		return nil, nil, nil, fmt.Errorf("density: %w: boxes differ: %v and %v",
			grid.ErrInvalidParameter, f.box, other.box)
	}
	if err := kEdges.Check(); err != nil {
		return nil, nil, nil, fmt.Errorf("density: %w", err)
	}

	ft1, err := rfft.Forward3D(a)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("density: %w", err)
	}
	pair := spectrum.Auto3D(ft1)
	if other != f {
		ft2, err := rfft.Forward3D(b)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("density: %w", err)
		}
		pair = spectrum.Cross3D(ft1, ft2)
	}

	kpix := f.KPix()
	hits, power, err = spectrum.Azimuthal3D(pair, kpix[0], kpix[1], kpix[2], kEdges, f.cfg.Kernel...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("density: %w", err)
	}

	volume := f.box[0] * f.box[1] * f.box[2]
	n := float64(a.Len())
	vecmath.ScaleBlock(power, power, volume/(n*n))

	f.cfg.Logger.Debug("power spectrum measured",
		zap.Int("bins", len(power)), zap.Bool("cross", pair.IsCross()))
	return kEdges.Centers(), hits, power, nil
}
