package convergence

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/rfft"
	"github.com/cwbudde/algo-lensing/spectrum"
	"github.com/cwbudde/algo-lensing/topology/minkowski"
	"github.com/cwbudde/algo-lensing/topology/peaks"
)

// Map is a square-pixel convergence map of side angle AngleDeg.
type Map struct {
	field    grid.Field
	angleDeg float64
	cfg      Config
}

// New wraps data, a rows x cols row-major map, as a Map. data is not copied.
// The map must be square.
func New(data []float64, rows, cols int, angleDeg float64, opts ...Option) (*Map, error) {
	f, err := grid.NewField(rows, cols, data)
	if err != nil {
		return nil, fmt.Errorf("convergence: %w", err)
	}
	if rows != cols {
		return nil, fmt.Errorf("convergence: %w: map must be square, got %dx%d", grid.ErrInvalidShape, rows, cols)
	}
	if err := grid.ValidatePositive("map angle", angleDeg); err != nil {
		return nil, fmt.Errorf("convergence: %w", err)
	}
	cfg := ApplyOptions(opts...)
	if err := cfg.Mask.CheckShape(f); err != nil {
		return nil, fmt.Errorf("convergence: %w", err)
	}

	cfg.Logger.Debug("convergence map loaded",
		zap.Int("rows", rows), zap.Int("cols", cols),
		zap.Float64("angleDeg", angleDeg), zap.Bool("masked", cfg.Mask.Present()))

	return &Map{field: f, angleDeg: angleDeg, cfg: cfg}, nil
}

// Field returns the underlying samples.
func (m *Map) Field() grid.Field { return m.field }

// Mask returns the configured mask.
func (m *Map) Mask() grid.Mask { return m.cfg.Mask }

// AngleDeg returns the side angle in degrees.
func (m *Map) AngleDeg() float64 { return m.angleDeg }

// Sigma returns the population standard deviation of the unmasked, finite
// samples.
func (m *Map) Sigma() float64 {
	values := make([]float64, 0, m.field.Len())
	for k, v := range m.field.Data {
		if m.cfg.Mask.Excluded(k) || !core.IsFinite(v) {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return 0
	}
	return math.Sqrt(stat.PopVariance(values, nil))
}

func (m *Map) scale(normalize bool) (float64, error) {
	if !normalize {
		return 1, nil
	}
	sigma := m.Sigma()
	if err := grid.ValidateSigma(sigma); err != nil {
		m.cfg.Logger.Warn("cannot normalize map", zap.Float64("sigma", sigma))
		return 0, fmt.Errorf("convergence: %w", err)
	}
	return sigma, nil
}

// PeakCount histograms the local maxima of the map. With normalize set,
// heights are divided by Sigma before binning.
func (m *Map) PeakCount(edges bins.Edges, normalize bool) ([]float64, error) {
	sigma, err := m.scale(normalize)
	if err != nil {
		return nil, err
	}
	counts, err := peaks.Count(m.field, m.cfg.Mask, sigma, edges, m.cfg.Kernel...)
	if err != nil {
		m.cfg.Logger.Error("peak count failed", zap.Error(err))
		return nil, fmt.Errorf("convergence: %w", err)
	}
	m.cfg.Logger.Debug("peaks counted", zap.Int("bins", len(counts)), zap.Float64("sigma", sigma))
	return counts, nil
}

// Peaks returns every local maximum with its (optionally normalized) height.
func (m *Map) Peaks(normalize bool) ([]peaks.Peak, error) {
	sigma, err := m.scale(normalize)
	if err != nil {
		return nil, err
	}
	out, err := peaks.Locate(m.field, m.cfg.Mask, sigma)
	if err != nil {
		return nil, fmt.Errorf("convergence: %w", err)
	}
	return out, nil
}

// Minkowski measures V0, V1 and V2 of the map. With normalize set,
// thresholds are in units of Sigma.
func (m *Map) Minkowski(edges bins.Edges, normalize bool, opts ...minkowski.Option) (minkowski.Functionals, error) {
	sigma, err := m.scale(normalize)
	if err != nil {
		return minkowski.Functionals{}, err
	}
	d, err := minkowski.Derive(m.field, m.cfg.Kernel...)
	if err != nil {
		return minkowski.Functionals{}, fmt.Errorf("convergence: %w", err)
	}

	all := append([]minkowski.Option{minkowski.WithKernelOptions(m.cfg.Kernel...)}, opts...)
	out, err := minkowski.Measure(m.field, m.cfg.Mask, sigma, d, edges, all...)
	if err != nil {
		m.cfg.Logger.Error("minkowski measurement failed", zap.Error(err))
		return minkowski.Functionals{}, fmt.Errorf("convergence: %w", err)
	}
	m.cfg.Logger.Debug("minkowski functionals measured",
		zap.Int("bins", len(out.V0)), zap.Float64("sigma", sigma))
	return out, nil
}

// PowerSpectrum returns the angular power spectrum of the map at the centers
// of lEdges. The mask is not applied.
func (m *Map) PowerSpectrum(lEdges bins.Edges) (l, power []float64, err error) {
	return m.CrossPowerSpectrum(m, lEdges)
}

// CrossPowerSpectrum returns the angular cross power spectrum of m and other.
// Both maps must have the same shape and side angle.
func (m *Map) CrossPowerSpectrum(other *Map, lEdges bins.Edges) (l, power []float64, err error) {
	if other == nil {
		return nil, nil, fmt.Errorf("convergence: %w: other map is nil", grid.ErrInvalidParameter)
	}
	if err := m.field.CheckSameShape("other map", other.field); err != nil {
		return nil, nil, fmt.Errorf("convergence: %w", err)
	}
	if m.angleDeg != other.angleDeg {
		return nil, nil, fmt.Errorf("convergence: %w: map angles differ: %v and %v",
			grid.ErrInvalidParameter, m.angleDeg, other.angleDeg)
	}
	if err := lEdges.Check(); err != nil {
		return nil, nil, fmt.Errorf("convergence: %w", err)
	}

	ft1, err := rfft.Forward2D(m.field)
	if err != nil {
		return nil, nil, fmt.Errorf("convergence: %w", err)
	}
	pair := spectrum.Auto2D(ft1)
	if other != m {
		ft2, err := rfft.Forward2D(other.field)
		if err != nil {
			return nil, nil, fmt.Errorf("convergence: %w", err)
		}
		pair = spectrum.Cross2D(ft1, ft2)
	}

	power, err = spectrum.Azimuthal2D(pair, m.angleDeg, lEdges, m.cfg.Kernel...)
	if err != nil {
		return nil, nil, fmt.Errorf("convergence: %w", err)
	}

	angle := m.angleDeg * math.Pi / 180
	n := float64(m.field.Len())
	vecmath.ScaleBlock(power, power, angle*angle/(n*n))

	m.cfg.Logger.Debug("power spectrum measured",
		zap.Int("bins", len(power)), zap.Bool("cross", pair.IsCross()))
	return lEdges.Centers(), power, nil
}
