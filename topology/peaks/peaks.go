// Package peaks detects local maxima of 2D maps and histograms them by
// significance.
//
// A sample is a peak when it is finite, not masked, and strictly exceeds
// every one of its up to eight neighbors that lies inside the map. Masked and
// non-finite neighbors are skipped. Neighborhoods do not wrap around the
// edges; boundary samples simply have fewer neighbors. Heights are expressed in units of sigma before binning.
package peaks

import (
	"fmt"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/internal/parallel"
)

// Peak is a local maximum at (Row, Col) with Height = value/sigma.
type Peak struct {
	Row    int
	Col    int
	Height float64
}

// Count returns the number of peaks whose normalized height falls in each
// half-open bin of edges. Peaks outside every bin are dropped.
func Count(f grid.Field, m grid.Mask, sigma float64, edges bins.Edges, opts ...core.Option) ([]float64, error) {
	if err := validate(f, m, sigma); err != nil {
		return nil, fmt.Errorf("peaks: %w", err)
	}
	if err := edges.Check(); err != nil {
		return nil, fmt.Errorf("peaks: %w", err)
	}
	cfg := core.ApplyOptions(opts...)

	counts := parallel.Accumulate(f.Rows, edges.Bins(), cfg, func(lo, hi int, partial []float64) {
		for i := lo; i < hi; i++ {
			for j := 0; j < f.Cols; j++ {
				if !isPeak(f, m, i, j) {
					continue
				}
				if k, ok := edges.Index(f.At(i, j) / sigma); ok {
					partial[k]++
				}
			}
		}
	})
	return counts, nil
}

// Locate returns every peak of f in row-major order.
func Locate(f grid.Field, m grid.Mask, sigma float64) ([]Peak, error) {
	if err := validate(f, m, sigma); err != nil {
		return nil, fmt.Errorf("peaks: %w", err)
	}

	var out []Peak
	for i := 0; i < f.Rows; i++ {
		for j := 0; j < f.Cols; j++ {
			if isPeak(f, m, i, j) {
				out = append(out, Peak{Row: i, Col: j, Height: f.At(i, j) / sigma})
			}
		}
	}
	return out, nil
}

func validate(f grid.Field, m grid.Mask, sigma float64) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := m.CheckShape(f); err != nil {
		return err
	}
	return grid.ValidateSigma(sigma)
}

func isPeak(f grid.Field, m grid.Mask, i, j int) bool {
	k := f.Index(i, j)
	v := f.Data[k]
	if m.Excluded(k) || !core.IsFinite(v) {
		return false
	}

	for di := -1; di <= 1; di++ {
		ni := i + di
		if ni < 0 || ni >= f.Rows {
			continue
		}
		for dj := -1; dj <= 1; dj++ {
			nj := j + dj
			if (di == 0 && dj == 0) || nj < 0 || nj >= f.Cols {
				continue
			}
			nk := f.Index(ni, nj)
			if m.Excluded(nk) || !core.IsFinite(f.Data[nk]) {
				continue
			}
			if v <= f.Data[nk] {
				return false
			}
		}
	}
	return true
}
