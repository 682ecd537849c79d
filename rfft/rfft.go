// Package rfft computes the half-spectrum Fourier transforms consumed by
// package spectrum.
//
// Transforms run axis by axis with complex FFT plans from algo-fft. Only the
// non-negative half of the last axis (n/2+1 coefficients) is kept, matching
// the layout of a real-input FFT. No normalization is applied in the forward
// direction.
package rfft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-lensing/grid"
)

// Forward2D returns the half-plane spectrum of f. The result has f.Rows rows
// and f.Cols/2+1 columns.
func Forward2D(f grid.Field) (grid.Spectrum2D, error) {
	if err := f.Validate(); err != nil {
		return grid.Spectrum2D{}, fmt.Errorf("rfft: %w", err)
	}
	rows, cols := f.Rows, f.Cols
	half := cols/2 + 1

	rowFFT, err := newAxis(cols)
	if err != nil {
		return grid.Spectrum2D{}, err
	}
	colFFT, err := newAxis(rows)
	if err != nil {
		return grid.Spectrum2D{}, err
	}

	full := make([]complex128, cols)
	out := make([]complex128, rows*half)
	for i := range rows {
		for j, v := range f.Row(i) {
			full[j] = complex(v, 0)
		}
		if err := rowFFT.forward(full); err != nil {
			return grid.Spectrum2D{}, err
		}
		copy(out[i*half:(i+1)*half], full[:half])
	}

	line := make([]complex128, rows)
	for j := range half {
		for i := range rows {
			line[i] = out[i*half+j]
		}
		if err := colFFT.forward(line); err != nil {
			return grid.Spectrum2D{}, err
		}
		for i := range rows {
			out[i*half+j] = line[i]
		}
	}

	return grid.Spectrum2D{Rows: rows, Cols: half, Data: out, OddLength: cols%2 == 1}, nil
}

// Forward3D returns the half-space spectrum of c. The result has shape
// Nx x Ny x (Nz/2+1).
func Forward3D(c grid.Cube) (grid.Spectrum3D, error) {
	if err := c.Validate(); err != nil {
		return grid.Spectrum3D{}, fmt.Errorf("rfft: %w", err)
	}
	nx, ny, nz := c.Nx, c.Ny, c.Nz
	half := nz/2 + 1

	zFFT, err := newAxis(nz)
	if err != nil {
		return grid.Spectrum3D{}, err
	}
	yFFT, err := newAxis(ny)
	if err != nil {
		return grid.Spectrum3D{}, err
	}
	xFFT, err := newAxis(nx)
	if err != nil {
		return grid.Spectrum3D{}, err
	}

	out := make([]complex128, nx*ny*half)
	at := func(i, j, k int) int { return (i*ny+j)*half + k }

	full := make([]complex128, nz)
	for i := range nx {
		for j := range ny {
			src := c.Data[(i*ny+j)*nz : (i*ny+j+1)*nz]
			for k, v := range src {
				full[k] = complex(v, 0)
			}
			if err := zFFT.forward(full); err != nil {
				return grid.Spectrum3D{}, err
			}
			copy(out[at(i, j, 0):at(i, j, 0)+half], full[:half])
		}
	}

	line := make([]complex128, ny)
	for i := range nx {
		for k := range half {
			for j := range ny {
				line[j] = out[at(i, j, k)]
			}
			if err := yFFT.forward(line); err != nil {
				return grid.Spectrum3D{}, err
			}
			for j := range ny {
				out[at(i, j, k)] = line[j]
			}
		}
	}

	line = make([]complex128, nx)
	for j := range ny {
		for k := range half {
			for i := range nx {
				line[i] = out[at(i, j, k)]
			}
			if err := xFFT.forward(line); err != nil {
				return grid.Spectrum3D{}, err
			}
			for i := range nx {
				out[at(i, j, k)] = line[i]
			}
		}
	}

	return grid.Spectrum3D{Nx: nx, Ny: ny, Nz: half, Data: out, OddLength: nz%2 == 1}, nil
}

// axis transforms lines of a fixed length in place. A length-1 axis is the
// identity.
type axis struct {
	plan *algofft.Plan[complex128]
}

func newAxis(n int) (axis, error) {
	if n == 1 {
		return axis{}, nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return axis{}, fmt.Errorf("rfft: failed to create FFT plan of size %d: %w", n, err)
	}
	return axis{plan: plan}, nil
}

func (a axis) forward(line []complex128) error {
	if a.plan == nil {
		return nil
	}
	if err := a.plan.Forward(line, line); err != nil {
		return fmt.Errorf("rfft: forward transform: %w", err)
	}
	return nil
}
