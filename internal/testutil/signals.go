package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-lensing/grid"
)

// Constant returns a rows x cols field filled with value.
func Constant(rows, cols int, value float64) grid.Field {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = value
	}
	return grid.Field{Rows: rows, Cols: cols, Data: data}
}

// Bump returns a zero field with a single sample set to value at (i, j).
func Bump(rows, cols, i, j int, value float64) grid.Field {
	f := Constant(rows, cols, 0)
	f.Data[i*cols+j] = value
	return f
}

// Cosine returns amplitude*cos(2*pi*(kx*i/rows + ky*j/cols)), a single
// Fourier mode with integer wavenumbers (kx, ky).
func Cosine(rows, cols, kx, ky int, amplitude float64) grid.Field {
	f := Constant(rows, cols, 0)
	for i := range rows {
		for j := range cols {
			phase := 2 * math.Pi * (float64(kx*i)/float64(rows) + float64(ky*j)/float64(cols))
			f.Data[i*cols+j] = amplitude * math.Cos(phase)
		}
	}
	return f
}

// Cosine3D returns a single-mode cube amplitude*cos(2*pi*k.x/n).
func Cosine3D(nx, ny, nz, kx, ky, kz int, amplitude float64) grid.Cube {
	data := make([]float64, nx*ny*nz)
	for i := range nx {
		for j := range ny {
			for k := range nz {
				phase := 2 * math.Pi * (float64(kx*i)/float64(nx) + float64(ky*j)/float64(ny) + float64(kz*k)/float64(nz))
				data[(i*ny+j)*nz+k] = amplitude * math.Cos(phase)
			}
		}
	}
	return grid.Cube{Nx: nx, Ny: ny, Nz: nz, Data: data}
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SmoothNoise returns a reproducible Gaussian noise map smoothed by a
// periodic box filter of the given radius, so that it has well-resolved peaks
// and non-degenerate gradients.
func SmoothNoise(seed int64, rows, cols, radius int) grid.Field {
	rng := rand.New(rand.NewSource(seed))
	raw := make([]float64, rows*cols)
	for i := range raw {
		raw[i] = rng.NormFloat64()
	}

	f := Constant(rows, cols, 0)
	norm := float64((2*radius + 1) * (2*radius + 1))
	for i := range rows {
		for j := range cols {
			sum := 0.0
			for di := -radius; di <= radius; di++ {
				for dj := -radius; dj <= radius; dj++ {
					ii := ((i+di)%rows + rows) % rows
					jj := ((j+dj)%cols + cols) % cols
					sum += raw[ii*cols+jj]
				}
			}
			f.Data[i*cols+j] = sum / norm
		}
	}
	return f
}
