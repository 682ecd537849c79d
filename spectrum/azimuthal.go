package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/internal/parallel"
)

// Azimuthal2D averages the power of p in bins of multipole l. A coefficient
// at row i and column j has l = (360/mapAngleDeg)*sqrt(kx^2+j^2), where kx is
// the signed frequency of row i.
func Azimuthal2D(p Pair2D, mapAngleDeg float64, lEdges bins.Edges, opts ...core.Option) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	if err := grid.ValidatePositive("map angle", mapAngleDeg); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	if err := lEdges.Check(); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	cfg := core.ApplyOptions(opts...)

	ft := p.first
	nb := lEdges.Bins()
	lpix := 360 / mapAngleDeg

	// Layout of each partial: power | weight.
	acc := parallel.Accumulate(ft.Rows, 2*nb, cfg, func(lo, hi int, partial []float64) {
		power, weight := partial[:nb], partial[nb:]
		row := make([]float64, ft.Cols)
		s := getScratch()
		defer putScratch(s)

		for i := lo; i < hi; i++ {
			p.rowPower(row, i, s)
			kx := float64(core.FFTFreq(i, ft.Rows))
			for j, pw := range row {
				b, ok := lEdges.Index(lpix * math.Hypot(kx, float64(j)))
				if !ok {
					continue
				}
				w := grid.HalfAxisWeight(j, ft.Cols, ft.OddLength)
				power[b] += w * pw
				weight[b] += w
			}
		}
	})

	return normalize(acc[:nb:nb], acc[nb:]), nil
}

// Rfft2Azimuthal is Azimuthal2D of the cross pair (ft1, ft2). Passing the same
// spectrum twice yields the auto power spectrum.
func Rfft2Azimuthal(ft1, ft2 grid.Spectrum2D, mapAngleDeg float64, lEdges bins.Edges, opts ...core.Option) ([]float64, error) {
	return Azimuthal2D(Cross2D(ft1, ft2), mapAngleDeg, lEdges, opts...)
}

// Azimuthal3D averages the power of p in shells of wavenumber
// k = sqrt((kx*kpixX)^2+(ky*kpixY)^2+(kz*kpixZ)^2). hits counts the stored
// coefficients that fell in each shell.
func Azimuthal3D(p Pair3D, kpixX, kpixY, kpixZ float64, kEdges bins.Edges, opts ...core.Option) (hits []int64, power []float64, err error) {
	if err := p.validate(); err != nil {
		return nil, nil, fmt.Errorf("spectrum: %w", err)
	}
	for _, kp := range []struct {
		name string
		v    float64
	}{{"kpix x", kpixX}, {"kpix y", kpixY}, {"kpix z", kpixZ}} {
		if err := grid.ValidatePositive(kp.name, kp.v); err != nil {
			return nil, nil, fmt.Errorf("spectrum: %w", err)
		}
	}
	if err := kEdges.Check(); err != nil {
		return nil, nil, fmt.Errorf("spectrum: %w", err)
	}
	cfg := core.ApplyOptions(opts...)

	ft := p.first
	nb := kEdges.Bins()

	// Layout of each partial: power | weight | hits.
	acc := parallel.Accumulate(ft.Nx, 3*nb, cfg, func(lo, hi int, partial []float64) {
		pw, weight, count := partial[:nb], partial[nb:2*nb], partial[2*nb:]
		plane := make([]float64, ft.Ny*ft.Nz)
		s := getScratch()
		defer putScratch(s)

		for i := lo; i < hi; i++ {
			p.planePower(plane, i, s)
			kx := float64(core.FFTFreq(i, ft.Nx)) * kpixX
			for j := range ft.Ny {
				ky := float64(core.FFTFreq(j, ft.Ny)) * kpixY
				line := plane[j*ft.Nz : (j+1)*ft.Nz]
				for l, v := range line {
					kz := float64(l) * kpixZ
					b, ok := kEdges.Index(math.Sqrt(kx*kx + ky*ky + kz*kz))
					if !ok {
						continue
					}
					w := grid.HalfAxisWeight(l, ft.Nz, ft.OddLength)
					pw[b] += w * v
					weight[b] += w
					count[b]++
				}
			}
		}
	})

	hits = make([]int64, nb)
	for b, c := range acc[2*nb:] {
		hits[b] = int64(c)
	}
	return hits, normalize(acc[:nb:nb], acc[nb:2*nb]), nil
}

// Rfft3Azimuthal is Azimuthal3D of the cross pair (ft1, ft2).
func Rfft3Azimuthal(ft1, ft2 grid.Spectrum3D, kpixX, kpixY, kpixZ float64, kEdges bins.Edges, opts ...core.Option) (hits []int64, power []float64, err error) {
	return Azimuthal3D(Cross3D(ft1, ft2), kpixX, kpixY, kpixZ, kEdges, opts...)
}

// normalize divides power by weight in place; empty bins become zero.
func normalize(power, weight []float64) []float64 {
	for b, w := range weight {
		if w > 0 {
			power[b] /= w
		} else {
			power[b] = 0
		}
	}
	return power
}
