package spectrum

import "github.com/cwbudde/algo-lensing/grid"

// Pair2D selects the coefficients whose cross power is averaged. An auto pair
// measures |a|^2; a cross pair measures Re(a*conj(b)).
type Pair2D struct {
	first  grid.Spectrum2D
	second grid.Spectrum2D
	cross  bool
}

// Auto2D returns the pair for the auto power spectrum of ft.
func Auto2D(ft grid.Spectrum2D) Pair2D {
	return Pair2D{first: ft, second: ft}
}

// Cross2D returns the pair for the cross power spectrum of ft1 and ft2.
func Cross2D(ft1, ft2 grid.Spectrum2D) Pair2D {
	return Pair2D{first: ft1, second: ft2, cross: true}
}

// IsCross reports whether p holds two distinct transforms.
func (p Pair2D) IsCross() bool { return p.cross }

// Shape returns the dimensions of the underlying spectra.
func (p Pair2D) Shape() (rows, cols int) { return p.first.Rows, p.first.Cols }

func (p Pair2D) validate() error {
	if err := p.first.Validate(); err != nil {
		return err
	}
	if !p.cross {
		return nil
	}
	return p.first.CheckSameShape(p.second)
}

func (p Pair2D) rowPower(dst []float64, i int, s *scratch) {
	if p.cross {
		crossPowerRow(dst, p.first.Row(i), p.second.Row(i), s)
		return
	}
	powerRow(dst, p.first.Row(i), s)
}

// Pair3D is the 3D counterpart of Pair2D.
type Pair3D struct {
	first  grid.Spectrum3D
	second grid.Spectrum3D
	cross  bool
}

// Auto3D returns the pair for the auto power spectrum of ft.
func Auto3D(ft grid.Spectrum3D) Pair3D {
	return Pair3D{first: ft, second: ft}
}

// Cross3D returns the pair for the cross power spectrum of ft1 and ft2.
func Cross3D(ft1, ft2 grid.Spectrum3D) Pair3D {
	return Pair3D{first: ft1, second: ft2, cross: true}
}

// IsCross reports whether p holds two distinct transforms.
func (p Pair3D) IsCross() bool { return p.cross }

func (p Pair3D) validate() error {
	if err := p.first.Validate(); err != nil {
		return err
	}
	if !p.cross {
		return nil
	}
	return p.first.CheckSameShape(p.second)
}

func (p Pair3D) planePower(dst []float64, i int, s *scratch) {
	if p.cross {
		crossPowerRow(dst, p.first.Plane(i), p.second.Plane(i), s)
		return
	}
	powerRow(dst, p.first.Plane(i), s)
}
