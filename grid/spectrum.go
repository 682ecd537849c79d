package grid

import "fmt"

// Spectrum2D holds the output of a real-input 2D FFT. Rows spans the full
// first axis; Cols = n/2+1 covers the non-negative half of the last axis of
// a real-space map with n columns. OddLength records that n was odd, which
// removes the self-conjugate Nyquist column.
type Spectrum2D struct {
	Rows      int
	Cols      int
	Data      []complex128
	OddLength bool
}

// NewSpectrum2D wraps data as a rows x cols half-plane spectrum.
func NewSpectrum2D(rows, cols int, data []complex128) (Spectrum2D, error) {
	s := Spectrum2D{Rows: rows, Cols: cols, Data: data}
	if err := s.Validate(); err != nil {
		return Spectrum2D{}, err
	}
	return s, nil
}

// Validate reports whether the spectrum describes a consistent buffer.
func (s Spectrum2D) Validate() error {
	n, err := sampleCount(s.Rows, s.Cols)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	return checkLen("spectrum", len(s.Data), n)
}

// Row returns the coefficients of row i.
func (s Spectrum2D) Row(i int) []complex128 { return s.Data[i*s.Cols : (i+1)*s.Cols] }

// CheckSameShape returns ErrInvalidShape when t differs from s.
func (s Spectrum2D) CheckSameShape(t Spectrum2D) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if s.Rows != t.Rows || s.Cols != t.Cols || s.OddLength != t.OddLength {
		return fmt.Errorf("%w: spectra are %dx%d and %dx%d", ErrInvalidShape, s.Rows, s.Cols, t.Rows, t.Cols)
	}
	return nil
}

// Spectrum3D holds the output of a real-input 3D FFT; Nz = n/2+1 is the
// half axis.
type Spectrum3D struct {
	Nx, Ny, Nz int
	Data       []complex128
	OddLength  bool
}

// NewSpectrum3D wraps data as an nx x ny x nz half-space spectrum.
func NewSpectrum3D(nx, ny, nz int, data []complex128) (Spectrum3D, error) {
	s := Spectrum3D{Nx: nx, Ny: ny, Nz: nz, Data: data}
	if err := s.Validate(); err != nil {
		return Spectrum3D{}, err
	}
	return s, nil
}

// Validate reports whether the spectrum describes a consistent buffer.
func (s Spectrum3D) Validate() error {
	n, err := sampleCount(s.Nx, s.Ny, s.Nz)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	return checkLen("spectrum", len(s.Data), n)
}

// Plane returns the ny*nz coefficients with first index i.
func (s Spectrum3D) Plane(i int) []complex128 {
	size := s.Ny * s.Nz
	return s.Data[i*size : (i+1)*size]
}

// CheckSameShape returns ErrInvalidShape when t differs from s.
func (s Spectrum3D) CheckSameShape(t Spectrum3D) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if s.Nx != t.Nx || s.Ny != t.Ny || s.Nz != t.Nz || s.OddLength != t.OddLength {
		return fmt.Errorf("%w: spectra are %dx%dx%d and %dx%dx%d",
			ErrInvalidShape, s.Nx, s.Ny, s.Nz, t.Nx, t.Ny, t.Nz)
	}
	return nil
}

// HalfAxisWeight returns the Hermitian multiplicity of index j along a half
// axis of length half: the zero frequency and, for even real lengths, the
// Nyquist frequency are self-conjugate and count once; every other index
// stands for a mode and its mirror.
func HalfAxisWeight(j, half int, oddLength bool) float64 {
	if j == 0 {
		return 1
	}
	if !oddLength && j == half-1 {
		return 1
	}
	return 2
}
