package grid

import "fmt"

// Field is a 2D real map stored row-major: sample (i, j) lives at i*Cols+j.
type Field struct {
	Rows int
	Cols int
	Data []float64
}

// NewField wraps data as a rows x cols field.
func NewField(rows, cols int, data []float64) (Field, error) {
	f := Field{Rows: rows, Cols: cols, Data: data}
	if err := f.Validate(); err != nil {
		return Field{}, err
	}
	return f, nil
}

// Zeros allocates a zero-valued rows x cols field.
func Zeros(rows, cols int) (Field, error) {
	n, err := sampleCount(rows, cols)
	if err != nil {
		return Field{}, err
	}
	return Field{Rows: rows, Cols: cols, Data: make([]float64, n)}, nil
}

// Validate reports whether the field describes a consistent buffer.
func (f Field) Validate() error {
	n, err := sampleCount(f.Rows, f.Cols)
	if err != nil {
		return fmt.Errorf("field: %w", err)
	}
	return checkLen("field", len(f.Data), n)
}

// Len returns the number of samples.
func (f Field) Len() int { return f.Rows * f.Cols }

// Shape returns the dimensions of f.
func (f Field) Shape() (rows, cols int) { return f.Rows, f.Cols }

// Index returns the flat offset of sample (i, j).
func (f Field) Index(i, j int) int { return i*f.Cols + j }

// At returns sample (i, j).
func (f Field) At(i, j int) float64 { return f.Data[i*f.Cols+j] }

// Row returns the samples of row i.
func (f Field) Row(i int) []float64 { return f.Data[i*f.Cols : (i+1)*f.Cols] }

// SameShape reports whether g has the same dimensions as f.
func (f Field) SameShape(g Field) bool { return f.Rows == g.Rows && f.Cols == g.Cols }

// CheckSameShape returns ErrInvalidShape naming what when g differs from f.
func (f Field) CheckSameShape(what string, g Field) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if !f.SameShape(g) {
		return fmt.Errorf("%w: %s is %dx%d, want %dx%d", ErrInvalidShape, what, g.Rows, g.Cols, f.Rows, f.Cols)
	}
	return nil
}

// Cube is a 3D real field stored row-major: sample (i, j, k) lives at
// (i*Ny+j)*Nz+k.
type Cube struct {
	Nx, Ny, Nz int
	Data       []float64
}

// NewCube wraps data as an nx x ny x nz cube.
func NewCube(nx, ny, nz int, data []float64) (Cube, error) {
	c := Cube{Nx: nx, Ny: ny, Nz: nz, Data: data}
	if err := c.Validate(); err != nil {
		return Cube{}, err
	}
	return c, nil
}

// Validate reports whether the cube describes a consistent buffer.
func (c Cube) Validate() error {
	n, err := sampleCount(c.Nx, c.Ny, c.Nz)
	if err != nil {
		return fmt.Errorf("cube: %w", err)
	}
	return checkLen("cube", len(c.Data), n)
}

// Len returns the number of samples.
func (c Cube) Len() int { return c.Nx * c.Ny * c.Nz }

// At returns sample (i, j, k).
func (c Cube) At(i, j, k int) float64 { return c.Data[(i*c.Ny+j)*c.Nz+k] }
