package grid

import "fmt"

// Mask is an optional exclusion map. The zero value is an absent mask, under
// which every sample is valid. A present mask marks excluded samples with true.
type Mask struct {
	rows, cols int
	excluded   []bool
	present    bool
}

// NoMask returns the absent mask.
func NoMask() Mask { return Mask{} }

// NewMask wraps excluded as a present rows x cols mask.
func NewMask(rows, cols int, excluded []bool) (Mask, error) {
	n, err := sampleCount(rows, cols)
	if err != nil {
		return Mask{}, fmt.Errorf("mask: %w", err)
	}
	if err := checkLen("mask", len(excluded), n); err != nil {
		return Mask{}, err
	}
	return Mask{rows: rows, cols: cols, excluded: excluded, present: true}, nil
}

// Present reports whether the mask excludes anything at all.
func (m Mask) Present() bool { return m.present }

// Excluded reports whether the sample at flat offset k is excluded.
func (m Mask) Excluded(k int) bool { return m.present && m.excluded[k] }

// Shape returns the mask dimensions; an absent mask reports 0, 0.
func (m Mask) Shape() (rows, cols int) { return m.rows, m.cols }

// CheckShape returns ErrInvalidShape if a present mask differs from f.
func (m Mask) CheckShape(f Field) error {
	if !m.present {
		return nil
	}
	if m.rows != f.Rows || m.cols != f.Cols {
		return fmt.Errorf("%w: mask is %dx%d, field is %dx%d", ErrInvalidShape, m.rows, m.cols, f.Rows, f.Cols)
	}
	return nil
}
