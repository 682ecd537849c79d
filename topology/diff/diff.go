package diff

import (
	"fmt"

	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/internal/parallel"
)

// Gradient returns the centered-difference gradient of f along x and y.
func Gradient(f grid.Field, opts ...core.Option) (gx, gy grid.Field, err error) {
	if err := f.Validate(); err != nil {
		return grid.Field{}, grid.Field{}, fmt.Errorf("gradient: %w", err)
	}
	cfg := core.ApplyOptions(opts...)

	gx, _ = grid.Zeros(f.Rows, f.Cols)
	gy, _ = grid.Zeros(f.Rows, f.Cols)

	parallel.Rows(f.Rows, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			up := f.Row(core.Wrap(i+1, f.Rows))
			down := f.Row(core.Wrap(i-1, f.Rows))
			row := f.Row(i)
			outX := gx.Row(i)
			outY := gy.Row(i)
			for j := range row {
				right := core.Wrap(j+1, f.Cols)
				left := core.Wrap(j-1, f.Cols)
				outX[j] = (up[j] - down[j]) / 2
				outY[j] = (row[right] - row[left]) / 2
			}
		}
	})

	return gx, gy, nil
}

// Hessian returns the second-order centered differences hxx, hyy and the
// mixed derivative hxy of f.
func Hessian(f grid.Field, opts ...core.Option) (hxx, hyy, hxy grid.Field, err error) {
	if err := f.Validate(); err != nil {
		return grid.Field{}, grid.Field{}, grid.Field{}, fmt.Errorf("hessian: %w", err)
	}
	cfg := core.ApplyOptions(opts...)

	hxx, _ = grid.Zeros(f.Rows, f.Cols)
	hyy, _ = grid.Zeros(f.Rows, f.Cols)
	hxy, _ = grid.Zeros(f.Rows, f.Cols)

	parallel.Rows(f.Rows, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			up := f.Row(core.Wrap(i+1, f.Rows))
			down := f.Row(core.Wrap(i-1, f.Rows))
			row := f.Row(i)
			outXX := hxx.Row(i)
			outYY := hyy.Row(i)
			outXY := hxy.Row(i)
			for j := range row {
				right := core.Wrap(j+1, f.Cols)
				left := core.Wrap(j-1, f.Cols)
				outXX[j] = up[j] - 2*row[j] + down[j]
				outYY[j] = row[right] - 2*row[j] + row[left]
				outXY[j] = (up[right] - up[left] - down[right] + down[left]) / 4
			}
		}
	})

	return hxx, hyy, hxy, nil
}
