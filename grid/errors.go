package grid

import (
	"errors"
	"fmt"
	"math"
)

// MaxSamples bounds the number of samples a single container may describe.
const MaxSamples = math.MaxInt32

var (
	// ErrInvalidShape reports malformed or mismatched array shapes.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrInvalidSigma reports a non-positive or non-finite normalization scale.
	ErrInvalidSigma = errors.New("sigma must be positive and finite")
	// ErrInvalidParameter reports a non-positive or non-finite scalar parameter.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrAllocation reports an output size that cannot be allocated.
	ErrAllocation = errors.New("allocation failure")
)

// ValidateSigma checks that sigma can normalize a field.
func ValidateSigma(sigma float64) error {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}
	return nil
}

// ValidatePositive checks that a named scalar is positive and finite.
func ValidatePositive(name string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be > 0: %v", ErrInvalidParameter, name, v)
	}
	return nil
}

// sampleCount multiplies dims, failing on non-positive extents or overflow.
func sampleCount(dims ...int) (int, error) {
	n := 1
	for _, d := range dims {
		if d <= 0 {
			return 0, fmt.Errorf("%w: dimensions must be > 0: %v", ErrInvalidShape, dims)
		}
		if n > MaxSamples/d {
			return 0, fmt.Errorf("%w: %v samples exceed %d", ErrAllocation, dims, int64(MaxSamples))
		}
		n *= d
	}
	return n, nil
}

func checkLen(kind string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d samples, shape needs %d", ErrInvalidShape, kind, got, want)
	}
	return nil
}
