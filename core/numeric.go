package core

import "math"

const defaultEpsilon = 1e-12

// GradientFloor is the squared gradient magnitude, in sigma-normalized units,
// below which curvature is treated as undefined.
const GradientFloor = 1e-24

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Wrap maps index i onto [0, n) with periodic boundaries.
func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// FFTFreq returns the signed frequency index of position i along an axis of
// length n, following the usual FFT ordering: 0, 1, ..., then negatives.
func FFTFreq(i, n int) int {
	if i < (n+1)/2 {
		return i
	}
	return i - n
}
