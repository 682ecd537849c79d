package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-lensing/grid"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFieldConstant fails t unless every sample of f is within eps of want.
func RequireFieldConstant(t *testing.T, f grid.Field, want, eps float64) {
	t.Helper()
	for k, v := range f.Data {
		if math.Abs(v-want) > eps {
			t.Fatalf("sample (%d,%d) = %v, want %v", k/f.Cols, k%f.Cols, v, want)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// Sum returns the sum of data.
func Sum(data []float64) float64 {
	return floats.Sum(data)
}
