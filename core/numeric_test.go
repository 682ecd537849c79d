package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		a, b, eps float64
		want      bool
	}{
		{1, 1, 0, true},
		{1, 1 + 1e-13, 0, true},
		{1, 1.1, 1e-3, false},
		{1e6, 1e6 + 1e-7, 1e-12, true},
		{0, 1e-13, 0, true},
	}
	for _, tt := range tests {
		if got := NearlyEqual(tt.a, tt.b, tt.eps); got != tt.want {
			t.Fatalf("NearlyEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Fatal("1.5 should be finite")
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Fatalf("%v reported finite", v)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 4, 0}, {3, 4, 3}, {4, 4, 0}, {-1, 4, 3}, {-5, 4, 3}, {9, 4, 1},
	}
	for _, tt := range tests {
		if got := Wrap(tt.i, tt.n); got != tt.want {
			t.Fatalf("Wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestFFTFreq(t *testing.T) {
	want4 := []int{0, 1, -2, -1}
	for i, w := range want4 {
		if got := FFTFreq(i, 4); got != w {
			t.Fatalf("FFTFreq(%d, 4) = %d, want %d", i, got, w)
		}
	}
	want5 := []int{0, 1, 2, -2, -1}
	for i, w := range want5 {
		if got := FFTFreq(i, 5); got != w {
			t.Fatalf("FFTFreq(%d, 5) = %d, want %d", i, got, w)
		}
	}
}
