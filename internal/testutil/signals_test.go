package testutil

import (
	"math"
	"testing"
)

func TestBump(t *testing.T) {
	f := Bump(4, 5, 2, 3, 7)
	for k, v := range f.Data {
		if k == 2*5+3 {
			if v != 7 {
				t.Fatalf("bump value = %v, want 7", v)
			}
		} else if v != 0 {
			t.Fatalf("f[%d] = %v, want 0", k, v)
		}
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestCosine(t *testing.T) {
	f := Cosine(8, 8, 1, 0, 2)
	if f.At(0, 5) != 2 {
		t.Fatalf("f(0,5) = %v, want 2", f.At(0, 5))
	}
	if math.Abs(f.At(4, 0)+2) > 1e-12 {
		t.Fatalf("f(4,0) = %v, want -2", f.At(4, 0))
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestSmoothNoiseReproducible(t *testing.T) {
	a := SmoothNoise(7, 16, 12, 1)
	b := SmoothNoise(7, 16, 12, 1)
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("smooth noise not deterministic at index %d", i)
		}
	}
	RequireFinite(t, a.Data)
}
