package density

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/internal/testutil"
)

func newField(t *testing.T, c grid.Cube, box [3]float64, opts ...Option) *Field {
	t.Helper()
	f, err := New(c.Data, c.Nx, c.Ny, c.Nz, box, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestNewErrors(t *testing.T) {
	if _, err := New(make([]float64, 7), 2, 2, 2, [3]float64{1, 1, 1}); !errors.Is(err, grid.ErrInvalidShape) {
		t.Fatalf("length err = %v", err)
	}
	if _, err := New(make([]float64, 8), 2, 2, 2, [3]float64{1, 0, 1}); !errors.Is(err, grid.ErrInvalidParameter) {
		t.Fatalf("box err = %v", err)
	}
}

func TestKPix(t *testing.T) {
	f := newField(t, testutil.Cosine3D(2, 2, 2, 0, 0, 0, 1), [3]float64{1, 2, 4})
	want := [3]float64{2 * math.Pi, math.Pi, math.Pi / 2}
	if diff := cmp.Diff(want, f.KPix()); diff != "" {
		t.Fatalf("KPix (-want +got):\n%s", diff)
	}
}

func TestPowerSpectrumSingleMode(t *testing.T) {
	const n = 8
	box := [3]float64{100, 100, 100}
	f := newField(t, testutil.Cosine3D(n, n, n, 1, 0, 0, 1), box)
	kf := 2 * math.Pi / box[0]
	edges := bins.Must(0.5*kf, 1.2*kf, 1.5*kf)

	k, hits, power, err := f.PowerSpectrum(edges)
	if err != nil {
		t.Fatalf("PowerSpectrum: %v", err)
	}
	if diff := cmp.Diff(edges.Centers(), k); diff != "" {
		t.Fatalf("k must be the bin centers:\n%s", diff)
	}
	// |k| = kf: (+-1,0,0) and (0,+-1,0) with weight 1, (0,0,1) with weight 2.
	if diff := cmp.Diff([]int64{5, 8}, hits); diff != "" {
		t.Fatalf("hits (-want +got):\n%s", diff)
	}
	amp := float64(n * n * n / 2)
	volume := box[0] * box[1] * box[2]
	want := 2 * amp * amp / 6 * volume / float64(n*n*n*n*n*n)
	if !core.NearlyEqual(power[0], want, 1e-9) {
		t.Fatalf("power[0] = %v, want %v", power[0], want)
	}
	if math.Abs(power[1]) > 1e-9*want {
		t.Fatalf("power[1] = %v, want 0", power[1])
	}
}

func TestCrossPowerSpectrum(t *testing.T) {
	box := [3]float64{10, 10, 20}
	a := newField(t, testutil.Cosine3D(4, 4, 8, 1, 1, 0, 1), box)
	b := newField(t, testutil.Cosine3D(4, 4, 8, 1, 1, 0, 3), box)
	edges, _ := bins.Linear(0, 3, 6)

	_, hitsAB, ab, err := a.CrossPowerSpectrum(b, edges)
	if err != nil {
		t.Fatalf("CrossPowerSpectrum: %v", err)
	}
	_, hitsAA, aa, err := a.PowerSpectrum(edges)
	if err != nil {
		t.Fatalf("PowerSpectrum: %v", err)
	}
	if diff := cmp.Diff(hitsAA, hitsAB); diff != "" {
		t.Fatalf("hits depend only on geometry:\n%s", diff)
	}
	// b = 3a, so the cross spectrum is three times the auto spectrum.
	for i := range aa {
		if !core.NearlyEqual(ab[i], 3*aa[i], 1e-9) {
			t.Fatalf("bin %d: cross %v, want %v", i, ab[i], 3*aa[i])
		}
	}

	other := newField(t, testutil.Cosine3D(4, 4, 8, 1, 1, 0, 1), [3]float64{10, 10, 10})
	if _, _, _, err := a.CrossPowerSpectrum(other, edges); !errors.Is(err, grid.ErrInvalidParameter) {
		t.Fatalf("box mismatch err = %v", err)
	}
	small := newField(t, testutil.Cosine3D(4, 4, 4, 1, 1, 0, 1), box)
	if _, _, _, err := a.CrossPowerSpectrum(small, edges); !errors.Is(err, grid.ErrInvalidShape) {
		t.Fatalf("shape mismatch err = %v", err)
	}
	if _, _, _, err := a.CrossPowerSpectrum(nil, edges); !errors.Is(err, grid.ErrInvalidParameter) {
		t.Fatalf("nil field err = %v", err)
	}
	if _, _, _, err := a.PowerSpectrum(bins.Edges{}); !errors.Is(err, bins.ErrInvalidThresholds) {
		t.Fatalf("edges err = %v", err)
	}
}

func TestLogging(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	f := newField(t, testutil.Cosine3D(4, 4, 4, 1, 0, 0, 1), [3]float64{1, 1, 1}, WithLogger(zap.New(obs)))
	if _, _, _, err := f.PowerSpectrum(bins.Must(0, 10)); err != nil {
		t.Fatalf("PowerSpectrum: %v", err)
	}
	if n := logs.FilterMessage("density field loaded").Len(); n != 1 {
		t.Fatalf("load entries = %d, want 1", n)
	}
	if n := logs.FilterMessage("power spectrum measured").Len(); n != 1 {
		t.Fatalf("spectrum entries = %d, want 1", n)
	}
}
