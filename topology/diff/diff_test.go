package diff

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/internal/testutil"
)

func TestConstantFieldHasZeroDerivatives(t *testing.T) {
	f := testutil.Constant(7, 5, 3.25)

	gx, gy, err := Gradient(f)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	testutil.RequireFieldConstant(t, gx, 0, 1e-15)
	testutil.RequireFieldConstant(t, gy, 0, 1e-15)

	hxx, hyy, hxy, err := Hessian(f)
	if err != nil {
		t.Fatalf("Hessian: %v", err)
	}
	testutil.RequireFieldConstant(t, hxx, 0, 1e-15)
	testutil.RequireFieldConstant(t, hyy, 0, 1e-15)
	testutil.RequireFieldConstant(t, hxy, 0, 1e-15)
}

func TestBumpDerivatives(t *testing.T) {
	f := testutil.Bump(4, 4, 2, 2, 10)

	gx, gy, err := Gradient(f)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	hxx, hyy, hxy, err := Hessian(f)
	if err != nil {
		t.Fatalf("Hessian: %v", err)
	}

	tests := []struct {
		name  string
		field grid.Field
		i, j  int
		want  float64
	}{
		{"gx at peak", gx, 2, 2, 0},
		{"gy at peak", gy, 2, 2, 0},
		{"gx above", gx, 1, 2, 5},
		{"gx below", gx, 3, 2, -5},
		{"gy left", gy, 2, 1, 5},
		{"gy right", gy, 2, 3, -5},
		{"hxx at peak", hxx, 2, 2, -20},
		{"hyy at peak", hyy, 2, 2, -20},
		{"hxx above", hxx, 1, 2, 10},
		{"hxy diagonal", hxy, 1, 1, 2.5},
		{"hxy wrapped diagonal", hxy, 3, 3, 2.5},
		{"hxy anti-diagonal", hxy, 1, 3, -2.5},
		{"hxy at peak", hxy, 2, 2, 0},
	}
	for _, tt := range tests {
		if got := tt.field.At(tt.i, tt.j); got != tt.want {
			t.Fatalf("%s: (%d,%d) = %v, want %v", tt.name, tt.i, tt.j, got, tt.want)
		}
	}
}

func TestPeriodicBoundary(t *testing.T) {
	// Bump in the corner: its neighbors across the edge must see it.
	f := testutil.Bump(5, 6, 0, 0, 4)
	gx, gy, err := Gradient(f)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	if got := gx.At(4, 0); got != 2 {
		t.Fatalf("gx(4,0) = %v, want 2", got)
	}
	if got := gy.At(0, 5); got != 2 {
		t.Fatalf("gy(0,5) = %v, want 2", got)
	}
}

func TestGradientOfCosine(t *testing.T) {
	const n = 16
	f := testutil.Cosine(n, n, 1, 0, 1)
	gx, gy, err := Gradient(f)
	if err != nil {
		t.Fatalf("Gradient: %v", err)
	}
	step := 2 * math.Pi / n
	for i := range n {
		want := -math.Sin(step*float64(i)) * math.Sin(step)
		for j := range n {
			if d := math.Abs(gx.At(i, j) - want); d > 1e-12 {
				t.Fatalf("gx(%d,%d) = %v, want %v", i, j, gx.At(i, j), want)
			}
			if math.Abs(gy.At(i, j)) > 1e-12 {
				t.Fatalf("gy(%d,%d) = %v, want 0", i, j, gy.At(i, j))
			}
		}
	}
}

func TestWorkerCountInvariant(t *testing.T) {
	f := testutil.SmoothNoise(3, 40, 33, 2)
	refX, refY, _ := Gradient(f, core.WithWorkers(1))
	gotX, gotY, _ := Gradient(f, core.WithWorkers(6), core.WithChunkRows(3))
	if diff := cmp.Diff(refX.Data, gotX.Data); diff != "" {
		t.Fatalf("gx differs:\n%s", diff)
	}
	if diff := cmp.Diff(refY.Data, gotY.Data); diff != "" {
		t.Fatalf("gy differs:\n%s", diff)
	}
}

func TestSingleSampleField(t *testing.T) {
	f := testutil.Constant(1, 1, 9)
	hxx, hyy, hxy, err := Hessian(f)
	if err != nil {
		t.Fatalf("Hessian: %v", err)
	}
	if hxx.Data[0] != 0 || hyy.Data[0] != 0 || hxy.Data[0] != 0 {
		t.Fatal("1x1 periodic field must have zero Hessian")
	}
}

func TestInvalidShape(t *testing.T) {
	bad := grid.Field{Rows: 3, Cols: 3, Data: make([]float64, 8)}
	if _, _, err := Gradient(bad); !errors.Is(err, grid.ErrInvalidShape) {
		t.Fatalf("Gradient err = %v, want ErrInvalidShape", err)
	}
	if _, _, _, err := Hessian(bad); !errors.Is(err, grid.ErrInvalidShape) {
		t.Fatalf("Hessian err = %v, want ErrInvalidShape", err)
	}
}
