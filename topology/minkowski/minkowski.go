package minkowski

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/internal/parallel"
	"github.com/cwbudde/algo-lensing/topology/diff"
)

// Derivatives bundles the first and second derivatives of a map, as returned
// by diff.Gradient and diff.Hessian.
type Derivatives struct {
	GradX, GradY           grid.Field
	HessXX, HessYY, HessXY grid.Field
}

// Functionals holds V0, V1 and V2, one value per threshold bin.
type Functionals struct {
	V0 []float64
	V1 []float64
	V2 []float64
}

// Derive computes the gradient and Hessian of f.
func Derive(f grid.Field, opts ...core.Option) (Derivatives, error) {
	gx, gy, err := diff.Gradient(f, opts...)
	if err != nil {
		return Derivatives{}, err
	}
	hxx, hyy, hxy, err := diff.Hessian(f, opts...)
	if err != nil {
		return Derivatives{}, err
	}
	return Derivatives{GradX: gx, GradY: gy, HessXX: hxx, HessYY: hyy, HessXY: hxy}, nil
}

// Measure computes the Minkowski functionals of f/sigma for every bin of
// edges. d must hold the derivatives of f in raw (unnormalized) units.
//
//nolint:funlen
func Measure(f grid.Field, m grid.Mask, sigma float64, d Derivatives, edges bins.Edges, opts ...Option) (Functionals, error) {
	if err := validate(f, m, sigma, d, edges); err != nil {
		return Functionals{}, fmt.Errorf("minkowski: %w", err)
	}
	cfg := ApplyOptions(opts...)
	if cfg.Kernel == Gaussian {
		if err := grid.ValidatePositive("gaussian width", cfg.Width); err != nil {
			return Functionals{}, fmt.Errorf("minkowski: %w", err)
		}
	}

	nb := edges.Bins()
	invSigma := 1 / sigma
	gauss := distuv.Normal{Mu: 0, Sigma: 1}

	// Layout of each partial: V0 | V1 | V2 | valid count.
	acc := parallel.Accumulate(f.Rows, 3*nb+1, cfg.Config, func(lo, hi int, partial []float64) {
		v0 := partial[:nb]
		v1 := partial[nb : 2*nb]
		v2 := partial[2*nb : 3*nb]
		kappa := make([]float64, f.Cols)
		gradNorm := make([]float64, f.Cols)

		for i := lo; i < hi; i++ {
			vecmath.ScaleBlock(kappa, f.Row(i), invSigma)
			gx, gy := d.GradX.Row(i), d.GradY.Row(i)
			hxx, hyy, hxy := d.HessXX.Row(i), d.HessYY.Row(i), d.HessXY.Row(i)
			vecmath.Magnitude(gradNorm, gx, gy)

			for j, kj := range kappa {
				// Non-finite samples are treated as masked.
				if m.Excluded(f.Index(i, j)) || !core.IsFinite(kj) {
					continue
				}
				partial[3*nb]++

				for b := range edges.CountAtOrBelow(kj) {
					v0[b]++
				}

				length := gradNorm[j] * invSigma
				if !core.IsFinite(length) {
					length = 0
				}
				curvature, defined := curvatureTerm(gx[j], gy[j], hxx[j], hyy[j], hxy[j], invSigma)

				switch cfg.Kernel {
				case Gaussian:
					for b := range nb {
						w := gauss.Prob((kj-edges.Center(b))/cfg.Width) / cfg.Width
						if w == 0 {
							continue
						}
						v1[b] += w * length
						if defined {
							v2[b] += w * curvature
						}
					}
				default:
					b, ok := edges.Index(kj)
					if !ok {
						continue
					}
					w := 1 / edges.Width(b)
					v1[b] += w * length
					if defined {
						v2[b] += w * curvature
					}
				}
			}
		}
	})

	out := Functionals{
		V0: acc[:nb:nb],
		V1: acc[nb : 2*nb : 2*nb],
		V2: acc[2*nb : 3*nb : 3*nb],
	}
	valid := acc[3*nb]
	if valid == 0 {
		return out, nil
	}
	vecmath.ScaleBlock(out.V0, out.V0, 1/valid)
	vecmath.ScaleBlock(out.V1, out.V1, 1/(4*valid))
	vecmath.ScaleBlock(out.V2, out.V2, 1/(2*math.Pi*valid))
	return out, nil
}

// curvatureTerm returns (2 hxy gx gy - hxx gy^2 - hyy gx^2)/|g|^2 in sigma
// units. defined is false where the gradient vanishes.
func curvatureTerm(gx, gy, hxx, hyy, hxy, invSigma float64) (float64, bool) {
	gradSq := gx*gx + gy*gy
	if !(gradSq*invSigma*invSigma > core.GradientFloor) {
		return 0, false
	}
	c := (2*hxy*gx*gy - hxx*gy*gy - hyy*gx*gx) / gradSq * invSigma
	if !core.IsFinite(c) {
		return 0, false
	}
	return c, true
}

func validate(f grid.Field, m grid.Mask, sigma float64, d Derivatives, edges bins.Edges) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := m.CheckShape(f); err != nil {
		return err
	}
	derivs := []struct {
		name  string
		field grid.Field
	}{
		{"gradient x", d.GradX},
		{"gradient y", d.GradY},
		{"hessian xx", d.HessXX},
		{"hessian yy", d.HessYY},
		{"hessian xy", d.HessXY},
	}
	for _, dv := range derivs {
		if err := f.CheckSameShape(dv.name, dv.field); err != nil {
			return err
		}
	}
	if err := grid.ValidateSigma(sigma); err != nil {
		return err
	}
	return edges.Check()
}
