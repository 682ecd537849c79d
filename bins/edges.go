// Package bins implements threshold sets: ordered bin edges defining
// half-open bins [t_k, t_k+1).
//
// The same type bins sigma-normalized field values for peak counts and
// Minkowski functionals and radial wavenumbers for azimuthal averages.
package bins

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidThresholds reports an edge set with fewer than two values or
// edges that are not strictly increasing and finite.
var ErrInvalidThresholds = errors.New("invalid thresholds")

// Edges is a validated, strictly increasing sequence of bin edges.
type Edges struct {
	values []float64
}

// New validates values and returns them as Edges. The slice is copied.
func New(values []float64) (Edges, error) {
	if err := Validate(values); err != nil {
		return Edges{}, err
	}
	return Edges{values: append([]float64(nil), values...)}, nil
}

// Must is like New but panics on invalid input. Intended for literals in
// tests and examples.
func Must(values ...float64) Edges {
	e, err := New(values)
	if err != nil {
		panic(err)
	}
	return e
}

// Linear returns n+1 evenly spaced edges covering [lo, hi].
func Linear(lo, hi float64, n int) (Edges, error) {
	if n < 1 {
		return Edges{}, fmt.Errorf("%w: need at least one bin, got %d", ErrInvalidThresholds, n)
	}
	values := make([]float64, n+1)
	step := (hi - lo) / float64(n)
	for i := range values {
		values[i] = lo + float64(i)*step
	}
	values[n] = hi
	return New(values)
}

// Validate checks the ThresholdSet contract without copying.
func Validate(values []float64) error {
	if len(values) < 2 {
		return fmt.Errorf("%w: need at least 2 edges, got %d", ErrInvalidThresholds, len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: edge %d is not finite: %v", ErrInvalidThresholds, i, v)
		}
		if i > 0 && v <= values[i-1] {
			return fmt.Errorf("%w: edges must be strictly increasing: [%d]=%v, [%d]=%v",
				ErrInvalidThresholds, i-1, values[i-1], i, v)
		}
	}
	return nil
}

// Check returns ErrInvalidThresholds for the zero Edges value.
func (e Edges) Check() error {
	if len(e.values) < 2 {
		return fmt.Errorf("%w: edges not initialized", ErrInvalidThresholds)
	}
	return nil
}

// Bins returns the number of bins, len(edges)-1.
func (e Edges) Bins() int {
	if len(e.values) < 2 {
		return 0
	}
	return len(e.values) - 1
}

// Values returns a copy of the edges.
func (e Edges) Values() []float64 { return append([]float64(nil), e.values...) }

// Lower returns the lower edge of bin k.
func (e Edges) Lower(k int) float64 { return e.values[k] }

// Upper returns the upper edge of bin k.
func (e Edges) Upper(k int) float64 { return e.values[k+1] }

// Width returns the width of bin k.
func (e Edges) Width(k int) float64 { return e.values[k+1] - e.values[k] }

// Center returns the midpoint of bin k.
func (e Edges) Center(k int) float64 { return 0.5 * (e.values[k] + e.values[k+1]) }

// Centers returns the midpoints of all bins.
func (e Edges) Centers() []float64 {
	out := make([]float64, e.Bins())
	for k := range out {
		out[k] = e.Center(k)
	}
	return out
}

// Index returns the bin k with edges[k] <= v < edges[k+1]. ok is false when
// v lies outside every bin or is NaN.
func (e Edges) Index(v float64) (k int, ok bool) {
	n := len(e.values)
	if n < 2 || !(v >= e.values[0]) || v >= e.values[n-1] {
		return 0, false
	}
	// First edge strictly greater than v, minus one.
	k = sort.Search(n, func(i int) bool { return e.values[i] > v }) - 1
	return k, true
}

// CountAtOrBelow returns the number of lower edges that are <= v, i.e. the
// number of leading bins whose excursion threshold v reaches.
func (e Edges) CountAtOrBelow(v float64) int {
	nb := e.Bins()
	if !(v >= e.values[0]) {
		return 0
	}
	return sort.Search(nb, func(i int) bool { return e.values[i] > v })
}
