package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratch holds pooled scratch memory for complex-to-real unpacking.
type scratch struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratch{} },
}

func getScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

func putScratch(s *scratch) {
	scratchPool.Put(s)
}

// parts returns k disjoint slices of length n backed by s.
func (s *scratch) parts(n, k int) [][]float64 {
	need := n * k
	if cap(s.data) < need {
		s.data = make([]float64, need)
	} else {
		s.data = s.data[:need]
	}
	out := make([][]float64, k)
	for i := range out {
		out[i] = s.data[i*n : (i+1)*n : (i+1)*n]
	}
	return out
}

// PowerRow computes |a[k]|^2 into dst. dst and a must have the same length.
func PowerRow(dst []float64, a []complex128) {
	s := getScratch()
	powerRow(dst, a, s)
	putScratch(s)
}

// CrossPowerRow computes Re(a[k]*conj(b[k])) into dst. All slices must have
// the same length.
func CrossPowerRow(dst []float64, a, b []complex128) {
	s := getScratch()
	crossPowerRow(dst, a, b, s)
	putScratch(s)
}

func powerRow(dst []float64, a []complex128, s *scratch) {
	p := s.parts(len(a), 2)
	re, im := p[0], p[1]
	for k, c := range a {
		re[k] = real(c)
		im[k] = imag(c)
	}
	vecmath.Power(dst, re, im)
}

func crossPowerRow(dst []float64, a, b []complex128, s *scratch) {
	p := s.parts(len(a), 5)
	ar, ai, br, bi, tmp := p[0], p[1], p[2], p[3], p[4]
	for k := range a {
		ar[k], ai[k] = real(a[k]), imag(a[k])
		br[k], bi[k] = real(b[k]), imag(b[k])
	}
	vecmath.MulBlock(dst, ar, br)
	vecmath.MulBlock(tmp, ai, bi)
	vecmath.AddBlockInPlace(dst, tmp)
}
