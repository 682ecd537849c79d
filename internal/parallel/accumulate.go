// Package parallel runs row-partitioned grid accumulations on a bounded set
// of goroutines.
//
// Rows are split into chunks of a fixed size that does not depend on the
// worker count. Every chunk accumulates into its own zeroed partial vector and
// partials are summed in chunk order, so the floating-point result is the same
// for any number of workers.
package parallel

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lensing/core"
)

// Accumulate calls fn(lo, hi, partial) for every chunk [lo, hi) of [0, rows)
// and returns the elementwise sum of the partial vectors, each of length width.
func Accumulate(rows, width int, cfg core.Config, fn func(lo, hi int, partial []float64)) []float64 {
	out := make([]float64, width)
	if rows <= 0 {
		return out
	}

	chunk := cfg.ChunkRows
	if chunk <= 0 {
		chunk = core.DefaultChunkRows
	}
	chunks := (rows + chunk - 1) / chunk

	partials := make([][]float64, chunks)
	For(chunks, cfg.Workers, func(c int) {
		lo := c * chunk
		hi := min(lo+chunk, rows)
		partial := make([]float64, width)
		fn(lo, hi, partial)
		partials[c] = partial
	})

	for _, partial := range partials {
		vecmath.AddBlockInPlace(out, partial)
	}
	return out
}

// For calls fn(i) for i in [0, n) using at most workers goroutines. Calls for
// distinct i may run concurrently; fn must only write state owned by i.
func For(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 || n == 1 {
		for i := range n {
			fn(i)
		}
		return
	}
	workers = min(workers, n)

	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range next {
				fn(i)
			}
		}()
	}
	for i := range n {
		next <- i
	}
	close(next)
	wg.Wait()
}

// Rows calls fn(lo, hi) for every chunk of [0, rows). It suits kernels whose
// outputs are disjoint per row and need no merge.
func Rows(rows int, cfg core.Config, fn func(lo, hi int)) {
	chunk := cfg.ChunkRows
	if chunk <= 0 {
		chunk = core.DefaultChunkRows
	}
	chunks := (rows + chunk - 1) / chunk
	For(chunks, cfg.Workers, func(c int) {
		lo := c * chunk
		fn(lo, min(lo+chunk, rows))
	})
}
