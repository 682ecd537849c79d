package peaks

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/internal/testutil"
)

func BenchmarkCount(b *testing.B) {
	edges, _ := bins.Linear(-3, 5, 32)
	for _, n := range []int{256, 1024} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			f := testutil.SmoothNoise(1, n, n, 1)
			b.SetBytes(int64(n * n * 8))
			b.ResetTimer()
			for range b.N {
				_, _ = Count(f, grid.NoMask(), 0.3, edges)
			}
		})
	}
}
