package diff

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-lensing/internal/testutil"
)

func BenchmarkHessian(b *testing.B) {
	for _, n := range []int{128, 512, 1024} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			f := testutil.SmoothNoise(1, n, n, 1)
			b.SetBytes(int64(n * n * 8))
			b.ResetTimer()
			for range b.N {
				_, _, _, _ = Hessian(f)
			}
		})
	}
}
