package convergence_test

import (
	"fmt"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/measure/convergence"
)

func ExampleMap_PeakCount() {
	data := make([]float64, 25)
	data[6] = 2
	data[18] = 5

	m, _ := convergence.New(data, 5, 5, 1.0)
	counts, _ := m.PeakCount(bins.Must(0, 3, 6), false)
	fmt.Println(counts)
	// Output:
	// [1 1]
}
