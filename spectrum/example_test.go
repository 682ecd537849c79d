package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/grid"
	"github.com/cwbudde/algo-lensing/spectrum"
)

func ExampleAzimuthal2D() {
	// Half plane of a 4x4 map holding only the mean.
	ft := grid.Spectrum2D{Rows: 4, Cols: 3, Data: make([]complex128, 12)}
	ft.Data[0] = 4

	power, _ := spectrum.Azimuthal2D(spectrum.Auto2D(ft), 360, bins.Must(0, 0.5, 1.5))
	fmt.Println(power)
	// Output:
	// [16 0]
}
