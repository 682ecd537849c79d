package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/topology/minkowski"
)

// dimensionless returns l(l+1)P/(2 pi).
func dimensionless(l, p float64) float64 {
	return l * (l + 1) * p / (2 * math.Pi)
}

// savePlot writes the power spectrum and the three Minkowski functionals as
// a two-by-two grid of line plots.
func savePlot(path string, edges bins.Edges, mf minkowski.Functionals, l, power []float64) error {
	centers := edges.Centers()
	spec := make([]float64, len(l))
	for b := range l {
		spec[b] = dimensionless(l[b], power[b])
	}

	panels := []struct {
		title, xlabel, ylabel string
		x, y                  []float64
	}{
		{"Power spectrum", "l", "l(l+1)P/2pi", l, spec},
		{"Area", "threshold", "V0", centers, mf.V0},
		{"Perimeter", "threshold", "V1", centers, mf.V1},
		{"Genus", "threshold", "V2", centers, mf.V2},
	}

	plots := make([][]*plot.Plot, 2)
	for r := range plots {
		plots[r] = make([]*plot.Plot, 2)
	}
	for i, pn := range panels {
		p := plot.New()
		p.Title.Text = pn.title
		p.X.Label.Text = pn.xlabel
		p.Y.Label.Text = pn.ylabel

		pts := make(plotter.XYs, len(pn.x))
		for k := range pn.x {
			pts[k] = plotter.XY{X: pn.x[k], Y: pn.y[k]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("%s line: %w", pn.title, err)
		}
		line.Width = vg.Points(1)
		p.Add(line, plotter.NewGrid())
		plots[i/2][i%2] = p
	}

	const width, height = 12 * vg.Inch, 8 * vg.Inch
	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 2, Cols: 2, PadX: vg.Millimeter, PadY: vg.Millimeter}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	return writeImage(path, png)
}

func writeImage(path string, img io.WriterTo) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	if _, err := img.WriteTo(fh); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write plot: %w", err)
	}
	return fh.Close()
}
