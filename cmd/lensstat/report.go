package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/topology/minkowski"
)

func writeTopology(w io.Writer, edges bins.Edges, counts []float64, mf minkowski.Functionals) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Threshold\tPeaks\tV0\tV1\tV2\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---------\t-----\t--\t--\t--\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for k := range counts {
		if _, err := fmt.Fprintf(tw, "%.4f\t%.0f\t%.6f\t%.6g\t%.6g\n",
			edges.Center(k), counts[k], mf.V0[k], mf.V1[k], mf.V2[k]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func writeSpectrum(w io.Writer, l, power []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\nl\tP(l)\tl(l+1)P/2pi\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t----\t-----------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for b := range l {
		if _, err := fmt.Fprintf(tw, "%.1f\t%.6e\t%.6e\n", l[b], power[b], dimensionless(l[b], power[b])); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
