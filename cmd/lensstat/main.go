// Command lensstat prints summary statistics of a convergence map.
//
// Usage:
//
//	lensstat [flags] map.txt
//
// The map is a whitespace-separated text file with one row of pixels per
// line. lensstat prints peak counts and Minkowski functionals in units of
// the map standard deviation followed by the angular power spectrum.
//
// Examples:
//
//	lensstat -angle 3.5 kappa.txt
//	lensstat -thresholds -2:5:28 -gaussian 0.1 kappa.txt
//	lensstat -mask mask.txt -plot spectrum.png kappa.txt
//
// Defaults for -angle and -workers can be set with LENSSTAT_ANGLE and
// LENSSTAT_WORKERS, either in the environment or in a .env file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-lensing/bins"
	"github.com/cwbudde/algo-lensing/core"
	"github.com/cwbudde/algo-lensing/measure/convergence"
	"github.com/cwbudde/algo-lensing/topology/minkowski"
)

const (
	defaultAngle      = 3.5
	defaultThresholds = "-2:5:14"
	defaultLRange     = "200:10000:20"
)

type options struct {
	angle      float64
	workers    int
	thresholds string
	lRange     string
	gaussian   float64
	raw        bool
	maskPath   string
	plotPath   string
	verbose    bool
}

func main() {
	_ = godotenv.Load(".env")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lensstat", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opt options
	fs.Float64Var(&opt.angle, "angle", envFloat("LENSSTAT_ANGLE", defaultAngle), "side angle of the map in degrees")
	fs.IntVar(&opt.workers, "workers", envInt("LENSSTAT_WORKERS", runtime.GOMAXPROCS(0)), "number of worker goroutines")
	fs.StringVar(&opt.thresholds, "thresholds", defaultThresholds, "threshold bins as lo:hi:n (sigma units unless -raw)")
	fs.StringVar(&opt.lRange, "l", defaultLRange, "multipole bins as lo:hi:n")
	fs.Float64Var(&opt.gaussian, "gaussian", 0, "width of the Gaussian delta kernel for Minkowski functionals (0 = top-hat)")
	fs.BoolVar(&opt.raw, "raw", false, "use raw map units for thresholds instead of sigma units")
	fs.StringVar(&opt.maskPath, "mask", "", "optional mask file; non-zero entries are excluded")
	fs.StringVar(&opt.plotPath, "plot", "", "write the power spectrum and Minkowski curves to this PNG file")
	fs.BoolVar(&opt.verbose, "v", false, "verbose development logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lensstat [flags] map.txt\n\n")
		fmt.Fprintf(stderr, "Prints peak counts, Minkowski functionals and the power spectrum of a convergence map.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	logger, err := newLogger(opt.verbose)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := analyze(fs.Arg(0), opt, logger, stdout); err != nil {
		logger.Error("analysis failed", zap.String("map", fs.Arg(0)), zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func analyze(path string, opt options, logger *zap.Logger, stdout io.Writer) error {
	thresholds, err := parseRange(opt.thresholds)
	if err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	lEdges, err := parseRange(opt.lRange)
	if err != nil {
		return fmt.Errorf("multipoles: %w", err)
	}

	f, err := readFieldFile(path)
	if err != nil {
		return err
	}
	mapOpts := []convergence.Option{
		convergence.WithLogger(logger),
		convergence.WithKernelOptions(core.WithWorkers(opt.workers)),
	}
	if opt.maskPath != "" {
		m, err := readMaskFile(opt.maskPath, f)
		if err != nil {
			return err
		}
		mapOpts = append(mapOpts, convergence.WithMask(m))
	}

	cmap, err := convergence.New(f.Data, f.Rows, f.Cols, opt.angle, mapOpts...)
	if err != nil {
		return err
	}
	logger.Info("map loaded", zap.String("path", path),
		zap.Int("rows", f.Rows), zap.Int("cols", f.Cols), zap.Float64("sigma", cmap.Sigma()))

	normalize := !opt.raw
	counts, err := cmap.PeakCount(thresholds, normalize)
	if err != nil {
		return err
	}

	var kernel []minkowski.Option
	if opt.gaussian > 0 {
		kernel = append(kernel, minkowski.WithGaussian(opt.gaussian))
	}
	mf, err := cmap.Minkowski(thresholds, normalize, kernel...)
	if err != nil {
		return err
	}

	l, power, err := cmap.PowerSpectrum(lEdges)
	if err != nil {
		return err
	}

	if err := writeTopology(stdout, thresholds, counts, mf); err != nil {
		return err
	}
	if err := writeSpectrum(stdout, l, power); err != nil {
		return err
	}

	if opt.plotPath != "" {
		if err := savePlot(opt.plotPath, thresholds, mf, l, power); err != nil {
			return err
		}
		logger.Info("plot written", zap.String("path", opt.plotPath))
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func envFloat(name string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(name), 64)
	if err != nil {
		return def
	}
	return v
}

func envInt(name string, def int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// parseRange parses lo:hi:n into n evenly spaced bins.
func parseRange(s string) (bins.Edges, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return bins.Edges{}, fmt.Errorf("%w: %q is not lo:hi:n", bins.ErrInvalidThresholds, s)
	}
	lo, errLo := strconv.ParseFloat(parts[0], 64)
	hi, errHi := strconv.ParseFloat(parts[1], 64)
	n, errN := strconv.Atoi(parts[2])
	if errLo != nil || errHi != nil || errN != nil {
		return bins.Edges{}, fmt.Errorf("%w: %q is not lo:hi:n", bins.ErrInvalidThresholds, s)
	}
	return bins.Linear(lo, hi, n)
}
