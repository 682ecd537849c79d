// Package convergence measures summary statistics of weak-lensing convergence
// maps: peak counts, Minkowski functionals and angular power spectra.
//
// A Map couples square pixel data with its side angle and an optional mask and
// forwards to the topology and spectrum kernels. Thresholds can be expressed
// either in raw map units or in units of the map standard deviation.
//
// Power spectra are normalized to physical units: for an n x n map of side
// angle A (radians) the azimuthal average is scaled by A^2/n^4 and bins
// are reported at their multipole centers.
package convergence
