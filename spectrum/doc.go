// Package spectrum bins half-plane Fourier coefficients of real maps into
// isotropic (azimuthally averaged) power spectra.
//
// The package does not implement an FFT. It consumes grid.Spectrum2D and
// grid.Spectrum3D values, which hold the non-negative half of the last
// frequency axis as produced by a real-input transform (see package rfft).
// Every stored coefficient on that half axis, except the zero frequency and
// the Nyquist frequency of an even-length axis, stands for itself and its
// complex conjugate mirror and is therefore weighted twice.
//
// Bin averages are computed as sum(w*Re(a*conj(b)))/sum(w) and bins without
// any contributing mode report zero.
package spectrum
