// Package minkowski measures the three Minkowski functionals of the excursion
// sets of a 2D map.
//
// With kappa = f/sigma, N the number of unmasked samples and nu_k the
// thresholds of bin k:
//
//	V0[k] = #{kappa >= nu_k} / N
//	V1[k] = 1/(4N)  * sum delta_k(kappa) |grad kappa|
//	V2[k] = 1/(2piN) * sum delta_k(kappa) (2 kxy kx ky - kxx ky^2 - kyy kx^2) / |grad kappa|^2
//
// V0 is the area fraction of the excursion set above the lower edge of bin k,
// V1 its boundary length per unit area and V2 its Euler characteristic per
// unit area.
//
// # Delta discretization
//
// The Dirac delta delta(kappa - nu) is discretized per sample. The default
// top-hat kernel assigns each sample to the single bin containing its kappa
// and weights it by 1/width, so an output only changes when a sample crosses
// a bin edge. The Gaussian kernel spreads each sample over every bin with
// weight phi((kappa - center)/h)/h, trading edge sensitivity for smoothing.
//
// Samples whose gradient magnitude is numerically zero contribute nothing to
// V2. Masked samples, and samples whose value is NaN or infinite, are excluded
// from every sum and from N.
package minkowski
