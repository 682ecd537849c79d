// Package grid defines the dense row-major sample containers shared by the
// topology and spectrum kernels.
//
// A Field is a 2D real map, a Cube is a 3D real field, and Spectrum2D /
// Spectrum3D hold the non-negative half of a real-input Fourier transform.
// Mask models the optional exclusion map as an explicit present/absent value.
//
// Containers are plain views over caller-owned slices; kernels never retain
// them beyond a call. Structural problems are reported through the sentinel
// errors in this package so callers can match them with errors.Is.
package grid
