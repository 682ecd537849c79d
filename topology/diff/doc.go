// Package diff computes centered finite-difference gradients and Hessians of
// 2D maps.
//
// Axis convention: x is the first (row) index i and y the second (column)
// index j. Both operators use periodic boundaries, so samples on the first and
// last row or column difference against the opposite edge:
//
//	gx[i,j]  = (f[i+1,j] - f[i-1,j]) / 2
//	gy[i,j]  = (f[i,j+1] - f[i,j-1]) / 2
//	hxx[i,j] = f[i+1,j] - 2 f[i,j] + f[i-1,j]
//	hyy[i,j] = f[i,j+1] - 2 f[i,j] + f[i,j-1]
//	hxy[i,j] = (f[i+1,j+1] - f[i+1,j-1] - f[i-1,j+1] + f[i-1,j-1]) / 4
//
// Indices are taken modulo the map size. Outputs always match the input shape.
package diff
