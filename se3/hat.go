// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package se3

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// HatSO3 builds the 3x3 skew-symmetric matrix [v]× such that [v]× w = v × w
// for any w. v must have length 3.
func HatSO3(v []float64) [][]float64 {
	if len(v) != 3 {
		chk.Panic("HatSO3: vec must have length 3; got %d", len(v))
	}
	M := la.MatAlloc(3, 3)
	M[0][1], M[0][2] = -v[2], v[1]
	M[1][0], M[1][2] = v[2], -v[0]
	M[2][0], M[2][1] = -v[1], v[0]
	return M
}

// VeeSO3 is the inverse of HatSO3: it extracts the axis vector from a
// skew-symmetric 3x3 matrix. Off-diagonal entries are averaged so that a
// matrix that is only approximately skew (e.g. R - Rᵀ for a rotation R
// with roundoff) still yields a sensible axis.
func VeeSO3(M [][]float64) []float64 {
	return []float64{
		0.5 * (M[2][1] - M[1][2]),
		0.5 * (M[0][2] - M[2][0]),
		0.5 * (M[1][0] - M[0][1]),
	}
}

// HatSE3 builds the 4x4 matrix representation of the se(3) tangent vector
// ξ = (ρ, φ): the top-left 3x3 block is [φ]× and the top-right column is ρ.
func HatSE3(xi []float64) [][]float64 {
	if len(xi) != 6 {
		chk.Panic("HatSE3: xi must have length 6; got %d", len(xi))
	}
	rho, phi := xi[:3], xi[3:]
	skew := HatSO3(phi)
	M := la.MatAlloc(4, 4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M[i][j] = skew[i][j]
		}
		M[i][3] = rho[i]
	}
	return M
}
