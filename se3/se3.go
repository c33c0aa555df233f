// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package se3

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// ExpSE3 is the SE(3) exponential map. ξ = (ρ, φ) is a 6-vector: φ is the
// axis-angle rotation part, ρ is the translation expressed in the body
// frame before the left-Jacobian correction. The returned transform has
// R = exp_so3(φ) and Trans = J(φ) ρ.
func ExpSE3(xi []float64) *Transform {
	if len(xi) != 6 {
		chk.Panic("ExpSE3: xi must have length 6; got %d", len(xi))
	}
	rho, phi := xi[:3], xi[3:]
	R := ExpSO3(phi)
	J := LeftJacobianSO3(phi)
	t := mat3Vec(J, rho)
	return &Transform{R: R, Trans: t}
}

// LogSE3 is the SE(3) logarithm map, the inverse of ExpSE3.
func LogSE3(t *Transform) []float64 {
	phi := LogSO3(t.R)
	Jinv := LeftJacobianInvSO3(phi)
	rho := mat3Vec(Jinv, t.Trans)
	xi := make([]float64, 6)
	copy(xi[:3], rho)
	copy(xi[3:], phi)
	return xi
}

// Adjoint computes the 6x6 adjoint representation Ad_T of the transform T,
// which maps a tangent vector ξ expressed in one frame to the tangent
// vector that represents the same perturbation expressed after applying T:
//
//	Ad_T = [ R   [p]× R ]
//	       [ 0      R   ]
//
// using the (ρ, φ) tangent convention (translation block first).
func Adjoint(t *Transform) [][]float64 {
	Ad := la.MatAlloc(6, 6)
	skewP := HatSO3(t.Trans)
	upperRight := mat3Mul(skewP, t.R)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			Ad[i][j] = t.R[i][j]
			Ad[i][j+3] = upperRight[i][j]
			Ad[i+3][j+3] = t.R[i][j]
		}
	}
	return Ad
}
