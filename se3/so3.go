// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package se3

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// ExpSO3 is the SO(3) exponential map: given an axis-angle vector φ
// (‖φ‖ = rotation angle, direction = rotation axis) it returns the 3x3
// rotation matrix R = exp([φ]×), computed via Rodrigues' formula.
func ExpSO3(phi []float64) [][]float64 {
	theta := la.VecNorm(phi)
	if theta < TinySO3 {
		return identity3()
	}
	K := HatSO3(phi)
	K2 := mat3Mul(K, K)
	R := identity3()
	R = mat3AddScaled(R, math.Sin(theta)/theta, K)
	R = mat3AddScaled(R, (1-math.Cos(theta))/(theta*theta), K2)
	return R
}

// LogSO3 is the SO(3) logarithm map: given a rotation matrix R it returns
// the axis-angle vector φ with R = exp([φ]×). Three regimes are handled,
// per spec.md §4.A:
//
//   - R ≈ I: return the zero vector (no rotation, arbitrary axis).
//   - trace(R) ≈ -1 (angle ≈ π): the generic formula is singular (division
//     by sin θ ≈ 0); the axis is instead read off the diagonal of
//     (R+I)/2, picking the largest diagonal term as the numerically
//     stable pivot.
//   - otherwise: the generic closed form.
func LogSO3(R [][]float64) []float64 {
	if nearSymmetric(R, IdentityTol) {
		tr := mat3Trace(R)
		if math.Abs(tr-3) < IdentityTol2 {
			return []float64{0, 0, 0}
		}
		return logSO3AtPi(R)
	}
	tr := mat3Trace(R)
	c := clamp((tr-1)/2, -1, 1)
	theta := math.Acos(c)
	s := math.Sin(theta)
	axis := VeeSO3(mat3AddScaled(R, -1, mat3Transpose(R)))
	return vecScale(axis, 1/(2*s)*theta)
}

// nearSymmetric reports whether R - Rᵀ is within tol of zero, which holds
// both at the identity and at a π-rotation (the two singular regimes of
// the generic log formula).
func nearSymmetric(R [][]float64, tol float64) bool {
	return math.Abs(R[0][1]-R[1][0]) < tol &&
		math.Abs(R[0][2]-R[2][0]) < tol &&
		math.Abs(R[1][2]-R[2][1]) < tol
}

// logSO3AtPi extracts the axis of a π-rotation from the diagonal of
// (R+I)/2, following the largest-diagonal-element pivot for numerical
// stability (spec.md §4.A).
func logSO3AtPi(R [][]float64) []float64 {
	xx := (R[0][0] + 1) / 2
	yy := (R[1][1] + 1) / 2
	zz := (R[2][2] + 1) / 2
	xy := (R[0][1] + R[1][0]) / 4
	xz := (R[0][2] + R[2][0]) / 4
	yz := (R[1][2] + R[2][1]) / 4

	var x, y, z float64
	switch {
	case xx >= yy && xx >= zz:
		x = math.Sqrt(math.Max(xx, 0))
		if x < TinySO3 {
			x, y, z = 0, math.Sqrt2/2, math.Sqrt2/2
		} else {
			y, z = xy/x, xz/x
		}
	case yy >= zz:
		y = math.Sqrt(math.Max(yy, 0))
		if y < TinySO3 {
			x, y, z = math.Sqrt2/2, 0, math.Sqrt2/2
		} else {
			x, z = xy/y, yz/y
		}
	default:
		z = math.Sqrt(math.Max(zz, 0))
		if z < TinySO3 {
			x, y, z = math.Sqrt2/2, math.Sqrt2/2, 0
		} else {
			x, y = xz/z, yz/z
		}
	}
	axis := []float64{x, y, z}
	n := la.VecNorm(axis)
	if n > TinySO3 {
		axis = vecScale(axis, 1/n)
	}
	return vecScale(axis, math.Pi)
}

// LeftJacobianSO3 is the closed-form SO(3) left Jacobian J(φ), used to map
// the body-frame translation ρ of an se(3) tangent vector onto the actual
// translation component of exp(ξ).
func LeftJacobianSO3(phi []float64) [][]float64 {
	theta := la.VecNorm(phi)
	if theta < TinySO3 {
		return identity3()
	}
	K := HatSO3(phi)
	K2 := mat3Mul(K, K)
	J := identity3()
	J = mat3AddScaled(J, (1-math.Cos(theta))/(theta*theta), K)
	J = mat3AddScaled(J, (theta-math.Sin(theta))/(theta*theta*theta), K2)
	return J
}

// LeftJacobianInvSO3 is the closed-form inverse of LeftJacobianSO3, used to
// recover ρ from a translation t given the rotation's tangent φ.
func LeftJacobianInvSO3(phi []float64) [][]float64 {
	theta := la.VecNorm(phi)
	if theta < TinySO3 {
		return identity3()
	}
	K := HatSO3(phi)
	K2 := mat3Mul(K, K)
	coef := 1/(theta*theta) - (1+math.Cos(theta))/(2*theta*math.Sin(theta))
	Jinv := identity3()
	Jinv = mat3AddScaled(Jinv, -0.5, K)
	Jinv = mat3AddScaled(Jinv, coef, K2)
	return Jinv
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
