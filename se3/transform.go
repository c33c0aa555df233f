// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package se3

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Transform is a rigid body transform T ∈ SE(3): a rotation R ∈ SO(3) and a
// translation Trans ∈ ℝ³. Internally this is the top-left 3x3 / top-right
// 3x1 block of a 4x4 homogeneous matrix whose bottom row is (0,0,0,1); the
// bottom row is never stored since it is invariant.
type Transform struct {
	R     [][]float64 // 3x3 rotation, Rᵀ R = I, det R = +1
	Trans []float64   // 3x1 translation
}

// NewTransform builds a Transform from an explicit rotation and translation,
// validating the SO(3) invariants (spec.md §3, §4.A: "invalid rotation
// matrix ... is reported but not corrected").
func NewTransform(R [][]float64, trans []float64) (*Transform, error) {
	if len(R) != 3 || len(R[0]) != 3 || len(R[1]) != 3 || len(R[2]) != 3 {
		return nil, chk.Err("NewTransform: R must be 3x3; got %dx? ", len(R))
	}
	if len(trans) != 3 {
		return nil, chk.Err("NewTransform: translation must have length 3; got %d", len(trans))
	}
	Rt := mat3Transpose(R)
	RtR := mat3Mul(Rt, R)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(RtR[i][j]-want) > 1e-6 {
				return nil, chk.Err("NewTransform: R is not orthogonal (Rᵀ R != I at [%d][%d]=%g)", i, j, RtR[i][j])
			}
		}
	}
	if det := mat3Det(R); math.Abs(det-1) > 1e-6 {
		return nil, chk.Err("NewTransform: det(R)=%g, want +1 (R is not a proper rotation)", det)
	}
	return &Transform{R: mat3Clone(R), Trans: la.VecClone(trans)}, nil
}

// Identity returns the identity transform.
func Identity() *Transform {
	return &Transform{R: identity3(), Trans: make([]float64, 3)}
}

// FromTangent builds T = exp(ξ) via the SE(3) exponential map.
func FromTangent(xi []float64) *Transform {
	return ExpSE3(xi)
}

// Clone returns a deep copy.
func (t *Transform) Clone() *Transform {
	return &Transform{R: mat3Clone(t.R), Trans: la.VecClone(t.Trans)}
}

// Inverse returns T⁻¹, exploiting the (R,p) structure: R⁻¹ = Rᵀ,
// p⁻¹ = -Rᵀp (spec.md §4.A).
func (t *Transform) Inverse() *Transform {
	Rt := mat3Transpose(t.R)
	p := vecScale(mat3Vec(Rt, t.Trans), -1)
	return &Transform{R: Rt, Trans: p}
}

// Compose returns t ∘ other, i.e. the transform that first applies other
// then t: R = R_t R_other, p = R_t p_other + p_t.
func (t *Transform) Compose(other *Transform) *Transform {
	R := mat3Mul(t.R, other.R)
	p := vecAdd(mat3Vec(t.R, other.Trans), t.Trans)
	return &Transform{R: R, Trans: p}
}

// Matrix4 returns the explicit 4x4 homogeneous matrix.
func (t *Transform) Matrix4() [][]float64 {
	M := la.MatAlloc(4, 4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M[i][j] = t.R[i][j]
		}
		M[i][3] = t.Trans[i]
	}
	M[3][3] = 1
	return M
}

func mat3Clone(A [][]float64) [][]float64 {
	B := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		copy(B[i], A[i])
	}
	return B
}

func mat3Det(A [][]float64) float64 {
	return A[0][0]*(A[1][1]*A[2][2]-A[1][2]*A[2][1]) -
		A[0][1]*(A[1][0]*A[2][2]-A[1][2]*A[2][0]) +
		A[0][2]*(A[1][0]*A[2][1]-A[1][1]*A[2][0])
}
