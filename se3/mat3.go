// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package se3

import "github.com/cpmech/gosl/la"

// small, fixed-size matrix kernels used by the SO(3)/SE(3) maps. These are
// deliberately hand-rolled rather than routed through a general-purpose
// matrix library: they operate on 3x3 blocks only, and gosl/la's MatAlloc is
// used for allocation, but gosl/la offers no general NxN multiply whose
// signature is safe to assume here.

func identity3() [][]float64 {
	M := la.MatAlloc(3, 3)
	M[0][0], M[1][1], M[2][2] = 1, 1, 1
	return M
}

func mat3Mul(A, B [][]float64) [][]float64 {
	C := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += A[i][k] * B[k][j]
			}
			C[i][j] = s
		}
	}
	return C
}

func mat3Transpose(A [][]float64) [][]float64 {
	T := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = A[j][i]
		}
	}
	return T
}

func mat3Trace(A [][]float64) float64 {
	return A[0][0] + A[1][1] + A[2][2]
}

// mat3AddScaled returns A + s*B.
func mat3AddScaled(A [][]float64, s float64, B [][]float64) [][]float64 {
	C := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = A[i][j] + s*B[i][j]
		}
	}
	return C
}

func mat3Vec(A [][]float64, v []float64) []float64 {
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = A[i][0]*v[0] + A[i][1]*v[1] + A[i][2]*v[2]
	}
	return out
}

func vecScale(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

func vecAdd(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

