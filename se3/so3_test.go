// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package se3

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_so3_roundtrip01(tst *testing.T) {

	chk.PrintTitle("so3_roundtrip01: exp/log round trip away from singularities")

	cases := [][]float64{
		{0, 0, 0},
		{0.1, -0.2, 0.3},
		{1.0, 0, 0},
		{0, 1.2, 0},
		{0.5, 0.5, 0.5},
		{2.0, -1.0, 0.3}, // ‖φ‖ < π
	}
	for _, phi := range cases {
		if la.VecNorm(phi) >= math.Pi {
			continue
		}
		R := ExpSO3(phi)
		back := LogSO3(R)
		io.Pforan("phi=%v back=%v\n", phi, back)
		chk.Vector(tst, "phi", 1e-9, phi, back)
	}
}

func Test_so3_identity01(tst *testing.T) {

	chk.PrintTitle("so3_identity01: log(I) == 0 and exp(0) == I")

	phi := LogSO3(identity3())
	chk.Vector(tst, "log(I)", 1e-12, phi, []float64{0, 0, 0})

	R := ExpSO3([]float64{0, 0, 0})
	chk.Vector(tst, "R[0]", 1e-12, R[0], []float64{1, 0, 0})
	chk.Vector(tst, "R[1]", 1e-12, R[1], []float64{0, 1, 0})
	chk.Vector(tst, "R[2]", 1e-12, R[2], []float64{0, 0, 1})
}

func Test_so3_pi_singularity01(tst *testing.T) {

	chk.PrintTitle("so3_pi_singularity01: 180deg rotation about an arbitrary axis")

	axis := []float64{1, 1, 1}
	n := la.VecNorm(axis)
	axis = vecScale(axis, 1/n)
	phi := vecScale(axis, math.Pi)

	R := ExpSO3(phi)
	back := LogSO3(R)

	// the recovered axis may point along +axis or -axis; compare norms and
	// the rotation they reproduce rather than raw components.
	io.Pforan("phi=%v back=%v\n", phi, back)
	chk.Scalar(tst, "‖back‖", 1e-6, la.VecNorm(back), math.Pi)

	R2 := ExpSO3(back)
	for i := 0; i < 3; i++ {
		chk.Vector(tst, "R row", 1e-6, R[i], R2[i])
	}
}

func Test_so3_left_jacobian01(tst *testing.T) {

	chk.PrintTitle("so3_left_jacobian01: J(φ) J⁻¹(φ) == I")

	for _, phi := range [][]float64{
		{0, 0, 0},
		{0.3, -0.1, 0.2},
		{1.5, 0, 0},
	} {
		J := LeftJacobianSO3(phi)
		Jinv := LeftJacobianInvSO3(phi)
		P := mat3Mul(J, Jinv)
		chk.Vector(tst, "row0", 1e-9, P[0], []float64{1, 0, 0})
		chk.Vector(tst, "row1", 1e-9, P[1], []float64{0, 1, 0})
		chk.Vector(tst, "row2", 1e-9, P[2], []float64{0, 0, 1})
	}
}
