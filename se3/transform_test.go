// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package se3

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_transform_identity01(tst *testing.T) {

	chk.PrintTitle("transform_identity01: Identity() round-trips through Compose")

	T := FromTangent([]float64{0.1, -0.2, 0.05, 0.3, -0.1, 0.2})
	I := Identity()
	C := T.Compose(I)
	chk.Vector(tst, "row0", 1e-12, C.R[0], T.R[0])
	chk.Vector(tst, "row1", 1e-12, C.R[1], T.R[1])
	chk.Vector(tst, "row2", 1e-12, C.R[2], T.R[2])
	chk.Vector(tst, "trans", 1e-12, C.Trans, T.Trans)
}

func Test_transform_new_validates01(tst *testing.T) {

	chk.PrintTitle("transform_new_validates01: NewTransform rejects a non-orthogonal R")

	bad := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 2}, // det != 1
	}
	_, err := NewTransform(bad, []float64{0, 0, 0})
	if err == nil {
		tst.Fatalf("expected an error for a non-orthogonal rotation matrix")
	}
}

func Test_transform_matrix4_01(tst *testing.T) {

	chk.PrintTitle("transform_matrix4_01: Matrix4 packs R and Trans correctly")

	T := FromTangent([]float64{0.02, 0.01, -0.03, 0.1, 0.2, -0.1})
	M := T.Matrix4()
	chk.IntAssert(len(M), 4)
	for i := 0; i < 3; i++ {
		chk.Vector(tst, "row", 1e-12, M[i][:3], T.R[i])
		chk.Scalar(tst, "M[i][3]", 1e-12, M[i][3], T.Trans[i])
	}
	chk.Vector(tst, "bottom row", 1e-12, M[3], []float64{0, 0, 0, 1})
}
