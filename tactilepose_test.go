// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tactilepose

import (
	"context"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/tactilepose/se3"
)

// boxVertsFaces builds the axis-aligned box fixture of spec.md §8,
// duplicated here (as in mesh_test.go and ptcl/likelihood_test.go) since
// the helper is unexported in package mesh.
func boxVertsFaces(ex, ey, ez float64) ([][]float64, [][3]int) {
	hx, hy, hz := ex/2, ey/2, ez/2
	v := [][]float64{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2},
		{4, 5, 6}, {4, 6, 7},
		{0, 5, 4}, {0, 1, 5},
		{3, 6, 2}, {3, 7, 6},
		{0, 7, 3}, {0, 4, 7},
		{1, 6, 5}, {1, 2, 6},
	}
	return v, faces
}

// Test_integration_box01 exercises LoadMesh, ScalingSeries and
// ComputeWeights together through the package's external surface
// (spec.md §6), end to end against the §8 box scenario.
func Test_integration_box01(tst *testing.T) {

	chk.PrintTitle("integration_box01: LoadMesh + ScalingSeries + ComputeWeights end to end")

	verts, faces := boxVertsFaces(0.05, 0.1, 0.2)
	m, idx, err := LoadMesh(verts, faces)
	if err != nil {
		tst.Fatalf("LoadMesh failed: %v", err)
	}
	chk.IntAssert(len(m.Faces), 12)

	measurements := []Measurement{
		{Point: []float64{0, 0, 0.1}, Normal: []float64{0, 0, 1}},
		{Point: []float64{0.025, 0, 0}, Normal: []float64{1, 0, 0}},
	}

	sigma0 := mat.NewSymDense(6, nil)
	sigmaDesired := mat.NewSymDense(6, nil)
	for i := 0; i < 3; i++ {
		sigma0.SetSym(i, i, 0.01*0.01)
		sigma0.SetSym(3+i, 3+i, 0.1*0.1)
		sigmaDesired.SetSym(i, i, 1e-6)
		sigmaDesired.SetSym(3+i, 3+i, 1e-6)
	}

	rng := rand.New(rand.NewSource(11))
	particles0 := make([]*Transform, 20)
	for i := range particles0 {
		particles0[i] = se3.Identity()
	}

	result, err := ScalingSeries(context.Background(), m, idx, particles0, measurements, 0.005, 0.17, 6, sigma0, sigmaDesired, 0.6, Options{Rand: rng})
	if err != nil {
		tst.Fatalf("ScalingSeries failed: %v", err)
	}
	io.Pforan("integration run: %d iterations, %d final particles\n", result.Iterations, len(result.Particles))
	if len(result.Particles) == 0 {
		tst.Fatalf("expected a non-empty final particle set")
	}

	weights, degenerate := ComputeWeights(m, idx, result.Particles, measurements, 0.005, 0.17, 1.0)
	if degenerate {
		tst.Fatalf("did not expect degeneracy re-evaluating the converged particle set")
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	chk.Scalar(tst, "sum(weights)", 1e-9, sum, 1)
}
