// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ptcl

import (
	"context"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/tactilepose/mesh"
	"github.com/cpmech/tactilepose/se3"
)

// diagSigma builds a 6x6 diagonal covariance using the convention of
// spec.md §6: translation block at [:3,:3], rotation block at [3:,3:].
func diagSigma(transVar, rotVar float64) *mat.SymDense {
	d := make([]float64, 6)
	for i := 0; i < 3; i++ {
		d[i] = transVar
		d[3+i] = rotVar
	}
	sigma := mat.NewSymDense(6, nil)
	for i, v := range d {
		sigma.SetSym(i, i, v)
	}
	return sigma
}

func seedParticles(n int, rng *rand.Rand) []*se3.Transform {
	out := make([]*se3.Transform, n)
	for i := range out {
		xi := []float64{
			(rng.Float64()*2 - 1) * 0.08,
			(rng.Float64()*2 - 1) * 0.08,
			(rng.Float64()*2 - 1) * 0.08,
		}
		rot := []float64{
			(rng.Float64()*2 - 1) * 0.08,
			(rng.Float64()*2 - 1) * 0.08,
			(rng.Float64()*2 - 1) * 0.08,
		}
		out[i] = &se3.Transform{R: se3.ExpSO3(rot), Trans: xi}
	}
	return out
}

func Test_scaling_series_box01(tst *testing.T) {

	chk.PrintTitle("scaling_series_box01: spec.md §8 box scenario converges near identity")

	m, idx, err := boxMesh(0.05, 0.1, 0.2)
	if err != nil {
		tst.Fatalf("boxMesh failed: %v", err)
	}

	measurements := []mesh.Measurement{
		{Point: []float64{0, 0, 0.1}, Normal: []float64{0, 0, 1}},
		{Point: []float64{0.025, 0, 0}, Normal: []float64{1, 0, 0}},
		{Point: []float64{0, 0.05, 0}, Normal: []float64{0, 1, 0}},
	}

	sigmaP := 0.005
	sigmaN := 0.17
	sigma0 := diagSigma(0.01*0.01, 0.1*0.1)
	sigmaDesired := diagSigma(1e-6, 1e-6)

	rng := rand.New(rand.NewSource(3))
	particles0 := seedParticles(30, rng)

	opts := Options{Rand: rand.New(rand.NewSource(3)), Verbose: true}
	result, err := ScalingSeries(context.Background(), m, idx, particles0, measurements, sigmaP, sigmaN, 6, sigma0, sigmaDesired, 0.6, opts)
	if err != nil {
		tst.Fatalf("ScalingSeries failed: %v", err)
	}

	best := 0
	for i, w := range result.Weights {
		if w > result.Weights[best] {
			best = i
		}
	}
	T := result.Particles[best]
	io.Pforan("best particle: trans=%v rot=%v weight=%v after %d iterations\n",
		T.Trans, se3.LogSO3(T.R), result.Weights[best], result.Iterations)

	for i := 0; i < 3; i++ {
		if v := T.Trans[i]; v < -0.005 || v > 0.005 {
			tst.Fatalf("translation component %d = %v exceeds 5mm tolerance", i, v)
		}
	}
	rotVec := se3.LogSO3(T.R)
	for i := 0; i < 3; i++ {
		if v := rotVec[i]; v < -0.05 || v > 0.05 {
			tst.Fatalf("rotation component %d = %v exceeds 0.05rad tolerance", i, v)
		}
	}
}

func Test_scaling_series_monotone_anneal01(tst *testing.T) {

	chk.PrintTitle("scaling_series_monotone_anneal01: deltaRot/deltaTrans shrink monotonically (spec.md §8 item 5)")

	deltaRot, deltaTrans := 0.1, 0.01
	prevRot, prevTrans := deltaRot, deltaTrans
	for n := 0; n < 10; n++ {
		deltaRot *= zoom
		deltaTrans *= zoom
		if deltaRot >= prevRot || deltaTrans >= prevTrans {
			tst.Fatalf("iteration %d: radii did not shrink (rot %v->%v, trans %v->%v)", n, prevRot, deltaRot, prevTrans, deltaTrans)
		}
		prevRot, prevTrans = deltaRot, deltaTrans
	}
}

func Test_scaling_series_cancellation01(tst *testing.T) {

	chk.PrintTitle("scaling_series_cancellation01: a cancelled context returns a partial, non-error result")

	m, idx, err := boxMesh(0.05, 0.1, 0.2)
	if err != nil {
		tst.Fatalf("boxMesh failed: %v", err)
	}
	measurements := []mesh.Measurement{
		{Point: []float64{0, 0, 0.1}, Normal: []float64{0, 0, 1}},
	}
	sigma0 := diagSigma(0.01*0.01, 0.1*0.1)
	sigmaDesired := diagSigma(1e-6, 1e-6)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rng := rand.New(rand.NewSource(5))
	particles0 := seedParticles(10, rng)
	result, err := ScalingSeries(ctx, m, idx, particles0, measurements, 0.005, 0.17, 6, sigma0, sigmaDesired, 0.6, Options{Rand: rng})
	if err != nil {
		tst.Fatalf("expected cancellation to be reported without an error, got: %v", err)
	}
	if !result.Cancelled {
		tst.Fatalf("expected Result.Cancelled to be true")
	}
}
