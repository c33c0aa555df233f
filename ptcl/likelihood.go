// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ptcl

import (
	"math"
	"runtime"
	"sync"

	"github.com/cpmech/tactilepose/mesh"
	"github.com/cpmech/tactilepose/se3"
)

// ComputeWeights implements spec.md §4.D compute_weights: for every
// candidate it expresses the full measurement set in the candidate's body
// frame, sums the squared minimum measurement distance over the best face
// per measurement, and converts the resulting energy to an unnormalized
// Gibbs weight exp(-E/2τ) before normalizing.
//
// Per spec.md §5 the candidate array is partitioned across worker
// goroutines, each writing a disjoint slice of the energy array; a single
// barrier (sync.WaitGroup) separates that fan-out from the normalization
// reduction, which must see a consistent view of every unnormalized
// weight.
//
// The second return value reports the all-zero-weight degeneracy of
// spec.md §7: when every candidate's unnormalized weight underflows to
// zero, weights are reset to uniform and this flag is set rather than
// raising an error, so the anneal can continue.
func ComputeWeights(m *mesh.Mesh, idx *mesh.Index, particles []*se3.Transform, measurements []mesh.Measurement, sigmaP, sigmaN, tau float64) ([]float64, bool) {
	n := len(particles)
	energies := make([]float64, n)

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			scratch := make([]mesh.Measurement, len(measurements))
			for i := lo; i < hi; i++ {
				energies[i] = particleEnergy(m, idx, particles[i], measurements, sigmaP, sigmaN, scratch)
			}
		}(lo, hi)
	}
	wg.Wait()

	weights := make([]float64, n)
	for i, e := range energies {
		weights[i] = math.Exp(-e / (2 * tau))
	}
	return normalize(weights)
}

// particleEnergy expresses every measurement in candidate T's body frame
// (reusing the caller-provided scratch buffer, spec.md §9: "allocate a
// small per-thread scratch buffer of transformed measurements, reused
// across particles") and sums the squared minimum measurement distance.
func particleEnergy(m *mesh.Mesh, idx *mesh.Index, T *se3.Transform, measurements []mesh.Measurement, sigmaP, sigmaN float64, scratch []mesh.Measurement) float64 {
	inv := T.Inverse()
	for j, meas := range measurements {
		p := affine(inv, meas.Point)
		n := rotateOnly(inv, meas.Normal)
		scratch[j] = mesh.Measurement{Point: p, Normal: n}
	}
	var energy float64
	for _, meas := range scratch {
		d := mesh.MinimumMeasurementDistance(m, idx, meas, sigmaP, sigmaN)
		energy += d * d
	}
	return energy
}

func affine(T *se3.Transform, v []float64) []float64 {
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = T.R[i][0]*v[0] + T.R[i][1]*v[1] + T.R[i][2]*v[2] + T.Trans[i]
	}
	return out
}

func rotateOnly(T *se3.Transform, v []float64) []float64 {
	out := make([]float64, 3)
	for i := 0; i < 3; i++ {
		out[i] = T.R[i][0]*v[0] + T.R[i][1]*v[1] + T.R[i][2]*v[2]
	}
	return out
}

// normalize divides by the sum of weights, falling back to a uniform
// distribution when the sum is zero (spec.md §3 weights invariant, §7
// all-zero-weight degeneracy).
func normalize(weights []float64) ([]float64, bool) {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		out := make([]float64, len(weights))
		u := 1.0 / float64(len(weights))
		for i := range out {
			out[i] = u
		}
		return out, true
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = w / sum
	}
	return out, false
}
