// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ptcl

import (
	"context"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/tactilepose/mesh"
	"github.com/cpmech/tactilepose/se3"
)

// zoom is the per-iteration shrink factor of spec.md §4.G: z = 2^(-1/6),
// so each 3-D ball volume shrinks by 2^(-1/2) per iteration and the
// combined 6-D (rotation × translation) volume halves.
const zoom = 0.8908987181403393 // 2^(-1/6)

// Options configures a ScalingSeries run beyond the mandatory §6
// arguments.
type Options struct {
	// Rand seeds the per-call RNG; if nil, a source seeded with 1 is used.
	// Pass a deterministic *rand.Rand for reproducible runs (spec.md §5).
	Rand *rand.Rand

	// Verbose prints the δ/τ trace of each iteration via gosl/io, in the
	// style of the teacher's fem.NewFEM driver.
	Verbose bool
}

// Result is the output of ScalingSeries: a weighted particle set
// approximating the pose posterior (spec.md §6).
type Result struct {
	Particles  []*se3.Transform
	Weights    []float64
	Iterations int

	// Degenerate is set once if any iteration's likelihood evaluation hit
	// the all-zero-weight degeneracy of spec.md §7.
	Degenerate bool

	// Cancelled reports whether the caller's context was done before all
	// iterations completed; Particles/Weights then hold the particle set
	// drawn and weighted in the last completed iteration (Particles is
	// particles0 and Weights is nil if no iteration completed) (spec.md
	// §5, §7 — cancellation is not an error).
	Cancelled bool
}

// ScalingSeries is the annealing driver of spec.md §4.G: it repeatedly
// shrinks the sampling region and the likelihood temperature in lockstep,
// resampling and pruning between iterations. It runs N iterations, N being
// the rounded larger of the rotation and translation log2 ratios between
// the 3-D ball volumes at sigma0's and sigmaDesired's radii; with the zoom
// factor above, that leaves the radius of the deciding block at about the
// geometric mean of its initial and desired values, not at the desired one.
//
// sigma0 and sigmaDesired are 6x6 symmetric positive-definite covariance
// matrices using the convention of spec.md §6: the translation block is
// the upper-left 3x3 (Σ[:3,:3]), the rotation block is the lower-right
// 3x3 (Σ[3:,3:]).
func ScalingSeries(ctx context.Context, m *mesh.Mesh, idx *mesh.Index, particles0 []*se3.Transform, measurements []mesh.Measurement, sigmaP, sigmaN float64, perBallQuota int, sigma0, sigmaDesired *mat.SymDense, pruneRatio float64, opts Options) (*Result, error) {

	if len(particles0) == 0 {
		return nil, chk.Err("ScalingSeries: particles0 must be non-empty")
	}
	if len(measurements) == 0 {
		return nil, chk.Err("ScalingSeries: measurements must be non-empty")
	}

	deltaRot, err := maxCholeskyDiag(sigma0, 3)
	if err != nil {
		return nil, chk.Err("ScalingSeries: sigma0 rotation block: %v", err)
	}
	deltaTrans, err := maxCholeskyDiag(sigma0, 0)
	if err != nil {
		return nil, chk.Err("ScalingSeries: sigma0 translation block: %v", err)
	}
	deltaRotStar, err := maxCholeskyDiag(sigmaDesired, 3)
	if err != nil {
		return nil, chk.Err("ScalingSeries: sigmaDesired rotation block: %v", err)
	}
	deltaTransStar, err := maxCholeskyDiag(sigmaDesired, 0)
	if err != nil {
		return nil, chk.Err("ScalingSeries: sigmaDesired translation block: %v", err)
	}

	nRot := math.Log2(volume(deltaRot, 3) / volume(deltaRotStar, 3))
	nTrans := math.Log2(volume(deltaTrans, 3) / volume(deltaTransStar, 3))
	N := int(math.Round(math.Max(nRot, nTrans)))

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	result := &Result{Particles: particles0}
	region := NewRegion(particles0, deltaRot, deltaTrans)

	for n := 0; n < N; n++ {
		select {
		case <-ctx.Done():
			result.Cancelled = true
			return result, nil
		default:
		}

		deltaRot *= zoom
		deltaTrans *= zoom
		tau := (deltaTrans / deltaTransStar) * (deltaTrans / deltaTransStar)

		particles := EvenDensityCover(region, perBallQuota, rng)
		weights, degenerate := ComputeWeights(m, idx, particles, measurements, sigmaP, sigmaN, tau)
		if degenerate {
			result.Degenerate = true
		}
		pruned := ThresholdPrune(particles, weights, pruneRatio)

		if opts.Verbose {
			io.Pforan("iter %3d: deltaRot=%v deltaTrans=%v tau=%v n_particles=%d n_pruned=%d\n",
				n, deltaRot, deltaTrans, tau, len(particles), len(pruned))
		}

		region = NewRegion(pruned, deltaRot, deltaTrans)
		result.Particles = particles
		result.Weights = weights
		result.Iterations = n + 1
	}

	finalParticles := EvenDensityCover(region, perBallQuota, rng)
	finalWeights, degenerate := ComputeWeights(m, idx, finalParticles, measurements, sigmaP, sigmaN, 1.0)
	if degenerate {
		result.Degenerate = true
	}
	result.Particles = finalParticles
	result.Weights = finalWeights
	return result, nil
}

// volume is the n-ball volume formula of spec.md §4.G:
// V(r, d) = π^(d/2) / Γ(d/2 + 1) · r^d.
func volume(radius float64, dim float64) float64 {
	return math.Pow(math.Pi, dim/2) / math.Gamma(dim/2+1) * math.Pow(radius, dim)
}

// maxCholeskyDiag Cholesky-factorizes the 3x3 block of sigma starting at
// (offset, offset) and returns the largest diagonal entry of the
// resulting lower-triangular factor (spec.md §4.G: "δ_rot⁰ = max diagonal
// of Cholesky(Σ0[rot,rot])ᵀ").
func maxCholeskyDiag(sigma *mat.SymDense, offset int) (float64, error) {
	n, _ := sigma.Dims()
	if n != 6 {
		return 0, chk.Err("covariance must be 6x6; got %dx%d", n, n)
	}
	block := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			block.SetSym(i, j, sigma.At(offset+i, offset+j))
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(block); !ok {
		return 0, chk.Err("block is not symmetric positive-definite (Cholesky factorization failed)")
	}
	var L mat.TriDense
	chol.LTo(&L)
	var maxDiag float64
	for i := 0; i < 3; i++ {
		if v := L.At(i, i); v > maxDiag {
			maxDiag = v
		}
	}
	return maxDiag, nil
}
