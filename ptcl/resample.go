// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ptcl

import (
	"math"
	"math/rand"

	"github.com/cpmech/tactilepose/se3"
)

// identityTol bounds the post-resampling duplicate-collapse test of
// SystematicResample (spec.md §4.F): T_i T_{i-1}⁻¹ ≈ I.
const identityTol = 1e-9

// ThresholdPrune keeps only the particles whose weight exceeds
// ratio·max(weights) (spec.md §4.F), preserving diversity among
// high-weight particles. This is the variant the scaling-series driver
// uses by default (SPEC_FULL.md §11 / REDESIGN FLAGS item 2).
func ThresholdPrune(particles []*se3.Transform, weights []float64, ratio float64) []*se3.Transform {
	var maxW float64
	for _, w := range weights {
		if w > maxW {
			maxW = w
		}
	}
	threshold := ratio * maxW
	var kept []*se3.Transform
	for i, w := range weights {
		if w > threshold {
			kept = append(kept, particles[i])
		}
	}
	return kept
}

// SystematicResample draws N particles by systematic residual resampling
// (spec.md §4.F): a single uniform offset u0 in [0, 1/N) generates N
// evenly-spaced draws against the cumulative weight distribution,
// guaranteeing an unbiased empirical distribution with reduced
// Monte-Carlo variance relative to multinomial resampling. Consecutive
// exact duplicates (T_i T_{i-1}⁻¹ ≈ I) are then collapsed.
func SystematicResample(particles []*se3.Transform, weights []float64, rng *rand.Rand) []*se3.Transform {
	n := len(particles)
	cum := make([]float64, n)
	cum[0] = weights[0]
	for i := 1; i < n; i++ {
		cum[i] = cum[i-1] + weights[i]
	}

	u0 := rng.Float64() / float64(n)
	drawn := make([]*se3.Transform, n)
	k := 0
	for i := 0; i < n; i++ {
		u := u0 + float64(i)/float64(n)
		for k < n-1 && cum[k] < u {
			k++
		}
		drawn[i] = particles[k]
	}

	var out []*se3.Transform
	for i, p := range drawn {
		if i == 0 || !approxIdentity(p, drawn[i-1]) {
			out = append(out, p)
		}
	}
	return out
}

// approxIdentity reports whether a·b⁻¹ ≈ I within identityTol.
func approxIdentity(a, b *se3.Transform) bool {
	diff := a.Compose(b.Inverse())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(diff.R[i][j]-want) > identityTol {
				return false
			}
		}
		if math.Abs(diff.Trans[i]) > identityTol {
			return false
		}
	}
	return true
}
