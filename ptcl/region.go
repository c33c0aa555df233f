// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ptcl

import "github.com/cpmech/tactilepose/se3"

// Region is the tuple (particles, δ_rot, δ_trans) of spec.md §3: a union
// of tangent-space neighborhoods, one ball per particle, of radius δ_rot
// in rotation and δ_trans in translation.
type Region struct {
	Particles  []*se3.Transform
	DeltaRot   float64
	DeltaTrans float64

	// rotVec[i] caches se3.LogSO3(Particles[i].R) so that EvenDensityCover
	// never recomputes a center's rotation log on each neighborhood test
	// (spec.md §9: "Re-computing log_so3 inside neighborhood tests ...
	// cache each particle's ξ once at region construction").
	rotVec [][]float64
}

// NewRegion builds a Region and caches each center's rotation tangent
// vector once.
func NewRegion(particles []*se3.Transform, deltaRot, deltaTrans float64) *Region {
	rotVec := make([][]float64, len(particles))
	for i, p := range particles {
		rotVec[i] = se3.LogSO3(p.R)
	}
	return &Region{
		Particles:  particles,
		DeltaRot:   deltaRot,
		DeltaTrans: deltaTrans,
		rotVec:     rotVec,
	}
}

func isInside(point, center []float64, radius float64) bool {
	var s float64
	for i := range point {
		d := point[i] - center[i]
		s += d * d
	}
	return s < radius*radius
}
