// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package se3

// numerical tolerances and thresholds used throughout the SO(3)/SE(3) maps.
// Named here instead of inline so the branch selection in LogSO3 reads
// against a single, auditable set of constants (spec.md §4.A).
const (
	// TinySO3 is the norm below which ExpSO3 returns the identity rather
	// than dividing by a near-zero angle.
	TinySO3 = 1e-12

	// IdentityTol bounds the off-diagonal symmetry test that flags a
	// rotation as being at (or arbitrarily close to) either the identity
	// or the π-angle singularity.
	IdentityTol = 1e-4

	// IdentityTol2 is the looser tolerance used once the off-diagonal
	// symmetry test has fired, to tell the identity apart from a true
	// π-rotation (matches the two-tier epsilon/epsilon2 split of the
	// source RotToVec).
	IdentityTol2 = 1e-3
)
