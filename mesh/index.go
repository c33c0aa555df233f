// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Index is the face-angle index of spec.md §4.B: a permutation of face
// indices sorted by θ_f = arccos(n_f · e_ref), together with the sorted
// angle array and the reference direction. Built once per mesh; immutable
// thereafter, and safe for concurrent read-only access from multiple
// evaluator goroutines (spec.md §5).
type Index struct {
	FaceIdx      []int     // permutation of face indices, sorted by angle
	SortedAngles []float64 // SortedAngles[k] == θ for FaceIdx[k], non-decreasing
	ERef         []float64 // reference direction used to build this index
}

// BuildIndex sorts m's faces by the angle between their normal and eRef.
func BuildIndex(m *Mesh, eRef []float64) *Index {
	n := len(m.Faces)
	faceIdx := make([]int, n)
	angles := make([]float64, n)
	for i, f := range m.Faces {
		faceIdx[i] = i
		angles[i] = math.Acos(clamp(dot(f.Normal, eRef), -1, 1))
	}
	sort.Slice(faceIdx, func(i, j int) bool {
		return angles[faceIdx[i]] < angles[faceIdx[j]]
	})
	sortedAngles := make([]float64, n)
	for k, fi := range faceIdx {
		sortedAngles[k] = angles[fi]
	}
	return &Index{FaceIdx: faceIdx, SortedAngles: sortedAngles, ERef: eRef}
}

// Range returns the half-open index range [lo, hi) into FaceIdx/SortedAngles
// that brackets every face whose normal could lie within sigmaN of the
// measurement normal n (spec.md §4.B): the allowable face normal lies in a
// cone of half-angle σ_n around n, and cone membership implies
// |θ_f - α| ≤ σ_n by the triangle inequality on spherical distances, so a
// contiguous angle-band scan around α suffices.
func (idx *Index) Range(n []float64, sigmaN float64) (lo, hi int) {
	alpha := math.Acos(clamp(dot(n, idx.ERef), -1, 1))
	pos := upperBound(idx.SortedAngles, alpha)

	if pos < len(idx.SortedAngles) {
		bandHi := idx.SortedAngles[pos] + (idx.SortedAngles[pos] - alpha) + sigmaN
		hi = pos + upperBound(idx.SortedAngles[pos:], bandHi)
	} else {
		hi = pos
	}

	if pos > 0 {
		bandLo := idx.SortedAngles[pos-1] - (idx.SortedAngles[pos-1] - alpha) - sigmaN
		lo = lowerBound(idx.SortedAngles[:pos], bandLo) - 1
		if lo < 0 {
			lo = 0
		}
	} else {
		lo = 0
	}
	return lo, hi
}

// upperBound mirrors bisect.bisect_right: the first index i such that
// sorted[i] > x (sorted must be non-decreasing).
func upperBound(sorted []float64, x float64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > x })
}

// lowerBound mirrors bisect.bisect_left: the first index i such that
// sorted[i] >= x.
func lowerBound(sorted []float64, x float64) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] >= x })
}

// validate checks the structural invariants of a mesh ahead of indexing:
// at least one face, and every face normal of unit length (spec.md §7
// "Malformed input").
func validate(m *Mesh) error {
	if len(m.Faces) == 0 {
		return chk.Err("mesh: zero faces")
	}
	for i, f := range m.Faces {
		if n := norm(f.Normal); math.Abs(n-1) > 1e-6 {
			return chk.Err("mesh: face %d has a non-unit normal (‖n‖=%g)", i, n)
		}
	}
	return nil
}
