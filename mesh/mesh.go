// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ZRef is the conventional reference axis (+z) the face-angle index is
// built against (spec.md §4.H).
var ZRef = []float64{0, 0, 1}

// Load builds a Mesh and its face-angle Index from raw vertex/face data
// (spec.md §6 load_mesh). faces holds, per triangle, the indices of its
// three vertices into verts. Per-face centroid, area and outward unit
// normal are computed once here; the mesh and index are immutable after
// this call (spec.md §4.H).
//
// Load fails fast (spec.md §7) on a mesh with zero faces, an out-of-range
// vertex index, or a degenerate (zero-area) face.
func Load(verts [][]float64, faces [][3]int) (*Mesh, *Index, error) {
	if len(faces) == 0 {
		return nil, nil, chk.Err("mesh.Load: mesh has zero faces")
	}
	m := &Mesh{Faces: make([]Face, len(faces))}
	for i, f := range faces {
		for _, vi := range f {
			if vi < 0 || vi >= len(verts) {
				return nil, nil, chk.Err("mesh.Load: face %d references out-of-range vertex %d", i, vi)
			}
		}
		v1, v2, v3 := verts[f[0]], verts[f[1]], verts[f[2]]
		nrm := cross(sub(v2, v1), sub(v3, v1))
		mag := norm(nrm)
		if mag < 1e-12 {
			return nil, nil, chk.Err("mesh.Load: face %d is degenerate (zero area)", i)
		}
		unit := scale(nrm, 1/mag)
		centroid := scale(add(add(v1, v2), v3), 1.0/3.0)
		m.Faces[i] = Face{
			V1: v1, V2: v2, V3: v3,
			Normal:   unit,
			Centroid: centroid,
			Area:     0.5 * mag,
		}
	}
	if err := validate(m); err != nil {
		return nil, nil, err
	}
	idx := BuildIndex(m, ZRef)
	return m, idx, nil
}

// MinimumMeasurementDistance implements spec.md §4.D
// minimum_measurement_distance: it queries idx for the candidate face
// range bracketing m's normal, evaluates the combined measurement
// distance for every face in that range, and returns the minimum. An
// empty range is widened by one slot on each side as a defensive
// fallback (spec.md §7); the index spans [0, π] so this never leaves the
// range empty in practice.
func MinimumMeasurementDistance(m *Mesh, idx *Index, meas Measurement, sigmaP, sigmaN float64) float64 {
	lo, hi := idx.Range(meas.Normal, sigmaN)
	if hi <= lo {
		lo, hi = widen(lo, hi, len(idx.FaceIdx))
	}
	best := math.Inf(1)
	for k := lo; k < hi; k++ {
		fi := idx.FaceIdx[k]
		d := ClosestPointMeasurementDistance(m.Faces[fi], meas, sigmaP, sigmaN)
		if d < best {
			best = d
		}
	}
	return best
}

func widen(lo, hi, n int) (int, int) {
	lo--
	hi++
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

// BruteForceMinimumDistance is the unindexed sibling of
// MinimumMeasurementDistance (original_source/cope/particlelib.py
// FindminimumDistanceMeshOriginal), scanning every face. It is not on the
// filter's hot path; it exists to cross-check the indexed search's
// soundness (spec.md §8 property 7, Index.Range never excludes the true
// nearest face).
func BruteForceMinimumDistance(m *Mesh, meas Measurement, sigmaP, sigmaN float64) float64 {
	best := math.Inf(1)
	for _, f := range m.Faces {
		d := ClosestPointMeasurementDistance(f, meas, sigmaP, sigmaN)
		if d < best {
			best = d
		}
	}
	return best
}
