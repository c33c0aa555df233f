// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Face holds the geometry of one triangular mesh face: its three vertex
// positions (world frame, at mesh-load time) and derived quantities
// computed once by the preprocessor (spec.md §4.H).
type Face struct {
	V1, V2, V3 []float64 // vertex positions
	Normal     []float64 // unit outward normal
	Centroid   []float64
	Area       float64
}

// Mesh is a finite, immutable set of triangular faces (spec.md §3). Faces
// are indexed 0..len(Faces)-1; that index is what mesh.Index permutes.
type Mesh struct {
	Faces []Face
}

// Measurement is a single tactile contact observation: a contact point p
// and the observed unit surface-normal direction n, both in the world
// frame (spec.md §3). Measurement does not renormalize Normal; callers
// must supply unit vectors.
type Measurement struct {
	Point  []float64
	Normal []float64
}
