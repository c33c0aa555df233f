// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tactilepose estimates the six-degree-of-freedom pose of a rigid
// object from sparse, noisy tactile contact measurements against a known
// triangular surface mesh, via the scaling-series annealed particle
// filter over SE(3) (spec.md §1). This file exposes the stable, external
// surface named in spec.md §6; the filter's internals live in the se3,
// mesh and ptcl packages.
package tactilepose

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/tactilepose/mesh"
	"github.com/cpmech/tactilepose/ptcl"
	"github.com/cpmech/tactilepose/se3"
)

// Transform is re-exported from se3 so callers need not import the
// submodule directly for the common case of holding a candidate pose.
type Transform = se3.Transform

// Measurement is a single (point, normal) tactile contact observation, in
// the world frame (spec.md §3).
type Measurement = mesh.Measurement

// Mesh and Index are re-exported from the mesh package.
type Mesh = mesh.Mesh
type Index = mesh.Index

// Options forwards to ptcl.Options; see its documentation for the
// meaning of each field.
type Options = ptcl.Options

// Result forwards to ptcl.Result.
type Result = ptcl.Result

// LoadMesh implements spec.md §6 load_mesh: it builds a Mesh and its
// face-angle Index from vertex positions and triangular faces (vertex
// index triples).
func LoadMesh(vertices [][]float64, faces [][3]int) (*Mesh, *Index, error) {
	return mesh.Load(vertices, faces)
}

// ScalingSeries implements spec.md §6 scaling_series: the outer annealing
// driver. sigma0 and sigmaDesired are 6x6 symmetric positive-definite
// covariance matrices using the translation-block-first convention
// described in spec.md §6 and on ptcl.ScalingSeries.
func ScalingSeries(ctx context.Context, m *Mesh, idx *Index, particles0 []*Transform, measurements []Measurement, sigmaP, sigmaN float64, perBallQuota int, sigma0, sigmaDesired *mat.SymDense, pruneRatio float64, opts Options) (*Result, error) {
	return ptcl.ScalingSeries(ctx, m, idx, particles0, measurements, sigmaP, sigmaN, perBallQuota, sigma0, sigmaDesired, pruneRatio, opts)
}

// ComputeWeights implements spec.md §6 compute_weights, exposed for
// offline evaluation of a fixed particle set against a measurement set at
// a given temperature.
func ComputeWeights(m *Mesh, idx *Index, particles []*Transform, measurements []Measurement, sigmaP, sigmaN, tau float64) (weights []float64, degenerate bool) {
	return ptcl.ComputeWeights(m, idx, particles, measurements, sigmaP, sigmaN, tau)
}
