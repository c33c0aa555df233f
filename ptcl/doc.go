// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ptcl implements the scaling-series annealed particle filter:
// the region sampler (spec.md §4.E), the likelihood evaluator (§4.D), the
// resampler/pruner (§4.F) and the outer annealing driver (§4.G) that ties
// them together.
package ptcl
