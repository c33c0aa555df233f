// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh holds the triangular surface mesh the particle filter
// scores candidate poses against: per-face geometry, the face-angle index
// that bounds the nearest-face search (spec.md §4.B), and the
// point-to-triangle / measurement-distance primitives (spec.md §4.C).
package mesh
