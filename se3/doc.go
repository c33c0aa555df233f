// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package se3 implements the exponential/logarithm maps, adjoint and
// hat/vee operators on SO(3) and SE(3) needed by the scaling-series
// particle filter: perturbing and centering candidate poses in the
// tangent space of rigid-body transforms.
package se3
