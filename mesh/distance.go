// Copyright 2026 The tactilepose Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "math"

// ClosestPointOnTriangle returns the point on the closed triangle
// (v1, v2, v3) nearest p, using the standard Voronoi-region test (spec.md
// §4.C): the point is clamped to whichever of the seven regions
// (3 vertices, 3 edges, the face interior) p's projection falls into.
func ClosestPointOnTriangle(p, v1, v2, v3 []float64) []float64 {
	ab := sub(v2, v1)
	ac := sub(v3, v1)
	ap := sub(p, v1)

	d1 := dot(ab, ap)
	d2 := dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return v1 // barycentric (1,0,0)
	}

	bp := sub(p, v2)
	d3 := dot(ab, bp)
	d4 := dot(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return v2 // barycentric (0,1,0)
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return add(v1, scale(ab, v)) // edge AB
	}

	cp := sub(p, v3)
	d5 := dot(ab, cp)
	d6 := dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return v3 // barycentric (0,0,1)
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return add(v1, scale(ac, w)) // edge AC
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return add(v2, scale(sub(v3, v2), w)) // edge BC
	}

	// interior: barycentric coordinates (u,v,w)
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return add(v1, add(scale(ab, v), scale(ac, w)))
}

// ClosestPointMeasurementDistance is the combined position+normal
// "measurement distance" of spec.md §4.C: the Mahalanobis-like residual
// in a diagonal (σ_p², σ_n²) metric between a measurement and a face,
// using the true closest point on the triangle.
func ClosestPointMeasurementDistance(f Face, m Measurement, sigmaP, sigmaN float64) float64 {
	q := ClosestPointOnTriangle(m.Point, f.V1, f.V2, f.V3)
	dp := norm(sub(q, m.Point))
	dn := math.Acos(clamp(dot(f.Normal, m.Normal), -1, 1))
	return math.Sqrt((dp/sigmaP)*(dp/sigmaP) + (dn/sigmaN)*(dn/sigmaN))
}

// PlaneMeasurementDistance is the point-to-plane variant of the position
// residual (original_source/cope/particlelib.py CalculateMahaDistanceFace):
// instead of the true closest point on the triangle, the position
// residual is the absolute distance from the measured point to the face's
// supporting plane, measured along the face normal. Offered alongside
// ClosestPointMeasurementDistance as an alternate distance functor
// (SPEC_FULL.md §11); not the default.
func PlaneMeasurementDistance(f Face, m Measurement, sigmaP, sigmaN float64) float64 {
	dp := math.Abs(dot(sub(m.Point, f.V1), f.Normal))
	dn := math.Acos(clamp(dot(f.Normal, m.Normal), -1, 1))
	return math.Sqrt((dp/sigmaP)*(dp/sigmaP) + (dn/sigmaN)*(dn/sigmaN))
}
