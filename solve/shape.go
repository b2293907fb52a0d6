// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import "math"

// shapeParams holds the linear-triangle shape-function coefficients:
// N_k = (p[k]*x + q[k]*y + ...)/(2*Area), so dN_k/dx = p[k]/(2*Area)
// and dN_k/dy = q[k]/(2*Area).
type shapeParams struct {
	P      [3]float64
	Q      [3]float64
	Area2  float64 // signed twice-area, 2a = p[0]*q[1] - p[1]*q[0]
	Area   float64
	Len    [3]float64 // edge lengths, Len[k] = |node[k+1] - node[k]|
	Cx, Cy float64    // centroid
}

func computeShape(x, y [3]float64) shapeParams {
	var s shapeParams
	for k := 0; k < 3; k++ {
		j := (k + 1) % 3
		l := (k + 2) % 3
		s.P[k] = y[j] - y[l]
		s.Q[k] = x[l] - x[j]
	}
	s.Area2 = s.P[0]*s.Q[1] - s.P[1]*s.Q[0]
	s.Area = s.Area2 / 2
	for k := 0; k < 3; k++ {
		j := (k + 1) % 3
		dx := x[j] - x[k]
		dy := y[j] - y[k]
		s.Len[k] = math.Hypot(dx, dy)
	}
	s.Cx = (x[0] + x[1] + x[2]) / 3
	s.Cy = (y[0] + y[1] + y[2]) / 3
	return s
}
