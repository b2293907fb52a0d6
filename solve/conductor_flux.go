// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"math"

	"github.com/dpedroso/heatfem/props"
)

// FinalizeConductors copies the solved extra unknown back into every
// floating conductor's V (the temperature the system settled on) and
// recovers Q for every fixed-temperature conductor. Call once after
// AnalyzeProblem returns true.
func (s *Solver) FinalizeConductors() {
	for i, c := range s.Prob.Conductors {
		if c.Type == props.CircFloatingFlow {
			c.V = s.Lin.V[s.numNodes+i]
		}
	}
	s.RecoverConductorFlux()
}

// RecoverConductorFlux fills in Q for every fixed-temperature
// conductor (CircType==CircFixedTemp) once the system has converged.
// A fixed-temperature conductor's own row in the assembled system
// carries no physical heat balance (it was pinned by the "big" penalty
// diagonal in assembleConductorRows), so its net heat flow has to be
// recovered directly from the converged field: the conduction gradient
// dotted with the gradient of the conductor's indicator function,
// integrated over every element touching it.
func (s *Solver) RecoverConductorFlux() {
	for i, c := range s.Prob.Conductors {
		if c.Type != props.CircFixedTemp {
			continue
		}
		c.Q = s.conductorFlow(i)
	}
}

// conductorFlow integrates the pure conduction term only: volumetric
// source, transient capacitance and edge boundary contributions on a
// member element do not belong to the conductor's net heat flow, so
// this does not reuse buildElementMB.
func (s *Solver) conductorFlow(conductorIndex int) float64 {
	var total float64
	for ei := range s.Mesh.Elements {
		el := &s.Mesh.Elements[ei]
		var ind [3]float64
		any := false
		for k := 0; k < 3; k++ {
			if s.Mesh.Nodes[el.P[k]].ConductorIndex == conductorIndex {
				ind[k] = 1
				any = true
			}
		}
		if !any {
			continue
		}

		var x, y [3]float64
		for k := 0; k < 3; k++ {
			n := s.Mesh.Nodes[el.P[k]]
			x[k], y[k] = n.X, n.Y
		}
		sh := computeShape(x, y)
		area := math.Abs(sh.Area)
		if area == 0 {
			continue
		}

		var kn complex128
		var gVx, gVy, gIx, gIy float64
		for k := 0; k < 3; k++ {
			v := s.Lin.V[el.P[k]]
			kn += el.Blk.GetK(v)
			gVx += v * sh.P[k]
			gVy += v * sh.Q[k]
			gIx += ind[k] * sh.P[k]
			gIy += ind[k] * sh.Q[k]
		}
		kn /= 3
		gVx /= 2 * area
		gVy /= 2 * area
		gIx /= 2 * area
		gIy /= 2 * area

		Dx := gVx * real(kn)
		Dy := gVy * imag(kn)
		total += area * s.depth(sh.Cx) * (Dx*gIx + Dy*gIy)
	}
	return total
}
