// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve implements the assembler and nonlinear driver: one
// linear triangle at a time, it builds the conductivity/capacitance/
// source contribution, folds in edge boundary conditions and
// prescribed values, scatters into the global system and, when a
// radiation boundary makes the problem nonlinear, repeats under
// Picard iteration until the solution stops moving.
//
// Grounded on ele/diffusion/diffusion.go's per-integration-point
// accumulation loop and fem/essenbcs.go's constrained-row folding,
// generalized from isoparametric/Gauss-point integration to the
// closed-form linear triangle used here.
package solve

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/dpedroso/heatfem/linsys"
	"github.com/dpedroso/heatfem/logging"
	"github.com/dpedroso/heatfem/mesh"
	"github.com/dpedroso/heatfem/problem"
	"github.com/dpedroso/heatfem/props"
	"github.com/dpedroso/heatfem/units"
)

// Solver binds a loaded Problem and Mesh to the linear system it
// assembles and repeatedly resolves.
type Solver struct {
	Prob *problem.Problem
	Mesh *mesh.Mesh
	Lin  *linsys.BigLinProb
	Log  logging.Logger

	// Tprev holds the previous timestep's nodal temperatures for a
	// transient step (len(Mesh.Nodes)); nil for a steady-state solve.
	Tprev []float64

	numNodes int
	numCirc  int
}

// New binds a Solver to prob/msh. tprev may be nil (steady state).
func New(prob *problem.Problem, msh *mesh.Mesh, tprev []float64, log logging.Logger) *Solver {
	return &Solver{
		Prob:     prob,
		Mesh:     msh,
		Log:      log,
		Tprev:    tprev,
		numNodes: len(msh.Nodes),
		numCirc:  len(prob.Conductors),
	}
}

// AnalyzeProblem assembles and solves the system, iterating under
// Picard's method while a radiation boundary condition makes the
// conductivity matrix temperature-dependent. maxit bounds the
// iteration count; a genuinely divergent radiation problem would
// otherwise loop forever, so this cap is a deliberate addition (see
// DESIGN.md). It returns false on PCG failure or on exceeding maxit
// without the Picard test passing.
func (s *Solver) AnalyzeProblem(maxit int) bool {
	n := s.numNodes + s.numCirc
	s.Lin = linsys.New(n, s.Prob.Precision)

	for it := 0; it < maxit; it++ {
		Vo := append([]float64(nil), s.Lin.V...)
		s.Lin.Wipe()
		for i := range s.Lin.Q {
			s.Lin.Q[i] = -2
		}

		nonlinear := s.assemble(Vo)

		if !s.Lin.PCGSolve(4 * n) {
			s.Log.Warnf("PCG did not converge on iteration %d", it)
			return false
		}
		if !nonlinear {
			return true
		}

		var e1, e2 float64
		for i := 0; i < s.numNodes; i++ {
			d := s.Lin.V[i] - Vo[i]
			e1 += d * d
			e2 += Vo[i] * Vo[i]
		}
		if e2 == 0 {
			e2 = 1
		}
		if math.Sqrt(e1/e2) < s.Prob.Precision*100 {
			return true
		}
	}
	s.Log.Warnf("radiation nonlinearity did not converge within %d iterations", maxit)
	return false
}

// depth returns the out-of-plane thickness (planar) or 2*pi*r
// (axisymmetric) used to turn a 2D integral into the problem's true
// 3D heat flow.
func (s *Solver) depth(r float64) float64 {
	if s.Prob.ProblemType == units.Axisymmetric {
		return 2 * math.Pi * r
	}
	return s.Prob.Depth
}

// kludgeFactor applies the axisymmetric Kelvin exterior-region
// mapping to an element's conductivity contribution; 1 (no effect)
// for interior elements and the planar case.
func (s *Solver) kludgeFactor(external bool, cx, cy float64) float64 {
	if !external || s.Prob.ProblemType != units.Axisymmetric {
		return 1
	}
	dz := cy - s.Prob.ExtZo
	return (cx*cx + dz*dz) / (s.Prob.ExtRi * s.Prob.ExtRo)
}

// assemble builds the whole linear system from Vo, the previous
// iterate's nodal temperatures (all zero on the first pass), and
// reports whether any radiation boundary contributed (driving another
// Picard iteration).
func (s *Solver) assemble(Vo []float64) bool {
	s.pinPointTemperatures(Vo)
	s.pinConductorTemperatures(Vo)
	s.pinTemperatureEdges()

	nonlinear := false
	for ei := range s.Mesh.Elements {
		if s.assembleElement(ei, Vo) {
			nonlinear = true
		}
	}

	s.applyPointFlows()
	s.tagConductorRows()
	s.applyPeriodicity()
	s.assembleConductorRows()
	return nonlinear
}

// pinPointTemperatures marks every node whose point property is a
// fixed temperature (Qp==0) as Dirichlet.
func (s *Solver) pinPointTemperatures(Vo []float64) {
	for i, n := range s.Mesh.Nodes {
		if n.BoundaryMarker < 0 || n.BoundaryMarker >= len(s.Prob.PointProps) {
			continue
		}
		pp := s.Prob.PointProps[n.BoundaryMarker]
		if pp.IsFixedTemp() {
			s.Lin.V[i] = pp.Tp
			s.Lin.Q[i] = -1
		}
	}
}

// pinConductorTemperatures marks every node belonging to a
// fixed-temperature conductor as Dirichlet at that conductor's
// temperature, overriding any point-property assignment. A node
// belonging to a floating conductor is left untagged (Q stays -2):
// it is not yet known, only tied to the conductor's own extra
// unknown, and row/scatterElement decide that remap directly from
// mesh.Node.ConductorIndex/props.Conductor.Type rather than from Q,
// so foldPrescribed does not fold it away with a stale V.
func (s *Solver) pinConductorTemperatures(Vo []float64) {
	for i, n := range s.Mesh.Nodes {
		if n.ConductorIndex < 0 || n.ConductorIndex >= len(s.Prob.Conductors) {
			continue
		}
		c := s.Prob.Conductors[n.ConductorIndex]
		if c.Type == props.CircFixedTemp {
			s.Lin.V[i] = c.V
			s.Lin.Q[i] = -1
		}
	}
}

// pinTemperatureEdges pins both endpoints of every element edge tagged
// with a BdryTemperature boundary.
func (s *Solver) pinTemperatureEdges() {
	for _, el := range s.Mesh.Elements {
		for k := 0; k < 3; k++ {
			j := el.E[k]
			if j < 0 || j >= len(s.Prob.BdryProps) {
				continue
			}
			bp, ok := s.Prob.BdryProps[j].(*props.Temperature)
			if !ok {
				continue
			}
			a, b := el.P[k], el.P[(k+1)%3]
			s.Lin.V[a], s.Lin.Q[a] = bp.Tset, -1
			s.Lin.V[b], s.Lin.Q[b] = bp.Tset, -1
		}
	}
}

// applyPointFlows adds the point heat-flow contribution of every
// node whose point property carries a nonzero Qp.
func (s *Solver) applyPointFlows() {
	for i, n := range s.Mesh.Nodes {
		if n.BoundaryMarker < 0 || n.BoundaryMarker >= len(s.Prob.PointProps) {
			continue
		}
		if s.Lin.Q[i] != -2 {
			continue
		}
		pp := s.Prob.PointProps[n.BoundaryMarker]
		s.Lin.B[i] += s.depth(n.X) * pp.Qp
		s.Lin.Q[i] = -1
	}
}

// tagConductorRows stamps every conductor member's Q with its
// conductor's index, for the .anh output's row tag only: by this
// point every fold/remap decision that needed Q has already been
// made (fixed-temp members were pinned in pinConductorTemperatures;
// floating members were remapped in row/scatterElement directly from
// mesh.Node.ConductorIndex), so overwriting Q here cannot perturb the
// assembled system.
func (s *Solver) tagConductorRows() {
	for i, n := range s.Mesh.Nodes {
		if n.ConductorIndex < 0 || n.ConductorIndex >= len(s.Prob.Conductors) {
			continue
		}
		s.Lin.Q[i] = n.ConductorIndex
	}
}

// applyPeriodicity folds every periodic/antiperiodic node pair.
func (s *Solver) applyPeriodicity() {
	for _, pbc := range s.Mesh.PBCs {
		if pbc.Antiperiodic() {
			s.Lin.AntiPeriodicity(pbc.NodeA, pbc.NodeB)
		} else {
			s.Lin.Periodicity(pbc.NodeA, pbc.NodeB)
		}
	}
}

// row returns the global system row a local node's equation feeds
// into: its own index, or a floating conductor's extra unknown if it
// belongs to one. Decided directly from mesh.Node.ConductorIndex and
// props.Conductor.Type, not from Lin.Q, since Q is left at -2 for a
// floating member all the way through assembly (pinConductorTemperatures).
func (s *Solver) row(node int) int {
	ci := s.Mesh.Nodes[node].ConductorIndex
	if ci < 0 || ci >= len(s.Prob.Conductors) || s.Prob.Conductors[ci].Type != props.CircFloatingFlow {
		return node
	}
	return s.numNodes + ci
}

// assembleElement builds one element's local 3x3 conductivity/mass
// matrix and load vector, folds in its edge boundary conditions and
// prescribed nodes, and scatters the result into the global system.
// It returns true if a radiation boundary contributed.
func (s *Solver) assembleElement(ei int, Vo []float64) bool {
	el := &s.Mesh.Elements[ei]
	M, b, nonlinear := s.buildElementMB(ei, Vo)
	s.foldPrescribed(el, M, &b)
	s.scatterElement(el, M, &b)
	return nonlinear
}

// buildElementMB computes the element's local conductivity/mass/
// source/edge-BC matrix and load vector, without any Dirichlet
// folding; assembleElement folds and scatters the result. The
// conductor flux integrator does not use it (see conductorFlow).
// M is a fresh 3x3 scratchpad allocated the
// way ele/diffusion.go allocates its element stiffness (la.MatAlloc),
// one per element rather than once per mesh, since every Picard
// iteration re-assembles from scratch.
func (s *Solver) buildElementMB(ei int, Vo []float64) (M [][]float64, b [3]float64, nonlinear bool) {
	el := &s.Mesh.Elements[ei]
	M = la.MatAlloc(3, 3)
	var x, y [3]float64
	for k := 0; k < 3; k++ {
		n := s.Mesh.Nodes[el.P[k]]
		x[k], y[k] = n.X, n.Y
	}
	sh := computeShape(x, y)
	area := math.Abs(sh.Area)
	if area == 0 {
		return M, b, false
	}

	var kn complex128
	for k := 0; k < 3; k++ {
		kn += el.Blk.GetK(Vo[el.P[k]])
	}
	kn /= 3

	lbl := s.Prob.Labels[el.Lbl]
	kludge := s.kludgeFactor(lbl.IsExternal, sh.Cx, sh.Cy)
	depth := s.depth(sh.Cx)

	kx, ky := real(kn), imag(kn)
	for j := 0; j < 3; j++ {
		for k := 0; k < 3; k++ {
			M[j][k] += depth * (kx*sh.P[j]*sh.P[k] + ky*sh.Q[j]*sh.Q[k]) / (4 * area * kludge)
		}
	}

	for k := 0; k < 3; k++ {
		b[k] += depth * el.Blk.Qv * area / 3
	}

	if s.Tprev != nil && s.Prob.Dt != 0 {
		for k := 0; k < 3; k++ {
			cap := depth * el.Blk.Kt * area / (3 * s.Prob.Dt)
			M[k][k] += cap
			b[k] += cap * s.Tprev[el.P[k]]
		}
	}

	for k := 0; k < 3; k++ {
		j := el.E[k]
		if j < 0 || j >= len(s.Prob.BdryProps) {
			continue
		}
		a, bIdx := k, (k+1)%3
		if s.addEdgeBC(el, sh, a, bIdx, s.Prob.BdryProps[j], Vo, M, &b) {
			nonlinear = true
		}
	}
	return M, b, nonlinear
}

// addEdgeBC adds the 2x2 (flux/convection/radiation) boundary
// contribution for the edge between local nodes a and bIdx into M/b.
// Temperature boundaries are handled separately by pinTemperatureEdges
// and contribute nothing here. It reports whether bp is radiation.
func (s *Solver) addEdgeBC(el *mesh.Element, sh shapeParams, a, bIdx int, bp props.BoundaryProp, Vo []float64, M [][]float64, b *[3]float64) bool {
	L := sh.Len[a]
	ra, rb := s.edgeRadii(el, a, bIdx)

	switch v := bp.(type) {
	case *props.Flux:
		s.addEdgeLoad(a, bIdx, L, ra, rb, v.Qs, b)
	case *props.Convection:
		s.addEdgeStiff(a, bIdx, L, ra, rb, v.H, M)
		s.addEdgeLoad(a, bIdx, L, ra, rb, v.H*v.Tinf, b)
	case *props.Radiation:
		ta, tb := Vo[el.P[a]], Vo[el.P[bIdx]]
		tm := (ta + tb) / 2
		hrad := v.Beta * units.Ksb * (tm + v.Tinf) * (tm*tm + v.Tinf*v.Tinf)
		s.addEdgeStiff(a, bIdx, L, ra, rb, hrad, M)
		s.addEdgeLoad(a, bIdx, L, ra, rb, hrad*v.Tinf, b)
		return true
	}
	return false
}

// edgeRadii returns the two endpoint x-coordinates, the axisymmetric
// "radius" weight; unused in the planar case.
func (s *Solver) edgeRadii(el *mesh.Element, a, bIdx int) (ra, rb float64) {
	na := s.Mesh.Nodes[el.P[a]]
	nb := s.Mesh.Nodes[el.P[bIdx]]
	return na.X, nb.X
}

// addEdgeStiff adds a coefficient-c0 edge contribution to the local
// stiffness matrix: the standard 1/3,1/6 boundary mass stencil in the
// planar case, and the radius-weighted axisymmetric ring stencil
// otherwise.
func (s *Solver) addEdgeStiff(a, bIdx int, L, ra, rb, c0 float64, M [][]float64) {
	if s.Prob.ProblemType == units.Axisymmetric {
		f := 2 * math.Pi * L * c0 / 12
		M[a][a] += f * (3*ra + rb)
		M[a][bIdx] += f * (ra + rb)
		M[bIdx][a] += f * (ra + rb)
		M[bIdx][bIdx] += f * (ra + 3*rb)
		return
	}
	f := s.Prob.Depth * L * c0
	M[a][a] += f / 3
	M[bIdx][bIdx] += f / 3
	M[a][bIdx] += f / 6
	M[bIdx][a] += f / 6
}

// addEdgeLoad adds a coefficient-c1 edge contribution to the local
// load vector, the linear-triangle analogue of addEdgeStiff.
func (s *Solver) addEdgeLoad(a, bIdx int, L, ra, rb, c1 float64, b *[3]float64) {
	if s.Prob.ProblemType == units.Axisymmetric {
		f := 2 * math.Pi * L * c1 / 6
		b[a] += f * (2*ra + rb)
		b[bIdx] += f * (ra + 2*rb)
		return
	}
	f := s.Prob.Depth * L * c1 / 2
	b[a] += f
	b[bIdx] += f
}

// foldPrescribed eliminates every local dof pinned Dirichlet (Q != -2)
// from M/b, the standard row/column elimination for an essential
// boundary condition.
func (s *Solver) foldPrescribed(el *mesh.Element, M [][]float64, b *[3]float64) {
	for j := 0; j < 3; j++ {
		nj := el.P[j]
		if s.Lin.Q[nj] == -2 {
			continue
		}
		Vj := s.Lin.V[nj]
		for i := 0; i < 3; i++ {
			if i == j {
				continue
			}
			b[i] -= M[i][j] * Vj
			M[i][j] = 0
			M[j][i] = 0
		}
		b[j] = Vj * M[j][j]
	}
}

// scatterElement adds the folded local M/b into the global system,
// remapping any conductor-member node's row to its conductor's extra
// unknown and tying the node's own row to that unknown by equality.
func (s *Solver) scatterElement(el *mesh.Element, M [][]float64, b *[3]float64) {
	var rows [3]int
	for j := 0; j < 3; j++ {
		rows[j] = s.row(el.P[j])
	}
	for j := 0; j < 3; j++ {
		s.Lin.B[rows[j]] += b[j]
		for k := 0; k < 3; k++ {
			if M[j][k] != 0 {
				s.Lin.Put(M[j][k], rows[j], rows[k])
			}
		}
	}
	for j := 0; j < 3; j++ {
		nj := el.P[j]
		ci := s.Mesh.Nodes[nj].ConductorIndex
		if ci < 0 || ci >= len(s.Prob.Conductors) || s.Prob.Conductors[ci].Type != props.CircFloatingFlow {
			continue
		}
		c := s.numNodes + ci
		if s.Lin.Get(nj, c) != 0 {
			continue
		}
		s.Lin.Put(1, nj, nj)
		s.Lin.Put(-1, nj, c)
	}
}

// assembleConductorRows finalizes the extra-unknown row of every
// conductor: a fixed-temperature conductor gets a dominant "big"
// diagonal pinning it to its prescribed value, and a
// floating conductor gets its net-flow row zeroed against the
// equality couplings scatterElement already deposited, carrying the
// prescribed total heat flow as its load.
func (s *Solver) assembleConductorRows() {
	big := s.Lin.Get(0, 0)
	if big == 0 {
		big = 1
	}
	for i, c := range s.Prob.Conductors {
		k := s.numNodes + i
		if c.Type == props.CircFixedTemp {
			s.Lin.Put(big, k, k)
			s.Lin.B[k] += big * c.V
			continue
		}
		var off float64
		for j, v := range s.Lin.Rows[k] {
			if j != k {
				off += v
			}
		}
		if off != 0 {
			s.Lin.Put(-off, k, k)
			s.Lin.B[k] += c.Q
		} else {
			s.Lin.Put(big, k, k)
		}
	}
}
