// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linsys implements the symmetric sparse linear system that
// the assembler fills and the nonlinear driver resolves every Picard
// iteration, named BigLinProb.
//
// Storage is row-based: each row is a Go map of column -> value,
// mirrored on both sides of the diagonal so Get/Put's implicit
// symmetry holds without a second lookup pass. This plays the role of
// gosl/la.Triplet's Put-based builder (essenbcs.go's o.A.Put) but
// stays mutable across repeated Wipe/assemble/solve cycles instead of
// being built once and factorized.
package linsys

import (
	"gonum.org/v1/gonum/floats"
)

// BigLinProb is the assembled system of dimension N = NumNodes +
// NumCircProps.
type BigLinProb struct {
	N    int
	Rows []map[int]float64
	V    []float64 // solution
	B    []float64 // right-hand side
	P    []float64 // selector / scratch, used by the conductor-flux integrator
	Q    []int     // per-row tag: -2 unassigned, -1 Dirichlet, >=0 conductor index

	Precision float64 // relative-residual stop criterion for PCGSolve
}

// New allocates a BigLinProb of dimension n.
func New(n int, precision float64) *BigLinProb {
	b := &BigLinProb{
		N:         n,
		Rows:      make([]map[int]float64, n),
		V:         make([]float64, n),
		B:         make([]float64, n),
		P:         make([]float64, n),
		Q:         make([]int, n),
		Precision: precision,
	}
	for i := range b.Rows {
		b.Rows[i] = make(map[int]float64)
	}
	return b
}

// Wipe zeroes all nonzero matrix storage and B, keeping V, P, Q and
// the dimension untouched.
func (o *BigLinProb) Wipe() {
	for i := range o.Rows {
		o.Rows[i] = make(map[int]float64)
		o.B[i] = 0
	}
}

// Put adds v to entry (i,j), mirrored onto (j,i) (implicit symmetry).
func (o *BigLinProb) Put(v float64, i, j int) {
	o.Rows[i][j] += v
	if i != j {
		o.Rows[j][i] += v
	}
}

// Get reads entry (i,j), 0 if absent.
func (o *BigLinProb) Get(i, j int) float64 {
	return o.Rows[i][j]
}

// set assigns (rather than accumulates) entry (i,j), mirrored.
func (o *BigLinProb) set(v float64, i, j int) {
	o.Rows[i][j] = v
	if i != j {
		o.Rows[j][i] = v
	}
}

// Periodicity enforces V[a] == V[b] by folding row/column b into row/
// column a and replacing row b with the constraint V[b]-V[a]=0.
func (o *BigLinProb) Periodicity(a, b int) {
	o.merge(a, b, +1)
}

// AntiPeriodicity enforces V[a] == -V[b] analogously.
func (o *BigLinProb) AntiPeriodicity(a, b int) {
	o.merge(a, b, -1)
}

func (o *BigLinProb) merge(a, b int, sign float64) {
	da := o.Rows[a][a]
	db := o.Rows[b][b]
	lab := o.Rows[a][b]
	newdiag := da + db + 2*sign*lab

	type kv struct {
		k int
		v float64
	}
	others := make([]kv, 0, len(o.Rows[b]))
	for k, v := range o.Rows[b] {
		if k == a || k == b {
			continue
		}
		others = append(others, kv{k, v})
	}
	for _, e := range others {
		o.Rows[a][e.k] += sign * e.v
		o.Rows[e.k][a] += sign * e.v
		delete(o.Rows[b], e.k)
		delete(o.Rows[e.k], b)
	}

	// the constraint row's mirrored coupling adds -sign*V[b] == -V[a]
	// to row a; the +1 on the diagonal cancels it, so row a keeps the
	// substituted equation newdiag*V[a] + ... == B[a] + sign*B[b].
	o.Rows[a][a] = newdiag + 1
	o.Rows[b] = map[int]float64{b: 1, a: -sign}
	o.Rows[a][b] = -sign

	o.B[a] += sign * o.B[b]
	o.B[b] = 0
}

// matVec computes dst = L*x.
func (o *BigLinProb) matVec(dst, x []float64) {
	for i := range dst {
		var sum float64
		for j, v := range o.Rows[i] {
			sum += v * x[j]
		}
		dst[i] = sum
	}
}

// PCGSolve runs diagonally (Jacobi) preconditioned conjugate gradient
// for up to iter iterations, terminating early once the relative
// residual 2-norm drops to Precision. It returns false (and leaves V
// at its last iterate) if it does not converge within iter steps.
func (o *BigLinProb) PCGSolve(iter int) bool {
	n := o.N
	r := make([]float64, n)
	z := make([]float64, n)
	p := make([]float64, n)
	lp := make([]float64, n)
	diag := make([]float64, n)
	for i := 0; i < n; i++ {
		d := o.Rows[i][i]
		if d == 0 {
			d = 1
		}
		diag[i] = d
	}

	o.matVec(r, o.V)
	for i := range r {
		r[i] = o.B[i] - r[i]
	}
	normB := floats.Norm(o.B, 2)
	if normB == 0 {
		normB = 1
	}
	if floats.Norm(r, 2)/normB <= o.Precision {
		return true
	}

	for i := range z {
		z[i] = r[i] / diag[i]
	}
	copy(p, z)
	rzOld := floats.Dot(r, z)

	for it := 0; it < iter; it++ {
		o.matVec(lp, p)
		denom := floats.Dot(p, lp)
		if denom == 0 {
			return false
		}
		alpha := rzOld / denom
		floats.AddScaled(o.V, alpha, p)
		floats.AddScaled(r, -alpha, lp)

		if floats.Norm(r, 2)/normB <= o.Precision {
			return true
		}

		for i := range z {
			z[i] = r[i] / diag[i]
		}
		rzNew := floats.Dot(r, z)
		beta := rzNew / rzOld
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rzOld = rzNew
	}
	return false
}
