// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsys

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPutAccumulatesAndMirrors(tst *testing.T) {
	o := New(3, 1e-9)
	o.Put(2, 0, 1)
	o.Put(3, 0, 1)
	chk.Float64(tst, "accumulated", 1e-15, o.Get(0, 1), 5)
	chk.Float64(tst, "mirrored", 1e-15, o.Get(1, 0), 5)
}

func TestWipeClearsMatrixAndLoadNotSolution(tst *testing.T) {
	o := New(2, 1e-9)
	o.Put(4, 0, 0)
	o.B[0] = 7
	o.V[0] = 9
	o.Q[0] = -1
	o.Wipe()
	if o.Get(0, 0) != 0 || o.B[0] != 0 {
		tst.Errorf("Wipe left matrix/load nonzero: %v %v", o.Get(0, 0), o.B[0])
	}
	if o.V[0] != 9 || o.Q[0] != -1 {
		tst.Errorf("Wipe must not touch V or Q: %v %v", o.V[0], o.Q[0])
	}
}

// a 3x3 diagonally dominant SPD system, to confirm PCGSolve converges:
// the returned V must reproduce B through L*V.
func TestPCGSolveConverges(tst *testing.T) {
	o := New(3, 1e-12)
	o.Put(4, 0, 0)
	o.Put(-1, 0, 1)
	o.Put(4, 1, 1)
	o.Put(-1, 1, 2)
	o.Put(4, 2, 2)
	o.B[0], o.B[1], o.B[2] = 1, 2, 3

	if !o.PCGSolve(50) {
		tst.Fatalf("PCGSolve did not converge")
	}
	var resid [3]float64
	o.matVec(resid[:], o.V)
	for i := range resid {
		chk.Float64(tst, "residual", 1e-6, resid[i], o.B[i])
	}
}

func TestPeriodicityTiesNodesEqual(tst *testing.T) {
	o := New(2, 1e-12)
	o.Put(4, 0, 0)
	o.Put(4, 1, 1)
	o.B[0], o.B[1] = 1, 1

	o.Periodicity(0, 1)
	if !o.PCGSolve(50) {
		tst.Fatalf("PCGSolve did not converge")
	}
	chk.Float64(tst, "tied equal", 1e-6, o.V[0], o.V[1])
}

func TestAntiPeriodicityTiesNodesNegated(tst *testing.T) {
	o := New(2, 1e-12)
	o.Put(4, 0, 0)
	o.Put(4, 1, 1)
	o.B[0], o.B[1] = 1, -1

	o.AntiPeriodicity(0, 1)
	if !o.PCGSolve(50) {
		tst.Fatalf("PCGSolve did not converge")
	}
	chk.Float64(tst, "tied negated", 1e-6, o.V[0], -o.V[1])
}
