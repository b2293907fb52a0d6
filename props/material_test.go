// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/heatfem/scan"
)

func TestMaterialPropGetKConstant(tst *testing.T) {
	m := &MaterialProp{Kx: 2, Ky: 5}
	k := m.GetK(100)
	chk.Float64(tst, "Kx", 1e-15, real(k), 2)
	chk.Float64(tst, "Ky", 1e-15, imag(k), 5)
}

func TestMaterialPropGetKPiecewiseLinear(tst *testing.T) {
	m := &MaterialProp{Tpts: []float64{0, 100, 200}, Kpts: []float64{1, 3, 3}}
	chk.Float64(tst, "below range", 1e-15, real(m.GetK(-10)), 1)
	chk.Float64(tst, "at breakpoint", 1e-15, real(m.GetK(100)), 3)
	chk.Float64(tst, "interpolated", 1e-15, real(m.GetK(50)), 2)
	chk.Float64(tst, "above range", 1e-15, real(m.GetK(1000)), 3)
	// the table describes an isotropic material: both axes agree
	k := m.GetK(50)
	chk.Float64(tst, "isotropic", 1e-15, real(k), imag(k))
}

func TestMaterialPropValidateCatchesMismatchedTable(tst *testing.T) {
	m := &MaterialProp{Name: "bad", Tpts: []float64{0, 100}, Kpts: []float64{1}}
	if err := m.Validate(); err == nil {
		tst.Errorf("expected an error for mismatched table lengths")
	}
}

func TestMaterialPropValidateCatchesNonAscending(tst *testing.T) {
	m := &MaterialProp{Name: "bad", Tpts: []float64{0, 100, 50}, Kpts: []float64{1, 2, 3}}
	if err := m.Validate(); err == nil {
		tst.Errorf("expected an error for a non-ascending breakpoint table")
	}
}

func TestMaterialPropValidateAcceptsWellFormedTable(tst *testing.T) {
	m := &MaterialProp{Name: "good", Tpts: []float64{0, 50, 100}, Kpts: []float64{1, 2, 3}}
	if err := m.Validate(); err != nil {
		tst.Errorf("unexpected error: %v", err)
	}
}

func TestMaterialPropRoundTrip(tst *testing.T) {
	m := &MaterialProp{Name: "copper", Kx: 401, Ky: 401, Qv: 0, Kt: 3.45e6,
		Tpts: []float64{0, 100}, Kpts: []float64{401, 390}}
	var sb strings.Builder
	m.ToStream(FWriter{W: &sb})

	var got MaterialProp
	s := scan.New(strings.NewReader(sb.String()))
	if !got.FromStream(s) {
		tst.Fatalf("FromStream failed: %v", s.Errors)
	}
	if got.Name != m.Name || got.Kx != m.Kx || got.Kt != m.Kt {
		tst.Errorf("got %+v, want %+v", got, m)
	}
	if len(got.Tpts) != 2 || got.Tpts[1] != 100 || got.Kpts[1] != 390 {
		tst.Errorf("breakpoint table did not round trip: %+v", got)
	}
}
