// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestLengthUnitRoundTrip(tst *testing.T) {
	chk.PrintTitle("LengthUnitRoundTrip")
	for _, u := range []LengthUnit{Inches, Millimeters, Centimeters, Meters, Mils, Microns} {
		v := 3.25
		meters := v * u.ToMeters()
		back := meters * u.FromMeters()
		chk.Float64(tst, "round trip", 1e-12, back, v)
	}
}

func TestParseLengthUnit(tst *testing.T) {
	cases := map[string]LengthUnit{
		"inches":      Inches,
		"millimeters": Millimeters,
		"meters":      Meters,
	}
	for tok, want := range cases {
		got, err := ParseLengthUnit(tok)
		if err != nil {
			tst.Fatalf("ParseLengthUnit(%q): %v", tok, err)
		}
		if got != want {
			tst.Errorf("ParseLengthUnit(%q) = %v, want %v", tok, got, want)
		}
	}
	if _, err := ParseLengthUnit("furlongs"); err == nil {
		tst.Errorf("expected error for unrecognized length unit")
	}
}

func TestParseCoordinatesAndProblemType(tst *testing.T) {
	if c, err := ParseCoordinates("polar"); err != nil || c != Polar {
		tst.Errorf("ParseCoordinates(polar) = %v, %v", c, err)
	}
	if _, err := ParseCoordinates("spherical"); err == nil {
		tst.Errorf("expected error for unrecognized coordinates")
	}
	if p, err := ParseProblemType("axisymmetric"); err != nil || p != Axisymmetric {
		tst.Errorf("ParseProblemType(axisymmetric) = %v, %v", p, err)
	}
	if _, err := ParseProblemType("3d"); err == nil {
		tst.Errorf("expected error for unrecognized problem type")
	}
}
