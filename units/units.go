// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units holds the small set of enumerations and physical
// constants shared by the problem-file loader, the mesh loader and the
// solution writer: length units, the planar/axisymmetric problem type,
// and the cartesian/polar coordinate flag.
package units

import "github.com/cpmech/gosl/chk"

// LengthUnit enumerates the length units a .feh file may declare.
type LengthUnit int

const (
	Inches LengthUnit = iota
	Millimeters
	Centimeters
	Meters
	Mils
	Microns
)

// factors converts one unit of each LengthUnit into meters.
var factors = map[LengthUnit]float64{
	Inches:      0.0254,
	Millimeters: 0.001,
	Centimeters: 0.01,
	Meters:      1,
	Mils:        2.54e-5,
	Microns:     1e-6,
}

// names maps the .feh [lengthunits] token (lower-cased by the scanner)
// to its LengthUnit.
var names = map[string]LengthUnit{
	"inches":      Inches,
	"millimeters": Millimeters,
	"centimeters": Centimeters,
	"meters":      Meters,
	"mils":        Mils,
	"microns":     Microns,
}

// ToMeters returns the factor that converts a value expressed in u into
// meters.
func (u LengthUnit) ToMeters() float64 { return factors[u] }

// FromMeters returns the factor that converts a value expressed in
// meters into u; this is what the output writer calls "cf".
func (u LengthUnit) FromMeters() float64 { return 1 / factors[u] }

// ParseLengthUnit resolves a [lengthunits] token.
func ParseLengthUnit(tok string) (LengthUnit, error) {
	if u, ok := names[tok]; ok {
		return u, nil
	}
	return 0, chk.Err("unrecognized [lengthunits] value %q", tok)
}

// Coordinates enumerates the [coordinates] declaration.
type Coordinates int

const (
	Cartesian Coordinates = iota
	Polar
)

// ParseCoordinates resolves a [coordinates] token.
func ParseCoordinates(tok string) (Coordinates, error) {
	switch tok {
	case "cartesian":
		return Cartesian, nil
	case "polar":
		return Polar, nil
	}
	return 0, chk.Err("unrecognized [coordinates] value %q", tok)
}

// ProblemType enumerates the [problemtype] declaration.
type ProblemType int

const (
	Planar ProblemType = iota
	Axisymmetric
)

// ParseProblemType resolves a [problemtype] token.
func ParseProblemType(tok string) (ProblemType, error) {
	switch tok {
	case "planar":
		return Planar, nil
	case "axisymmetric":
		return Axisymmetric, nil
	}
	return 0, chk.Err("unrecognized [problemtype] value %q", tok)
}

// Ksb is the Stefan-Boltzmann constant, W.m^-2.K^-4.
const Ksb = 5.670373e-8
