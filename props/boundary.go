// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "github.com/dpedroso/heatfem/scan"

// BdryFormat tags the kind of thermal boundary condition a
// BoundaryProp carries.
type BdryFormat int

const (
	BdryTemperature BdryFormat = 0 // prescribed temperature Tset
	BdryFlux        BdryFormat = 1 // prescribed surface heat flux qs
	BdryConvection  BdryFormat = 2 // convection: h, Tinf
	BdryRadiation   BdryFormat = 3 // radiation: beta, Tinf
)

// BoundaryProp is the thermal boundary-condition sum type: exactly one
// of the concrete variants below, selected by Format().
type BoundaryProp interface {
	Format() BdryFormat
	BdryName() string
}

// Temperature is the BdryFormat==0 variant.
type Temperature struct {
	Name string
	Tset float64
}

func (b *Temperature) Format() BdryFormat { return BdryTemperature }
func (b *Temperature) BdryName() string   { return b.Name }

// Flux is the BdryFormat==1 variant.
type Flux struct {
	Name string
	Qs   float64
}

func (b *Flux) Format() BdryFormat { return BdryFlux }
func (b *Flux) BdryName() string   { return b.Name }

// Convection is the BdryFormat==2 variant.
type Convection struct {
	Name string
	H    float64
	Tinf float64
}

func (b *Convection) Format() BdryFormat { return BdryConvection }
func (b *Convection) BdryName() string   { return b.Name }

// Radiation is the BdryFormat==3 variant; the only source of
// nonlinearity in the assembler.
type Radiation struct {
	Name string
	Beta float64
	Tinf float64
}

func (b *Radiation) Format() BdryFormat { return BdryRadiation }
func (b *Radiation) BdryName() string   { return b.Name }

// boundaryFields is the flat on-disk shape of a <BeginBdry>...<EndBdry>
// block: every variant's keys may appear, exactly like the mesh editor
// that produces .feh files writes them; the loader folds this into
// the matching sum-type variant once the block is fully read.
type boundaryFields struct {
	Name    string
	BdryFmt int
	Tset    float64
	Qs      float64
	Beta    float64
	H       float64
	Tinf    float64
}

// BoundaryFromStream reads a <BeginBdry>...<EndBdry> block and returns
// the matching BoundaryProp variant.
func BoundaryFromStream(s *scan.Scanner) (BoundaryProp, bool) {
	if !s.ExpectToken("<beginbdry>") {
		return nil, false
	}
	var f boundaryFields
	for {
		key, ok := s.NextToken()
		if !ok {
			return nil, false
		}
		if key == "<endbdry>" {
			break
		}
		if !s.ExpectChar('=') {
			return nil, false
		}
		switch key {
		case "<bdrytype>":
			f.BdryFmt, _ = scan.ParseValue[int](s)
		case "<tset>":
			f.Tset, _ = scan.ParseValue[float64](s)
		case "<qs>":
			f.Qs, _ = scan.ParseValue[float64](s)
		case "<beta>":
			f.Beta, _ = scan.ParseValue[float64](s)
		case "<h>":
			f.H, _ = scan.ParseValue[float64](s)
		case "<tinf>":
			f.Tinf, _ = scan.ParseValue[float64](s)
		case "<bdryname>":
			f.Name, _ = s.ParseString()
		default:
			s.NextToken()
		}
	}
	switch BdryFormat(f.BdryFmt) {
	case BdryTemperature:
		return &Temperature{Name: f.Name, Tset: f.Tset}, true
	case BdryFlux:
		return &Flux{Name: f.Name, Qs: f.Qs}, true
	case BdryConvection:
		return &Convection{Name: f.Name, H: f.H, Tinf: f.Tinf}, true
	case BdryRadiation:
		return &Radiation{Name: f.Name, Beta: f.Beta, Tinf: f.Tinf}, true
	}
	return nil, false
}

// BoundaryToStream writes b back out in the flat on-disk shape,
// leaving unused fields at their zero value.
func BoundaryToStream(w Writer, b BoundaryProp) {
	w.Printf("  <BeginBdry>\n")
	w.Printf("    <BdryType> = %d\n", int(b.Format()))
	w.Printf("    <BdryName> = %q\n", b.BdryName())
	switch v := b.(type) {
	case *Temperature:
		w.Printf("    <Tset> = %.17g\n", v.Tset)
	case *Flux:
		w.Printf("    <qs> = %.17g\n", v.Qs)
	case *Convection:
		w.Printf("    <h> = %.17g\n", v.H)
		w.Printf("    <Tinf> = %.17g\n", v.Tinf)
	case *Radiation:
		w.Printf("    <beta> = %.17g\n", v.Beta)
		w.Printf("    <Tinf> = %.17g\n", v.Tinf)
	}
	w.Printf("  <EndBdry>\n")
}
