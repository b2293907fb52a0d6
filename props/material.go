// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/heatfem/scan"
)

// MaterialProp is the thermal material record: orthotropic
// conductivity (Kx, Ky), volumetric source Qv, heat capacity Kt, and
// an optional piecewise-linear k(T) breakpoint table.
type MaterialProp struct {
	Name string
	Kx   float64
	Ky   float64
	Qv   float64
	Kt   float64
	Tpts []float64 // breakpoint temperatures, ascending
	Kpts []float64 // conductivity at each breakpoint
}

// NPts is the number of table breakpoints; NPts > 0 means GetK is
// temperature-dependent (nonlinear).
func (m *MaterialProp) NPts() int { return len(m.Tpts) }

// GetK returns the conductivity tensor packed into a single complex
// number (real part = x-direction, imaginary part = y-direction) at
// temperature t:
//   - no table (NPts==0): (Kx + i*Ky), the orthotropic constants.
//   - one-point table (NPts==1): that single k broadcast to both axes.
//   - NPts>=2: piecewise-linear interpolation over the table,
//     saturated (clamped) outside its range, also broadcast to both
//     axes (the table describes an isotropic nonlinear material).
func (m *MaterialProp) GetK(t float64) complex128 {
	n := m.NPts()
	if n == 0 {
		return complex(m.Kx, m.Ky)
	}
	if n == 1 {
		return complex(m.Kpts[0], m.Kpts[0])
	}
	if t <= m.Tpts[0] {
		return complex(m.Kpts[0], m.Kpts[0])
	}
	if t >= m.Tpts[n-1] {
		return complex(m.Kpts[n-1], m.Kpts[n-1])
	}
	for i := 1; i < n; i++ {
		if t <= m.Tpts[i] {
			t0, t1 := m.Tpts[i-1], m.Tpts[i]
			k0, k1 := m.Kpts[i-1], m.Kpts[i]
			frac := (t - t0) / (t1 - t0)
			k := k0 + frac*(k1-k0)
			return complex(k, k)
		}
	}
	return complex(m.Kpts[n-1], m.Kpts[n-1]) // unreachable given the checks above
}

// Validate reports an anomaly in the breakpoint table: mismatched
// Tpts/Kpts lengths, or a non-ascending Tpts sequence that would make
// GetK's saturating piecewise-linear search misbehave.
func (m *MaterialProp) Validate() error {
	if len(m.Tpts) != len(m.Kpts) {
		return chk.Err("material %q: NPts table has %d temperatures but %d conductivities", m.Name, len(m.Tpts), len(m.Kpts))
	}
	for i := 1; i < len(m.Tpts); i++ {
		if m.Tpts[i] <= m.Tpts[i-1] {
			return chk.Err("material %q: NPts table is not strictly ascending at index %d", m.Name, i)
		}
	}
	return nil
}

// FromStream reads a <BeginMat>...<EndMat> block.
func (m *MaterialProp) FromStream(s *scan.Scanner) bool {
	if !s.ExpectToken("<beginmat>") {
		return false
	}
	npts := 0
	for {
		key, ok := s.NextToken()
		if !ok {
			return false
		}
		if key == "<endmat>" {
			return true
		}
		if !s.ExpectChar('=') {
			return false
		}
		switch key {
		case "<matname>":
			m.Name, _ = s.ParseString()
		case "<kx>":
			m.Kx, _ = scan.ParseValue[float64](s)
		case "<ky>":
			m.Ky, _ = scan.ParseValue[float64](s)
		case "<qv>":
			m.Qv, _ = scan.ParseValue[float64](s)
		case "<kt>":
			m.Kt, _ = scan.ParseValue[float64](s)
		case "<npts>":
			npts, _ = scan.ParseValue[int](s)
			m.Tpts = make([]float64, 0, npts)
			m.Kpts = make([]float64, 0, npts)
		case "<point>":
			tp, _ := scan.ParseValue[float64](s)
			s.ExpectToken(",")
			kp, _ := scan.ParseValue[float64](s)
			m.Tpts = append(m.Tpts, tp)
			m.Kpts = append(m.Kpts, kp)
		default:
			s.NextToken()
		}
	}
}

// ToStream writes the block back out, the inverse of FromStream.
func (m *MaterialProp) ToStream(w Writer) {
	w.Printf("  <BeginMat>\n")
	w.Printf("    <MatName> = %q\n", m.Name)
	w.Printf("    <Kx> = %.17g\n", m.Kx)
	w.Printf("    <Ky> = %.17g\n", m.Ky)
	w.Printf("    <qv> = %.17g\n", m.Qv)
	w.Printf("    <Kt> = %.17g\n", m.Kt)
	w.Printf("    <NPts> = %d\n", m.NPts())
	for i := range m.Tpts {
		w.Printf("    <Point> = %.17g, %.17g\n", m.Tpts[i], m.Kpts[i])
	}
	w.Printf("  <EndMat>\n")
}
