// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "github.com/dpedroso/heatfem/scan"

// CircType tags a Conductor as holding either a fixed total heat flow
// (floating temperature, contributing one extra unknown to the
// assembled system) or a fixed temperature (heat flow recovered
// post-solve by the conductor integrator).
type CircType int

const (
	CircFloatingFlow CircType = 0 // fixed q, V is the extra unknown
	CircFixedTemp    CircType = 1 // fixed V, Q recovered post-solve
)

// Conductor is a lumped region: either CircFloatingFlow (V is solved
// for) or CircFixedTemp (Q is recovered by the flux integrator).
type Conductor struct {
	Name string
	Type CircType
	V    float64 // prescribed temperature (CircFixedTemp) or solved value (CircFloatingFlow)
	Q    float64 // prescribed heat flow (CircFloatingFlow) or recovered value (CircFixedTemp)
}

// FromStream reads a <BeginCircuit>...<EndCircuit> block.
func (c *Conductor) FromStream(s *scan.Scanner) bool {
	if !s.ExpectToken("<begincircuit>") {
		return false
	}
	for {
		key, ok := s.NextToken()
		if !ok {
			return false
		}
		if key == "<endcircuit>" {
			return true
		}
		if !s.ExpectChar('=') {
			return false
		}
		switch key {
		case "<tc>":
			c.V, _ = scan.ParseValue[float64](s)
		case "<qc>":
			c.Q, _ = scan.ParseValue[float64](s)
		case "<circtype>":
			v, _ := scan.ParseValue[int](s)
			c.Type = CircType(v)
		case "<circname>":
			c.Name, _ = s.ParseString()
		default:
			s.NextToken()
		}
	}
}

// ToStream writes the block back out, the inverse of FromStream.
func (c *Conductor) ToStream(w Writer) {
	w.Printf("  <BeginCircuit>\n")
	w.Printf("    <CircName> = %q\n", c.Name)
	w.Printf("    <CircType> = %d\n", int(c.Type))
	w.Printf("    <Tc> = %.17g\n", c.V)
	w.Printf("    <qc> = %.17g\n", c.Q)
	w.Printf("  <EndCircuit>\n")
}
