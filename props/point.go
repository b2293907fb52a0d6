// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "github.com/dpedroso/heatfem/scan"

// PointProp is a nodal point property: either a fixed temperature or a
// point heat-flow density, distinguished by Qp == 0.
type PointProp struct {
	Name string
	Tp   float64 // fixed temperature, used when Qp == 0
	Qp   float64 // point heat-flow density
}

// IsFixedTemp reports whether this property pins a temperature rather
// than injecting a point heat flow.
func (p *PointProp) IsFixedTemp() bool { return p.Qp == 0 }

// FromStream reads a <beginpoint>...<endpoint> block.
func (p *PointProp) FromStream(s *scan.Scanner) bool {
	if !s.ExpectToken("<beginpoint>") {
		return false
	}
	for {
		key, ok := s.NextToken()
		if !ok {
			return false
		}
		if key == "<endpoint>" {
			return true
		}
		if !s.ExpectChar('=') {
			return false
		}
		switch key {
		case "<t_p>":
			p.Tp, _ = scan.ParseValue[float64](s)
		case "<q_p>":
			p.Qp, _ = scan.ParseValue[float64](s)
		case "<pointname>":
			p.Name, _ = s.ParseString()
		default:
			// unknown key inside a recognized record: consume and ignore
			s.NextToken()
		}
	}
}

// ToStream writes the block back out, the inverse of FromStream.
func (p *PointProp) ToStream(w Writer) {
	w.Printf("  <BeginPoint>\n")
	w.Printf("    <T_p> = %.17g\n", p.Tp)
	w.Printf("    <q_p> = %.17g\n", p.Qp)
	w.Printf("    <PointName> = %q\n", p.Name)
	w.Printf("  <EndPoint>\n")
}
