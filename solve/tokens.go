// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/dpedroso/heatfem/problem"
	"github.com/dpedroso/heatfem/scan"
)

// TokenHandler consumes the heat solver's one solver-specific .feh
// scalar, [dt], the implicit time step used by the transient
// lumped-capacitance term. Unrecognized keys fall through unhandled,
// matching HSolver::handleToken.
type TokenHandler struct{}

// HandleToken implements problem.TokenHandler.
func (TokenHandler) HandleToken(p *problem.Problem, name string, s *scan.Scanner) bool {
	if name != "[dt]" {
		return false
	}
	if !s.ExpectChar('=') {
		return false
	}
	v, ok := scan.ParseValue[float64](s)
	p.Dt = v
	return ok
}
