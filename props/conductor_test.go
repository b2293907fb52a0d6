// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"strings"
	"testing"

	"github.com/dpedroso/heatfem/scan"
)

func TestConductorRoundTrip(tst *testing.T) {
	c := &Conductor{Name: "bus-bar", Type: CircFixedTemp, V: 80, Q: 0}
	var sb strings.Builder
	c.ToStream(FWriter{W: &sb})

	var got Conductor
	s := scan.New(strings.NewReader(sb.String()))
	if !got.FromStream(s) {
		tst.Fatalf("FromStream failed: %v", s.Errors)
	}
	if got.Name != c.Name || got.Type != c.Type || got.V != c.V {
		tst.Errorf("got %+v, want %+v", got, c)
	}
}

func TestConductorFloatingFlowDefault(tst *testing.T) {
	var c Conductor
	s := scan.New(strings.NewReader(`<BeginCircuit> <CircName> = "loose" <qc> = 15 <EndCircuit>`))
	if !c.FromStream(s) {
		tst.Fatalf("FromStream failed: %v", s.Errors)
	}
	if c.Type != CircFloatingFlow {
		tst.Errorf("CircType zero value should be CircFloatingFlow, got %v", c.Type)
	}
	if c.Q != 15 {
		tst.Errorf("Q = %v, want 15", c.Q)
	}
}
