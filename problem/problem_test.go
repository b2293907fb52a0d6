// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dpedroso/heatfem/logging"
	"github.com/dpedroso/heatfem/scan"
	"github.com/dpedroso/heatfem/units"
)

const sampleFeh = `
[Format] = 1
[Precision] = 1e-6
[LengthUnits] = Meters
[Coordinates] = Cartesian
[ProblemType] = Planar
[Depth] = 1
[PointProps] = 1
  <BeginPoint>
    <T_p> = 100
    <q_p> = 0
    <PointName> = "hot"
  <EndPoint>
[BdryProps] = 1
  <BeginBdry>
    <BdryType> = 0
    <BdryName> = "cold"
    <Tset> = 0
  <EndBdry>
[BlockProps] = 1
  <BeginMat>
    <MatName> = "steel"
    <Kx> = 50
    <Ky> = 50
    <qv> = 0
    <Kt> = 1
    <NPts> = 0
  <EndMat>
[NumBlockLabels] = 1
  <BeginBlock>
    <BlockName> = "region"
    <BlockX> = 0
    <BlockY> = 0
    <BlockType> = 0
    <IsDefault> = 1
    <IsExternal> = 0
  <EndBlock>
`

func writeSample(t *testing.T, dir string) string {
	path := filepath.Join(dir, "sample.feh")
	if err := os.WriteFile(path, []byte(sampleFeh), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadParsesScalarsAndTables(tst *testing.T) {
	path := writeSample(tst, tst.TempDir())
	p, ok := Load(path, nil, logging.Discard{})
	if !ok {
		tst.Fatalf("Load failed")
	}
	if p.Format != 1 || p.LengthUnits != units.Meters || p.ProblemType != units.Planar {
		tst.Errorf("scalars did not parse: %+v", p)
	}
	if len(p.PointProps) != 1 || p.PointProps[0].Tp != 100 {
		tst.Errorf("point props: %+v", p.PointProps)
	}
	if len(p.BdryProps) != 1 {
		tst.Errorf("bdry props: %+v", p.BdryProps)
	}
	if len(p.Materials) != 1 || p.Materials[0].Kx != 50 {
		tst.Errorf("materials: %+v", p.Materials)
	}
	if len(p.Labels) != 1 || p.DefaultLabel() != 0 {
		tst.Errorf("labels: %+v, default=%d", p.Labels, p.DefaultLabel())
	}
}

func TestLoadMissingFileFails(tst *testing.T) {
	if _, ok := Load(filepath.Join(tst.TempDir(), "nope.feh"), nil, logging.Discard{}); ok {
		tst.Errorf("expected failure for a missing file")
	}
}

func TestDefaultLabelAbsentReturnsNegativeOne(tst *testing.T) {
	var q Problem
	if q.DefaultLabel() != -1 {
		tst.Errorf("DefaultLabel() on an empty Problem should be -1")
	}
}

// dtHandler is a minimal TokenHandler standing in for the heat
// solver's own, confirming that dispatch routes an unrecognized
// scalar key to an injected handler and lets it write onto the
// Problem being parsed.
type dtHandler struct{}

func (dtHandler) HandleToken(p *Problem, name string, s *scan.Scanner) bool {
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

func TestLoadUnhandledTokenFailsWithoutHandler(tst *testing.T) {
	dir := tst.TempDir()
	path := writeSample(tst, dir)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		tst.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString("[dt] = 0.5\n"); err != nil {
		tst.Fatalf("WriteString: %v", err)
	}
	f.Close()

	if _, ok := Load(path, nil, logging.Discard{}); ok {
		tst.Errorf("expected Load to fail on an unrecognized [dt] token with no handler")
	}
}

func TestLoadDtHandledByInjectedHandler(tst *testing.T) {
	dir := tst.TempDir()
	path := writeSample(tst, dir)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		tst.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString("[dt] = 0.5\n"); err != nil {
		tst.Fatalf("WriteString: %v", err)
	}
	f.Close()

	p, ok := Load(path, dtHandler{}, logging.Discard{})
	if !ok {
		tst.Fatalf("Load failed with a handler that recognizes [dt]")
	}
	if p.Dt != 0.5 {
		tst.Errorf("Dt = %v, want 0.5", p.Dt)
	}
}
