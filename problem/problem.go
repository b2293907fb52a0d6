// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package problem implements the .feh problem-file loader: scalar
// assignments and repeated record-block lists, shared across solvers
// that plug in through a TokenHandler for the scalar keys only they
// understand.
package problem

import (
	"bufio"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/heatfem/logging"
	"github.com/dpedroso/heatfem/props"
	"github.com/dpedroso/heatfem/scan"
	"github.com/dpedroso/heatfem/units"
)

// Problem holds every scalar and property-table value read out of a
// .feh file. It owns no mesh data; the mesh loader (package mesh)
// binds to a *Problem's Materials/Labels/Conductors once loaded.
type Problem struct {
	// scalars
	Format       int
	Precision    float64
	MinAngle     float64
	Depth        float64
	LengthUnits  units.LengthUnit
	Coordinates  units.Coordinates
	ProblemType  units.ProblemType
	ExtZo        float64
	ExtRo        float64
	ExtRi        float64
	Comment      string
	ACSolver     int
	ForceMaxMesh float64
	Dt           float64

	// property tables
	PointProps []*props.PointProp
	BdryProps  []props.BoundaryProp
	Materials  []*props.MaterialProp
	Conductors []*props.Conductor
	Labels     []*props.BlockLabel

	// PathName is the basename (no extension) the mesh loader and
	// output writer key their files off of; Load leaves it empty and
	// the caller sets it once Load returns, since the .feh's own name
	// carries it.
	PathName string
}

// TokenHandler lets a solver consume scalar keys the generic loader
// does not recognize, writing the parsed value directly onto the
// Problem being built. HandleToken returns false if it does not
// recognize name either, which aborts parsing.
type TokenHandler interface {
	HandleToken(p *Problem, name string, s *scan.Scanner) bool
}

// Load reads path into a fresh Problem, dispatching unrecognized
// scalar keys to handler. Non-fatal anomalies are reported through
// log after the load completes; a malformed file returns (nil, false).
func Load(path string, handler TokenHandler, log logging.Logger) (*Problem, bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Warnf("cannot open %s: %v", path, err)
		return nil, false
	}
	defer f.Close()

	p := new(Problem)
	s := scan.New(bufio.NewReader(f))
	ok := p.parse(s, handler)

	for _, e := range s.Errors {
		log.Warnf("%v", e)
	}
	if !ok {
		return nil, false
	}
	for _, m := range p.Materials {
		if err := m.Validate(); err != nil {
			log.Warnf("%v", err)
		}
	}
	return p, true
}

func (p *Problem) parse(s *scan.Scanner, handler TokenHandler) bool {
	for {
		tok, ok := s.NextToken()
		if !ok {
			return true // clean EOF
		}
		if !p.dispatch(tok, s, handler) {
			return false
		}
	}
}

// dispatch handles one top-level key: a scalar assignment, a list
// declaration, a skipped geometry-count section, or an unknown token
// offered to handler.
func (p *Problem) dispatch(tok string, s *scan.Scanner, handler TokenHandler) bool {
	switch tok {
	case "[format]":
		return p.scalarInt(s, &p.Format)
	case "[precision]":
		return p.scalarFloat(s, &p.Precision)
	case "[minangle]":
		return p.scalarFloat(s, &p.MinAngle)
	case "[depth]":
		return p.scalarFloat(s, &p.Depth)
	case "[extzo]":
		return p.scalarFloat(s, &p.ExtZo)
	case "[extro]":
		return p.scalarFloat(s, &p.ExtRo)
	case "[extri]":
		return p.scalarFloat(s, &p.ExtRi)
	case "[acsolver]":
		return p.scalarInt(s, &p.ACSolver)
	case "[forcemaxmesh]":
		return p.scalarFloat(s, &p.ForceMaxMesh)
	case "[comment]":
		if !s.ExpectChar('=') {
			return false
		}
		p.Comment, _ = s.ParseString()
		return true
	case "[lengthunits]":
		if !s.ExpectChar('=') {
			return false
		}
		tok, _ := s.NextToken()
		u, err := units.ParseLengthUnit(tok)
		if err != nil {
			return false
		}
		p.LengthUnits = u
		return true
	case "[coordinates]":
		if !s.ExpectChar('=') {
			return false
		}
		tok, _ := s.NextToken()
		c, err := units.ParseCoordinates(tok)
		if err != nil {
			return false
		}
		p.Coordinates = c
		return true
	case "[problemtype]":
		if !s.ExpectChar('=') {
			return false
		}
		tok, _ := s.NextToken()
		pt, err := units.ParseProblemType(tok)
		if err != nil {
			return false
		}
		p.ProblemType = pt
		return true
	case "[pointprops]":
		return p.loadPointProps(s)
	case "[bdryprops]":
		return p.loadBdryProps(s)
	case "[blockprops]":
		return p.loadMaterials(s)
	case "[circuitprops]", "[conductorprops]":
		return p.loadConductors(s)
	case "[numblocklabels]":
		return p.loadLabels(s)
	case "[numpoints]", "[numsegments]", "[numarcsegments]", "[numholes]":
		return p.skipCountedLines(s)
	default:
		if handler != nil && handler.HandleToken(p, tok, s) {
			return true
		}
		return false
	}
}

func (p *Problem) scalarInt(s *scan.Scanner, dst *int) bool {
	if !s.ExpectChar('=') {
		return false
	}
	v, ok := scan.ParseValue[int](s)
	*dst = v
	return ok
}

func (p *Problem) scalarFloat(s *scan.Scanner, dst *float64) bool {
	if !s.ExpectChar('=') {
		return false
	}
	v, ok := scan.ParseValue[float64](s)
	*dst = v
	return ok
}

// skipCountedLines discards "[key] = N" followed by N lines of
// triangulator-only geometry (segments, arcs, holes) that the solver
// has no use for.
func (p *Problem) skipCountedLines(s *scan.Scanner) bool {
	if !s.ExpectChar('=') {
		return false
	}
	n, ok := scan.ParseValue[int](s)
	if !ok {
		return false
	}
	// one extra line: the rest of the "[key] = N" line itself
	return s.SkipLines(n + 1)
}

func (p *Problem) loadPointProps(s *scan.Scanner) bool {
	if !s.ExpectChar('=') {
		return false
	}
	n, ok := scan.ParseValue[int](s)
	if !ok {
		return false
	}
	p.PointProps = make([]*props.PointProp, 0, n)
	for i := 0; i < n; i++ {
		var pp props.PointProp
		if !pp.FromStream(s) {
			return false
		}
		p.PointProps = append(p.PointProps, &pp)
	}
	return true
}

func (p *Problem) loadBdryProps(s *scan.Scanner) bool {
	if !s.ExpectChar('=') {
		return false
	}
	n, ok := scan.ParseValue[int](s)
	if !ok {
		return false
	}
	p.BdryProps = make([]props.BoundaryProp, 0, n)
	for i := 0; i < n; i++ {
		bp, ok := props.BoundaryFromStream(s)
		if !ok {
			return false
		}
		p.BdryProps = append(p.BdryProps, bp)
	}
	return true
}

func (p *Problem) loadMaterials(s *scan.Scanner) bool {
	if !s.ExpectChar('=') {
		return false
	}
	n, ok := scan.ParseValue[int](s)
	if !ok {
		return false
	}
	p.Materials = make([]*props.MaterialProp, 0, n)
	for i := 0; i < n; i++ {
		var mp props.MaterialProp
		if !mp.FromStream(s) {
			return false
		}
		p.Materials = append(p.Materials, &mp)
	}
	return true
}

func (p *Problem) loadConductors(s *scan.Scanner) bool {
	if !s.ExpectChar('=') {
		return false
	}
	n, ok := scan.ParseValue[int](s)
	if !ok {
		return false
	}
	p.Conductors = make([]*props.Conductor, 0, n)
	for i := 0; i < n; i++ {
		var c props.Conductor
		if !c.FromStream(s) {
			return false
		}
		p.Conductors = append(p.Conductors, &c)
	}
	return true
}

func (p *Problem) loadLabels(s *scan.Scanner) bool {
	if !s.ExpectChar('=') {
		return false
	}
	n, ok := scan.ParseValue[int](s)
	if !ok {
		return false
	}
	p.Labels = make([]*props.BlockLabel, 0, n)
	ndefault := 0
	for i := 0; i < n; i++ {
		var bl props.BlockLabel
		if !bl.FromStream(s) {
			return false
		}
		if bl.IsDefault {
			ndefault++
		}
		p.Labels = append(p.Labels, &bl)
	}
	if ndefault > 1 {
		return false // exactly one IsDefault label may be used
	}
	return true
}

// DefaultLabel returns the index of the fallback BlockLabel, or -1 if
// none was declared.
func (p *Problem) DefaultLabel() int {
	for i, bl := range p.Labels {
		if bl.IsDefault {
			return i
		}
	}
	return -1
}

// ErrMissingMatProps (built with chk.Err) is returned as is when an
// element's label cannot be resolved and no default label exists.
var ErrMissingMatProps = chk.Err("MISSINGMATPROPS: element has no resolvable material and no default label is declared")
