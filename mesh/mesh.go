// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the mesh loader: reads the triangulator's
// .node/.ele/.edge/.pbc files, resolves each element's material
// through the problem's BlockLabel/MaterialProp tables, and tags
// element edges with boundary-property indices using a two-pass CSR
// node-to-element adjacency.
package mesh

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/dpedroso/heatfem/logging"
	"github.com/dpedroso/heatfem/problem"
	"github.com/dpedroso/heatfem/props"
)

// Node is a mesh vertex: planar coordinates in meters, the index of
// its boundary-point property (-1 if none), and the index of the
// conductor it belongs to (-1 if none).
type Node struct {
	X, Y           float64
	BoundaryMarker int
	ConductorIndex int
}

// Element is an unordered triple of node indices, a resolved material
// label index, a cached material handle, and three edge-BC indices
// (e[k] is the boundary-property index for the edge between local
// nodes k and (k+1)%3, or -1).
type Element struct {
	P   [3]int
	Lbl int
	Blk *props.MaterialProp
	E   [3]int
}

// Mesh is the complete triangulation bound to a Problem.
type Mesh struct {
	Nodes    []Node
	Elements []Element
	PBCs     []props.CommonPoint
}

// adjacency is the scratch node->element CSR structure; scoped to one
// Load call.
type adjacency struct {
	offsets   []int // len(nodes)+1
	neighbors []int // element indices, grouped by node
}

func buildAdjacency(nnodes int, elems []Element) adjacency {
	offsets := make([]int, nnodes+1)
	for _, e := range elems {
		for _, n := range e.P {
			offsets[n+1]++
		}
	}
	for i := 0; i < nnodes; i++ {
		offsets[i+1] += offsets[i]
	}
	neighbors := make([]int, offsets[nnodes])
	cursor := make([]int, nnodes)
	copy(cursor, offsets[:nnodes])
	for ei, e := range elems {
		for _, n := range e.P {
			neighbors[cursor[n]] = ei
			cursor[n]++
		}
	}
	return adjacency{offsets: offsets, neighbors: neighbors}
}

func (a adjacency) elementsOf(node int) []int {
	return a.neighbors[a.offsets[node]:a.offsets[node+1]]
}

// Load reads <p.PathName>.node/.ele/.edge/.pbc and returns the bound
// Mesh. A missing default material label is fatal (MISSINGMATPROPS);
// on that path the temporary mesh files are removed when deleteFiles
// is set, same as on the success path.
func Load(p *problem.Problem, deleteFiles bool, log logging.Logger) (*Mesh, error) {
	m := new(Mesh)

	if err := m.loadNodes(p); err != nil {
		return nil, chk.Err("BADELEMENTFILE: %v", err) // node file shares the element-family format error
	}
	if err := m.loadPBCs(p); err != nil {
		return nil, chk.Err("BADPBCFILE: %v", err)
	}
	missing, err := m.loadElements(p)
	if err != nil {
		return nil, chk.Err("BADELEMENTFILE: %v", err)
	}
	if missing {
		if deleteFiles {
			removeMeshFiles(p.PathName)
		}
		return nil, problem.ErrMissingMatProps
	}
	if err := m.loadEdges(p, log); err != nil {
		return nil, chk.Err("BADEDGEFILE: %v", err)
	}

	if deleteFiles {
		removeMeshFiles(p.PathName)
	}
	return m, nil
}

func removeMeshFiles(pathname string) {
	for _, ext := range []string{".node", ".ele", ".edge", ".pbc"} {
		os.Remove(pathname + ext)
	}
}

func (m *Mesh) loadNodes(p *problem.Problem) error {
	f, err := os.Open(p.PathName + ".node")
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, err := readCount(sc)
	if err != nil {
		return err
	}
	cf := p.LengthUnits.ToMeters()
	m.Nodes = make([]Node, n)
	for i := 0; i < n; i++ {
		var idx, encoded int
		var x, y float64
		if err := scanLine(sc, &idx, &x, &y, &encoded); err != nil {
			return err
		}
		bc, cond := props.DecodeMarker(encoded)
		m.Nodes[idx] = Node{X: x * cf, Y: y * cf, BoundaryMarker: bc, ConductorIndex: cond}
	}
	return sc.Err()
}

func (m *Mesh) loadPBCs(p *problem.Problem) error {
	f, err := os.Open(p.PathName + ".pbc")
	if err != nil {
		if os.IsNotExist(err) {
			return nil // PBCs are optional
		}
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)

	n, err := readCount(sc)
	if err != nil {
		return err
	}
	m.PBCs = make([]props.CommonPoint, n)
	for i := 0; i < n; i++ {
		var idx, a, b, t int
		if err := scanLine(sc, &idx, &a, &b, &t); err != nil {
			return err
		}
		m.PBCs[i] = props.CommonPoint{NodeA: a, NodeB: b, T: t}
	}
	return sc.Err()
}

// loadElements returns missing==true when an element's label cannot
// be resolved and no default label exists.
func (m *Mesh) loadElements(p *problem.Problem) (missing bool, err error) {
	f, err := os.Open(p.PathName + ".ele")
	if err != nil {
		return false, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, err := readCount(sc)
	if err != nil {
		return false, err
	}
	def := p.DefaultLabel()
	m.Elements = make([]Element, n)
	for i := 0; i < n; i++ {
		var idx, p0, p1, p2, lbl int
		if err := scanLine(sc, &idx, &p0, &p1, &p2, &lbl); err != nil {
			return false, err
		}
		lbl--
		if lbl < 0 {
			lbl = def
		}
		if lbl < 0 || lbl >= len(p.Labels) {
			return true, nil
		}
		bl := p.Labels[lbl]
		if bl.BlockType < 0 || bl.BlockType >= len(p.Materials) {
			return true, nil
		}
		m.Elements[idx] = Element{
			P:   [3]int{p0, p1, p2},
			Lbl: lbl,
			Blk: p.Materials[bl.BlockType],
			E:   [3]int{-1, -1, -1},
		}
	}
	return false, sc.Err()
}

func (m *Mesh) loadEdges(p *problem.Problem, log logging.Logger) error {
	f, err := os.Open(p.PathName + ".edge")
	if err != nil {
		if os.IsNotExist(err) {
			return nil // edge BCs are optional
		}
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, err := readCount(sc)
	if err != nil {
		return err
	}
	if !sc.Scan() { // boundarymarker flag line, unused beyond being present
		return sc.Err()
	}

	adj := buildAdjacency(len(m.Nodes), m.Elements)
	for i := 0; i < n; i++ {
		var idx, n0, n1, encoded int
		if err := scanLine(sc, &idx, &n0, &n1, &encoded); err != nil {
			return err
		}
		j, cond := props.DecodeMarker(encoded)
		if cond >= 0 {
			m.Nodes[n0].ConductorIndex = cond
			m.Nodes[n1].ConductorIndex = cond
		}
		if j < 0 {
			continue
		}
		if j >= len(p.BdryProps) {
			log.Warnf("edge %d references boundary property %d, out of range", idx, j)
			continue
		}
		fluxLike := p.BdryProps[j].Format() == props.BdryFlux
		for _, ei := range adj.elementsOf(n0) {
			el := &m.Elements[ei]
			k := localEdge(el, n0, n1)
			if k < 0 {
				continue
			}
			el.E[k] = j
			if fluxLike {
				break // a flux BC applies to at most one element per edge
			}
		}
	}
	return sc.Err()
}

// localEdge returns the local edge index k (0,1,2) of element e whose
// endpoints are {a,b}, unordered, or -1 if e does not have that edge.
func localEdge(e *Element, a, b int) int {
	for k := 0; k < 3; k++ {
		p0, p1 := e.P[k], e.P[(k+1)%3]
		if (p0 == a && p1 == b) || (p0 == b && p1 == a) {
			return k
		}
	}
	return -1
}

func readCount(sc *bufio.Scanner) (int, error) {
	var n int
	if err := scanLine(sc, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// scanLine reads the next non-empty line and Sscans it into dsts.
func scanLine(sc *bufio.Scanner, dsts ...interface{}) error {
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		_, err := fmt.Sscan(line, dsts...)
		return err
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return fmt.Errorf("unexpected end of file")
}
