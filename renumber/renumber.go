// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package renumber implements Cuthill-McKee bandwidth-reducing
// renumbering: build the mesh graph (nodes connected through shared
// elements), walk it breadth-first with each level ordered by
// ascending degree, then apply the resulting permutation to the mesh
// in place.
package renumber

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/dpedroso/heatfem/mesh"
)

// Permutation maps an old node index to its new (renumbered) index.
type Permutation []int

// Compute builds the node adjacency graph from m's elements and
// returns the Cuthill-McKee permutation.
func Compute(m *mesh.Mesh) Permutation {
	n := len(m.Nodes)
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range m.Elements {
		for a := 0; a < 3; a++ {
			for b := a + 1; b < 3; b++ {
				u, v := int64(e.P[a]), int64(e.P[b])
				if u == v {
					continue
				}
				g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		}
	}

	degree := make([]int, n)
	for i := 0; i < n; i++ {
		degree[i] = g.From(int64(i)).Len()
	}

	order := make([]int, 0, n)
	visited := make([]bool, n)
	neighborsOf := func(u int) []int {
		it := g.From(int64(u))
		ns := make([]int, 0, it.Len())
		for it.Next() {
			ns = append(ns, int(it.Node().ID()))
		}
		sort.Slice(ns, func(i, j int) bool { return degree[ns[i]] < degree[ns[j]] })
		return ns
	}

	for _, start := range ascendingByDegree(degree) {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		order = append(order, start)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range neighborsOf(u) {
				if visited[v] {
					continue
				}
				visited[v] = true
				order = append(order, v)
				queue = append(queue, v)
			}
		}
	}

	perm := make(Permutation, n)
	for newIdx, oldIdx := range order {
		perm[oldIdx] = newIdx
	}
	return perm
}

// ascendingByDegree lists every node index sorted by ascending degree,
// so Compute restarts Cuthill-McKee from a low-degree node in every
// connected component of a disconnected mesh graph.
func ascendingByDegree(degree []int) []int {
	order := make([]int, len(degree))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return degree[order[i]] < degree[order[j]] })
	return order
}

// SortNodes applies perm to m.Nodes in place using cycle rotation (no
// auxiliary copy of the node array), then remaps every element's node
// indices and every PBC pair through perm.
func SortNodes(m *mesh.Mesh, perm Permutation) {
	permuteInPlace(m.Nodes, perm)
	for i := range m.Elements {
		for k := 0; k < 3; k++ {
			m.Elements[i].P[k] = perm[m.Elements[i].P[k]]
		}
	}
	for i := range m.PBCs {
		m.PBCs[i].NodeA = perm[m.PBCs[i].NodeA]
		m.PBCs[i].NodeB = perm[m.PBCs[i].NodeB]
	}
}

// permuteInPlace moves a[i] to a[perm[i]] for every i, following each
// permutation cycle with a single scratch element instead of a second
// copy of a.
func permuteInPlace(a []mesh.Node, perm Permutation) {
	visited := make([]bool, len(a))
	for i := range a {
		if visited[i] {
			continue
		}
		carry := a[i]
		for j := perm[i]; j != i; j = perm[j] {
			visited[j] = true
			carry, a[j] = a[j], carry
		}
		a[i] = carry
		visited[i] = true
	}
}
