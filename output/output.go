// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package output writes the .anh result file: a byte-for-byte echo
// of the source .feh, followed by a [Solution] block carrying every
// node's temperature and row tag, every element's connectivity and
// material label, and every conductor's recovered value, converted
// back to the problem's declared length units.
package output

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dpedroso/heatfem/linsys"
	"github.com/dpedroso/heatfem/mesh"
	"github.com/dpedroso/heatfem/problem"
)

// Write copies the .feh named by p.PathName verbatim into dstAnh and
// appends the solution block for lin's converged system: per-node
// temperature and Q tag, per-element connectivity and label, and
// per-conductor recovered value, mirroring HSolver::WriteResults.
func Write(p *problem.Problem, msh *mesh.Mesh, lin *linsys.BigLinProb, dstAnh string) error {
	out, err := os.Create(dstAnh)
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	if err := echoFeh(p.PathName+".feh", w); err != nil {
		return err
	}

	cf := p.LengthUnits.FromMeters()
	fmt.Fprintf(w, "[Solution]\n")
	fmt.Fprintf(w, "  <NumNodes> = %d\n", len(msh.Nodes))
	for i, n := range msh.Nodes {
		fmt.Fprintf(w, "  <Node> = %d, %.17g, %.17g, %.17g, %d\n", i, n.X*cf, n.Y*cf, lin.V[i], lin.Q[i])
	}
	fmt.Fprintf(w, "  <NumEls> = %d\n", len(msh.Elements))
	for i, el := range msh.Elements {
		fmt.Fprintf(w, "  <Element> = %d, %d, %d, %d, %d\n", i, el.P[0], el.P[1], el.P[2], el.Lbl)
	}
	fmt.Fprintf(w, "  <NumConductors> = %d\n", len(p.Conductors))
	for i, c := range p.Conductors {
		fmt.Fprintf(w, "  <Conductor> = %d, %.17g, %.17g\n", i, c.V, c.Q)
	}

	return w.Flush()
}

// echoFeh copies src byte-for-byte into w.
func echoFeh(src string, w *bufio.Writer) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = w.ReadFrom(f)
	return err
}
