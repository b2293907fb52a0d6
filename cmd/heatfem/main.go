// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dpedroso/heatfem/logging"
	"github.com/dpedroso/heatfem/mesh"
	"github.com/dpedroso/heatfem/output"
	"github.com/dpedroso/heatfem/problem"
	"github.com/dpedroso/heatfem/renumber"
	"github.com/dpedroso/heatfem/solve"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".feh", true)
	verbose := io.ArgToBool(1, true)
	deleteFiles := io.ArgToBool(2, true)
	maxit := io.ArgToInt(3, 50)

	if verbose {
		io.PfWhite("\nheatfem -- 2D finite-element heat conduction\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"problem file path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"delete mesh files on success", "deleteFiles", deleteFiles,
			"maximum Picard iterations", "maxit", maxit,
		))
	}

	var log logging.Logger = logging.Discard{}
	if verbose {
		log = logging.Default{}
	}

	if err := run(fnkey, deleteFiles, maxit, verbose, log); err != nil {
		chk.Panic("%v", err)
	}
}

func run(fnkey string, deleteFiles bool, maxit int, verbose bool, log logging.Logger) error {
	prob, ok := problem.Load(fnkey+".feh", solve.TokenHandler{}, log)
	if !ok {
		return chk.Err("failed to read %s.feh", fnkey)
	}
	prob.PathName = fnkey

	msh, err := mesh.Load(prob, deleteFiles, log)
	if err != nil {
		return err
	}

	perm := renumber.Compute(msh)
	renumber.SortNodes(msh, perm)

	var tprev []float64
	s := solve.New(prob, msh, tprev, log)
	if !s.AnalyzeProblem(maxit) {
		return chk.Err("analysis did not converge")
	}
	s.FinalizeConductors()

	if verbose {
		io.Pf("\nanalysis complete: %d nodes, %d elements\n", len(msh.Nodes), len(msh.Elements))
	}

	// msh.Nodes was permuted in place by renumber.SortNodes, so
	// s.Lin's node-range indices already line up with it.
	return output.Write(prob, msh, s.Lin, fnkey+".anh")
}
