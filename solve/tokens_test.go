// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dpedroso/heatfem/logging"
	"github.com/dpedroso/heatfem/problem"
)

func TestTokenHandlerParsesDt(tst *testing.T) {
	dir := tst.TempDir()
	path := filepath.Join(dir, "sample.feh")
	body := "[Format] = 1\n[dt] = 0.25\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		tst.Fatalf("WriteFile: %v", err)
	}

	p, ok := problem.Load(path, TokenHandler{}, logging.Discard{})
	if !ok {
		tst.Fatalf("Load failed with TokenHandler wired in")
	}
	if p.Dt != 0.25 {
		tst.Errorf("Dt = %v, want 0.25", p.Dt)
	}
}

func TestTokenHandlerRejectsUnknownKey(tst *testing.T) {
	var h TokenHandler
	var p problem.Problem
	if h.HandleToken(&p, "[bogus]", nil) {
		tst.Errorf("HandleToken should reject any key other than [dt]")
	}
}
