// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"strings"
	"testing"

	"github.com/dpedroso/heatfem/scan"
)

func TestBlockLabelDefaultsToUnresolved(tst *testing.T) {
	var b BlockLabel
	s := scan.New(strings.NewReader(`<BeginBlock> <BlockName> = "air" <EndBlock>`))
	if !b.FromStream(s) {
		tst.Fatalf("FromStream failed: %v", s.Errors)
	}
	if b.BlockType != -1 {
		tst.Errorf("BlockType = %d, want -1 when absent", b.BlockType)
	}
}

func TestBlockLabelRoundTrip(tst *testing.T) {
	b := &BlockLabel{Name: "copper", X: 1.5, Y: -2.5, BlockType: 3, IsDefault: true, IsExternal: false}
	var sb strings.Builder
	b.ToStream(FWriter{W: &sb})

	var got BlockLabel
	s := scan.New(strings.NewReader(sb.String()))
	if !got.FromStream(s) {
		tst.Fatalf("FromStream failed: %v", s.Errors)
	}
	if got.Name != b.Name || got.X != b.X || got.Y != b.Y || got.BlockType != b.BlockType || got.IsDefault != b.IsDefault {
		tst.Errorf("got %+v, want %+v", got, b)
	}
}
