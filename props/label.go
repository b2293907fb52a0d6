// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "github.com/dpedroso/heatfem/scan"

// BlockLabel names a material region: its (informational) placement
// point, the material table index it resolves to, whether it is the
// fallback used when an element carries no explicit label, and
// whether its elements lie in the axisymmetric Kelvin-mapped exterior
// region.
type BlockLabel struct {
	Name       string
	X, Y       float64
	BlockType  int // index into the material-property table, -1 if unresolved
	IsDefault  bool
	IsExternal bool
}

// FromStream reads a <BeginBlock>...<EndBlock> block.
func (b *BlockLabel) FromStream(s *scan.Scanner) bool {
	if !s.ExpectToken("<beginblock>") {
		return false
	}
	b.BlockType = -1
	for {
		key, ok := s.NextToken()
		if !ok {
			return false
		}
		if key == "<endblock>" {
			return true
		}
		if !s.ExpectChar('=') {
			return false
		}
		switch key {
		case "<blockname>":
			b.Name, _ = s.ParseString()
		case "<blockx>":
			b.X, _ = scan.ParseValue[float64](s)
		case "<blocky>":
			b.Y, _ = scan.ParseValue[float64](s)
		case "<blocktype>":
			b.BlockType, _ = scan.ParseValue[int](s)
		case "<isdefault>":
			b.IsDefault, _ = scan.ParseValue[bool](s)
		case "<isexternal>":
			b.IsExternal, _ = scan.ParseValue[bool](s)
		default:
			s.NextToken()
		}
	}
}

// ToStream writes the block back out, the inverse of FromStream.
func (b *BlockLabel) ToStream(w Writer) {
	w.Printf("  <BeginBlock>\n")
	w.Printf("    <BlockName> = %q\n", b.Name)
	w.Printf("    <BlockX> = %.17g\n", b.X)
	w.Printf("    <BlockY> = %.17g\n", b.Y)
	w.Printf("    <BlockType> = %d\n", b.BlockType)
	w.Printf("    <IsDefault> = %v\n", b.IsDefault)
	w.Printf("    <IsExternal> = %v\n", b.IsExternal)
	w.Printf("  <EndBlock>\n")
}
