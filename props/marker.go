// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

// EncodeMarker packs a boundary-property index and a conductor index
// into the single integer stored in a .node/.edge record. bc and cond
// are -1 when absent; EncodeMarker(-1, -1) == 0 ("no marker").
func EncodeMarker(bc, cond int) int {
	return (1 + bc) + 0x10000*(1+cond)
}

// DecodeMarker is the inverse of EncodeMarker.
func DecodeMarker(encoded int) (bc, cond int) {
	if encoded == 0 {
		return -1, -1
	}
	if encoded < 0 {
		encoded = -encoded
	}
	bc = encoded%0x10000 - 1
	cond = encoded/0x10000 - 1
	return
}
