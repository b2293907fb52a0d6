// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "testing"

func TestMarkerRoundTrip(tst *testing.T) {
	cases := []struct{ bc, cond int }{
		{-1, -1},
		{0, -1},
		{-1, 0},
		{3, 7},
		{0, 0},
	}
	for _, c := range cases {
		encoded := EncodeMarker(c.bc, c.cond)
		bc, cond := DecodeMarker(encoded)
		if bc != c.bc || cond != c.cond {
			tst.Errorf("EncodeMarker(%d,%d)=%d decoded to (%d,%d)", c.bc, c.cond, encoded, bc, cond)
		}
	}
}

func TestMarkerNoneIsZero(tst *testing.T) {
	if EncodeMarker(-1, -1) != 0 {
		tst.Errorf("EncodeMarker(-1,-1) should be 0")
	}
	bc, cond := DecodeMarker(0)
	if bc != -1 || cond != -1 {
		tst.Errorf("DecodeMarker(0) = (%d,%d), want (-1,-1)", bc, cond)
	}
}
