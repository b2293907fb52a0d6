// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

// CommonPoint is one periodic-boundary-condition pair, read from the
// .pbc mesh file: two node indices tied together either equal (T==0)
// or negated (T==1).
type CommonPoint struct {
	NodeA int
	NodeB int
	T     int // 0 = periodic, 1 = antiperiodic
}

// Antiperiodic reports whether this pair uses V[a] == -V[b] instead of
// V[a] == V[b].
func (c CommonPoint) Antiperiodic() bool { return c.T == 1 }
