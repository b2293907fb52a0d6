// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import "testing"

func TestCommonPointAntiperiodic(tst *testing.T) {
	if (CommonPoint{T: 0}).Antiperiodic() {
		tst.Errorf("T=0 should be periodic, not antiperiodic")
	}
	if !(CommonPoint{T: 1}).Antiperiodic() {
		tst.Errorf("T=1 should be antiperiodic")
	}
}
