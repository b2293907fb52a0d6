// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import "testing"

var (
	_ Logger = Default{}
	_ Logger = Discard{}
)

func TestDiscardSwallowsEverything(tst *testing.T) {
	var l Logger = Discard{}
	l.Warnf("unexpected %s", "value")
	l.Infof("iteration %d", 3)
}
