// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"fmt"
	"io"
)

// Writer is the minimal sink every property record's ToStream writes
// through; FWriter adapts any io.Writer to it (the round-trip tests
// wrap a strings.Builder).
type Writer interface {
	Printf(format string, args ...interface{})
}

// FWriter adapts an io.Writer into a Writer.
type FWriter struct{ W io.Writer }

func (f FWriter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.W, format, args...)
}
