// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging wraps a process-wide warning callback in a small
// injectable interface, built on gosl/io's Pf/PfYel/PfRed
// conventions instead of a new logging framework.
package logging

import "github.com/cpmech/gosl/io"

// Logger receives the loader's and solver's non-fatal diagnostics.
// Warnf is used for recoverable anomalies: unknown but non-fatal
// tokens, trailing whitespace, and similar. Infof is used for
// progress messages such as Picard iteration counts.
type Logger interface {
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// Default is the console Logger used unless the caller injects
// another one, mirroring main.go's io.PfRed/io.Pf CLI output.
type Default struct{}

func (Default) Warnf(format string, args ...interface{}) {
	io.PfYel("WARNING: "+format, args...)
}

func (Default) Infof(format string, args ...interface{}) {
	io.Pf(format, args...)
}

// Discard silences every message; useful in tests.
type Discard struct{}

func (Discard) Warnf(string, ...interface{}) {}
func (Discard) Infof(string, ...interface{}) {}
