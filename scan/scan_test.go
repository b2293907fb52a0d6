// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan

import (
	"strings"
	"testing"
)

func TestNextTokenLowercasesAndSkipsComments(tst *testing.T) {
	s := New(strings.NewReader("  ; a comment\n[Format] = 1 ; trailing\n"))
	tok, ok := s.NextToken()
	if !ok || tok != "[format]" {
		tst.Fatalf("got %q, %v", tok, ok)
	}
	if !s.ExpectChar('=') {
		tst.Fatalf("expected '='")
	}
	n, ok := ParseValue[int](s)
	if !ok || n != 1 {
		tst.Fatalf("got %v, %v", n, ok)
	}
}

func TestParseStringPreservesCase(tst *testing.T) {
	s := New(strings.NewReader(`"Mixed Case Name"`))
	str, ok := s.ParseString()
	if !ok || str != "Mixed Case Name" {
		tst.Fatalf("got %q, %v", str, ok)
	}
}

func TestParseValueTypes(tst *testing.T) {
	s := New(strings.NewReader("42 -3.5 yes"))
	if v, ok := ParseValue[int](s); !ok || v != 42 {
		tst.Errorf("int: got %v, %v", v, ok)
	}
	if v, ok := ParseValue[float64](s); !ok || v != -3.5 {
		tst.Errorf("float64: got %v, %v", v, ok)
	}
	if v, ok := ParseValue[bool](s); !ok || v != true {
		tst.Errorf("bool yes: got %v, %v", v, ok)
	}
}

func TestParseValueMalformedRecordsError(tst *testing.T) {
	s := New(strings.NewReader("notanumber"))
	if v, ok := ParseValue[int](s); ok {
		tst.Fatalf("expected failure, got %v", v)
	}
	if len(s.Errors) == 0 {
		tst.Errorf("expected a recorded scan error")
	}
}

func TestExpectTokenCaseInsensitive(tst *testing.T) {
	s := New(strings.NewReader("<BeginPoint>"))
	if !s.ExpectToken("<beginpoint>") {
		tst.Errorf("expected token match, errors: %v", s.Errors)
	}
}

func TestSkipLinesDiscardsExactCount(tst *testing.T) {
	s := New(strings.NewReader("line one\nline two\nline three\n[depth] = 5\n"))
	if !s.SkipLines(3) {
		tst.Fatalf("SkipLines failed: %v", s.Errors)
	}
	tok, ok := s.NextToken()
	if !ok || tok != "[depth]" {
		tst.Fatalf("got %q, %v", tok, ok)
	}
}
