// Copyright 2016 The Heatfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan implements the case-insensitive keyword scanner that
// drives the .feh problem-file loader: whitespace-separated tokens,
// lower-cased unless quoted, with a side error stream so a malformed
// token never aborts the whole file.
package scan

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/cpmech/gosl/chk"
)

// Scanner reads tokens out of a .feh-style stream: bracketed keys,
// angle-bracketed record delimiters, "key = value" pairs and quoted
// strings.
type Scanner struct {
	r      *bufio.Reader
	line   int
	Errors []error // diagnostics collected while scanning; never fatal on their own
}

// New wraps r in a Scanner.
func New(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r), line: 1}
}

func (s *Scanner) errorf(format string, args ...interface{}) {
	s.Errors = append(s.Errors, chk.Err("line %d: "+format, append([]interface{}{s.line}, args...)...))
}

func (s *Scanner) peek() (byte, bool) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	s.r.UnreadByte()
	return b, true
}

func (s *Scanner) readByte() (byte, bool) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	if b == '\n' {
		s.line++
	}
	return b, true
}

// skipSpace consumes whitespace and ';'-prefixed comment lines, which
// FEMM-style .feh files use freely between records.
func (s *Scanner) skipSpace() {
	for {
		b, ok := s.peek()
		if !ok {
			return
		}
		if unicode.IsSpace(rune(b)) {
			s.readByte()
			continue
		}
		if b == ';' {
			for {
				c, ok := s.readByte()
				if !ok || c == '\n' {
					break
				}
			}
			continue
		}
		return
	}
}

// isTokenByte reports whether b can appear inside an unquoted token:
// letters, digits, and the punctuation the .feh grammar uses to mark
// keys and records ('[', ']', '<', '>', '_', '.', '-', '+', '/').
func isTokenByte(b byte) bool {
	if unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)) {
		return true
	}
	switch b {
	case '[', ']', '<', '>', '_', '.', '-', '+', '/':
		return true
	}
	return false
}

// NextToken returns the next token, lower-cased, or ("", false) at
// end-of-file. Quoted strings are returned without their quotes and
// lower-cased as well; callers that need case preserved should use
// ParseString instead.
func (s *Scanner) NextToken() (string, bool) {
	s.skipSpace()
	b, ok := s.peek()
	if !ok {
		return "", false
	}
	if b == '"' {
		str, ok := s.ParseString()
		return strings.ToLower(str), ok
	}
	if b == '=' || b == ',' {
		s.readByte()
		return string(b), true
	}
	var sb strings.Builder
	for {
		b, ok := s.peek()
		if !ok || !isTokenByte(b) {
			break
		}
		s.readByte()
		sb.WriteByte(b)
	}
	if sb.Len() == 0 {
		s.readByte() // consume the one unrecognized byte so we make progress
		s.errorf("unexpected character %q", string(b))
		return s.NextToken()
	}
	return strings.ToLower(sb.String()), true
}

// ExpectChar consumes whitespace then requires the next raw byte to be
// c (used for the '=' in "key = value"). Failure is recorded on the
// error stream and false is returned; scanning continues regardless.
func (s *Scanner) ExpectChar(c byte) bool {
	s.skipSpace()
	b, ok := s.readByte()
	if !ok || b != c {
		s.errorf("expected %q", string(c))
		return false
	}
	return true
}

// SkipLines discards n newline-terminated lines, used for the
// triangulator-only geometry sections the solver does not parse
// ([numpoints]/[numsegments]/[numarcsegments]/[numholes]).
func (s *Scanner) SkipLines(n int) bool {
	for i := 0; i < n; i++ {
		for {
			b, ok := s.readByte()
			if !ok {
				return false
			}
			if b == '\n' {
				break
			}
		}
	}
	return true
}

// ExpectToken consumes the next token and requires it to equal tok
// (case-insensitive, tok must already be lower-case).
func (s *Scanner) ExpectToken(tok string) bool {
	got, ok := s.NextToken()
	if !ok || got != tok {
		s.errorf("expected token %q, got %q", tok, got)
		return false
	}
	return true
}

// ParseString reads a double-quoted string, preserving case, or a
// bare token if the next character is not a quote.
func (s *Scanner) ParseString() (string, bool) {
	s.skipSpace()
	b, ok := s.peek()
	if !ok {
		return "", false
	}
	if b != '"' {
		return s.NextToken()
	}
	s.readByte() // opening quote
	var sb strings.Builder
	for {
		c, ok := s.readByte()
		if !ok {
			s.errorf("unterminated string literal")
			return sb.String(), false
		}
		if c == '"' {
			return sb.String(), true
		}
		sb.WriteByte(c)
	}
}

// Numeric is the set of scalar types ParseValue can decode.
type Numeric interface {
	int | int64 | float64 | bool
}

// ParseValue parses the next token into T. A malformed token is
// reported on the error stream and the zero value is returned.
func ParseValue[T Numeric](s *Scanner) (T, bool) {
	tok, ok := s.NextToken()
	var zero T
	if !ok {
		return zero, false
	}
	switch any(zero).(type) {
	case int:
		v, err := strconv.Atoi(tok)
		if err != nil {
			s.errorf("expected integer, got %q", tok)
			return zero, false
		}
		return any(v).(T), true
	case int64:
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			s.errorf("expected integer, got %q", tok)
			return zero, false
		}
		return any(v).(T), true
	case float64:
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			s.errorf("expected number, got %q", tok)
			return zero, false
		}
		return any(v).(T), true
	case bool:
		v, err := strconv.ParseBool(tok)
		if err != nil {
			// FEMM-style files spell booleans as 0/1, already handled
			// above, but also accept yes/no for hand-edited files.
			switch tok {
			case "yes":
				return any(true).(T), true
			case "no":
				return any(false).(T), true
			}
			s.errorf("expected boolean, got %q", tok)
			return zero, false
		}
		return any(v).(T), true
	}
	return zero, false
}
