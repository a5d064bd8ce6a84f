// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package verify checks that a rewrite left a page's bracket structure intact.
package verify

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrUnbalanced is returned when a rewrite changes the net balance of a bracket kind
var ErrUnbalanced = errors.New("rewrite changed bracket balance")

// ⚖️ Balance is the net open-minus-close count per bracket kind
type Balance struct {
	Braces   int
	Parens   int
	Brackets int
}

// Balanced returns an error when modified does not keep the bracket balance of original.
// Angle brackets are not counted since JSX and comparisons share them.
func Balanced(original, modified string) error {
	before, after := Scan(original), Scan(modified)

	for _, k := range []struct {
		name          string
		before, after int
	}{
		{"braces", before.Braces, after.Braces},
		{"parentheses", before.Parens, after.Parens},
		{"square brackets", before.Brackets, after.Brackets},
	} {
		if k.before != k.after {
			return errors.Errorf("%w: %s went from %d to %d", ErrUnbalanced, k.name, k.before, k.after)
		}
	}
	return nil
}

// Scan counts brackets in src outside strings, template text and comments
func Scan(src string) Balance {
	s := &scanner{src: src}
	s.code(false)
	return s.bal
}

type scanner struct {
	src string
	pos int
	bal Balance
}

func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

// code scans script text. Inside a template expression it returns after the
// brace that closes the expression.
func (s *scanner) code(inExpr bool) {
	depth := 0
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; c {
		case '/':
			if s.peek(1) == '/' {
				s.skipPast("\n")
				continue
			}
			if s.peek(1) == '*' {
				s.pos += 2
				s.skipPast("*/")
				continue
			}
		case '\'', '"':
			s.quoted(c)
			continue
		case '`':
			s.pos++
			s.template()
			continue
		case '{':
			depth++
			s.bal.Braces++
		case '}':
			if inExpr && depth == 0 {
				s.pos++
				return
			}
			depth--
			s.bal.Braces--
		case '(':
			s.bal.Parens++
		case ')':
			s.bal.Parens--
		case '[':
			s.bal.Brackets++
		case ']':
			s.bal.Brackets--
		}
		s.pos++
	}
}

// quoted skips a single or double quoted string. Such strings cannot span
// lines, so an apostrophe in JSX text only hides the rest of its line.
func (s *scanner) quoted(q byte) {
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case q:
			s.pos++
			return
		case '\n':
			return
		}
		s.pos++
	}
}

func (s *scanner) template() {
	for s.pos < len(s.src) {
		switch {
		case s.src[s.pos] == '\\':
			s.pos += 2
		case s.src[s.pos] == '`':
			s.pos++
			return
		case strings.HasPrefix(s.src[s.pos:], "${"):
			s.pos += 2
			s.code(true)
		default:
			s.pos++
		}
	}
}

func (s *scanner) skipPast(marker string) {
	if i := strings.Index(s.src[s.pos:], marker); i >= 0 {
		s.pos += i + len(marker)
		return
	}
	s.pos = len(s.src)
}
