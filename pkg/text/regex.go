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

package text

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// 🔍 RegexRule replaces every match of Pattern with the result of Replace
type RegexRule struct {
	RuleName string
	Pattern  *regexp.Regexp

	// Replace builds the replacement from the match and its submatches
	// (groups[0] is the whole match, unmatched groups are empty).
	Replace func(groups []string) string

	// Skip, when set, leaves matches it returns true for untouched
	Skip func(match string) bool

	// Drift, when set, is consulted if nothing was replaced. A non-empty
	// return marks the rule unmatched with that detail.
	Drift func(content string) string
}

var _ Rule = (*RegexRule)(nil)

// Name implements Rule.Name
func (r *RegexRule) Name() string {
	return r.RuleName
}

// Apply implements Rule.Apply
func (r *RegexRule) Apply(ctx context.Context, doc Document) (string, RuleReport) {
	src := doc.Content
	matches := r.Pattern.FindAllStringSubmatchIndex(src, -1)

	var b strings.Builder
	last, count := 0, 0
	for _, loc := range matches {
		match := src[loc[0]:loc[1]]
		if r.Skip != nil && r.Skip(match) {
			continue
		}

		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = src[loc[2*i]:loc[2*i+1]]
			}
		}

		repl := r.Replace(groups)
		if repl == match {
			continue
		}

		b.WriteString(src[last:loc[0]])
		b.WriteString(repl)
		last = loc[1]
		count++
	}

	if count == 0 {
		if r.Drift != nil {
			if detail := r.Drift(src); detail != "" {
				return src, RuleReport{Status: RuleUnmatched, Detail: detail}
			}
		}
		return src, RuleReport{Status: RuleSatisfied}
	}

	b.WriteString(src[last:])
	return b.String(), RuleReport{Status: RuleApplied, Count: count}
}

// LooseLiteral returns a regexp source matching s with any amount of
// whitespace between its tokens. Words (letters, digits, '-', '_', '.') stay
// intact, every other symbol is its own token and quotes match either quote.
func LooseLiteral(s string) string {
	var parts []string
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			parts = append(parts, regexp.QuoteMeta(word.String()))
			word.Reset()
		}
	}

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			word.WriteRune(r)
		case r == '\'' || r == '"':
			flush()
			parts = append(parts, `['"]`)
		default:
			flush()
			parts = append(parts, regexp.QuoteMeta(string(r)))
		}
	}
	flush()

	return strings.Join(parts, `\s*`)
}
