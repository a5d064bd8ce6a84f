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
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Replacer applies an ordered rule sequence to a document
type Replacer struct{}

// NewReplacer creates a new Replacer
func NewReplacer() *Replacer {
	return &Replacer{}
}

// ReplaceText reads content and runs every rule over it in order, each rule
// seeing the output of the previous one.
func (r *Replacer) ReplaceText(ctx context.Context, path string, content io.Reader, rules []Rule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	doc := Document{Path: path, Content: string(originalContent)}
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("applying %s: %w", rule.Name(), err)
		}

		out, report := rule.Apply(ctx, doc)
		report.Rule = rule.Name()

		zerolog.Ctx(ctx).Debug().
			Str("file", path).
			Str("rule", report.Rule).
			Str("status", report.Status.String()).
			Int("count", report.Count).
			Msg("rule applied")

		if out != doc.Content {
			result.WasModified = true
			result.ReplacementCount += report.Count
		}

		result.Reports = append(result.Reports, report)
		doc.Content = out
	}

	result.ModifiedContent = []byte(doc.Content)
	return result, nil
}

// ValidateRules checks that every rule is named and names are unique
func (r *Replacer) ValidateRules(rules []Rule) error {
	seen := make(map[string]int, len(rules))
	for i, rule := range rules {
		if rule == nil {
			return errors.Errorf("rule %d: rule is nil", i)
		}
		name := rule.Name()
		if name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if prev, ok := seen[name]; ok {
			return errors.Errorf("rule %d: name %q already used by rule %d", i, name, prev)
		}
		seen[name] = i
	}
	return nil
}
