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
)

// 📄 Document is the in-memory text of one target file
type Document struct {
	// Path is the file path relative to the working directory, slash separated
	Path string

	// Content is the full text of the file
	Content string
}

// 🚦 RuleStatus describes what a rule did to a document
type RuleStatus int

const (
	// RuleSatisfied means there was nothing to do
	RuleSatisfied RuleStatus = iota
	// RuleApplied means the rule changed the text
	RuleApplied
	// RuleUnmatched means the rule's target seems present but its pattern did not match
	RuleUnmatched
)

// String returns a string representation of RuleStatus
func (s RuleStatus) String() string {
	switch s {
	case RuleSatisfied:
		return "satisfied"
	case RuleApplied:
		return "applied"
	case RuleUnmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

// 📋 RuleReport is the outcome of applying one rule to one document
type RuleReport struct {
	Rule   string     // Rule name
	Status RuleStatus // What happened
	Count  int        // Number of edits made
	Detail string     // Human readable explanation, set for unmatched rules
}

// 🔧 Rule rewrites a document's text
type Rule interface {
	// Name returns a short identifier used in reports
	Name() string

	// Apply returns the rewritten content and a report of what changed
	Apply(ctx context.Context, doc Document) (string, RuleReport)
}

// ReplacementResult contains the results of applying a rule sequence
type ReplacementResult struct {
	// WasModified indicates if any rule changed the content
	WasModified bool

	// ReplacementCount is the number of edits made across all rules
	ReplacementCount int

	// OriginalContent is the content before any rule ran
	OriginalContent []byte

	// ModifiedContent is the content after the last rule ran
	ModifiedContent []byte

	// Reports holds one entry per rule, in application order
	Reports []RuleReport
}

// Drift returns the reports of rules whose pattern failed to match text they target
func (r *ReplacementResult) Drift() []RuleReport {
	var drift []RuleReport
	for _, rep := range r.Reports {
		if rep.Status == RuleUnmatched {
			drift = append(drift, rep)
		}
	}
	return drift
}
