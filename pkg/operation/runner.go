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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/layoutfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📋 Report holds the per-file results of a run, in target order
type Report struct {
	Results []FileResult
}

// Fixed returns the number of files that were (or in a dry run would be) rewritten
func (r *Report) Fixed() int {
	return r.Count(status.OutcomeFixed)
}

// Total returns the number of files processed
func (r *Report) Total() int {
	return len(r.Results)
}

// Count returns the number of files with the given outcome
func (r *Report) Count(outcome status.Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Processed returns the number of files the run got to before it was cancelled
func (r *Report) Processed() int {
	n := 0
	for _, res := range r.Results {
		if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
			continue
		}
		n++
	}
	return n
}

// Drift returns the results that carry at least one unmatched rule
func (r *Report) Drift() []FileResult {
	var drift []FileResult
	for _, res := range r.Results {
		if len(res.Drift()) > 0 {
			drift = append(drift, res)
		}
	}
	return drift
}

// 🏃 Run patches every path in order. One file failing never stops the
// batch; once ctx is done the remaining files are marked as errors.
func (p *Patcher) Run(ctx context.Context, paths []string) *Report {
	logger := zerolog.Ctx(ctx)
	report := &Report{Results: make([]FileResult, 0, len(paths))}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, FileResult{
				Path:    path,
				Outcome: status.OutcomeError,
				Err:     errors.Errorf("run cancelled: %w", err),
			})
			continue
		}

		res := p.PatchFile(ctx, path)
		report.Results = append(report.Results, res)

		logger.Debug().
			Str("file", path).
			Str("outcome", res.Outcome.String()).
			Int("done", i+1).
			Int("total", len(paths)).
			Msg("file processed")
	}

	logger.Debug().
		Int("fixed", report.Fixed()).
		Int("total", report.Total()).
		Bool("dry_run", p.dryRun).
		Msg("run complete")

	return report
}
