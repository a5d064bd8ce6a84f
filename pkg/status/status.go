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

package status

// 📊 Outcome is what happened to one target file
type Outcome int

const (
	OutcomeSkipped Outcome = iota // No rule changed the content
	OutcomeFixed                  // Content changed and was written (or would be, in a dry run)
	OutcomeMissing                // File does not exist
	OutcomeError                  // Reading, checking or writing failed
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeFixed:
		return "fixed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeMissing:
		return "missing"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcomes lists every outcome in report order
func Outcomes() []Outcome {
	return []Outcome{OutcomeFixed, OutcomeSkipped, OutcomeMissing, OutcomeError}
}
