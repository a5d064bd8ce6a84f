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

package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Balance
	}{
		{
			name: "balanced_component",
			src:  "export default function Page() {\n  return <div style={{ a: [1, 2] }}></div>\n}\n",
			want: Balance{},
		},
		{
			name: "unclosed_brace",
			src:  "function f() {",
			want: Balance{Braces: 1},
		},
		{
			name: "strings_are_skipped",
			src:  `const a = '{(' + "[)"`,
			want: Balance{},
		},
		{
			name: "comments_are_skipped",
			src:  "// {\n/* ( [ */ x",
			want: Balance{},
		},
		{
			name: "template_literal_with_expression",
			src:  "const c = `min-h-screen ${open ? '{' : fn({a: 1})} }`",
			want: Balance{},
		},
		{
			name: "apostrophe_in_jsx_text_only_hides_its_line",
			src:  "<p>Don't {x}</p>\n<div>{\n",
			want: Balance{Braces: 1},
		},
		{
			name: "escaped_quote",
			src:  `'it\'s {' + x)`,
			want: Balance{Parens: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scan(tt.src))
		})
	}
}

func TestBalanced(t *testing.T) {
	const page = "import React from 'react'\n<div className=\"min-h-screen\">\n</div>\n"

	tests := []struct {
		name     string
		original string
		modified string
		wantErr  string
	}{
		{
			name:     "style_injection",
			original: page,
			modified: "import React from 'react'\n<div className=\"min-h-screen\" style={{ paddingTop: 'calc(4rem + env(safe-area-inset-top, 0px))' }}>\n</div>\n",
		},
		{
			name:     "import_insertion",
			original: page,
			modified: "import React from 'react'\nimport { DashboardSpacer } from '../../../src/components/layout/DashboardSpacer'\n<div className=\"min-h-screen\">\n</div>\n",
		},
		{
			name:     "already_unbalanced_stays_acceptable",
			original: "<div>{",
			modified: "<div>{ <DashboardSpacer />",
		},
		{
			name:     "dropped_brace",
			original: "<div style={{ a: 1 }}>",
			modified: "<div style={{ a: 1 }>",
			wantErr:  "braces went from 0 to 1",
		},
		{
			name:     "broken_call",
			original: "calc(4rem + env(x))",
			modified: "calc(4rem + env(x)",
			wantErr:  "parentheses went from 0 to 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Balanced(tt.original, tt.modified)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnbalanced))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
