package ruleset

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/layoutfix/pkg/config"
	"github.com/walteh/layoutfix/pkg/text"
)

func TestStripPaddingStyle(t *testing.T) {
	rule := Spacer(defaultConfig(t))[0]
	require.Equal(t, "strip-padding-style", rule.Name())

	tests := []struct {
		name       string
		content    string
		want       string
		wantStatus text.RuleStatus
	}{
		{
			name:       "removes_attribute",
			content:    `<div className="min-h-screen" ` + paddingStyle + `>`,
			want:       `<div className="min-h-screen">`,
			wantStatus: text.RuleApplied,
		},
		{
			name:       "whitespace_tolerant",
			content:    "<div className=\"min-h-screen\"\n    style={{paddingTop:\"calc(4rem+env(safe-area-inset-top,0px))\"}}\n>",
			want:       "<div className=\"min-h-screen\"\n>",
			wantStatus: text.RuleApplied,
		},
		{
			name:       "nothing_to_strip",
			content:    `<div className="min-h-screen">`,
			want:       `<div className="min-h-screen">`,
			wantStatus: text.RuleSatisfied,
		},
		{
			name:       "mixed_style_is_drift",
			content:    `<div style={{ color: 'red', paddingTop: 'calc(4rem + env(safe-area-inset-top, 0px))' }}>`,
			want:       `<div style={{ color: 'red', paddingTop: 'calc(4rem + env(safe-area-inset-top, 0px))' }}>`,
			wantStatus: text.RuleUnmatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rep := rule.Apply(context.Background(), text.Document{Path: "app/(dashboard)/a/page.tsx", Content: tt.content})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStatus, rep.Status)
		})
	}
}

func TestImportSpacer(t *testing.T) {
	rule := Spacer(defaultConfig(t))[1]
	require.Equal(t, "import-spacer", rule.Name())

	const body = "\n\nexport default function Page() {\n  return <div className=\"min-h-screen\"></div>\n}\n"

	tests := []struct {
		name       string
		path       string
		content    string
		want       string
		wantStatus text.RuleStatus
	}{
		{
			name:       "depth_1",
			path:       "app/(dashboard)/account/page.tsx",
			content:    "'use client'\n\nimport { useState } from 'react'\nimport { Button } from '../../../src/components/ui'" + body,
			want:       "'use client'\n\nimport { useState } from 'react'\nimport { Button } from '../../../src/components/ui'\nimport { DashboardSpacer } from '../../../src/components/layout/DashboardSpacer'" + body,
			wantStatus: text.RuleApplied,
		},
		{
			name:       "depth_5_multi_line_import",
			path:       "app/(dashboard)/properties/[id]/zones/[zoneId]/steps/page.tsx",
			content:    "import {\n  ArrowLeft,\n  Save\n} from 'lucide-react'" + body,
			want:       "import {\n  ArrowLeft,\n  Save\n} from 'lucide-react'\nimport { DashboardSpacer } from '../../../../../../../src/components/layout/DashboardSpacer'" + body,
			wantStatus: text.RuleApplied,
		},
		{
			name:       "semicolon_mirrored",
			path:       "app/(dashboard)/properties/groups/page.tsx",
			content:    "import React from 'react';\nimport './styles.css';" + body,
			want:       "import React from 'react';\nimport './styles.css';\nimport { DashboardSpacer } from '../../../../src/components/layout/DashboardSpacer';" + body,
			wantStatus: text.RuleApplied,
		},
		{
			name:       "depth_outside_table_falls_through",
			path:       "app/(dashboard)/a/b/c/d/e/f/g/page.tsx",
			content:    "import React from 'react'" + body,
			want:       "import React from 'react'\nimport { DashboardSpacer } from '../../../src/components/layout/DashboardSpacer'" + body,
			wantStatus: text.RuleApplied,
		},
		{
			name:       "already_referenced",
			path:       "app/(dashboard)/account/page.tsx",
			content:    "import { DashboardSpacer } from '../../../src/components/layout/DashboardSpacer'" + body,
			want:       "import { DashboardSpacer } from '../../../src/components/layout/DashboardSpacer'" + body,
			wantStatus: text.RuleSatisfied,
		},
		{
			name:       "no_marker",
			path:       "app/(dashboard)/account/page.tsx",
			content:    "import React from 'react'\n",
			want:       "import React from 'react'\n",
			wantStatus: text.RuleSatisfied,
		},
		{
			name:       "no_imports_is_drift",
			path:       "app/(dashboard)/account/page.tsx",
			content:    "'use client'" + body,
			want:       "'use client'" + body,
			wantStatus: text.RuleUnmatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rep := rule.Apply(context.Background(), text.Document{Path: tt.path, Content: tt.content})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStatus, rep.Status)
		})
	}
}

func TestInsertSpacer(t *testing.T) {
	rule := Spacer(defaultConfig(t))[2]
	require.Equal(t, "insert-spacer", rule.Name())

	tests := []struct {
		name       string
		content    string
		want       string
		wantStatus text.RuleStatus
	}{
		{
			name:       "after_navbar",
			content:    "    <>\n      <DashboardNavbar user={user || undefined} />\n      <div className=\"min-h-screen\">\n",
			want:       "    <>\n      <DashboardNavbar user={user || undefined} />\n      <DashboardSpacer />\n      <div className=\"min-h-screen\">\n",
			wantStatus: text.RuleApplied,
		},
		{
			name:       "second_navbar_name",
			content:    "  <Navbar />\n  <main />\n",
			want:       "  <Navbar />\n  <DashboardSpacer />\n  <main />\n",
			wantStatus: text.RuleApplied,
		},
		{
			name:       "navbar_with_children",
			content:    "  <Navbar>\n    <Logo />\n  </Navbar>\n",
			want:       "  <Navbar>\n    <Logo />\n  </Navbar>\n  <DashboardSpacer />\n",
			wantStatus: text.RuleApplied,
		},
		{
			name:       "navbar_item_is_not_navbar",
			content:    "  <NavbarItem />\n",
			want:       "  <NavbarItem />\n",
			wantStatus: text.RuleSatisfied,
		},
		{
			name:       "container_fallback",
			content:    "  return (\n    <div className=\"min-h-screen bg-gray-50\">\n      <h1>Hi</h1>\n",
			want:       "  return (\n    <div className=\"min-h-screen bg-gray-50\">\n      <DashboardSpacer />\n      <h1>Hi</h1>\n",
			wantStatus: text.RuleApplied,
		},
		{
			name:       "first_container_only",
			content:    "<div className=\"min-h-screen\">\n</div>\n<div className=\"min-h-screen\">\n</div>",
			want:       "<div className=\"min-h-screen\">\n  <DashboardSpacer />\n</div>\n<div className=\"min-h-screen\">\n</div>",
			wantStatus: text.RuleApplied,
		},
		{
			name:       "already_present",
			content:    "<div className=\"min-h-screen\">\n  <DashboardSpacer/>\n",
			want:       "<div className=\"min-h-screen\">\n  <DashboardSpacer/>\n",
			wantStatus: text.RuleSatisfied,
		},
		{
			name:       "no_anchor_is_drift",
			content:    "<section className=\"min-h-screen\">\n",
			want:       "<section className=\"min-h-screen\">\n",
			wantStatus: text.RuleUnmatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rep := rule.Apply(context.Background(), text.Document{Path: "app/(dashboard)/a/page.tsx", Content: tt.content})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStatus, rep.Status)
		})
	}
}

func run(t *testing.T, rules []text.Rule, path, content string) *text.ReplacementResult {
	t.Helper()
	res, err := text.NewReplacer().ReplaceText(context.Background(), path, strings.NewReader(content), rules)
	require.NoError(t, err)
	return res
}

func TestEndToEnd_PadThenSpacer(t *testing.T) {
	cfg := defaultConfig(t)
	const path = "app/(dashboard)/account/page.tsx"
	original := "<div className=\"foo min-h-screen bar\">\n</div>\n"

	padded := run(t, Padding(cfg), path, original)
	require.True(t, padded.WasModified)
	assert.Equal(t,
		"<div className=\"foo min-h-screen bar\" style={{ paddingTop: 'calc(4rem + env(safe-area-inset-top, 0px))' }}>\n</div>\n",
		string(padded.ModifiedContent))

	spaced := run(t, Spacer(cfg), path, string(padded.ModifiedContent))
	require.True(t, spaced.WasModified)
	assert.Equal(t,
		"<div className=\"foo min-h-screen bar\">\n  <DashboardSpacer />\n</div>\n",
		string(spaced.ModifiedContent))

	// no import statement exists to anchor the spacer import
	drift := spaced.Drift()
	require.Len(t, drift, 1)
	assert.Equal(t, "import-spacer", drift[0].Rule)
}

func TestEndToEnd_RealisticPage(t *testing.T) {
	cfg := defaultConfig(t)
	const path = "app/(dashboard)/properties/[id]/announcements/page.tsx"
	original := `'use client'

import { useState } from 'react'
import {
  Plus,
  Trash2
} from 'lucide-react'
import { Button } from '../../../../../src/components/ui'

export default function AnnouncementsPage() {
  const [open, setOpen] = useState(false)

  return (
    <div className="min-h-screen bg-gray-50" onClick={() => setOpen(!open)}>
      <div className="max-w-4xl mx-auto">
        <Button>Add</Button>
      </div>
    </div>
  )
}
`

	padded := run(t, Padding(cfg), path, original)
	assert.Contains(t, string(padded.ModifiedContent), `onClick={() => setOpen(!open)} `+paddingStyle+`>`)
	assert.Empty(t, padded.Drift())

	spaced := run(t, Spacer(cfg), path, string(padded.ModifiedContent))
	out := string(spaced.ModifiedContent)
	assert.Empty(t, spaced.Drift())
	assert.NotContains(t, out, "paddingTop")
	assert.Equal(t, 1, strings.Count(out, "import { DashboardSpacer } from '../../../../../src/components/layout/DashboardSpacer'\n"))
	assert.Equal(t, 1, strings.Count(out, "<DashboardSpacer />"))
	assert.Contains(t, out, "from '../../../../../src/components/ui'\nimport { DashboardSpacer }")
	assert.Contains(t, out, "<div className=\"min-h-screen bg-gray-50\" onClick={() => setOpen(!open)}>\n      <DashboardSpacer />\n      <div className=\"max-w-4xl mx-auto\">")
}

func TestRuleSets_Idempotent(t *testing.T) {
	cfg := defaultConfig(t)
	fixtures := map[string]string{
		"unstyled":   "import React from 'react'\n<div className=\"min-h-screen\">\n</div>\n",
		"bare_inset": "import React from 'react'\n<div className=\"min-h-screen\" style={{ paddingTop: 'env(safe-area-inset-top, 0px)' }}>\n</div>\n",
		"navbar":     "import React from 'react'\n<>\n  <Navbar />\n  <div className=\"min-h-screen\" " + paddingStyle + ">\n  </div>\n</>\n",
		"no_marker":  "import React from 'react'\n<div className=\"p-4\">\n</div>\n",
		"multi":      "import React from 'react'\n<div className=\"min-h-screen\">\n</div>\n<div className=\"x min-h-screen\">\n</div>\n",
	}

	for _, set := range Names() {
		rules, err := ByName(set, cfg)
		require.NoError(t, err)

		for name, content := range fixtures {
			t.Run(set+"/"+name, func(t *testing.T) {
				first := run(t, rules, "app/(dashboard)/a/b/page.tsx", content)
				second := run(t, rules, "app/(dashboard)/a/b/page.tsx", string(first.ModifiedContent))
				assert.False(t, second.WasModified, "second run should be a fixed point")
				assert.Equal(t, string(first.ModifiedContent), string(second.ModifiedContent))
			})
		}
	}
}

func TestSpacerAfterPad_NavbarPriority(t *testing.T) {
	cfg := defaultConfig(t)
	content := "import React from 'react'\n<>\n  <Navbar />\n  <div className=\"min-h-screen\">\n  </div>\n</>\n"

	padded := run(t, Padding(cfg), "app/(dashboard)/a/page.tsx", content)
	spaced := run(t, Spacer(cfg), "app/(dashboard)/a/page.tsx", string(padded.ModifiedContent))

	assert.Equal(t,
		"import React from 'react'\nimport { DashboardSpacer } from '../../../src/components/layout/DashboardSpacer'\n<>\n  <Navbar />\n  <DashboardSpacer />\n  <div className=\"min-h-screen\">\n  </div>\n</>\n",
		string(spaced.ModifiedContent))
}

func TestDepthAndImportTable(t *testing.T) {
	spacer := defaultConfig(t).Spacer
	table := NewImportTable(spacer)
	require.Len(t, table, 6)

	tests := []struct {
		path  string
		depth int
		want  string
		ok    bool
	}{
		{"app/(dashboard)/account/page.tsx", 1, "../../../src/components/layout/DashboardSpacer", true},
		{"app/(dashboard)/account/billing/page.tsx", 2, "../../../../src/components/layout/DashboardSpacer", true},
		{"app/(dashboard)/properties/[id]/zones/qr/page.tsx", 4, "../../../../../../src/components/layout/DashboardSpacer", true},
		{`app\(dashboard)\account\billing\page.tsx`, 2, "../../../../src/components/layout/DashboardSpacer", true},
		{"app/(dashboard)/page.tsx", 0, "../../../src/components/layout/DashboardSpacer", false},
		{"app/(dashboard)/properties/[id]/zones/[zoneId]/steps/new/page.tsx", 6, "../../../../../../../../src/components/layout/DashboardSpacer", true},
		{"app/(dashboard)/a/b/c/d/e/f/g/page.tsx", 7, "../../../src/components/layout/DashboardSpacer", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			depth := Depth(tt.path, spacer.GroupDepth())
			assert.Equal(t, tt.depth, depth)

			got, ok := table.Lookup(depth)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestByName(t *testing.T) {
	cfg := defaultConfig(t)

	pad, err := ByName(NamePad, cfg)
	require.NoError(t, err)
	assert.Len(t, pad, 2)

	spacer, err := ByName(NameSpacer, cfg)
	require.NoError(t, err)
	assert.Len(t, spacer, 3)

	for _, rules := range [][]text.Rule{pad, spacer} {
		require.NoError(t, text.NewReplacer().ValidateRules(rules))
	}

	_, err = ByName("unknown", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown rule set "unknown"`)

	assert.Equal(t, []string{"pad", "spacer"}, Names())
}

func TestCustomConfig(t *testing.T) {
	cfg := &config.Config{
		MarkerClass:  "h-dvh",
		ContainerTag: "main",
		Spacer:       &config.Spacer{Component: "TopGap", Module: "components/TopGap"},
		Files:        []string{"app/(g)/x/page.tsx"},
	}
	require.NoError(t, cfg.Validate())

	padded := run(t, Padding(cfg), "app/(g)/x/page.tsx", "import a from 'a'\n<main className=\"h-dvh\">\n</main>\n")
	assert.Equal(t, "import a from 'a'\n<main className=\"h-dvh\" "+paddingStyle+">\n</main>\n", string(padded.ModifiedContent))

	spaced := run(t, Spacer(cfg), "app/(g)/x/page.tsx", string(padded.ModifiedContent))
	assert.Equal(t, "import a from 'a'\nimport { TopGap } from '../../../components/TopGap'\n<main className=\"h-dvh\">\n  <TopGap />\n</main>\n", string(spaced.ModifiedContent))
}
