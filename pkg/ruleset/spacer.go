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

package ruleset

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/layoutfix/pkg/config"
	"github.com/walteh/layoutfix/pkg/text"
)

// 🧱 Spacer returns the spacer rule set: drop the inline padding style, import
// the spacer component, then place its usage tag.
func Spacer(cfg *config.Config) []text.Rule {
	return []text.Rule{
		stripPaddingStyle(cfg.Padding),
		&importSpacerRule{
			marker:    cfg.MarkerClass,
			component: cfg.Spacer.Component,
			reference: regexp.MustCompile(`\b` + regexp.QuoteMeta(cfg.Spacer.Component) + `\b`),
			table:     NewImportTable(cfg.Spacer),
			groups:    cfg.Spacer.GroupDepth(),
		},
		&insertSpacerRule{
			marker:    cfg.MarkerClass,
			container: cfg.ContainerTag,
			navbars:   cfg.Spacer.NavbarComponents,
			usage:     cfg.Spacer.Usage(),
			present:   regexp.MustCompile(`<` + regexp.QuoteMeta(cfg.Spacer.Component) + `\s*/>`),
		},
	}
}

// stripPaddingStyle removes a style attribute whose only declaration is the padding sum
func stripPaddingStyle(p *config.Padding) *text.RegexRule {
	sum := regexp.MustCompile(text.LooseLiteral(p.Sum()))

	return &text.RegexRule{
		RuleName: "strip-padding-style",
		Pattern:  regexp.MustCompile(`\s*` + text.LooseLiteral(p.StyleAttribute())),
		Replace:  func(g []string) string { return "" },
		Drift: func(content string) string {
			if sum.MatchString(content) {
				return fmt.Sprintf("%s is still present outside a removable style attribute", p.Sum())
			}
			return ""
		},
	}
}

var importRe = regexp.MustCompile(`(?m)^import\s+(?:[\w$*{}\s,]+?\s+from\s+)?['"][^'"\n]+['"];?`)

// importSpacerRule adds the spacer import after the last import statement
type importSpacerRule struct {
	marker    string
	component string
	reference *regexp.Regexp
	table     ImportTable
	groups    int
}

var _ text.Rule = (*importSpacerRule)(nil)

func (r *importSpacerRule) Name() string {
	return "import-spacer"
}

func (r *importSpacerRule) Apply(ctx context.Context, doc text.Document) (string, text.RuleReport) {
	src := doc.Content
	if !strings.Contains(src, r.marker) || r.reference.MatchString(src) {
		return src, text.RuleReport{Status: text.RuleSatisfied}
	}

	imports := importRe.FindAllStringIndex(src, -1)
	if len(imports) == 0 {
		return src, text.RuleReport{
			Status: text.RuleUnmatched,
			Detail: "no import statement to place the " + r.component + " import after",
		}
	}

	depth := Depth(doc.Path, r.groups)
	path, ok := r.table.Lookup(depth)
	report := text.RuleReport{Status: text.RuleApplied, Count: 1}
	if !ok {
		zerolog.Ctx(ctx).Warn().Str("file", doc.Path).Int("depth", depth).Str("import", path).Msg("depth outside import table, using shallowest path")
		report.Detail = fmt.Sprintf("depth %d outside import table, used %s", depth, path)
	}

	lastImport := imports[len(imports)-1]
	stmt := fmt.Sprintf("import { %s } from '%s'", r.component, path)
	if src[lastImport[1]-1] == ';' {
		stmt += ";"
	}

	return src[:lastImport[1]] + "\n" + stmt + src[lastImport[1]:], report
}

// insertSpacerRule places the spacer usage after the navbar, or failing that
// inside the first marker container
type insertSpacerRule struct {
	marker    string
	container string
	navbars   []string
	usage     string
	present   *regexp.Regexp
}

var _ text.Rule = (*insertSpacerRule)(nil)

func (r *insertSpacerRule) Name() string {
	return "insert-spacer"
}

func (r *insertSpacerRule) Apply(ctx context.Context, doc text.Document) (string, text.RuleReport) {
	src := doc.Content
	if r.present.MatchString(src) {
		return src, text.RuleReport{Status: text.RuleSatisfied}
	}

	for _, name := range r.navbars {
		tags := findTags(src, name)
		if len(tags) == 0 {
			continue
		}
		t := tags[0]
		at := t.end
		if !t.selfClosing {
			if end := closingTagEnd(src, name, t.end); end >= 0 {
				at = end
			}
		}
		return insertLine(src, at, lineIndent(src, t.start)+r.usage), text.RuleReport{Status: text.RuleApplied, Count: 1}
	}

	if !strings.Contains(src, r.marker) {
		return src, text.RuleReport{Status: text.RuleSatisfied}
	}

	for _, t := range findTags(src, r.container) {
		if t.selfClosing || !hasClass(src[t.start:t.end], r.marker) {
			continue
		}
		return insertLine(src, t.end, lineIndent(src, t.start)+"  "+r.usage), text.RuleReport{Status: text.RuleApplied, Count: 1}
	}

	return src, text.RuleReport{
		Status: text.RuleUnmatched,
		Detail: fmt.Sprintf("%s is present but neither a navbar nor a <%s> container was found", r.marker, r.container),
	}
}

// insertLine inserts line on a new line at position at
func insertLine(src string, at int, line string) string {
	return src[:at] + "\n" + line + src[at:]
}
