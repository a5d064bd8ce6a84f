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

	"github.com/walteh/layoutfix/pkg/config"
	"github.com/walteh/layoutfix/pkg/text"
)

// 📐 Padding returns the pad rule set: repair bare inset padding, then add
// the padding style to unstyled marker containers.
func Padding(cfg *config.Config) []text.Rule {
	return []text.Rule{
		wrapBareInset(cfg.Padding),
		&injectStyleRule{
			tag:    cfg.ContainerTag,
			marker: cfg.MarkerClass,
			style:  cfg.Padding.StyleAttribute(),
		},
	}
}

// wrapBareInset turns `paddingTop: 'env(safe-area-inset-top, 0px)'` into
// `paddingTop: 'calc(4rem + env(safe-area-inset-top, 0px))'`, keeping the
// original env expression.
func wrapBareInset(p *config.Padding) *text.RegexRule {
	prop := regexp.QuoteMeta(p.Property)
	variable := regexp.QuoteMeta(p.InsetVariable())

	bare := regexp.MustCompile(`(` + prop + `\s*:\s*)(['"])(env\(\s*` + variable + `\s*(?:,[^)'"]*)?\))(['"])`)
	wrapped := regexp.MustCompile(prop + `\s*:\s*['"]calc\([^'"]*env\(\s*` + variable)

	return &text.RegexRule{
		RuleName: "wrap-bare-inset",
		Pattern:  bare,
		Replace: func(g []string) string {
			return g[1] + g[2] + "calc(" + p.BaseOffset + " + " + g[3] + ")" + g[4]
		},
		Drift: func(content string) string {
			if !strings.Contains(content, p.InsetVariable()) || wrapped.MatchString(content) {
				return ""
			}
			return fmt.Sprintf("%s is used but no %s declaration matched", p.InsetVariable(), p.Property)
		},
	}
}

// injectStyleRule adds the padding style attribute to marker containers without one
type injectStyleRule struct {
	tag    string
	marker string
	style  string
}

var _ text.Rule = (*injectStyleRule)(nil)

func (r *injectStyleRule) Name() string {
	return "inject-padding-style"
}

func (r *injectStyleRule) Apply(ctx context.Context, doc text.Document) (string, text.RuleReport) {
	src := doc.Content

	var b strings.Builder
	last, count, containers := 0, 0, 0
	for _, t := range findTags(src, r.tag) {
		tagText := src[t.start:t.end]
		if !hasClass(tagText, r.marker) {
			continue
		}
		containers++

		// already styled tags are left alone, whatever the style holds
		if t.selfClosing || strings.Contains(tagText, "style=") {
			continue
		}

		body := strings.TrimRight(tagText[:len(tagText)-1], " \t\r\n")
		b.WriteString(src[last:t.start])
		b.WriteString(body)
		b.WriteString(" ")
		b.WriteString(r.style)
		b.WriteString(tagText[len(body):])
		last = t.end
		count++
	}

	if count > 0 {
		b.WriteString(src[last:])
		return b.String(), text.RuleReport{Status: text.RuleApplied, Count: count}
	}

	if containers == 0 && strings.Contains(src, r.marker) {
		return src, text.RuleReport{
			Status: text.RuleUnmatched,
			Detail: fmt.Sprintf("%s is present but no <%s> carries it as a class", r.marker, r.tag),
		}
	}

	return src, text.RuleReport{Status: text.RuleSatisfied}
}
