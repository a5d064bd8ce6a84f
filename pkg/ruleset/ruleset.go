// Package ruleset holds the two rewrite rule sets run over dashboard pages:
// pad, which injects inline top padding on full-height containers, and
// spacer, which replaces that padding with a shared spacer component.
package ruleset

import (
	"sort"

	"github.com/walteh/layoutfix/pkg/config"
	"github.com/walteh/layoutfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const (
	NamePad    = "pad"
	NameSpacer = "spacer"
)

var builders = map[string]func(*config.Config) []text.Rule{
	NamePad:    Padding,
	NameSpacer: Spacer,
}

// ByName returns the rule set registered under name
func ByName(name string, cfg *config.Config) ([]text.Rule, error) {
	build, ok := builders[name]
	if !ok {
		return nil, errors.Errorf("unknown rule set %q (available: %v)", name, Names())
	}
	return build(cfg), nil
}

// Names returns the registered rule set names, sorted
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
