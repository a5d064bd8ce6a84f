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

package config

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📐 Padding describes the inline padding declaration injected by the pad rules
type Padding struct {
	Property   string `json:"property,omitempty" yaml:"property,omitempty"`       // Style property, e.g. paddingTop
	BaseOffset string `json:"base_offset,omitempty" yaml:"base_offset,omitempty"` // Fixed offset added to the inset
	Inset      string `json:"inset,omitempty" yaml:"inset,omitempty"`             // Environment inset expression
}

// Sum returns the padding value, e.g. calc(4rem + env(safe-area-inset-top, 0px))
func (p Padding) Sum() string {
	return fmt.Sprintf("calc(%s + %s)", p.BaseOffset, p.Inset)
}

var insetVariableRe = regexp.MustCompile(`env\(\s*([\w-]+)`)

// InsetVariable returns the environment variable named by Inset, e.g. safe-area-inset-top
func (p Padding) InsetVariable() string {
	m := insetVariableRe.FindStringSubmatch(p.Inset)
	if m == nil {
		return ""
	}
	return m[1]
}

// StyleAttribute returns the JSX style attribute carrying only the padding sum
func (p Padding) StyleAttribute() string {
	return fmt.Sprintf("style={{ %s: '%s' }}", p.Property, p.Sum())
}

// 🧱 Spacer describes the shared spacer component that replaces inline padding
type Spacer struct {
	Component        string   `json:"component,omitempty" yaml:"component,omitempty"`                 // Component name
	Module           string   `json:"module,omitempty" yaml:"module,omitempty"`                       // Module path relative to the project root, without extension
	NavbarComponents []string `json:"navbar_components,omitempty" yaml:"navbar_components,omitempty"` // Navigation bar component names, in priority order
	RouteGroupDepth  *int     `json:"route_group_depth,omitempty" yaml:"route_group_depth,omitempty"` // Separators taken by the common route group prefix
	MaxDepth         int      `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`                 // Deepest entry of the import table
}

// Usage returns the self-closing usage tag, e.g. <DashboardSpacer />
func (s Spacer) Usage() string {
	return "<" + s.Component + " />"
}

// GroupDepth returns the route group depth, defaulting when unset
func (s Spacer) GroupDepth() int {
	if s.RouteGroupDepth == nil {
		return DefaultRouteGroupDepth
	}
	return *s.RouteGroupDepth
}

// 📚 Config represents the complete configuration
type Config struct {
	MarkerClass  string   `json:"marker_class,omitempty" yaml:"marker_class,omitempty"`
	ContainerTag string   `json:"container_tag,omitempty" yaml:"container_tag,omitempty"`
	Padding      *Padding `json:"padding,omitempty" yaml:"padding,omitempty"`
	Spacer       *Spacer  `json:"spacer,omitempty" yaml:"spacer,omitempty"`
	Files        []string `json:"files,omitempty" yaml:"files,omitempty"`
	Globs        []string `json:"globs,omitempty" yaml:"globs,omitempty"`
	Verify       *bool    `json:"verify,omitempty" yaml:"verify,omitempty"`
	Strict       bool     `json:"strict,omitempty" yaml:"strict,omitempty"`
}

const (
	DefaultMarkerClass     = "min-h-screen"
	DefaultContainerTag    = "div"
	DefaultRouteGroupDepth = 2
	DefaultMaxDepth        = 6
)

// DefaultFiles are the dashboard pages carrying full-height containers
// behind the fixed navigation bar.
var DefaultFiles = []string{
	"app/(dashboard)/account/page.tsx",
	"app/(dashboard)/account/billing/page.tsx",
	"app/(dashboard)/account/modules/gestion/page.tsx",
	"app/(dashboard)/checkout/manual/page.tsx",
	"app/(dashboard)/pricing-v2/page.tsx",
	"app/(dashboard)/properties/[id]/announcements/page.tsx",
	"app/(dashboard)/properties/[id]/zones/[zoneId]/steps/new/page.tsx",
	"app/(dashboard)/properties/[id]/zones/[zoneId]/steps/page.tsx",
	"app/(dashboard)/properties/[id]/zones/qr/page.tsx",
	"app/(dashboard)/properties/groups/[id]/page.tsx",
	"app/(dashboard)/properties/groups/new/page.tsx",
	"app/(dashboard)/property-sets/new/page.tsx",
	"app/(dashboard)/subscription-success/page.tsx",
	"app/(dashboard)/subscriptions/page.tsx",
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		Files: append([]string(nil), DefaultFiles...),
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills every unset value
func (cfg *Config) applyDefaults() {
	if cfg.MarkerClass == "" {
		cfg.MarkerClass = DefaultMarkerClass
	}
	if cfg.ContainerTag == "" {
		cfg.ContainerTag = DefaultContainerTag
	}

	if cfg.Padding == nil {
		cfg.Padding = &Padding{}
	}
	if cfg.Padding.Property == "" {
		cfg.Padding.Property = "paddingTop"
	}
	if cfg.Padding.BaseOffset == "" {
		cfg.Padding.BaseOffset = "4rem"
	}
	if cfg.Padding.Inset == "" {
		cfg.Padding.Inset = "env(safe-area-inset-top, 0px)"
	}

	if cfg.Spacer == nil {
		cfg.Spacer = &Spacer{}
	}
	if cfg.Spacer.Component == "" {
		cfg.Spacer.Component = "DashboardSpacer"
	}
	if cfg.Spacer.Module == "" {
		cfg.Spacer.Module = "src/components/layout/DashboardSpacer"
	}
	if len(cfg.Spacer.NavbarComponents) == 0 {
		cfg.Spacer.NavbarComponents = []string{"DashboardNavbar", "Navbar"}
	}
	if cfg.Spacer.RouteGroupDepth == nil {
		depth := DefaultRouteGroupDepth
		cfg.Spacer.RouteGroupDepth = &depth
	}
	if cfg.Spacer.MaxDepth == 0 {
		cfg.Spacer.MaxDepth = DefaultMaxDepth
	}

	if cfg.Verify == nil {
		verify := true
		cfg.Verify = &verify
	}
}

// 🔍 Validate fills defaults and checks if the configuration is valid
func (cfg *Config) Validate() error {
	cfg.applyDefaults()

	if strings.ContainsAny(cfg.MarkerClass, " \t\n") {
		return errors.Errorf("marker_class must be a single class token, got %q", cfg.MarkerClass)
	}
	if cfg.Padding.InsetVariable() == "" {
		return errors.Errorf("padding.inset must be an env() expression, got %q", cfg.Padding.Inset)
	}
	if strings.ContainsAny(cfg.ContainerTag, " \t\n<>/") {
		return errors.Errorf("container_tag must be a bare tag name, got %q", cfg.ContainerTag)
	}
	if cfg.Spacer.GroupDepth() < 0 {
		return errors.Errorf("spacer.route_group_depth must not be negative")
	}
	if cfg.Spacer.MaxDepth < 1 {
		return errors.Errorf("spacer.max_depth must be at least 1")
	}
	for i, name := range cfg.Spacer.NavbarComponents {
		if name == "" {
			return errors.Errorf("spacer.navbar_components[%d] is empty", i)
		}
	}
	if len(cfg.Files) == 0 && len(cfg.Globs) == 0 {
		return errors.Errorf("at least one of files or globs is required")
	}

	// Clean up paths
	for i, f := range cfg.Files {
		if f == "" {
			return errors.Errorf("files[%d] is empty", i)
		}
		cfg.Files[i] = path.Clean(strings.ReplaceAll(f, "\\", "/"))
	}

	return nil
}

// VerifyEnabled reports whether the well-formedness check runs after rewriting
func (cfg *Config) VerifyEnabled() bool {
	return cfg.Verify == nil || *cfg.Verify
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s on <%s> (%d files, %d globs)", cfg.MarkerClass, cfg.ContainerTag, len(cfg.Files), len(cfg.Globs))
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}
