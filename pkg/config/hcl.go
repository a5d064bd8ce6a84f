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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "layoutfix.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_files": defaultFilesValue(),
		},
		Functions: map[string]function.Function{
			"concat": stdlib.ConcatFunc,
		},
	}

	// Define HCL schema
	type hclConfig struct {
		MarkerClass  string `hcl:"marker_class,optional"`
		ContainerTag string `hcl:"container_tag,optional"`
		Padding      *struct {
			Property   string `hcl:"property,optional"`
			BaseOffset string `hcl:"base_offset,optional"`
			Inset      string `hcl:"inset,optional"`
		} `hcl:"padding,block"`
		Spacer *struct {
			Component        string   `hcl:"component,optional"`
			Module           string   `hcl:"module,optional"`
			NavbarComponents []string `hcl:"navbar_components,optional"`
			RouteGroupDepth  *int     `hcl:"route_group_depth,optional"`
			MaxDepth         int      `hcl:"max_depth,optional"`
		} `hcl:"spacer,block"`
		Files  []string `hcl:"files,optional"`
		Globs  []string `hcl:"globs,optional"`
		Verify *bool    `hcl:"verify,optional"`
		Strict bool     `hcl:"strict,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		MarkerClass:  hclCfg.MarkerClass,
		ContainerTag: hclCfg.ContainerTag,
		Files:        hclCfg.Files,
		Globs:        hclCfg.Globs,
		Verify:       hclCfg.Verify,
		Strict:       hclCfg.Strict,
	}

	if hclCfg.Padding != nil {
		cfg.Padding = &Padding{
			Property:   hclCfg.Padding.Property,
			BaseOffset: hclCfg.Padding.BaseOffset,
			Inset:      hclCfg.Padding.Inset,
		}
	}

	if hclCfg.Spacer != nil {
		cfg.Spacer = &Spacer{
			Component:        hclCfg.Spacer.Component,
			Module:           hclCfg.Spacer.Module,
			NavbarComponents: hclCfg.Spacer.NavbarComponents,
			RouteGroupDepth:  hclCfg.Spacer.RouteGroupDepth,
			MaxDepth:         hclCfg.Spacer.MaxDepth,
		}
	}

	return cfg, nil
}

// defaultFilesValue exposes DefaultFiles to HCL so a config can extend the built-in list
func defaultFilesValue() cty.Value {
	vals := make([]cty.Value, 0, len(DefaultFiles))
	for _, f := range DefaultFiles {
		vals = append(vals, cty.StringVal(f))
	}
	return cty.ListVal(vals)
}
