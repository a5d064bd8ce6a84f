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
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Targets returns the ordered target list: literal files first, in
// declaration order, then every file matching a glob, sorted. A path is only
// listed once.
func (cfg *Config) Targets(ctx context.Context, fs billy.Filesystem) ([]string, error) {
	seen := make(map[string]bool, len(cfg.Files))
	targets := make([]string, 0, len(cfg.Files))

	for _, f := range cfg.Files {
		if seen[f] {
			zerolog.Ctx(ctx).Debug().Str("file", f).Msg("duplicate target ignored")
			continue
		}
		seen[f] = true
		targets = append(targets, f)
	}

	if len(cfg.Globs) == 0 {
		return targets, nil
	}

	for _, pattern := range cfg.Globs {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid glob %q", pattern)
		}
	}

	files, err := listFiles(fs, ".")
	if err != nil {
		return nil, errors.Errorf("listing files: %w", err)
	}

	var matched []string
	for _, file := range files {
		if seen[file] {
			continue
		}
		for _, pattern := range cfg.Globs {
			ok, err := doublestar.Match(pattern, file)
			if err != nil {
				return nil, errors.Errorf("matching %q: %w", pattern, err)
			}
			if ok {
				seen[file] = true
				matched = append(matched, file)
				break
			}
		}
	}

	sort.Strings(matched)
	zerolog.Ctx(ctx).Debug().Int("matched", len(matched)).Strs("globs", cfg.Globs).Msg("expanded globs")

	return append(targets, matched...), nil
}

// listFiles walks dir and returns every regular file, slash separated and relative to the filesystem root
func listFiles(fs billy.Filesystem, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		name := path.Join(dir, entry.Name())
		if entry.IsDir() {
			if entry.Name() == "node_modules" || entry.Name() == ".git" {
				continue
			}
			sub, err := listFiles(fs, name)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		if entry.Mode().IsRegular() {
			files = append(files, name)
		}
	}
	return files, nil
}
