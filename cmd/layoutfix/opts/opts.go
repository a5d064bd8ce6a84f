package opts

import (
	"github.com/go-git/go-billy/v5"
	"github.com/walteh/layoutfix/pkg/config"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	FS     billy.Filesystem

	DryRun   bool
	Strict   bool
	Verify   bool
	ShowDiff bool
}
