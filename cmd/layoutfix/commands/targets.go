package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/layoutfix/cmd/layoutfix/opts"
	"github.com/walteh/layoutfix/pkg/ruleset"
	"gitlab.com/tozd/go/errors"
)

// NewTargetsCmd creates a new targets command
func NewTargetsCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List the target files with their depth and spacer import",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			targets, err := opts.Config.Targets(ctx, opts.FS)
			if err != nil {
				return errors.Errorf("resolving targets: %w", err)
			}

			table := ruleset.NewImportTable(opts.Config.Spacer)
			out := cmd.OutOrStdout()

			for _, path := range targets {
				depth := ruleset.Depth(path, opts.Config.Spacer.GroupDepth())
				importPath, ok := table.Lookup(depth)

				note := ""
				if !ok {
					note = color.YellowString(" (depth outside import table)")
				}
				if _, err := opts.FS.Stat(path); errors.Is(err, os.ErrNotExist) {
					note += color.RedString(" (missing)")
				}

				fmt.Fprintf(out, "%s %d %s%s\n", path, depth, color.New(color.Faint).Sprint(importPath), note)
			}

			return nil
		},
	}

	return cmd
}
