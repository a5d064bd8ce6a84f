package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/layoutfix/cmd/layoutfix/opts"
	"github.com/walteh/layoutfix/pkg/ruleset"
)

// NewSpacerCmd creates a new spacer command
func NewSpacerCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spacer",
		Short: "Replace inline top padding with the spacer component",
		Long: `Spacer migrates target pages from inline padding to a spacer component.
It will:
1. Remove the padding style attribute added by pad
2. Import the spacer with a path relative to the page's depth
3. Place the spacer after the navbar, or inside the first full-height container`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuleSet(cmd.Context(), opts, ruleset.NameSpacer)
		},
	}

	return cmd
}
