package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/layoutfix/cmd/layoutfix/opts"
	"github.com/walteh/layoutfix/pkg/ruleset"
)

// NewPadCmd creates a new pad command
func NewPadCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pad",
		Short: "Add inline top padding to full-height containers",
		Long: `Pad rewrites every target page so full-height containers clear the navbar.
It will:
1. Wrap a bare safe-area inset padding in calc() with the base offset
2. Add the padding style to marker containers that have no style attribute

Files already padded are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuleSet(cmd.Context(), opts, ruleset.NamePad)
		},
	}

	return cmd
}
