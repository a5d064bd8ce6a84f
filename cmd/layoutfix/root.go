package main

import (
	"context"
	"io"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/layoutfix/cmd/layoutfix/commands"
	"github.com/walteh/layoutfix/cmd/layoutfix/opts"
	"github.com/walteh/layoutfix/pkg/config"
	"github.com/walteh/layoutfix/pkg/log"
	"github.com/walteh/layoutfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the persistent flags shared by every command
type rootFlags struct {
	configFile string
	debug      bool
	dryRun     bool
	strict     bool
	noVerify   bool
	diff       bool
	dir        string
	style      string
}

// newRootCmd builds the command tree, printing reports to console
func newRootCmd(console io.Writer) *cobra.Command {
	flags := &rootFlags{}
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "layoutfix",
		Short: "Keep dashboard pages clear of the fixed navigation bar",
		Long: `layoutfix rewrites a fixed list of dashboard pages so their content starts
below the fixed navigation bar. The pad command adds (or repairs) inline top
padding on full-height containers; the spacer command replaces that padding
with a shared spacer component.

Files are only written when a rule changed them, so every command can be
run any number of times.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newRootOpts(setupLogging(cmd.Context(), flags.debug), console, flags, rootOpts)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewPadCmd(rootOpts),
		commands.NewSpacerCmd(rootOpts),
		commands.NewTargetsCmd(rootOpts),
	)

	return cmd
}

// newRootOpts fills rootOpts from the parsed flags and returns ctx carrying the console logger
func newRootOpts(ctx context.Context, console io.Writer, flags *rootFlags, rootOpts *opts.RootOpts) (context.Context, error) {
	cfg, err := config.Resolve(ctx, flags.configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	info, err := os.Stat(flags.dir)
	if err != nil {
		return nil, errors.Errorf("checking working directory: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", flags.dir)
	}

	formatter, err := status.NewFormatter(flags.style)
	if err != nil {
		return nil, errors.Errorf("creating formatter: %w", err)
	}

	// console lines are mirrored as debug events
	level := zerolog.WarnLevel
	if flags.debug {
		level = zerolog.DebugLevel
	}

	rootOpts.Config = cfg
	rootOpts.FS = osfs.New(flags.dir)
	rootOpts.DryRun = flags.dryRun || flags.diff
	rootOpts.Strict = flags.strict || cfg.Strict
	rootOpts.Verify = cfg.VerifyEnabled() && !flags.noVerify
	rootOpts.ShowDiff = flags.diff

	zerolog.Ctx(ctx).Debug().
		Str("config", cfg.String()).
		Str("dir", flags.dir).
		Bool("dry_run", rootOpts.DryRun).
		Bool("strict", rootOpts.Strict).
		Bool("verify", rootOpts.Verify).
		Msg("options resolved")

	logger := log.New(console, os.Stderr, level).WithFormatter(formatter)
	return log.NewContext(ctx, logger), nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.yaml, .yml, .json or .hcl); built-in page list when empty")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "report what would change without writing")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "fail files where a rule's target is present but did not match")
	cmd.PersistentFlags().BoolVar(&flags.noVerify, "no-verify", false, "skip the bracket balance check after rewriting")
	cmd.PersistentFlags().BoolVar(&flags.diff, "diff", false, "print a diff of each rewritten file (implies --dry-run)")
	cmd.PersistentFlags().StringVar(&flags.dir, "dir", ".", "directory the target paths are relative to")
	cmd.PersistentFlags().StringVar(&flags.style, "style", "color", "output style: color or emoji")
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context, debug bool) context.Context {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}
