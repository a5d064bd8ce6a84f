package commands

import (
	"context"

	"github.com/walteh/layoutfix/cmd/layoutfix/opts"
	"github.com/walteh/layoutfix/pkg/log"
	"github.com/walteh/layoutfix/pkg/operation"
	"github.com/walteh/layoutfix/pkg/ruleset"
	"gitlab.com/tozd/go/errors"
)

// runRuleSet patches every target with the named rule set and prints the report.
// Per-file failures are reported, not returned.
func runRuleSet(ctx context.Context, o *opts.RootOpts, name string) error {
	rules, err := ruleset.ByName(name, o.Config)
	if err != nil {
		return errors.Errorf("building rules: %w", err)
	}

	targets, err := o.Config.Targets(ctx, o.FS)
	if err != nil {
		return errors.Errorf("resolving targets: %w", err)
	}

	patcher, err := operation.New(operation.Options{
		FS:     o.FS,
		Rules:  rules,
		DryRun: o.DryRun,
		Verify: o.Verify,
		Strict: o.Strict,
	})
	if err != nil {
		return errors.Errorf("creating patcher: %w", err)
	}

	logger := log.FromContext(ctx)
	logger.Header(name)
	logger.Infof("%d target files, %d rules", len(targets), len(rules))
	if o.DryRun {
		logger.Info("dry run, no files will be written")
	}
	logger.LogNewline()

	report := patcher.Run(ctx, targets)
	for _, res := range report.Results {
		logger.FileResult(ctx, res)
		if o.ShowDiff {
			logger.Diff(res.Path, res.Diff)
		}
	}

	logger.LogNewline()
	logger.Progress(report.Processed(), report.Total())
	logger.Summary(report, o.DryRun)

	return nil
}
