package operation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/walteh/layoutfix/pkg/status"
	"github.com/walteh/layoutfix/pkg/text"
	"github.com/walteh/layoutfix/pkg/verify"
	"gitlab.com/tozd/go/errors"
)

// ErrDrift is returned in strict mode when a rule's target was present but its pattern did not match
var ErrDrift = errors.New("rule did not match its target")

// ErrEncoding is returned for files that are not valid UTF-8
var ErrEncoding = errors.New("file is not valid UTF-8")

// 🔧 Options contains configuration for the patcher
type Options struct {
	// FS is the filesystem target paths are resolved against
	FS billy.Filesystem
	// Rules run over every file, in order
	Rules []text.Rule
	// DryRun computes outcomes and diffs without writing
	DryRun bool
	// Verify rejects rewrites that change bracket balance
	Verify bool
	// Strict turns unmatched rules into file errors
	Strict bool
}

// 📄 FileResult is what happened to one target file
type FileResult struct {
	Path    string
	Outcome status.Outcome
	Err     error
	Reports []text.RuleReport
	Edits   int
	Diff    string // set in dry runs for fixed files
}

// Drift returns the reports of rules that did not match text they target
func (r FileResult) Drift() []text.RuleReport {
	var drift []text.RuleReport
	for _, rep := range r.Reports {
		if rep.Status == text.RuleUnmatched {
			drift = append(drift, rep)
		}
	}
	return drift
}

// Detail returns a short human readable note for the result, or ""
func (r FileResult) Detail() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	if r.Outcome == status.OutcomeFixed && r.Edits > 0 {
		if r.Edits == 1 {
			return "1 edit"
		}
		return fmt.Sprintf("%d edits", r.Edits)
	}
	return ""
}

// 🏭 Patcher applies a rule set to files on a filesystem
type Patcher struct {
	fs       billy.Filesystem
	rules    []text.Rule
	replacer *text.Replacer
	dryRun   bool
	verify   bool
	strict   bool
}

// 🏭 New creates a new patcher with the given options
func New(opts Options) (*Patcher, error) {
	if opts.FS == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	if len(opts.Rules) == 0 {
		return nil, errors.Errorf("at least one rule is required")
	}

	replacer := text.NewReplacer()
	if err := replacer.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &Patcher{
		fs:       opts.FS,
		rules:    opts.Rules,
		replacer: replacer,
		dryRun:   opts.DryRun,
		verify:   opts.Verify,
		strict:   opts.Strict,
	}, nil
}

// 📝 PatchFile reads path, runs the rules over it and writes the result back
// when it differs. Failures are reported on the result, never returned.
func (p *Patcher) PatchFile(ctx context.Context, path string) FileResult {
	result := FileResult{Path: path}
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()

	fail := func(err error) FileResult {
		result.Outcome = status.OutcomeError
		result.Err = err
		logger.Debug().Err(err).Msg("patch failed")
		return result
	}

	if err := ctx.Err(); err != nil {
		return fail(errors.Errorf("patching %s: %w", path, err))
	}

	info, err := p.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Outcome = status.OutcomeMissing
			logger.Debug().Msg("file not found")
			return result
		}
		return fail(errors.Errorf("checking %s: %w", path, err))
	}
	if info.IsDir() {
		return fail(errors.Errorf("%s is a directory", path))
	}

	original, err := p.read(path)
	if err != nil {
		return fail(err)
	}
	if !utf8.Valid(original) {
		return fail(errors.Errorf("%w: %s", ErrEncoding, path))
	}

	res, err := p.replacer.ReplaceText(ctx, path, bytes.NewReader(original), p.rules)
	if err != nil {
		return fail(errors.Errorf("rewriting %s: %w", path, err))
	}
	result.Reports = res.Reports

	if drift := result.Drift(); len(drift) > 0 {
		for _, rep := range drift {
			logger.Debug().Str("rule", rep.Rule).Str("detail", rep.Detail).Msg("rule drift")
		}
		if p.strict {
			return fail(errors.Errorf("%w: %s", ErrDrift, driftNames(drift)))
		}
	}

	if bytes.Equal(original, res.ModifiedContent) {
		result.Outcome = status.OutcomeSkipped
		return result
	}
	result.Edits = res.ReplacementCount

	if p.verify {
		if err := verify.Balanced(string(original), string(res.ModifiedContent)); err != nil {
			return fail(errors.Errorf("verifying %s: %w", path, err))
		}
	}

	if p.dryRun {
		result.Outcome = status.OutcomeFixed
		result.Diff = Diff(string(original), string(res.ModifiedContent))
		logger.Debug().Int("edits", result.Edits).Msg("dry run, not writing")
		return result
	}

	if err := util.WriteFile(p.fs, path, res.ModifiedContent, info.Mode()); err != nil {
		return fail(errors.Errorf("writing %s: %w", path, err))
	}

	result.Outcome = status.OutcomeFixed
	logger.Debug().Int("edits", result.Edits).Msg("file written")
	return result
}

func (p *Patcher) read(path string) ([]byte, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func driftNames(drift []text.RuleReport) string {
	names := make([]string, 0, len(drift))
	for _, rep := range drift {
		names = append(names, rep.Rule)
	}
	return strings.Join(names, ", ")
}
