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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/layoutfix/pkg/operation"
	"github.com/walteh/layoutfix/pkg/status"
)

// 🎯 Logger prints per-file outcomes to the console and mirrors them to zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.FileFormatter
	mu        sync.Mutex
}

// 🏭 New creates a new logger printing the report to console. Every console
// line is mirrored as a debug event on events, so it only shows up there when
// level is debug.
func New(console, events io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = events
	})).With().Timestamp().Logger().Level(level)

	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: status.NewColorFileFormatter(),
	}
}

// WithFormatter sets the formatter used for per-file lines
func (l *Logger) WithFormatter(f status.FileFormatter) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter = f
	return l
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 FileResult logs the outcome of one file, followed by any drift
func (l *Logger) FileResult(ctx context.Context, res operation.FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if res.Err != nil {
		fmt.Fprintln(l.console, l.formatter.FormatFileOutcome(res.Path, res.Outcome, ""))
		fmt.Fprintln(l.console, "      "+l.formatter.FormatError(res.Err))
	} else {
		fmt.Fprintln(l.console, l.formatter.FormatFileOutcome(res.Path, res.Outcome, res.Detail()))
	}

	drift := res.Drift()
	if len(drift) > 0 {
		printer := pterm.Warning.WithPrefix(pterm.Prefix{Text: "drift"}).WithWriter(l.console)
		for _, rep := range drift {
			printer.Printfln("%s: %s", rep.Rule, rep.Detail)
		}
	}

	l.zlog.Debug().
		Err(res.Err).
		Str("file", res.Path).
		Str("outcome", res.Outcome.String()).
		Int("edits", res.Edits).
		Int("drift", len(drift)).
		Msg("file processed")
}

// 📝 Progress logs how many of total files have been processed
func (l *Logger) Progress(current, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, l.formatter.FormatProgress(current, total))
	l.zlog.Debug().Int("current", current).Int("total", total).Msg("progress")
}

// 📝 Diff prints a dry run diff with added lines in green and removed lines in red
func (l *Logger) Diff(path, diff string) {
	if diff == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgMagenta).Sprint("◆"), color.New(color.Bold).Sprint(path))
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+ "):
			line = color.GreenString(line)
		case strings.HasPrefix(line, "- "):
			line = color.RedString(line)
		default:
			line = color.New(color.Faint).Sprint(line)
		}
		fmt.Fprintln(l.console, "    "+line)
	}
}

// 📝 Summary logs the closing line of a run
func (l *Logger) Summary(report *operation.Report, dryRun bool) {
	msg := status.FormatSummary(report.Fixed(), report.Total())
	if dryRun {
		l.Successf("%s (dry run)", msg)
	} else {
		l.Success(msg)
	}

	if drift := len(report.Drift()); drift > 0 {
		l.Warningf("%s had rules that did not match, rerun with --strict to fail them", files(drift))
	}
	if errs := report.Count(status.OutcomeError); errs > 0 {
		l.Errorf("%s failed", files(errs))
	}
}

func files(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("layoutfix")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
