package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 60 // Base width for filename
	outcomeWidth = 8  // Width for outcome text
)

// Emoji and message templates shared by the formatters
const (
	EmojiProgress = "⏳"
	EmojiComplete = "✅"
	MsgProgress   = "%s Progress: %d/%d (%.0f%%)"
)

// FileFormatter defines how file outcomes and progress should be formatted
type FileFormatter interface {
	// FormatFileOutcome formats one file's outcome, with an optional detail
	FormatFileOutcome(path string, outcome Outcome, detail string) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// NewFormatter returns the formatter for a style name: "color" or "emoji"
func NewFormatter(style string) (FileFormatter, error) {
	switch style {
	case "", "color":
		return NewColorFileFormatter(), nil
	case "emoji":
		return NewDefaultFileFormatter(), nil
	default:
		return nil, errors.Errorf("unknown output style %q", style)
	}
}

// DefaultFileFormatter prints one emoji prefixed sentence per file
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOutcome formats a file outcome with emojis
func (f *DefaultFileFormatter) FormatFileOutcome(path string, outcome Outcome, detail string) string {
	var line string
	switch outcome {
	case OutcomeFixed:
		line = fmt.Sprintf("📝 Fixed %s", path)
	case OutcomeMissing:
		line = fmt.Sprintf("🔍 Missing %s", path)
	case OutcomeError:
		line = fmt.Sprintf("❌ Failed %s", path)
	default:
		line = fmt.Sprintf("👍 Unchanged %s", path)
	}
	if detail != "" {
		line += " (" + detail + ")"
	}
	return line
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	return formatProgress(current, total)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	return formatError(err)
}

// ColorFileFormatter prints aligned columns with a coloured symbol
type ColorFileFormatter struct{}

// NewColorFileFormatter creates a new ColorFileFormatter
func NewColorFileFormatter() *ColorFileFormatter {
	return &ColorFileFormatter{}
}

// 🎯 FormatFileOutcome formats a file outcome for display
func (f *ColorFileFormatter) FormatFileOutcome(path string, outcome Outcome, detail string) string {
	var prefix string
	switch outcome {
	case OutcomeFixed:
		prefix = color.GreenString("✓")
	case OutcomeMissing:
		prefix = color.YellowString("?")
	case OutcomeError:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	line := fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		fmt.Sprintf("%-*s", nameWidth, path),
		fmt.Sprintf("%-*s", outcomeWidth, outcome),
	)
	if detail != "" {
		line += " " + color.HiBlackString(detail)
	}
	return strings.TrimRight(line, " ")
}

// FormatProgress formats a progress message with percentage
func (f *ColorFileFormatter) FormatProgress(current, total int) string {
	return formatProgress(current, total)
}

// FormatError formats an error message in red
func (f *ColorFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return color.RedString(formatError(err))
}

// FormatSummary formats the closing line of a run
func FormatSummary(fixed, total int) string {
	return fmt.Sprintf("Fixed %d of %d files", fixed, total)
}

func formatProgress(current, total int) string {
	if current < 0 || total < 0 {
		return fmt.Sprintf(MsgProgress, EmojiProgress, 0, 0, 0.0)
	}

	var percentage float64
	if total > 0 {
		percentage = float64(min(current, total)) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf(MsgProgress, EmojiComplete, current, total, percentage)
	}
	return fmt.Sprintf(MsgProgress, EmojiProgress, current, total, percentage)
}

func formatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
