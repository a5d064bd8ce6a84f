package operation

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines are kept around each change
const contextLines = 1

// Diff renders a line based diff of two texts: "-" for removed lines, "+" for
// added lines and "  " for context. Skipped unchanged runs print as "  ...".
func Diff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for i, d := range diffs {
		text := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&out, "- ", text)
		case diffmatchpatch.DiffInsert:
			writeLines(&out, "+ ", text)
		case diffmatchpatch.DiffEqual:
			head, tail := 0, 0
			if i > 0 {
				head = contextLines
			}
			if i < len(diffs)-1 {
				tail = contextLines
			}
			if head+tail >= len(text) {
				writeLines(&out, "  ", text)
				continue
			}
			writeLines(&out, "  ", text[:head])
			out.WriteString("  ...\n")
			writeLines(&out, "  ", text[len(text)-tail:])
		}
	}
	return out.String()
}

func splitLines(s string) []string {
	return strings.SplitAfter(strings.TrimSuffix(s, "\n"), "\n")
}

func writeLines(out *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		out.WriteString(prefix)
		out.WriteString(strings.TrimSuffix(line, "\n"))
		out.WriteString("\n")
	}
}
