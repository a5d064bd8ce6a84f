package ruleset

import (
	"regexp"
	"strings"
)

// tag is the span of one JSX opening tag, content[start:end] is "<name ... >"
type tag struct {
	start, end  int
	selfClosing bool
}

// findTags returns the opening tags named name, in document order. The scan
// stops at the closing '>' outside of braces and quotes, so arrow functions
// and comparisons inside attribute expressions do not end the tag early.
func findTags(content, name string) []tag {
	var tags []tag
	needle := "<" + name
	for i := 0; i < len(content); {
		j := strings.Index(content[i:], needle)
		if j < 0 {
			break
		}
		start := i + j
		after := start + len(needle)
		if after >= len(content) {
			break
		}
		if !isTagBoundary(content[after]) {
			i = after
			continue
		}
		end, ok := scanTagEnd(content, after)
		if !ok {
			break
		}
		tags = append(tags, tag{start: start, end: end, selfClosing: content[end-2] == '/'})
		i = end
	}
	return tags
}

func isTagBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '>', '/':
		return true
	}
	return false
}

// scanTagEnd returns the index just past the '>' closing the tag started before i
func scanTagEnd(s string, i int) (int, bool) {
	depth := 0
	var quote byte
	for ; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			// JSX attribute strings have no escapes, expression strings do
			if c == '\\' && depth > 0 {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '>':
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// closingTagEnd returns the index just past </name> following from, or -1
func closingTagEnd(content, name string, from int) int {
	needle := "</" + name + ">"
	j := strings.Index(content[from:], needle)
	if j < 0 {
		return -1
	}
	return from + j + len(needle)
}

var classNameRe = regexp.MustCompile("className=(?:\"([^\"]*)\"|'([^']*)'|\\{\\s*`([^`]*)`\\s*\\})")

// hasClass reports whether a className attribute literal of the tag text carries class as a token
func hasClass(tagText, class string) bool {
	for _, m := range classNameRe.FindAllStringSubmatch(tagText, -1) {
		for _, tok := range strings.Fields(m[1] + m[2] + m[3]) {
			if tok == class {
				return true
			}
		}
	}
	return false
}

// lineIndent returns the leading whitespace of the line holding pos
func lineIndent(content string, pos int) string {
	lineStart := strings.LastIndexByte(content[:pos], '\n') + 1
	end := lineStart
	for end < len(content) && (content[end] == ' ' || content[end] == '\t') {
		end++
	}
	return content[lineStart:end]
}
