package testutil

import "strings"

// Dedent removes the longest common whitespace prefix of all non-blank lines
// of text. A newline at the start of text is removed, and lines consisting of
// only whitespace become empty.
//
// This allows multiline fixtures to be written as indented raw strings,
// starting on the line after the opening backtick.
func Dedent(text string) string {
	text = strings.TrimPrefix(text, "\n")
	lines := strings.Split(text, "\n")
	margin := ""
	first := true
	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			lines[i] = ""
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			margin, first = indent, false
		} else {
			margin = commonPrefix(margin, indent)
		}
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
