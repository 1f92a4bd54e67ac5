package md

import (
	"strings"
	"unicode"
)

// A read head over the runes of the input. Lookahead is done with peekLine;
// the cursor never moves backwards.
type cursor struct {
	text []rune
	pos  int
}

func newCursor(s string) *cursor { return &cursor{text: []rune(s)} }

func (c *cursor) eof() bool { return c.pos >= len(c.text) }

// Returns the current rune, or 0 at the end of the input.
func (c *cursor) peek() rune {
	if c.eof() {
		return 0
	}
	return c.text[c.pos]
}

func (c *cursor) next() rune {
	r := c.peek()
	c.pos++
	return r
}

func (c *cursor) consume(n int) { c.pos = min(c.pos+n, len(c.text)) }

func (c *cursor) consumeIf(r rune) bool {
	if !c.eof() && c.text[c.pos] == r {
		c.pos++
		return true
	}
	return false
}

// Consumes up to n consecutive r's and returns how many were consumed.
func (c *cursor) consumeRun(r rune, n int) int {
	i := 0
	for i < n && c.consumeIf(r) {
		i++
	}
	return i
}

func (c *cursor) startsWith(s string) bool {
	i := c.pos
	for _, r := range s {
		if i >= len(c.text) || c.text[i] != r {
			return false
		}
		i++
	}
	return true
}

// Returns the rest of the current line without the newline, without
// consuming it.
func (c *cursor) peekLine() string {
	return string(c.text[c.pos:c.lineEnd()])
}

// Consumes the rest of the current line and the newline after it, and returns
// the line without the newline.
func (c *cursor) readLine() string {
	end := c.lineEnd()
	line := string(c.text[c.pos:end])
	c.pos = end
	c.consumeIf('\n')
	return line
}

func (c *cursor) lineEnd() int {
	i := c.pos
	for i < len(c.text) && c.text[i] != '\n' {
		i++
	}
	return i
}

// Reads runes up to stop, consuming stop too if found. The second return value
// reports whether stop was found.
func (c *cursor) readUntil(stop rune) (string, bool) {
	start := c.pos
	for !c.eof() && c.text[c.pos] != stop {
		c.pos++
	}
	s := string(c.text[start:c.pos])
	return s, c.consumeIf(stop)
}

// Skips all whitespace, including newlines.
func (c *cursor) skipEmptyLines() {
	for !c.eof() && unicode.IsSpace(c.text[c.pos]) {
		c.pos++
	}
}

func (c *cursor) skipInlineSpace() {
	for !c.eof() && (c.text[c.pos] == ' ' || c.text[c.pos] == '\t') {
		c.pos++
	}
}

// Returns the number of leading whitespace runes of line and the line with
// surrounding whitespace trimmed.
func lineIndent(line string) (int, string) {
	indent := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		indent++
	}
	return indent, strings.TrimSpace(line)
}
