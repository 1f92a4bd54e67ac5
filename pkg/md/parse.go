package md

import "strings"

// Parse parses a Markdown text. It never fails; unrecognized syntax is kept as
// literal text.
func Parse(text string) *Document {
	return &Document{Blocks: parseBlocks(text)}
}

// ToHTML parses the text and renders it as HTML.
func ToHTML(text string) string {
	return RenderHTML(Parse(text).Blocks)
}

type parser struct {
	*cursor
	// If not nil, records the line on which each block starts.
	lines *lineRecorder
}

type lineRecorder struct {
	starts []int
	// Position and line number of the last recorded block.
	pos, line int
}

func (r *lineRecorder) add(text []rune, pos int) {
	for _, c := range text[r.pos:pos] {
		if c == '\n' {
			r.line++
		}
	}
	r.pos = pos
	r.starts = append(r.starts, r.line)
}

// ParseWithLines is like [Parse], but also returns the 0-based line number on
// which each top-level block starts.
func ParseWithLines(text string) (*Document, []int) {
	p := parser{cursor: newCursor(text), lines: &lineRecorder{}}
	blocks := p.document()
	return &Document{Blocks: blocks}, p.lines.starts
}

// Parses text as an independent document. Used for the top level and for the
// content of blockquotes and custom blocks.
func parseBlocks(text string) []Node {
	p := parser{cursor: newCursor(text)}
	return p.document()
}

// Parses text as inline content with a fresh parser. Used for link text,
// list items and table cells.
func parseInlineString(text string) []Node {
	p := parser{cursor: newCursor(text)}
	return p.inline(0)
}

func (p *parser) document() []Node {
	var blocks []Node
	for {
		p.skipEmptyLines()
		if p.eof() {
			break
		}
		start := p.pos
		var block Node
		switch {
		case p.startsWith("#"):
			block = p.heading()
		case p.startsWith("---"):
			p.readLine()
			block = &HorizontalRule{}
		case p.startsWith("```"):
			block = p.codeBlock()
		case p.startsWith(">"):
			block = p.blockQuote()
		case p.startsWith("$$"):
			block = p.blockMath()
		case p.startsWith(":::"):
			block = p.customBlock()
		case isTableLine(p.peekLine()):
			block = p.table()
		case isListLine(strings.TrimSpace(p.peekLine())):
			block = p.list(0)
		default:
			content := p.inline('\n')
			p.consumeIf('\n')
			if len(content) == 0 {
				continue
			}
			block = &Paragraph{Children: content}
		}
		blocks = append(blocks, block)
		if p.lines != nil {
			p.lines.add(p.text, start)
		}
	}
	return blocks
}

func (p *parser) heading() *Heading {
	level := 0
	for p.consumeIf('#') {
		level++
	}
	p.skipInlineSpace()
	children := p.inline('\n')
	p.consumeIf('\n')
	return &Heading{Level: level, ID: Slugify(PlainText(children)), Children: children}
}

func isTableLine(line string) bool {
	return strings.Contains(line, "|") && strings.HasPrefix(strings.TrimSpace(line), "|")
}
