package md

import "strings"

// Parses inline content up to delim, or up to the end of the line or input.
// Neither delim nor the newline is consumed. A delim of 0 means no delimiter.
func (p *parser) inline(delim rune) []Node {
	var b inlineBuilder
	for !p.eof() {
		r := p.peek()
		if (delim != 0 && r == delim) || r == '\n' {
			break
		}
		switch {
		case r == '\\':
			p.consume(1)
			b.add(&LineBreak{})
		case r == '$' && !p.startsWith("$$"):
			p.consume(1)
			content, _ := p.readUntil('$')
			b.add(&InlineMath{Content: content})
		case p.startsWith("***"):
			p.emphasis(&b, "***", func(inner []Node) Node {
				return &Bold{Children: []Node{&Italic{Children: inner}}}
			})
		case p.startsWith("**"):
			p.emphasis(&b, "**", func(inner []Node) Node { return &Bold{Children: inner} })
		case p.startsWith("__"):
			p.emphasis(&b, "__", func(inner []Node) Node { return &Underline{Children: inner} })
		case p.startsWith("~~"):
			p.emphasis(&b, "~~", func(inner []Node) Node { return &Strikethrough{Children: inner} })
		case r == '*':
			p.emphasis(&b, "*", func(inner []Node) Node { return &Italic{Children: inner} })
		case r == '`':
			p.consume(1)
			content, _ := p.readUntil('`')
			b.add(&InlineCode{Content: content})
		case p.startsWith("!["):
			p.consume(2)
			alt, closed := p.readUntil(']')
			if closed && p.consumeIf('(') {
				url, _ := p.readUntil(')')
				b.add(&Image{Alt: alt, URL: url})
			} else {
				b.text.WriteString("![")
				b.text.WriteString(alt)
				if closed {
					b.text.WriteByte(']')
				}
			}
		case r == '[':
			p.consume(1)
			label, closed := p.readUntil(']')
			if closed && p.consumeIf('(') {
				url, _ := p.readUntil(')')
				b.add(&Link{Text: parseInlineString(label), URL: url})
			} else {
				b.text.WriteByte('[')
				b.text.WriteString(label)
				if closed {
					b.text.WriteByte(']')
				}
			}
		default:
			b.text.WriteRune(p.next())
		}
	}
	return b.finish()
}

// Parses an emphasis-like span opened by marker. The content extends to the
// next occurrence of the marker's character; any run of up to len(marker) of
// that character closes it. Without a closer, the marker is kept as text.
func (p *parser) emphasis(b *inlineBuilder, marker string, wrap func([]Node) Node) {
	m := rune(marker[0])
	p.consume(len(marker))
	inner := p.inline(m)
	if p.consumeRun(m, len(marker)) > 0 {
		b.add(wrap(inner))
	} else {
		b.literal(marker, inner)
	}
}

// Accumulates inline nodes, merging adjacent text.
type inlineBuilder struct {
	nodes []Node
	text  strings.Builder
}

func (b *inlineBuilder) flush() {
	if b.text.Len() > 0 {
		b.nodes = append(b.nodes, &Text{Content: b.text.String()})
		b.text.Reset()
	}
}

func (b *inlineBuilder) add(n Node) {
	b.flush()
	b.nodes = append(b.nodes, n)
}

// Adds s as text, followed by nodes, merging any leading or trailing text.
func (b *inlineBuilder) literal(s string, nodes []Node) {
	b.text.WriteString(s)
	for _, n := range nodes {
		if t, ok := n.(*Text); ok {
			b.text.WriteString(t.Content)
		} else {
			b.add(n)
		}
	}
}

func (b *inlineBuilder) finish() []Node {
	b.flush()
	return b.nodes
}
