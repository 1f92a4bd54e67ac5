package md

import "strings"

// Parses a fenced code block. The words after the opening fence give the
// language and the file name. An unclosed block extends to the end of the
// input.
func (p *parser) codeBlock() *CodeBlock {
	p.consume(len("```"))
	var b CodeBlock
	fields := strings.Fields(p.readLine())
	if len(fields) > 0 {
		b.Lang = fields[0]
	}
	if len(fields) > 1 {
		b.Filename = fields[1]
	}
	b.Code = strings.TrimSpace(p.readUntilFence("```"))
	return &b
}

func (p *parser) blockMath() *BlockMath {
	p.consume(len("$$"))
	return &BlockMath{Content: strings.TrimSpace(p.readUntilFence("$$"))}
}

// Copies runes up to the next occurrence of fence, and consumes the fence.
func (p *parser) readUntilFence(fence string) string {
	var sb strings.Builder
	for !p.eof() && !p.startsWith(fence) {
		sb.WriteRune(p.next())
	}
	if p.startsWith(fence) {
		p.consume(len(fence))
	}
	return sb.String()
}

// Parses consecutive lines starting with ">". The markers and at most one
// space after each of them are removed, and the rest is parsed as a document.
func (p *parser) blockQuote() *BlockQuote {
	var sb strings.Builder
	for p.startsWith(">") {
		p.consume(1)
		p.consumeIf(' ')
		sb.WriteString(p.readLine())
		sb.WriteByte('\n')
		p.skipInlineSpace()
	}
	return &BlockQuote{Children: parseBlocks(sb.String())}
}

// Parses a custom block:
//
//	:::name key=value key="quoted value"
//	content
//	:::
//
// Lines starting with ":::" followed by more text open nested blocks; a line
// consisting of ":::" closes the innermost open block. Only the depth is
// tracked, not the names of nested blocks.
func (p *parser) customBlock() *CustomBlock {
	p.consume(len(":::"))
	b := &CustomBlock{Attrs: map[string]string{}}
	fields := strings.Fields(p.readLine())
	if len(fields) > 0 {
		b.Name = fields[0]
		for _, field := range fields[1:] {
			if k, v, ok := strings.Cut(field, "="); ok {
				b.Attrs[k] = strings.Trim(v, `"`)
			}
		}
	}

	var body strings.Builder
	depth := 1
	for !p.eof() {
		line := p.readLine()
		trimmed := strings.TrimSpace(line)
		if trimmed == ":::" {
			depth--
			if depth == 0 {
				break
			}
		} else if strings.HasPrefix(trimmed, ":::") {
			depth++
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	b.Children = parseBlocks(body.String())
	return b
}
