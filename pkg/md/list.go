package md

import "strings"

// Parses a list whose items are indented by baseIndent. A line indented deeper
// starts a nested list under the last item; the list ends at a blank line, a
// line indented less, a line that is not a list item, or an item of the other
// kind at the same indentation.
func (p *parser) list(baseIndent int) *List {
	_, first := lineIndent(p.peekLine())
	kind := listKind(first)
	list := &List{Kind: kind}
	for !p.eof() {
		raw := p.peekLine()
		if strings.TrimSpace(raw) == "" {
			break
		}
		indent, line := lineIndent(raw)
		if indent < baseIndent || !isListLine(line) {
			break
		}
		if indent == baseIndent && listKind(line) != kind {
			break
		}
		if indent > baseIndent && len(list.Items) > 0 {
			nested := p.list(indent)
			if len(nested.Items) == 0 {
				break
			}
			last := list.Items[len(list.Items)-1]
			last.Children = append(last.Children, nested)
			continue
		}
		p.readLine()
		checkbox, text := splitCheckbox(stripListMarker(line, kind))
		list.Items = append(list.Items, &ListItem{
			Content: parseInlineString(text), Checkbox: checkbox})
	}
	return list
}

// Reports whether a line with leading whitespace removed starts with a list
// marker: "- ", "* ", or a number followed by ". ".
func isListLine(line string) bool {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return true
	}
	return ordinalLen(line) > 0
}

// Returns the length of the "N. " marker at the start of line, or 0 if there
// is none.
func ordinalLen(line string) int {
	i := 0
	for i < len(line) && '0' <= line[i] && line[i] <= '9' {
		i++
	}
	if i > 0 && strings.HasPrefix(line[i:], ". ") {
		return i + 2
	}
	return 0
}

func listKind(line string) ListKind {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return Unordered
	}
	return Ordered
}

func stripListMarker(line string, kind ListKind) string {
	if kind == Unordered {
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			return line[2:]
		}
		return line
	}
	if n := ordinalLen(line); n > 0 {
		return line[n:]
	}
	return line
}

func splitCheckbox(text string) (Checkbox, string) {
	switch {
	case strings.HasPrefix(text, "[ ] "):
		return Unchecked, text[4:]
	case strings.HasPrefix(text, "[x] "), strings.HasPrefix(text, "[X] "):
		return Checked, text[4:]
	}
	return NoCheckbox, text
}
