package md

// TreeValue converts nodes to a value built from maps, slices, strings, ints,
// bools and nil, suitable for encoding as JSON or YAML.
//
// Each node becomes a map with a "type" key holding the camelCase name of its
// type ("heading", "customBlock", ...), plus its fields under camelCase keys.
func TreeValue(nodes []Node) []any {
	values := make([]any, len(nodes))
	for i, n := range nodes {
		values[i] = nodeValue(n)
	}
	return values
}

type object = map[string]any

func nodeValue(n Node) object {
	switch n := n.(type) {
	case *Heading:
		return object{"type": "heading", "level": n.Level, "id": n.ID, "children": TreeValue(n.Children)}
	case *HorizontalRule:
		return object{"type": "horizontalRule"}
	case *Paragraph:
		return object{"type": "paragraph", "children": TreeValue(n.Children)}
	case *LineBreak:
		return object{"type": "lineBreak"}
	case *Link:
		return object{"type": "link", "text": TreeValue(n.Text), "url": n.URL}
	case *Image:
		return object{"type": "image", "alt": n.Alt, "url": n.URL}
	case *Bold:
		return object{"type": "bold", "children": TreeValue(n.Children)}
	case *Italic:
		return object{"type": "italic", "children": TreeValue(n.Children)}
	case *Strikethrough:
		return object{"type": "strikethrough", "children": TreeValue(n.Children)}
	case *Underline:
		return object{"type": "underline", "children": TreeValue(n.Children)}
	case *Text:
		return object{"type": "text", "content": n.Content}
	case *InlineMath:
		return object{"type": "inlineMath", "content": n.Content}
	case *BlockMath:
		return object{"type": "blockMath", "content": n.Content}
	case *InlineCode:
		return object{"type": "inlineCode", "content": n.Content}
	case *CodeBlock:
		var filename any
		if n.Filename != "" {
			filename = n.Filename
		}
		return object{"type": "codeBlock", "lang": n.Lang, "filename": filename, "code": n.Code}
	case *BlockQuote:
		return object{"type": "blockQuote", "children": TreeValue(n.Children)}
	case *List:
		items := make([]any, len(n.Items))
		for i, item := range n.Items {
			var checked any
			if item.Checkbox != NoCheckbox {
				checked = item.Checkbox == Checked
			}
			items[i] = object{
				"content":  TreeValue(item.Content),
				"children": TreeValue(item.Children),
				"checked":  checked,
			}
		}
		return object{"type": "list", "kind": n.Kind.String(), "items": items}
	case *Table:
		rows := make([]any, len(n.Rows))
		for i, row := range n.Rows {
			rows[i] = cellsValue(row)
		}
		return object{"type": "table", "header": cellsValue(n.Header), "rows": rows}
	case *CustomBlock:
		attrs := make(object, len(n.Attrs))
		for k, v := range n.Attrs {
			attrs[k] = v
		}
		return object{"type": "customBlock", "name": n.Name, "attributes": attrs, "children": TreeValue(n.Children)}
	}
	return nil
}

func cellsValue(cells []*TableCell) []any {
	values := make([]any, len(cells))
	for i, cell := range cells {
		values[i] = object{"children": TreeValue(cell.Children), "alignment": cell.Align.String()}
	}
	return values
}
