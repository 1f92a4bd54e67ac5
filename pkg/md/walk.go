package md

import "strings"

// Walk visits the nodes depth-first in document order, calling fn for each
// node. If fn returns false, the children of that node are skipped.
//
// Children include list item content and nested lists, table cells and link
// text.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if !fn(n) {
			continue
		}
		switch n := n.(type) {
		case *Heading:
			Walk(n.Children, fn)
		case *Paragraph:
			Walk(n.Children, fn)
		case *Link:
			Walk(n.Text, fn)
		case *Bold:
			Walk(n.Children, fn)
		case *Italic:
			Walk(n.Children, fn)
		case *Strikethrough:
			Walk(n.Children, fn)
		case *Underline:
			Walk(n.Children, fn)
		case *BlockQuote:
			Walk(n.Children, fn)
		case *List:
			for _, item := range n.Items {
				Walk(item.Content, fn)
				Walk(item.Children, fn)
			}
		case *Table:
			for _, cell := range n.Header {
				Walk(cell.Children, fn)
			}
			for _, row := range n.Rows {
				for _, cell := range row {
					Walk(cell.Children, fn)
				}
			}
		case *CustomBlock:
			Walk(n.Children, fn)
		}
	}
}

// PlainText returns the text of inline nodes with all formatting removed.
// Links, images and line breaks contribute nothing.
func PlainText(nodes []Node) string {
	var sb strings.Builder
	writePlainText(&sb, nodes)
	return sb.String()
}

func writePlainText(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Text:
			sb.WriteString(n.Content)
		case *Bold:
			writePlainText(sb, n.Children)
		case *Italic:
			writePlainText(sb, n.Children)
		case *Underline:
			writePlainText(sb, n.Children)
		case *Strikethrough:
			writePlainText(sb, n.Children)
		case *InlineCode:
			sb.WriteString(n.Content)
		case *InlineMath:
			sb.WriteString(n.Content)
		}
	}
}
