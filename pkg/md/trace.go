package md

import (
	"fmt"
	"sort"
	"strings"
)

// Trace returns a dump of the tree, with one node per line and children
// indented by two spaces. It is meant for debugging and tests.
func Trace(nodes []Node) string {
	var t tracer
	t.nodes(nodes, 0)
	return t.String()
}

type tracer struct{ strings.Builder }

func (t *tracer) line(depth int, format string, args ...any) {
	if t.Len() > 0 {
		t.WriteByte('\n')
	}
	t.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(t, format, args...)
}

func (t *tracer) nodes(nodes []Node, depth int) {
	for _, n := range nodes {
		t.node(n, depth)
	}
}

func (t *tracer) node(n Node, depth int) {
	switch n := n.(type) {
	case *Heading:
		t.line(depth, "Heading Level=%d ID=%q", n.Level, n.ID)
		t.nodes(n.Children, depth+1)
	case *HorizontalRule:
		t.line(depth, "HorizontalRule")
	case *Paragraph:
		t.line(depth, "Paragraph")
		t.nodes(n.Children, depth+1)
	case *LineBreak:
		t.line(depth, "LineBreak")
	case *Link:
		t.line(depth, "Link URL=%q", n.URL)
		t.nodes(n.Text, depth+1)
	case *Image:
		t.line(depth, "Image URL=%q Alt=%q", n.URL, n.Alt)
	case *Bold:
		t.line(depth, "Bold")
		t.nodes(n.Children, depth+1)
	case *Italic:
		t.line(depth, "Italic")
		t.nodes(n.Children, depth+1)
	case *Strikethrough:
		t.line(depth, "Strikethrough")
		t.nodes(n.Children, depth+1)
	case *Underline:
		t.line(depth, "Underline")
		t.nodes(n.Children, depth+1)
	case *Text:
		t.line(depth, "Text %q", n.Content)
	case *InlineMath:
		t.line(depth, "InlineMath %q", n.Content)
	case *BlockMath:
		t.line(depth, "BlockMath %q", n.Content)
	case *InlineCode:
		t.line(depth, "InlineCode %q", n.Content)
	case *CodeBlock:
		t.line(depth, "CodeBlock Lang=%q Filename=%q", n.Lang, n.Filename)
		for _, line := range strings.Split(n.Code, "\n") {
			t.line(depth+1, "%s", line)
		}
	case *BlockQuote:
		t.line(depth, "BlockQuote")
		t.nodes(n.Children, depth+1)
	case *List:
		t.line(depth, "List Kind=%s", n.Kind)
		for _, item := range n.Items {
			switch item.Checkbox {
			case Checked:
				t.line(depth+1, "Item Checked")
			case Unchecked:
				t.line(depth+1, "Item Unchecked")
			default:
				t.line(depth+1, "Item")
			}
			t.nodes(item.Content, depth+2)
			t.nodes(item.Children, depth+2)
		}
	case *Table:
		t.line(depth, "Table")
		t.row("Header", n.Header, depth+1)
		for _, row := range n.Rows {
			t.row("Row", row, depth+1)
		}
	case *CustomBlock:
		var attrs []string
		for k, v := range n.Attrs {
			attrs = append(attrs, fmt.Sprintf(" %s=%q", k, v))
		}
		sort.Strings(attrs)
		t.line(depth, "CustomBlock Name=%q%s", n.Name, strings.Join(attrs, ""))
		t.nodes(n.Children, depth+1)
	}
}

func (t *tracer) row(name string, cells []*TableCell, depth int) {
	t.line(depth, "%s", name)
	for _, cell := range cells {
		t.line(depth+1, "Cell Align=%s", cell.Align)
		t.nodes(cell.Children, depth+2)
	}
}
