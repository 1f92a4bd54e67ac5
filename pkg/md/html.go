package md

import (
	"fmt"
	"sort"
	"strings"
)

// RenderHTML renders nodes as HTML.
//
// Text, URLs and attribute values are written verbatim, without escaping.
func RenderHTML(nodes []Node) string {
	var r htmlRenderer
	r.render(nodes)
	return r.String()
}

type htmlRenderer struct {
	strings.Builder
}

var alignStyles = [...]string{
	AlignNone:   "",
	AlignLeft:   " style='text-align: left'",
	AlignCenter: " style='text-align: center'",
	AlignRight:  " style='text-align: right'",
}

func (r *htmlRenderer) render(nodes []Node) {
	for _, n := range nodes {
		r.renderNode(n)
	}
}

func (r *htmlRenderer) renderNode(n Node) {
	switch n := n.(type) {
	case *Heading:
		fmt.Fprintf(r, `<h%d id="%s">`, n.Level, n.ID)
		r.render(n.Children)
		fmt.Fprintf(r, "</h%d>\n", n.Level)
	case *HorizontalRule:
		r.WriteString("<hr />\n")
	case *Paragraph:
		r.WriteString("<p>")
		r.render(n.Children)
		r.WriteString("</p>\n")
	case *LineBreak:
		r.WriteString("<br />\n")
	case *Link:
		fmt.Fprintf(r, "<a href='%s'>", n.URL)
		r.render(n.Text)
		r.WriteString("</a>")
	case *Image:
		fmt.Fprintf(r, "<img src='%s' alt='%s' />", n.URL, n.Alt)
	case *Bold:
		r.wrap("strong", n.Children)
	case *Italic:
		r.wrap("em", n.Children)
	case *Strikethrough:
		r.wrap("del", n.Children)
	case *Underline:
		r.wrap("u", n.Children)
	case *Text:
		r.WriteString(n.Content)
	case *InlineMath:
		fmt.Fprintf(r, `<span class='math-inline'>\( %s \)</span>`, n.Content)
	case *BlockMath:
		fmt.Fprintf(r, "<div class='math-block'>\\[ %s \\]</div>\n", n.Content)
	case *InlineCode:
		fmt.Fprintf(r, "<code>%s</code>", n.Content)
	case *CodeBlock:
		var attrs attrBuilder
		if n.Lang != "" {
			attrs.set("class", "language-"+n.Lang)
		}
		if n.Filename != "" {
			attrs.set("data-filename", n.Filename)
		}
		fmt.Fprintf(r, "<pre><code%s>%s</code></pre>\n", &attrs, n.Code)
	case *BlockQuote:
		r.WriteString("<blockquote>\n")
		r.render(n.Children)
		r.WriteString("</blockquote>\n")
	case *List:
		r.list(n)
	case *Table:
		r.table(n)
	case *CustomBlock:
		fmt.Fprintf(r, "<div class='%s'", n.Name)
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(r, " data-%s='%s'", k, n.Attrs[k])
		}
		r.WriteString(">")
		r.render(n.Children)
		r.WriteString("</div>\n")
	default:
		panic(fmt.Sprintf("unhandled node type %T", n))
	}
}

func (r *htmlRenderer) wrap(tag string, children []Node) {
	fmt.Fprintf(r, "<%s>", tag)
	r.render(children)
	fmt.Fprintf(r, "</%s>", tag)
}

func (r *htmlRenderer) list(l *List) {
	tag := "ul"
	if l.Kind == Ordered {
		tag = "ol"
	}
	fmt.Fprintf(r, "<%s>\n", tag)
	for _, item := range l.Items {
		r.WriteString("  <li>")
		switch item.Checkbox {
		case Checked:
			r.WriteString("<input type='checkbox' disabled checked style='margin-right: 5px;' />")
		case Unchecked:
			r.WriteString("<input type='checkbox' disabled style='margin-right: 5px;' />")
		}
		r.render(item.Content)
		if len(item.Children) > 0 {
			r.WriteByte('\n')
			// Nested lists are indented for readability.
			for _, line := range strings.SplitAfter(RenderHTML(item.Children), "\n") {
				if line != "" {
					r.WriteString("    ")
					r.WriteString(line)
				}
			}
		}
		r.WriteString("</li>\n")
	}
	fmt.Fprintf(r, "</%s>\n", tag)
}

func (r *htmlRenderer) table(t *Table) {
	r.WriteString("<table>\n<thead>\n<tr>\n")
	r.cells("th", t.Header)
	r.WriteString("\n</tr>\n</thead>\n<tbody>\n")
	for _, row := range t.Rows {
		r.WriteString("<tr>\n")
		r.cells("td", row)
		r.WriteString("\n</tr>\n")
	}
	r.WriteString("</tbody>\n</table>\n")
}

func (r *htmlRenderer) cells(tag string, cells []*TableCell) {
	for _, cell := range cells {
		fmt.Fprintf(r, "<%s%s>", tag, alignStyles[cell.Align])
		r.render(cell.Children)
		fmt.Fprintf(r, "</%s>", tag)
	}
}

type attrBuilder struct{ strings.Builder }

func (a *attrBuilder) set(k, v string) { fmt.Fprintf(a, ` %s="%s"`, k, v) }
