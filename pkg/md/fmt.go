package md

import (
	"fmt"
	"sort"
	"strings"
)

// Format writes nodes back as Markdown in a canonical style:
//
//   - Blocks are separated by a blank line.
//
//   - Bullet lists use "-", ordered lists are numbered from 1, and nested
//     lists are indented by 2 spaces per level.
//
//   - Custom block attributes are sorted by key and always quoted.
//
//   - Table separators are written as "---", with colons for alignment.
//
// Parsing the output of Format gives back the same tree, as long as the tree
// came from the parser and contains no text that itself looks like syntax.
// Children of list items other than nested lists are not written.
func Format(nodes []Node) string {
	var f formatter
	f.blocks(nodes)
	return f.String()
}

type formatter struct {
	strings.Builder
}

func (f *formatter) blocks(nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			f.WriteByte('\n')
		}
		f.block(n)
	}
}

func (f *formatter) block(n Node) {
	switch n := n.(type) {
	case *Heading:
		f.WriteString(strings.Repeat("#", n.Level))
		f.WriteByte(' ')
		f.inline(n.Children)
		f.WriteByte('\n')
	case *HorizontalRule:
		f.WriteString("---\n")
	case *Paragraph:
		f.inline(n.Children)
		f.WriteByte('\n')
	case *CodeBlock:
		f.WriteString("```")
		f.WriteString(strings.TrimSpace(n.Lang + " " + n.Filename))
		fmt.Fprintf(f, "\n%s\n```\n", n.Code)
	case *BlockMath:
		fmt.Fprintf(f, "$$\n%s\n$$\n", n.Content)
	case *BlockQuote:
		for _, line := range strings.SplitAfter(Format(n.Children), "\n") {
			switch line {
			case "":
			case "\n":
				f.WriteString(">\n")
			default:
				f.WriteString("> " + line)
			}
		}
	case *List:
		f.list(n, 0)
	case *Table:
		f.table(n)
	case *CustomBlock:
		f.WriteString(":::" + n.Name)
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(f, ` %s="%s"`, k, n.Attrs[k])
		}
		f.WriteByte('\n')
		f.WriteString(Format(n.Children))
		f.WriteString(":::\n")
	default:
		// An inline node at the block level, possibly added by an extension.
		f.inline([]Node{n})
		f.WriteByte('\n')
	}
}

func (f *formatter) list(l *List, indent int) {
	for i, item := range l.Items {
		f.WriteString(strings.Repeat(" ", indent))
		if l.Kind == Ordered {
			fmt.Fprintf(f, "%d. ", i+1)
		} else {
			f.WriteString("- ")
		}
		switch item.Checkbox {
		case Checked:
			f.WriteString("[x] ")
		case Unchecked:
			f.WriteString("[ ] ")
		}
		f.inline(item.Content)
		f.WriteByte('\n')
		for _, child := range item.Children {
			if child, ok := child.(*List); ok {
				f.list(child, indent+2)
			}
		}
	}
}

var alignSeparators = [...]string{
	AlignNone: "---", AlignLeft: ":---", AlignCenter: ":---:", AlignRight: "---:",
}

func (f *formatter) table(t *Table) {
	f.tableRow(t.Header)
	f.WriteByte('|')
	for _, cell := range t.Header {
		fmt.Fprintf(f, " %s |", alignSeparators[cell.Align])
	}
	f.WriteByte('\n')
	for _, row := range t.Rows {
		f.tableRow(row)
	}
}

func (f *formatter) tableRow(cells []*TableCell) {
	f.WriteByte('|')
	for _, cell := range cells {
		f.WriteByte(' ')
		f.inline(cell.Children)
		f.WriteString(" |")
	}
	f.WriteByte('\n')
}

func (f *formatter) inline(nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Text:
			f.WriteString(n.Content)
		case *LineBreak:
			f.WriteByte('\\')
		case *Bold:
			if len(n.Children) == 1 {
				if italic, ok := n.Children[0].(*Italic); ok {
					f.wrap("***", italic.Children)
					continue
				}
			}
			f.wrap("**", n.Children)
		case *Italic:
			f.wrap("*", n.Children)
		case *Underline:
			f.wrap("__", n.Children)
		case *Strikethrough:
			f.wrap("~~", n.Children)
		case *InlineCode:
			fmt.Fprintf(f, "`%s`", n.Content)
		case *InlineMath:
			fmt.Fprintf(f, "$%s$", n.Content)
		case *Link:
			f.WriteByte('[')
			f.inline(n.Text)
			fmt.Fprintf(f, "](%s)", n.URL)
		case *Image:
			fmt.Fprintf(f, "![%s](%s)", n.Alt, n.URL)
		default:
			// A block node in inline content, possibly added by an extension.
			f.WriteString(strings.TrimSuffix(Format([]Node{n}), "\n"))
		}
	}
}

func (f *formatter) wrap(marker string, children []Node) {
	f.WriteString(marker)
	f.inline(children)
	f.WriteString(marker)
}
