// Package md implements a Markdown dialect with fenced math and custom blocks,
// pipe tables and task lists.
//
// The dialect is not CommonMark. It is parsed in a single top-to-bottom pass
// by a recursive descent parser that never fails: syntax it does not recognize,
// or constructs missing their closing token, are kept as literal text.
//
// The entry points are [Parse], which builds a [Document], and [ToHTML], which
// also renders the document with [RenderHTML].
//
// # Supported syntax
//
// Block-level constructs, recognized at the start of a line:
//
//   - Headings ("# ", "## ", ...). Each heading gets an ID derived from its
//     text with [Slugify].
//   - Horizontal rules ("---").
//   - Fenced code blocks ("```lang filename").
//   - Blockquotes ("> "), whose content is parsed as a nested document.
//   - Block math ("$$ ... $$").
//   - Custom blocks (":::name key=value" ... ":::"), which may nest.
//   - Pipe tables, with column alignment taken from the separator line.
//   - Bullet ("- ", "* ") and ordered ("1. ") lists, nested by indentation,
//     with optional task checkboxes ("[ ] ", "[x] ").
//
// Inline constructs: "*em*", "**strong**", "***both***", "__underline__",
// "~~strikethrough~~", "`code`", "$math$", "[link](url)", "![image](url)", and
// a backslash, which produces a line break.
//
// The HTML output is not escaped.
package md

// Document is the result of parsing a Markdown text.
type Document struct {
	Blocks []Node
}

// Node is a node in the document tree. The set of node types is closed; all
// implementations are in this package.
type Node interface {
	node()
}

// Heading is a heading. ID is derived from the plain text of Children.
type Heading struct {
	Level    int
	ID       string
	Children []Node
}

// HorizontalRule is a horizontal rule ("---").
type HorizontalRule struct{}

// Paragraph is a line of inline content.
type Paragraph struct {
	Children []Node
}

// LineBreak is produced by a backslash.
type LineBreak struct{}

// Link is a hyperlink. Its text may contain further inline formatting.
type Link struct {
	Text []Node
	URL  string
}

// Image is an image. The alt text is never parsed.
type Image struct {
	Alt string
	URL string
}

// Bold is strong emphasis ("**").
type Bold struct{ Children []Node }

// Italic is emphasis ("*").
type Italic struct{ Children []Node }

// Strikethrough is struck-out text ("~~").
type Strikethrough struct{ Children []Node }

// Underline is underlined text ("__").
type Underline struct{ Children []Node }

// Text is a run of literal text. It is never empty, and the parser never
// produces two adjacent Text nodes.
type Text struct {
	Content string
}

// InlineMath is a math span ("$...$").
type InlineMath struct {
	Content string
}

// BlockMath is a math block ("$$...$$").
type BlockMath struct {
	Content string
}

// InlineCode is a code span.
type InlineCode struct {
	Content string
}

// CodeBlock is a fenced code block. Lang and Filename come from the words
// following the opening fence, and may be empty.
type CodeBlock struct {
	Lang     string
	Filename string
	Code     string
}

// BlockQuote is a blockquote.
type BlockQuote struct {
	Children []Node
}

// ListKind is the kind of a [List].
type ListKind int

// Possible values of ListKind.
const (
	Unordered ListKind = iota
	Ordered
)

func (k ListKind) String() string {
	if k == Ordered {
		return "ordered"
	}
	return "unordered"
}

// List is a bullet or ordered list. All the items of a List have the same
// kind.
type List struct {
	Kind  ListKind
	Items []*ListItem
}

// Checkbox is the state of the task checkbox of a [ListItem].
type Checkbox int

// Possible values of Checkbox.
const (
	NoCheckbox Checkbox = iota
	Unchecked
	Checked
)

// ListItem is an item in a [List]. Content is the inline content on the line of
// the item; Children holds lists nested under it.
type ListItem struct {
	Content  []Node
	Children []Node
	Checkbox Checkbox
}

// Align is the alignment of a table column.
type Align int

// Possible values of Align.
const (
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

var alignNames = [...]string{
	AlignNone: "none", AlignLeft: "left", AlignCenter: "center", AlignRight: "right",
}

func (a Align) String() string {
	if 0 <= a && int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "none"
}

// Table is a pipe table. Rows may have a different number of cells than the
// header.
type Table struct {
	Header []*TableCell
	Rows   [][]*TableCell
}

// TableCell is a cell in a [Table].
type TableCell struct {
	Children []Node
	Align    Align
}

// CustomBlock is a fenced block (":::name") with a name, attributes and
// block-level content.
type CustomBlock struct {
	Name     string
	Attrs    map[string]string
	Children []Node
}

func (*Heading) node()        {}
func (*HorizontalRule) node() {}
func (*Paragraph) node()      {}
func (*LineBreak) node()      {}
func (*Link) node()           {}
func (*Image) node()          {}
func (*Bold) node()           {}
func (*Italic) node()         {}
func (*Strikethrough) node()  {}
func (*Underline) node()      {}
func (*Text) node()           {}
func (*InlineMath) node()     {}
func (*BlockMath) node()      {}
func (*InlineCode) node()     {}
func (*CodeBlock) node()      {}
func (*BlockQuote) node()     {}
func (*List) node()           {}
func (*Table) node()          {}
func (*CustomBlock) node()    {}
