package md

// Section is a heading together with the headings nested under it.
type Section struct {
	Title string
	ID    string
	Level int
	// Index of the heading in Document.Blocks.
	Block    int
	Children []*Section
}

// Outline returns the hierarchy of the top-level headings of a document. A
// heading becomes a child of the closest preceding heading with a lower level.
// Headings inside blockquotes and custom blocks are not included.
func Outline(doc *Document) []*Section {
	root := &Section{}
	stack := []*Section{root}
	for i, block := range doc.Blocks {
		h, ok := block.(*Heading)
		if !ok {
			continue
		}
		for len(stack) > 1 && h.Level <= stack[len(stack)-1].Level {
			stack = stack[:len(stack)-1]
		}
		s := &Section{Title: PlainText(h.Children), ID: h.ID, Level: h.Level, Block: i}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, s)
		stack = append(stack, s)
	}
	return root.Children
}
