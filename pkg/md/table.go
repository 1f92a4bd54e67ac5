package md

import "strings"

// Parses a pipe table. The first two lines are always taken as the header and
// the separator; the table then continues as long as lines start with "|".
func (p *parser) table() *Table {
	header := p.readLine()
	aligns := tableAligns(p.readLine())
	t := &Table{Header: tableRow(header, aligns)}
	for !p.eof() && isTableLine(p.peekLine()) {
		t.Rows = append(t.Rows, tableRow(p.readLine(), aligns))
	}
	return t
}

func tableTrimOuter(row string) string {
	return strings.Trim(strings.TrimSpace(row), "|")
}

func tableAligns(sep string) []Align {
	cells := strings.Split(tableTrimOuter(sep), "|")
	aligns := make([]Align, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		l := strings.HasPrefix(cell, ":")
		r := strings.HasSuffix(cell, ":")
		switch {
		case l && r:
			aligns[i] = AlignCenter
		case l:
			aligns[i] = AlignLeft
		case r:
			aligns[i] = AlignRight
		}
	}
	return aligns
}

func tableRow(line string, aligns []Align) []*TableCell {
	cells := strings.Split(tableTrimOuter(line), "|")
	row := make([]*TableCell, len(cells))
	for i, cell := range cells {
		row[i] = &TableCell{Children: parseInlineString(strings.TrimSpace(cell))}
		if i < len(aligns) {
			row[i].Align = aligns[i]
		}
	}
	return row
}
