package layout

import (
	"strings"

	"github.com/kk-code-lab/mdview/internal/markdown"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

// tableCell is one cell's content wrapped to its column width.
type tableCell struct {
	lines [][]Span
}

// layoutTable renders a table as fixed-content display lines with
// box-drawing borders. Column widths start at the widest cell in each
// column; when the bordered row would exceed width, the widest column is
// shrunk one column at a time (never below one) and its cells wrap.
func layoutTable(tbl markdown.Table, width int) []Line {
	cols := len(tbl.Header)
	for _, row := range tbl.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if len(tbl.Align) > cols {
		cols = len(tbl.Align)
	}
	if cols == 0 {
		return nil
	}

	header := cellSpans(tbl.Header, cols, StyleStrong)
	rows := make([][][]Span, len(tbl.Rows))
	for i, row := range tbl.Rows {
		rows[i] = cellSpans(row, cols, StylePlain)
	}

	widths := columnWidths(header, rows, cols)
	clampWidths(widths, width)

	headerCells := wrapRow(header, widths)
	bodyCells := make([][]tableCell, len(rows))
	for i, row := range rows {
		bodyCells[i] = wrapRow(row, widths)
	}

	var lines []Line
	emit := func(spans []Span) {
		lines = append(lines, Line{Spans: spans, Source: tbl})
	}

	emit(borderSpans(widths, "┌", "┬", "┐"))
	for _, spans := range rowLines(headerCells, widths, tbl.Align) {
		emit(spans)
	}
	emit(borderSpans(widths, "├", "┼", "┤"))
	for _, row := range bodyCells {
		for _, spans := range rowLines(row, widths, tbl.Align) {
			emit(spans)
		}
	}
	emit(borderSpans(widths, "└", "┴", "┘"))
	return lines
}

// cellSpans flattens each cell's inline content to spans, padding short
// rows with empty cells so every row has the same column count.
func cellSpans(cells []markdown.Cell, cols int, base StyleKind) [][]Span {
	out := make([][]Span, cols)
	for i := 0; i < cols; i++ {
		if i >= len(cells) {
			continue
		}
		spans := inlineSpans(cells[i], base)
		// Breaks inside a cell flatten to spaces; cells are wrapped by
		// column width, not by authored line structure.
		for j := range spans {
			if spans[j].Text == hardBreak {
				spans[j].Text = " "
			}
		}
		out[i] = spans
	}
	return out
}

func columnWidths(header [][]Span, rows [][][]Span, cols int) []int {
	widths := make([]int, cols)
	measure := func(row [][]Span) {
		for i, spans := range row {
			w := spansWidth(spans)
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	for i, w := range widths {
		if w < 1 {
			widths[i] = 1
		}
	}
	return widths
}

// clampWidths shrinks the widest column until the bordered table fits in
// maxWidth. Columns never drop below one content column, so a table with
// many columns can still overflow; the display layer clips it.
func clampWidths(widths []int, maxWidth int) {
	if maxWidth <= 0 {
		return
	}
	total := tableWidth(widths)
	for total > maxWidth {
		idx := -1
		widest := 1
		for i, w := range widths {
			if w > widest {
				widest = w
				idx = i
			}
		}
		if idx == -1 {
			return
		}
		widths[idx]--
		total--
	}
}

// tableWidth is the full bordered width: each column gets two padding
// spaces and one border, plus the closing border.
func tableWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total + len(widths)*3 + 1
}

func wrapRow(row [][]Span, widths []int) []tableCell {
	cells := make([]tableCell, len(row))
	for i, spans := range row {
		wrapped := wrapSpans(spans, widths[i])
		if len(wrapped) == 0 {
			wrapped = [][]Span{nil}
		}
		cells[i] = tableCell{lines: wrapped}
	}
	return cells
}

// rowLines emits one display row per wrapped cell line, padding shorter
// cells so the row stays rectangular.
func rowLines(cells []tableCell, widths []int, align []markdown.Alignment) [][]Span {
	height := 1
	for _, cell := range cells {
		if len(cell.lines) > height {
			height = len(cell.lines)
		}
	}

	out := make([][]Span, 0, height)
	for lineIdx := 0; lineIdx < height; lineIdx++ {
		var spans []Span
		spans = append(spans, Span{Text: "│ ", Style: StylePlain})
		for i, cell := range cells {
			var content []Span
			if lineIdx < len(cell.lines) {
				content = cell.lines[lineIdx]
			}
			spans = append(spans, alignCell(content, widths[i], alignAt(align, i))...)
			if i == len(cells)-1 {
				spans = append(spans, Span{Text: " │", Style: StylePlain})
			} else {
				spans = append(spans, Span{Text: " │ ", Style: StylePlain})
			}
		}
		out = append(out, spans)
	}
	return out
}

func alignCell(content []Span, width int, align markdown.Alignment) []Span {
	space := width - spansWidth(content)
	if space < 0 {
		space = 0
	}
	left, right := 0, space
	switch align {
	case markdown.AlignCenter:
		left = space / 2
		right = space - left
	case markdown.AlignRight:
		left = space
		right = 0
	}

	spans := make([]Span, 0, len(content)+2)
	if left > 0 {
		spans = append(spans, Span{Text: strings.Repeat(" ", left), Style: StylePlain})
	}
	spans = append(spans, content...)
	if right > 0 {
		spans = append(spans, Span{Text: strings.Repeat(" ", right), Style: StylePlain})
	}
	return spans
}

func alignAt(align []markdown.Alignment, idx int) markdown.Alignment {
	if idx < len(align) {
		return align[idx]
	}
	return markdown.AlignDefault
}

func borderSpans(widths []int, left, sep, right string) []Span {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strings.Repeat("─", w+2))
	}
	b.WriteString(right)
	return []Span{{Text: b.String(), Style: StylePlain}}
}

func spansWidth(spans []Span) int {
	w := 0
	for _, s := range spans {
		w += textutil.DisplayWidth(s.Text)
	}
	return w
}
