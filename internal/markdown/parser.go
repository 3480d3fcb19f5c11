package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// ParseError reports source text that could not be interpreted as a
// document. CommonMark parsing itself is permissive, so in practice this
// means the bytes were not valid text.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse markdown: " + e.Reason
}

var parser = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Footnote),
)

// Parse converts raw source text into a Document. Parsing is all-or-nothing:
// no partial document is ever returned alongside an error.
func Parse(src []byte) (*Document, error) {
	if !utf8.Valid(src) {
		return nil, &ParseError{Reason: "source is not valid UTF-8"}
	}

	root := parser.Parser().Parse(text.NewReader(src))
	doc := &Document{}
	for child := root.FirstChild(); child != nil; child = child.NextSibling() {
		if list, ok := child.(*extast.FootnoteList); ok {
			doc.Footnotes = append(doc.Footnotes, convertFootnotes(list, src)...)
			continue
		}
		if b := convertBlock(child, src); b != nil {
			doc.Blocks = append(doc.Blocks, b)
		}
	}
	return doc, nil
}

func convertBlocks(node ast.Node, src []byte) []Block {
	var blocks []Block
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if b := convertBlock(child, src); b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func convertBlock(node ast.Node, src []byte) Block {
	switch n := node.(type) {
	case *ast.Heading:
		return Heading{Level: n.Level, Text: convertInlines(n, src)}
	case *ast.Paragraph:
		return Paragraph{Text: convertInlines(n, src)}
	case *ast.TextBlock:
		return Paragraph{Text: convertInlines(n, src)}
	case *ast.FencedCodeBlock:
		return CodeBlock{
			Info:   strings.TrimSpace(string(n.Language(src))),
			Lines:  literalLines(n.Lines(), src),
			Fenced: true,
		}
	case *ast.CodeBlock:
		return CodeBlock{Lines: literalLines(n.Lines(), src)}
	case *ast.HTMLBlock:
		// Raw HTML is shown verbatim rather than interpreted.
		lines := literalLines(n.Lines(), src)
		if n.HasClosure() {
			lines = append(lines, strings.TrimRight(string(n.ClosureLine.Value(src)), "\n"))
		}
		return CodeBlock{Info: "html", Lines: lines, Fenced: true}
	case *ast.List:
		return convertList(n, src)
	case *ast.Blockquote:
		return Blockquote{Blocks: convertBlocks(n, src)}
	case *ast.ThematicBreak:
		return ThematicBreak{}
	case *extast.Table:
		return convertTable(n, src)
	default:
		return nil
	}
}

func convertList(list *ast.List, src []byte) List {
	out := List{Ordered: list.IsOrdered(), Start: list.Start}
	if out.Ordered && out.Start <= 0 {
		out.Start = 1
	}
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		converted := ListItem{Blocks: convertBlocks(item, src)}
		converted.Task, converted.Blocks = extractTaskState(converted.Blocks)
		out.Items = append(out.Items, converted)
	}
	return out
}

// extractTaskState pulls a leading task checkbox out of an item's first
// paragraph. The tasklist extension injects it as the first inline node.
func extractTaskState(blocks []Block) (TaskState, []Block) {
	if len(blocks) == 0 {
		return TaskNone, blocks
	}
	para, ok := blocks[0].(Paragraph)
	if !ok || len(para.Text) == 0 {
		return TaskNone, blocks
	}
	first := para.Text[0]
	if first.Kind != inlineTaskMarker {
		return TaskNone, blocks
	}
	state := TaskOpen
	if first.Index != 0 {
		state = TaskDone
	}
	para.Text = trimLeadingSpace(para.Text[1:])
	blocks[0] = para
	return state, blocks
}

// inlineTaskMarker is internal to the adapter; it never survives into a
// returned Document.
const inlineTaskMarker InlineKind = -1

func trimLeadingSpace(inlines []Inline) []Inline {
	if len(inlines) > 0 && inlines[0].Kind == InlineText {
		inlines[0].Literal = strings.TrimLeft(inlines[0].Literal, " ")
		if inlines[0].Literal == "" {
			return inlines[1:]
		}
	}
	return inlines
}

func convertTable(tbl *extast.Table, src []byte) Table {
	out := Table{}
	for _, a := range tbl.Alignments {
		switch a {
		case extast.AlignLeft:
			out.Align = append(out.Align, AlignLeft)
		case extast.AlignCenter:
			out.Align = append(out.Align, AlignCenter)
		case extast.AlignRight:
			out.Align = append(out.Align, AlignRight)
		default:
			out.Align = append(out.Align, AlignDefault)
		}
	}
	for child := tbl.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *extast.TableHeader:
			if out.Header == nil {
				out.Header = rowCells(n, src)
			}
		case *extast.TableRow:
			out.Rows = append(out.Rows, rowCells(n, src))
		}
	}
	return out
}

// rowCells collects the cells of a header or body row. Goldmark parents
// cells directly under the row node, but tolerate an intermediate row.
func rowCells(row ast.Node, src []byte) []Cell {
	var cells []Cell
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *extast.TableCell:
			cells = append(cells, Cell(convertInlines(n, src)))
		case *extast.TableRow:
			cells = append(cells, rowCells(n, src)...)
		}
	}
	return cells
}

func convertFootnotes(list *extast.FootnoteList, src []byte) []Footnote {
	var notes []Footnote
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		note, ok := child.(*extast.Footnote)
		if !ok {
			continue
		}
		notes = append(notes, Footnote{
			Index:  note.Index,
			Blocks: convertBlocks(note, src),
		})
	}
	return notes
}

func convertInlines(node ast.Node, src []byte) []Inline {
	var out []Inline
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, convertInline(child, src)...)
	}
	return out
}

func convertInline(node ast.Node, src []byte) []Inline {
	switch n := node.(type) {
	case *ast.Text:
		var out []Inline
		if literal := string(n.Segment.Value(src)); literal != "" {
			out = append(out, Inline{Kind: InlineText, Literal: literal})
		}
		if n.HardLineBreak() {
			out = append(out, Inline{Kind: InlineHardBreak})
		} else if n.SoftLineBreak() {
			// Soft breaks re-flow, so a plain space keeps words separated.
			out = append(out, Inline{Kind: InlineText, Literal: " "})
		}
		return out
	case *ast.String:
		if len(n.Value) == 0 {
			return nil
		}
		return []Inline{{Kind: InlineText, Literal: string(n.Value)}}
	case *ast.Emphasis:
		kind := InlineEmphasis
		if n.Level >= 2 {
			kind = InlineStrong
		}
		return []Inline{{Kind: kind, Children: convertInlines(n, src)}}
	case *extast.Strikethrough:
		return []Inline{{Kind: InlineStrike, Children: convertInlines(n, src)}}
	case *ast.CodeSpan:
		return []Inline{{Kind: InlineCode, Literal: codeSpanText(n, src)}}
	case *ast.Link:
		return []Inline{{
			Kind:        InlineLink,
			Children:    convertInlines(n, src),
			Destination: string(n.Destination),
		}}
	case *ast.AutoLink:
		url := string(n.URL(src))
		label := string(n.Label(src))
		if label == "" {
			label = url
		}
		return []Inline{{
			Kind:        InlineLink,
			Children:    []Inline{{Kind: InlineText, Literal: label}},
			Destination: url,
		}}
	case *ast.Image:
		// Images are a non-goal; fall back to their alt text and target.
		alt := convertInlines(n, src)
		if len(alt) == 0 {
			alt = []Inline{{Kind: InlineText, Literal: "image"}}
		}
		return []Inline{{
			Kind:        InlineLink,
			Children:    alt,
			Destination: string(n.Destination),
		}}
	case *ast.RawHTML:
		return []Inline{{Kind: InlineText, Literal: segmentsText(n.Segments, src)}}
	case *extast.FootnoteLink:
		return []Inline{{Kind: InlineFootnoteRef, Index: n.Index}}
	case *extast.TaskCheckBox:
		marker := Inline{Kind: inlineTaskMarker}
		if n.IsChecked {
			marker.Index = 1
		}
		return []Inline{marker}
	default:
		if node.HasChildren() {
			return convertInlines(node, src)
		}
		return nil
	}
}

func codeSpanText(n *ast.CodeSpan, src []byte) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return b.String()
}

func segmentsText(segments *text.Segments, src []byte) string {
	var b strings.Builder
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

func literalLines(lines *text.Segments, src []byte) []string {
	out := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(src)), "\n"))
	}
	return out
}
