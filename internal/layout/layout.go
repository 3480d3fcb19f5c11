package layout

import (
	"strconv"
	"strings"

	"github.com/kk-code-lab/mdview/internal/markdown"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

const quotePrefix = "│ "

// Layout converts a document into display lines for the given column width.
// It is pure: the same (document, width) pair always yields the same lines,
// and no input ever makes it fail. Widths below one column degrade to one.
func Layout(doc *markdown.Document, width int) []Line {
	if width < 1 {
		width = 1
	}
	var lines []Line
	if doc != nil {
		for _, block := range doc.Blocks {
			lines = appendWithGap(lines, layoutBlock(block, width, 0))
		}
		lines = appendWithGap(lines, footnoteSection(doc.Footnotes, width))
	}
	if len(lines) == 0 {
		lines = []Line{{Spans: []Span{{Text: "(file is empty)", Style: StylePlain}}}}
	}
	return lines
}

// appendWithGap joins block line groups with exactly one blank separator.
func appendWithGap(lines []Line, rendered []Line) []Line {
	if len(rendered) == 0 {
		return lines
	}
	if len(lines) > 0 && !lines[len(lines)-1].Blank() {
		lines = append(lines, Line{})
	}
	return append(lines, rendered...)
}

func layoutBlocks(blocks []markdown.Block, width, depth int) []Line {
	var lines []Line
	for _, block := range blocks {
		lines = appendWithGap(lines, layoutBlock(block, width, depth))
	}
	return lines
}

func layoutBlock(block markdown.Block, width, depth int) []Line {
	switch b := block.(type) {
	case markdown.Heading:
		return layoutHeading(b, width)
	case markdown.Paragraph:
		return spanLines(wrapSpans(inlineSpans(b.Text, StylePlain), width), block)
	case markdown.CodeBlock:
		return layoutCode(b)
	case markdown.List:
		return layoutList(b, width, depth)
	case markdown.Blockquote:
		return layoutQuote(b, width, depth)
	case markdown.ThematicBreak:
		return []Line{{
			Spans:  []Span{{Text: strings.Repeat("─", width), Style: StyleRule}},
			Source: block,
		}}
	case markdown.Table:
		return layoutTable(b, width)
	default:
		return nil
	}
}

func layoutHeading(h markdown.Heading, width int) []Line {
	style := HeadingStyle(h.Level)
	spans := []Span{{Text: strings.Repeat("#", h.Level) + " ", Style: style}}
	spans = append(spans, inlineSpans(h.Text, style)...)
	return spanLines(wrapSpans(spans, width), h)
}

// layoutCode emits code block lines verbatim: no wrapping, no re-flow. A
// line wider than the viewport is clipped by the display layer.
func layoutCode(b markdown.CodeBlock) []Line {
	lines := make([]Line, 0, len(b.Lines))
	for _, raw := range b.Lines {
		text := textutil.Sanitize(textutil.ExpandTabs(raw, textutil.DefaultTabWidth))
		lines = append(lines, Line{
			Spans:  []Span{{Text: text, Style: StyleCodeBlock}},
			Source: b,
		})
	}
	return lines
}

func layoutList(list markdown.List, width, depth int) []Line {
	var lines []Line
	for idx, item := range list.Items {
		marker, markerWidth := fitPrefix(itemMarker(list, idx, depth, item.Task), width)
		contentWidth := width - markerWidth
		content := layoutBlocks(item.Blocks, contentWidth, depth+1)
		if len(content) == 0 {
			lines = append(lines, Line{Spans: marker, Source: list})
			continue
		}
		indent := Span{Text: strings.Repeat(" ", markerWidth), Style: StylePlain}
		for i, line := range content {
			prefix := []Span{indent}
			if i == 0 {
				prefix = marker
			}
			lines = append(lines, prefixLine(line, prefix, list))
		}
	}
	return lines
}

// itemMarker renders the bullet or number plus, for task items, the
// fixed-width checkbox glyph on the first line only.
func itemMarker(list markdown.List, idx, depth int, task markdown.TaskState) []Span {
	var bullet string
	if list.Ordered {
		start := list.Start
		if start <= 0 {
			start = 1
		}
		bullet = strconv.Itoa(start+idx) + "."
	} else {
		switch depth {
		case 0:
			bullet = "•"
		case 1:
			bullet = "◦"
		default:
			bullet = "▪"
		}
	}
	marker := []Span{{Text: bullet + " ", Style: StyleMarker}}
	switch task {
	case markdown.TaskDone:
		marker = append(marker, Span{Text: "[x] ", Style: StyleMarker})
	case markdown.TaskOpen:
		marker = append(marker, Span{Text: "[ ] ", Style: StyleMarker})
	}
	return marker
}

func layoutQuote(q markdown.Blockquote, width, depth int) []Line {
	prefix, prefixWidth := fitPrefix([]Span{{Text: quotePrefix, Style: StyleQuote}}, width)
	content := layoutBlocks(q.Blocks, width-prefixWidth, depth)
	out := make([]Line, 0, len(content))
	for _, line := range content {
		out = append(out, prefixLine(line, prefix, q))
	}
	return out
}

// fitPrefix bounds a line prefix (bullet, checkbox, quote bar, footnote
// label) so at least one content column remains. Prefixed lines then never
// exceed width: prefix width plus the inner wrap width sums to width at most.
func fitPrefix(prefix []Span, width int) ([]Span, int) {
	w := 0
	for _, s := range prefix {
		w += textutil.DisplayWidth(s.Text)
	}
	if w < width {
		return prefix, w
	}
	return truncateSpans(prefix, width-1)
}

// footnoteSection lays out collected footnote definitions as a trailing
// section, each definition prefixed with its reference label.
func footnoteSection(notes []markdown.Footnote, width int) []Line {
	if len(notes) == 0 {
		return nil
	}
	lines := []Line{{Spans: []Span{{Text: strings.Repeat("─", width), Style: StyleRule}}}}
	for n, note := range notes {
		label, labelWidth := fitPrefix([]Span{{
			Text:  footnoteLabel(note.Index) + ": ",
			Style: StyleFootnoteRef,
		}}, width)
		content := layoutBlocks(note.Blocks, width-labelWidth, 0)
		if len(content) == 0 {
			content = []Line{{}}
		}
		indent := Span{Text: strings.Repeat(" ", labelWidth), Style: StylePlain}
		var rendered []Line
		for i, line := range content {
			prefix := []Span{indent}
			if i == 0 {
				prefix = label
			}
			rendered = append(rendered, prefixLine(line, prefix, nil))
		}
		if n > 0 {
			lines = append(lines, Line{})
		}
		lines = append(lines, rendered...)
	}
	return lines
}

func footnoteLabel(index int) string {
	return "[^" + strconv.Itoa(index) + "]"
}

func prefixLine(line Line, prefix []Span, source markdown.Block) Line {
	spans := make([]Span, 0, len(prefix)+len(line.Spans))
	spans = append(spans, prefix...)
	spans = append(spans, line.Spans...)
	if line.Source != nil {
		source = line.Source
	}
	return Line{Spans: spans, Source: source}
}

func spanLines(wrapped [][]Span, source markdown.Block) []Line {
	lines := make([]Line, 0, len(wrapped))
	for _, spans := range wrapped {
		lines = append(lines, Line{Spans: spans, Source: source})
	}
	return lines
}

// inlineSpans flattens inline content into styled spans, base being the
// style inherited from the enclosing block.
func inlineSpans(inlines []markdown.Inline, base StyleKind) []Span {
	var spans []Span
	for _, in := range inlines {
		switch in.Kind {
		case markdown.InlineText:
			spans = append(spans, Span{Text: textutil.Sanitize(in.Literal), Style: base})
		case markdown.InlineEmphasis:
			spans = append(spans, inlineSpans(in.Children, styleOr(base, StyleEmphasis))...)
		case markdown.InlineStrong:
			spans = append(spans, inlineSpans(in.Children, styleOr(base, StyleStrong))...)
		case markdown.InlineStrike:
			spans = append(spans, inlineSpans(in.Children, styleOr(base, StyleStrike))...)
		case markdown.InlineCode:
			spans = append(spans, Span{Text: textutil.Sanitize(in.Literal), Style: StyleCode})
		case markdown.InlineLink:
			spans = append(spans, inlineSpans(in.Children, styleOr(base, StyleLink))...)
			if in.Destination != "" {
				spans = append(spans,
					Span{Text: " (", Style: base},
					Span{Text: textutil.Sanitize(in.Destination), Style: StyleLinkURL},
					Span{Text: ")", Style: base},
				)
			}
		case markdown.InlineFootnoteRef:
			spans = append(spans, Span{Text: footnoteLabel(in.Index), Style: StyleFootnoteRef})
		case markdown.InlineHardBreak:
			spans = append(spans, Span{Text: hardBreak, Style: base})
		}
	}
	return spans
}

// styleOr keeps heading styles dominant so emphasis inside a heading does
// not lose the heading color.
func styleOr(base, inline StyleKind) StyleKind {
	if base >= StyleHeading1 && base <= StyleHeading6 {
		return base
	}
	return inline
}
