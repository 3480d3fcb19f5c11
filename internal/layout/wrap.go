package layout

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/kk-code-lab/mdview/internal/textutil"
)

// hardBreak is the sentinel span text that forces a new display line.
// Document text never contains a bare newline by the time it reaches the
// wrapper, so the value cannot collide with content.
const hardBreak = "\n"

type wrapToken struct {
	spans []Span
	width int
	space bool
	brk   bool
}

// wrapSpans lays styled spans out as word-wrapped lines no wider than width.
// Breaks happen at word boundaries; a single word wider than the whole line
// is split at grapheme boundaries so no line ever exceeds width. Spaces at a
// break point are dropped.
func wrapSpans(spans []Span, width int) [][]Span {
	if width < 1 {
		width = 1
	}
	tokens := tokenize(spans)

	var lines [][]Span
	var cur []Span
	curWidth := 0
	var pendingSpace []Span
	pendingWidth := 0

	flush := func() {
		line := make([]Span, len(cur))
		copy(line, cur)
		lines = append(lines, line)
		cur = cur[:0]
		curWidth = 0
		pendingSpace = nil
		pendingWidth = 0
	}

	placeWord := func(tok wrapToken) {
		if curWidth > 0 {
			if curWidth+pendingWidth+tok.width > width {
				flush()
			} else {
				cur = append(cur, pendingSpace...)
				curWidth += pendingWidth
				pendingSpace = nil
				pendingWidth = 0
			}
		}
		if tok.width > width {
			broken, restSpans, restWidth := breakLongWord(tok.spans, width)
			lines = append(lines, broken...)
			cur = append(cur, restSpans...)
			curWidth = restWidth
			return
		}
		cur = append(cur, tok.spans...)
		curWidth += tok.width
	}

	for _, tok := range tokens {
		switch {
		case tok.brk:
			flush()
		case tok.space:
			if curWidth == 0 {
				continue
			}
			pendingSpace = append(pendingSpace, tok.spans...)
			pendingWidth += tok.width
		default:
			placeWord(tok)
		}
	}
	if curWidth > 0 || len(cur) > 0 {
		flush()
	}
	return lines
}

// tokenize splits spans into word, space, and forced-break tokens. A word
// that crosses a style boundary stays one token so it wraps as a unit.
func tokenize(spans []Span) []wrapToken {
	var tokens []wrapToken
	var word wrapToken

	closeWord := func() {
		if len(word.spans) > 0 {
			tokens = append(tokens, word)
			word = wrapToken{}
		}
	}

	for _, span := range spans {
		if span.Text == hardBreak {
			closeWord()
			tokens = append(tokens, wrapToken{brk: true})
			continue
		}
		for _, part := range splitSpaces(span.Text) {
			if part == "" {
				continue
			}
			w := textutil.DisplayWidth(part)
			if unicode.IsSpace([]rune(part)[0]) {
				closeWord()
				tokens = append(tokens, wrapToken{
					spans: []Span{{Text: part, Style: span.Style}},
					width: w,
					space: true,
				})
				continue
			}
			word.spans = append(word.spans, Span{Text: part, Style: span.Style})
			word.width += w
		}
	}
	closeWord()
	return tokens
}

// splitSpaces cuts text into alternating runs of spaces and non-spaces.
func splitSpaces(s string) []string {
	if s == "" {
		return nil
	}
	var parts []string
	var b strings.Builder
	last := 0 // 0 unset, 1 space, 2 word
	for _, r := range s {
		kind := 2
		if unicode.IsSpace(r) {
			kind = 1
		}
		if last != 0 && kind != last {
			parts = append(parts, b.String())
			b.Reset()
		}
		b.WriteRune(r)
		last = kind
	}
	if b.Len() > 0 {
		parts = append(parts, b.String())
	}
	return parts
}

// truncateSpans cuts spans down to at most width columns, splitting on
// grapheme cluster boundaries. Returns the kept spans and their width.
func truncateSpans(spans []Span, width int) ([]Span, int) {
	var out []Span
	used := 0
	for _, span := range spans {
		var b strings.Builder
		g := uniseg.NewGraphemes(span.Text)
		for g.Next() {
			cluster := g.Str()
			w := textutil.DisplayWidth(cluster)
			if used+w > width {
				if b.Len() > 0 {
					out = append(out, Span{Text: b.String(), Style: span.Style})
				}
				return out, used
			}
			b.WriteString(cluster)
			used += w
		}
		if b.Len() > 0 {
			out = append(out, Span{Text: b.String(), Style: span.Style})
		}
	}
	return out, used
}

// breakLongWord splits an unbreakable token wider than width into full lines
// plus a remainder that continues the current line. Splits fall on grapheme
// cluster boundaries so combined characters stay intact.
func breakLongWord(spans []Span, width int) (lines [][]Span, rest []Span, restWidth int) {
	var cur []Span
	curWidth := 0

	for _, span := range spans {
		var b strings.Builder
		g := uniseg.NewGraphemes(span.Text)
		for g.Next() {
			cluster := g.Str()
			w := textutil.DisplayWidth(cluster)
			if curWidth+w > width {
				if b.Len() > 0 {
					cur = append(cur, Span{Text: b.String(), Style: span.Style})
					b.Reset()
				}
				line := make([]Span, len(cur))
				copy(line, cur)
				lines = append(lines, line)
				cur = cur[:0]
				curWidth = 0
			}
			b.WriteString(cluster)
			curWidth += w
		}
		if b.Len() > 0 {
			cur = append(cur, Span{Text: b.String(), Style: span.Style})
		}
	}
	return lines, cur, curWidth
}
