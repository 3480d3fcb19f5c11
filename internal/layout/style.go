// Package layout turns a parsed markdown document into display lines:
// ordered runs of styled text sized for a character grid of a given width.
package layout

import (
	"github.com/kk-code-lab/mdview/internal/markdown"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

// StyleKind is a semantic style tag. The renderer and the ANSI dumper map
// kinds to concrete colors; the layout engine never deals in colors itself.
type StyleKind int

const (
	StylePlain StyleKind = iota
	StyleEmphasis
	StyleStrong
	StyleStrike
	StyleCode
	StyleCodeBlock
	StyleLink
	StyleLinkURL
	StyleQuote
	StyleMarker
	StyleRule
	StyleFootnoteRef
	StyleHeading1
	StyleHeading2
	StyleHeading3
	StyleHeading4
	StyleHeading5
	StyleHeading6
)

// HeadingStyle maps a heading level (1..6) to its style kind. Out-of-range
// levels collapse to the deepest style.
func HeadingStyle(level int) StyleKind {
	switch level {
	case 1:
		return StyleHeading1
	case 2:
		return StyleHeading2
	case 3:
		return StyleHeading3
	case 4:
		return StyleHeading4
	case 5:
		return StyleHeading5
	default:
		return StyleHeading6
	}
}

// Span is a run of text drawn with a single style.
type Span struct {
	Text  string
	Style StyleKind
}

// Line is one display row. A Line with no spans is a blank separator.
// Source points back at the block the line was laid out from; it is not
// needed for drawing but keeps room for block-aware features.
type Line struct {
	Spans  []Span
	Source markdown.Block
}

// Blank reports whether the line renders as an empty row.
func (l Line) Blank() bool {
	for _, s := range l.Spans {
		if s.Text != "" {
			return false
		}
	}
	return true
}

// Text joins the line's spans without styling.
func (l Line) Text() string {
	total := 0
	for _, s := range l.Spans {
		total += len(s.Text)
	}
	buf := make([]byte, 0, total)
	for _, s := range l.Spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

// Width is the rendered column width of the line.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += textutil.DisplayWidth(s.Text)
	}
	return w
}
