package render

import (
	"bufio"
	"io"

	"github.com/kk-code-lab/mdview/internal/layout"
)

const ansiReset = "\x1b[0m"

// ansiCodes maps layout styles to SGR sequences for dump output. Styles
// without an entry print unstyled.
var ansiCodes = map[layout.StyleKind]string{
	layout.StyleEmphasis:    "\x1b[3m",
	layout.StyleStrong:      "\x1b[1m",
	layout.StyleStrike:      "\x1b[9m",
	layout.StyleCode:        "\x1b[36m",
	layout.StyleCodeBlock:   "\x1b[48;5;234m\x1b[38;5;252m",
	layout.StyleLink:        "\x1b[4;34m",
	layout.StyleLinkURL:     "\x1b[90m",
	layout.StyleQuote:       "\x1b[90m",
	layout.StyleMarker:      "\x1b[33m",
	layout.StyleRule:        "\x1b[90m",
	layout.StyleFootnoteRef: "\x1b[36m",
	layout.StyleHeading1:    "\x1b[1;34m",
	layout.StyleHeading2:    "\x1b[1;34m",
	layout.StyleHeading3:    "\x1b[34m",
	layout.StyleHeading4:    "\x1b[34m",
	layout.StyleHeading5:    "\x1b[34m",
	layout.StyleHeading6:    "\x1b[34m",
}

// Dump writes the laid-out document to w as ANSI-styled text, one display
// line per output line. Used by the non-interactive dump mode.
func Dump(w io.Writer, lines []layout.Line) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		for _, span := range line.Spans {
			if span.Text == "" {
				continue
			}
			if code, ok := ansiCodes[span.Style]; ok {
				bw.WriteString(code)
				bw.WriteString(span.Text)
				bw.WriteString(ansiReset)
			} else {
				bw.WriteString(span.Text)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
