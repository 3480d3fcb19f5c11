package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/mdview/internal/layout"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	ErrorFg     tcell.Color
	HeadingFg   tcell.Color
	CodeFg      tcell.Color
	CodeBlockBg tcell.Color
	CodeBlockFg tcell.Color
	LinkFg      tcell.Color
	LinkURLFg   tcell.Color
	QuoteFg     tcell.Color
	MarkerFg    tcell.Color
	RuleFg      tcell.Color
	FootnoteFg  tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
		HeadingFg:   tcell.Color33,  // blue headings
		CodeFg:      tcell.Color44,  // brighter cyan text for code
		CodeBlockBg: tcell.Color234, // darker grey background for fenced code
		CodeBlockFg: tcell.Color252, // light grey text for fenced code
		LinkFg:      tcell.Color39,
		LinkURLFg:   tcell.ColorLightSlateGray,
		QuoteFg:     tcell.ColorLightSlateGray,
		MarkerFg:    tcell.Color178, // amber bullets and checkboxes
		RuleFg:      tcell.ColorLightSlateGray,
		FootnoteFg:  tcell.Color44,
	}
}

// StyleFor maps a layout style to a concrete terminal style.
func (t ColorTheme) StyleFor(kind layout.StyleKind) tcell.Style {
	base := tcell.StyleDefault.Background(t.Background).Foreground(t.Foreground)
	switch kind {
	case layout.StyleEmphasis:
		return base.Italic(true)
	case layout.StyleStrong:
		return base.Bold(true)
	case layout.StyleStrike:
		return base.StrikeThrough(true)
	case layout.StyleCode:
		return base.Foreground(t.CodeFg)
	case layout.StyleCodeBlock:
		return tcell.StyleDefault.Background(t.CodeBlockBg).Foreground(t.CodeBlockFg)
	case layout.StyleLink:
		return base.Foreground(t.LinkFg).Underline(true)
	case layout.StyleLinkURL:
		return base.Foreground(t.LinkURLFg)
	case layout.StyleQuote:
		return base.Foreground(t.QuoteFg)
	case layout.StyleMarker:
		return base.Foreground(t.MarkerFg)
	case layout.StyleRule:
		return base.Foreground(t.RuleFg)
	case layout.StyleFootnoteRef:
		return base.Foreground(t.FootnoteFg)
	case layout.StyleHeading1, layout.StyleHeading2:
		return base.Foreground(t.HeadingFg).Bold(true)
	case layout.StyleHeading3, layout.StyleHeading4, layout.StyleHeading5, layout.StyleHeading6:
		return base.Foreground(t.HeadingFg)
	default:
		return base
	}
}
