package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mdview/internal/state"
	textutil "github.com/kk-code-lab/mdview/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()

	if state != nil && state.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawContent(state, w, h)
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with the file path and line count
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)

	count := fmt.Sprintf(" (%d lines)", state.View.Total())
	countWidth := r.measureTextWidth(count)

	pathWidth := w - countWidth
	if pathWidth < 0 {
		pathWidth = 0
	}
	path := textutil.Sanitize(state.Path)
	path = r.truncateTextToWidth(path, pathWidth)

	endX := r.drawTextLine(0, 0, w, path, headerStyle)
	endX = r.drawTextLine(endX, 0, w-endX, count, headerStyle.Bold(false))
	for x := endX; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, headerStyle)
	}
}

// drawContent renders the visible slice of display lines, clipping each
// line horizontally at the screen edge.
func (r *Renderer) drawContent(state *statepkg.AppState, w, h int) {
	bottomLimit := h - 1
	start, end := state.View.Visible()

	y := 1
	for idx := start; idx < end && y < bottomLimit; idx++ {
		line := state.Lines[idx]
		x := 0
		for _, span := range line.Spans {
			if x >= w {
				break
			}
			style := r.theme.StyleFor(span.Style)
			x = r.drawTextLine(x, y, w-x, span.Text, style)
		}
		y++
	}
}

// drawStatusLine renders the bottom line: status message on the left,
// scroll position on the right.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	if h < 1 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	msgStyle := style
	if state.Status.Kind == statepkg.StatusError {
		msgStyle = style.Foreground(r.theme.ErrorFg).Bold(true)
	}

	position := formatScrollPosition(state)
	posWidth := r.measureTextWidth(position)

	msgWidth := w - posWidth - 1
	if msgWidth < 0 {
		msgWidth = 0
	}
	text := textutil.Sanitize(state.Status.Text)
	text = r.truncateTextToWidth(text, msgWidth)

	endX := r.drawTextLine(0, y, msgWidth, text, msgStyle)
	for x := endX; x < w-posWidth; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
	r.drawTextLine(w-posWidth, y, posWidth, position, style)
}

// formatScrollPosition reports where the viewport sits in the document.
func formatScrollPosition(state *statepkg.AppState) string {
	total := state.View.Total()
	if total == 0 {
		return ""
	}
	_, end := state.View.Visible()
	if state.View.Offset() == 0 && end >= total {
		return "All"
	}
	if state.View.Offset() == 0 {
		return "Top"
	}
	if end >= total {
		return "Bot"
	}
	percent := state.View.Offset() * 100 / total
	return fmt.Sprintf("%d%%", percent)
}
