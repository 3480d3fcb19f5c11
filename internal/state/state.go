package state

import (
	"github.com/kk-code-lab/mdview/internal/layout"
	"github.com/kk-code-lab/mdview/internal/markdown"
	"github.com/kk-code-lab/mdview/internal/viewport"
)

// chromeRows is the number of screen rows not used for document content:
// the header line and the status line.
const chromeRows = 2

// InitialStatusText is shown until the first user-visible event replaces it.
const InitialStatusText = "Press ? for help, q to quit"

type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusError
)

// Status is the message shown on the bottom line.
type Status struct {
	Text string
	Kind StatusKind
}

// AppState is the single source of truth
type AppState struct {
	// Document
	Path  string
	Doc   *markdown.Document
	Lines []layout.Line

	// LayoutWidth is the width Lines were produced for. Resize relayouts
	// only when it actually changes.
	LayoutWidth int

	// Viewport over Lines
	View viewport.Viewport

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Status line
	Status Status

	// Help overlay
	HelpVisible bool
}

// NewAppState creates the initial state for a document path and screen size.
// The document itself is loaded by the reducer.
func NewAppState(path string, width, height int) *AppState {
	return &AppState{
		Path:         path,
		ScreenWidth:  width,
		ScreenHeight: height,
		LayoutWidth:  width,
		View:         viewport.New(0, contentHeight(height)),
		Status:       Status{Text: InitialStatusText},
	}
}

// ContentHeight is the number of rows available for document lines.
func (s *AppState) ContentHeight() int {
	return contentHeight(s.ScreenHeight)
}

func contentHeight(screenHeight int) int {
	h := screenHeight - chromeRows
	if h < 0 {
		h = 0
	}
	return h
}
