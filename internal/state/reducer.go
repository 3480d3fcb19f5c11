package state

import (
	"github.com/kk-code-lab/mdview/internal/layout"
	"github.com/kk-code-lab/mdview/internal/markdown"
	"github.com/kk-code-lab/mdview/internal/source"
)

// StateReducer processes actions and updates state
type StateReducer struct {
	// loader reads and normalizes the document bytes; swapped in tests.
	loader func(path string) ([]byte, error)
}

// NewStateReducer creates a reducer backed by the real filesystem.
func NewStateReducer() *StateReducer {
	return &StateReducer{loader: source.ReadFile}
}

// Load reads, parses, and lays out the document at state.Path. On success
// the document and display lines are replaced; on failure state is left
// untouched and the error is returned.
func (r *StateReducer) Load(state *AppState) error {
	content, err := r.loader(state.Path)
	if err != nil {
		return err
	}
	doc, err := markdown.Parse(content)
	if err != nil {
		return err
	}
	state.Doc = doc
	state.Lines = layout.Layout(doc, state.LayoutWidth)
	state.View.SetTotal(len(state.Lines))
	return nil
}

// Reduce applies an action to the state
func (r *StateReducer) Reduce(state *AppState, action Action) {
	switch a := action.(type) {
	case ScrollUpAction:
		state.View.ScrollBy(-1)
	case ScrollDownAction:
		state.View.ScrollBy(1)
	case ScrollPageUpAction:
		state.View.PageUp()
	case ScrollPageDownAction:
		state.View.PageDown()
	case ScrollToStartAction:
		state.View.Top()
	case ScrollToEndAction:
		state.View.Bottom()
	case ResizeAction:
		r.resize(state, a.Width, a.Height)
	case ReloadAction:
		r.reload(state)
	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
	case HelpHideAction:
		state.HelpVisible = false
	}
}

// resize relayouts from the in-memory document; no file access happens on
// a pure resize, so a file deleted after startup keeps rendering.
func (r *StateReducer) resize(state *AppState, width, height int) {
	state.ScreenWidth = width
	state.ScreenHeight = height
	state.View.SetHeight(state.ContentHeight())
	if width == state.LayoutWidth {
		return
	}
	state.LayoutWidth = width
	state.Lines = layout.Layout(state.Doc, width)
	state.View.SetTotal(len(state.Lines))
}

// reload re-reads the file. Any failure, from the read or the parse, keeps
// the previously displayed document and scroll position and only reports
// the error in the status line.
func (r *StateReducer) reload(state *AppState) {
	content, err := r.loader(state.Path)
	if err != nil {
		state.Status = Status{Text: "Reload failed: " + err.Error(), Kind: StatusError}
		return
	}
	doc, err := markdown.Parse(content)
	if err != nil {
		state.Status = Status{Text: "Reload failed: " + err.Error(), Kind: StatusError}
		return
	}
	state.Doc = doc
	state.Lines = layout.Layout(doc, state.LayoutWidth)
	state.View.SetTotal(len(state.Lines))
	state.Status = Status{Text: "Reloaded file"}
}
