package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mdview/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	helpVisible := ih.state != nil && ih.state.HelpVisible

	// While help is visible, keys either dismiss it or quit.
	if helpVisible {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
			return true
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
			return true
		default:
			return true
		}
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyUp:
		ih.actionChan <- statepkg.ScrollUpAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.ScrollDownAction{}
		return true

	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
		return true

	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
		return true

	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
		return true

	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
		return true

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			ih.actionChan <- statepkg.QuitAction{}
			return false

		case 'j':
			ih.actionChan <- statepkg.ScrollDownAction{}
			return true

		case 'k':
			ih.actionChan <- statepkg.ScrollUpAction{}
			return true

		case ' ', 'n':
			ih.actionChan <- statepkg.ScrollPageDownAction{}
			return true

		case 'p':
			ih.actionChan <- statepkg.ScrollPageUpAction{}
			return true

		case 'g':
			ih.actionChan <- statepkg.ScrollToStartAction{}
			return true

		case 'G':
			ih.actionChan <- statepkg.ScrollToEndAction{}
			return true

		case 'r', 'R':
			ih.actionChan <- statepkg.ReloadAction{}
			return true

		case '?':
			ih.actionChan <- statepkg.HelpToggleAction{}
			return true
		}
		return true

	default:
		return true
	}
}
