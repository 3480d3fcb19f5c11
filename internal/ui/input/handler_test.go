package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mdview/internal/state"
)

func newTestHandler() (*InputHandler, chan statepkg.Action) {
	actionCh := make(chan statepkg.Action, 10)
	return NewInputHandler(actionCh), actionCh
}

func drain(ch chan statepkg.Action) []statepkg.Action {
	var actions []statepkg.Action
	for {
		select {
		case a := <-ch:
			actions = append(actions, a)
		default:
			return actions
		}
	}
}

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name     string
		event    *tcell.EventKey
		expected statepkg.Action
	}{
		{name: "j scrolls down", event: keyEvent(tcell.KeyRune, 'j'), expected: statepkg.ScrollDownAction{}},
		{name: "k scrolls up", event: keyEvent(tcell.KeyRune, 'k'), expected: statepkg.ScrollUpAction{}},
		{name: "down arrow", event: keyEvent(tcell.KeyDown, 0), expected: statepkg.ScrollDownAction{}},
		{name: "up arrow", event: keyEvent(tcell.KeyUp, 0), expected: statepkg.ScrollUpAction{}},
		{name: "space pages down", event: keyEvent(tcell.KeyRune, ' '), expected: statepkg.ScrollPageDownAction{}},
		{name: "n pages down", event: keyEvent(tcell.KeyRune, 'n'), expected: statepkg.ScrollPageDownAction{}},
		{name: "page down key", event: keyEvent(tcell.KeyPgDn, 0), expected: statepkg.ScrollPageDownAction{}},
		{name: "p pages up", event: keyEvent(tcell.KeyRune, 'p'), expected: statepkg.ScrollPageUpAction{}},
		{name: "page up key", event: keyEvent(tcell.KeyPgUp, 0), expected: statepkg.ScrollPageUpAction{}},
		{name: "g goes to top", event: keyEvent(tcell.KeyRune, 'g'), expected: statepkg.ScrollToStartAction{}},
		{name: "home goes to top", event: keyEvent(tcell.KeyHome, 0), expected: statepkg.ScrollToStartAction{}},
		{name: "G goes to bottom", event: keyEvent(tcell.KeyRune, 'G'), expected: statepkg.ScrollToEndAction{}},
		{name: "end goes to bottom", event: keyEvent(tcell.KeyEnd, 0), expected: statepkg.ScrollToEndAction{}},
		{name: "r reloads", event: keyEvent(tcell.KeyRune, 'r'), expected: statepkg.ReloadAction{}},
		{name: "question toggles help", event: keyEvent(tcell.KeyRune, '?'), expected: statepkg.HelpToggleAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, actionCh := newTestHandler()
			if !handler.ProcessEvent(tt.event) {
				t.Fatal("expected handler to continue")
			}
			actions := drain(actionCh)
			if len(actions) != 1 {
				t.Fatalf("expected 1 action, got %d", len(actions))
			}
			if actions[0] != tt.expected {
				t.Errorf("expected %T, got %T", tt.expected, actions[0])
			}
		})
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
	}{
		{name: "q quits", event: keyEvent(tcell.KeyRune, 'q')},
		{name: "Q quits", event: keyEvent(tcell.KeyRune, 'Q')},
		{name: "ctrl-c quits", event: keyEvent(tcell.KeyCtrlC, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, actionCh := newTestHandler()
			if handler.ProcessEvent(tt.event) {
				t.Fatal("expected handler to signal quit")
			}
			actions := drain(actionCh)
			if len(actions) != 1 {
				t.Fatalf("expected 1 action, got %d", len(actions))
			}
			if _, ok := actions[0].(statepkg.QuitAction); !ok {
				t.Errorf("expected QuitAction, got %T", actions[0])
			}
		})
	}
}

func TestResizeEvent(t *testing.T) {
	handler, actionCh := newTestHandler()

	if !handler.ProcessEvent(tcell.NewEventResize(120, 40)) {
		t.Fatal("expected handler to continue")
	}
	actions := drain(actionCh)
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	resize, ok := actions[0].(statepkg.ResizeAction)
	if !ok {
		t.Fatalf("expected ResizeAction, got %T", actions[0])
	}
	if resize.Width != 120 || resize.Height != 40 {
		t.Errorf("expected 120x40, got %dx%d", resize.Width, resize.Height)
	}
}

func TestHelpVisibleSwallowsKeys(t *testing.T) {
	handler, actionCh := newTestHandler()
	state := statepkg.NewAppState("doc.md", 80, 24)
	state.HelpVisible = true
	handler.SetState(state)

	// q closes help instead of quitting.
	if !handler.ProcessEvent(keyEvent(tcell.KeyRune, 'q')) {
		t.Fatal("expected handler to continue while help is open")
	}
	actions := drain(actionCh)
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if _, ok := actions[0].(statepkg.HelpHideAction); !ok {
		t.Errorf("expected HelpHideAction, got %T", actions[0])
	}

	// Scrolling keys are ignored.
	if !handler.ProcessEvent(keyEvent(tcell.KeyRune, 'j')) {
		t.Fatal("expected handler to continue")
	}
	if actions := drain(actionCh); len(actions) != 0 {
		t.Errorf("expected no actions while help is open, got %v", actions)
	}

	// Escape also closes help.
	if !handler.ProcessEvent(keyEvent(tcell.KeyEscape, 0)) {
		t.Fatal("expected handler to continue")
	}
	actions = drain(actionCh)
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if _, ok := actions[0].(statepkg.HelpHideAction); !ok {
		t.Errorf("expected HelpHideAction, got %T", actions[0])
	}

	// Ctrl+C still quits.
	if handler.ProcessEvent(keyEvent(tcell.KeyCtrlC, 0)) {
		t.Fatal("expected ctrl-c to quit even with help open")
	}
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	handler, actionCh := newTestHandler()

	if !handler.ProcessEvent(keyEvent(tcell.KeyRune, 'z')) {
		t.Fatal("expected handler to continue")
	}
	if actions := drain(actionCh); len(actions) != 0 {
		t.Errorf("expected no actions, got %v", actions)
	}
}
