package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/mdview/internal/state"
	inputui "github.com/kk-code-lab/mdview/internal/ui/input"
	renderui "github.com/kk-code-lab/mdview/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}
