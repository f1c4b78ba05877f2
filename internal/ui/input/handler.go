package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/catter/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct{}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// ProcessEvent converts a tcell event into an Action. ok is false for events
// the viewer ignores; those must not cause a redraw.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) (statepkg.Action, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		return statepkg.ResizeAction{}, true
	default:
		return nil, false
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) (statepkg.Action, bool) {
	switch ev.Key() {
	case tcell.KeyDown:
		return statepkg.NextPageAction{}, true
	case tcell.KeyUp:
		return statepkg.PrevPageAction{}, true
	case tcell.KeyRune:
	default:
		return nil, false
	}

	if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
		return nil, false
	}

	switch ev.Rune() {
	case 'j':
		return statepkg.NextPageAction{}, true
	case 'k':
		return statepkg.PrevPageAction{}, true
	case 'q':
		return statepkg.QuitAction{}, true
	}
	return nil, false
}
