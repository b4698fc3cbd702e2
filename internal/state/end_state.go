// internal/state/end_state.go
package state

import (
	"bullseye-blitz/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*EndState)(nil)

// EndState shows the final stats until a key press or window close.
// Stats are frozen at the moment the session ended.
type EndState struct {
	stats     app.Stats
	renderers Renderers
}

func NewEndState(stats app.Stats, renderers Renderers) *EndState {
	return &EndState{stats: stats, renderers: renderers}
}

func (e *EndState) Enter() {}

func (e *EndState) Update() error {
	if quitRequested() || anyKeyPressed() {
		return ebiten.Termination
	}
	return nil
}

func (e *EndState) Draw(screen *ebiten.Image) {
	e.renderers.HUD.DrawEndScreen(screen, e.stats)
}

func (e *EndState) Exit() {}
