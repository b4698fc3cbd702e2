// internal/state/play_state.go
package state

import (
	"fmt"

	"bullseye-blitz/internal/app"
	"bullseye-blitz/internal/config"
	"bullseye-blitz/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var _ State = (*PlayState)(nil)

// Renderers bundles what the states need to draw.
type Renderers struct {
	Targets *render.TargetRenderer
	HUD     *render.HUDRenderer
	Debug   bool
}

// PlayState is the running session.
type PlayState struct {
	sm        *StateMachine
	game      *app.Game
	cfg       *config.Config
	renderers Renderers
}

func NewPlayState(sm *StateMachine, game *app.Game, renderers Renderers) *PlayState {
	return &PlayState{
		sm:        sm,
		game:      game,
		cfg:       game.Config(),
		renderers: renderers,
	}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	p.advance(pollInput())
	return nil
}

// advance runs one frame of the session and hands over to the end screen
// once the last life is gone.
func (p *PlayState) advance(in app.Input) {
	p.game.Update(in)
	if p.game.Ended() {
		p.sm.SetState(NewEndState(p.game.Stats(), p.renderers))
	}
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(p.cfg.BackgroundColor)
	p.renderers.Targets.Draw(screen, p.game.Targets())
	p.renderers.HUD.DrawHeader(screen, p.game.Stats())

	if p.renderers.Debug {
		msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f  targets: %d  session: %s",
			ebiten.ActualTPS(), ebiten.ActualFPS(), len(p.game.Targets()), p.game.ID.String()[:8])
		ebitenutil.DebugPrintAt(screen, msg, 5, p.cfg.HeaderHeight+5)
	}
}

func (p *PlayState) Exit() {}
