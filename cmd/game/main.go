// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"os"

	"bullseye-blitz/internal/app"
	"bullseye-blitz/internal/config"
	"bullseye-blitz/internal/event"
	"bullseye-blitz/internal/state"
	"bullseye-blitz/internal/utils"
	"bullseye-blitz/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	cfg          *config.Config
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "random seed for target positions (0 = time based)")
	debug := flag.Bool("debug", false, "show TPS/FPS and target count")
	verbose := flag.Bool("v", false, "log every target spawn and click")
	flag.Parse()

	logger := log.New(os.Stderr, "[blitz] ", log.LstdFlags)

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		logger.Fatal(err)
	}

	face, err := render.LoadLabelFace(cfg.HUD.FontSize)
	if err != nil {
		logger.Fatal(err)
	}

	rng := utils.NewPRNGService(*seed)
	dispatcher := event.NewDispatcher()
	listener := event.NewLogListener(logger)
	listener.Verbose = *verbose
	listener.Attach(dispatcher)

	game := app.NewGame(cfg, app.SystemClock{}, rng, dispatcher)
	logger.Printf("session=%s seed=%d started", game.ID, rng.Seed())

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, game, state.Renderers{
		Targets: render.NewTargetRenderer(cfg),
		HUD:     render.NewHUDRenderer(cfg, face),
		Debug:   *debug,
	}))

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Bullseye Blitz")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(&AppGame{cfg: cfg, stateMachine: sm}); err != nil {
		logger.Fatal(err)
	}
}
