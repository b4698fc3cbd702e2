// internal/app/game.go
package app

import (
	"time"

	"bullseye-blitz/internal/component"
	"bullseye-blitz/internal/config"
	"bullseye-blitz/internal/event"
	"bullseye-blitz/internal/system"

	"github.com/google/uuid"
)

// Input is what the player did since the previous frame.
type Input struct {
	CursorX, CursorY float64
	Clicked          bool
}

// Stats is a read-only snapshot of the session counters.
type Stats struct {
	Elapsed  float64 // seconds since the session started
	Hits     int
	Clicks   int
	Missed   int
	MaxLives int
}

// LivesLeft never goes below zero.
func (s Stats) LivesLeft() int {
	if left := s.MaxLives - s.Missed; left > 0 {
		return left
	}
	return 0
}

// FrameReport counts what happened during one Update.
type FrameReport struct {
	Spawned int
	Hits    int
	Misses  int
}

// Game is one play session: the active targets and the score counters.
// It is driven one frame at a time by Update and never touches ebiten, so it
// runs headless in tests.
type Game struct {
	ID              uuid.UUID
	cfg             *config.Config
	clock           Clock
	Spawner         *system.Spawner
	EventDispatcher *event.Dispatcher

	targets []*component.Target
	start   time.Time
	last    time.Time
	elapsed float64
	hits    int
	clicks  int
	missed  int
	ended   bool
}

// NewGame starts a session at clock.Now().
func NewGame(cfg *config.Config, clock Clock, rng system.RandomSource, dispatcher *event.Dispatcher) *Game {
	if clock == nil {
		clock = SystemClock{}
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	now := clock.Now()
	return &Game{
		ID:              uuid.New(),
		cfg:             cfg,
		clock:           clock,
		Spawner:         system.NewSpawner(cfg, rng),
		EventDispatcher: dispatcher,
		start:           now,
		last:            now,
	}
}

// Update runs one frame. It does nothing once the session has ended.
func (g *Game) Update(in Input) FrameReport {
	var report FrameReport
	if g.ended {
		return report
	}

	now := g.clock.Now()
	g.elapsed = now.Sub(g.start).Seconds()
	deltaTime := now.Sub(g.last).Seconds()
	if deltaTime > g.cfg.MaxDeltaTime {
		deltaTime = g.cfg.MaxDeltaTime
	}
	g.last = now

	if in.Clicked {
		g.clicks++
		g.EventDispatcher.Dispatch(event.Event{Type: event.Clicked, Data: event.ClickData{
			SessionID: g.ID.String(),
			X:         in.CursorX,
			Y:         in.CursorY,
			Elapsed:   g.elapsed,
		}})
	}

	for n := g.Spawner.Advance(deltaTime); n > 0; n-- {
		t := g.Spawner.Spawn()
		g.targets = append(g.targets, t)
		report.Spawned++
		g.dispatchTarget(event.TargetSpawned, t)
	}

	// Survivors go into a fresh slice so removal never skips a neighbour.
	kept := make([]*component.Target, 0, len(g.targets))
	for _, t := range g.targets {
		t.Update()
		switch {
		case t.Expired():
			g.missed++
			report.Misses++
			g.dispatchTarget(event.TargetMissed, t)
		case in.Clicked && t.Contains(in.CursorX, in.CursorY):
			g.hits++
			report.Hits++
			g.dispatchTarget(event.TargetHit, t)
		default:
			kept = append(kept, t)
		}
	}
	g.targets = kept

	if g.missed >= g.cfg.MaxLives {
		g.ended = true
		s := g.Stats()
		g.EventDispatcher.Dispatch(event.Event{Type: event.SessionEnded, Data: event.SessionData{
			SessionID: g.ID.String(),
			Elapsed:   s.Elapsed,
			Hits:      s.Hits,
			Clicks:    s.Clicks,
			Missed:    s.Missed,
		}})
	}
	return report
}

func (g *Game) dispatchTarget(et event.EventType, t *component.Target) {
	g.EventDispatcher.Dispatch(event.Event{Type: et, Data: event.TargetData{
		SessionID: g.ID.String(),
		X:         t.X,
		Y:         t.Y,
		Diameter:  t.Diameter,
		Elapsed:   g.elapsed,
	}})
}

// Targets returns the live targets. Callers must not modify the slice.
func (g *Game) Targets() []*component.Target {
	return g.targets
}

func (g *Game) Stats() Stats {
	return Stats{
		Elapsed:  g.elapsed,
		Hits:     g.hits,
		Clicks:   g.clicks,
		Missed:   g.missed,
		MaxLives: g.cfg.MaxLives,
	}
}

// Ended reports whether the player has run out of lives.
func (g *Game) Ended() bool {
	return g.ended
}

func (g *Game) Config() *config.Config {
	return g.cfg
}
