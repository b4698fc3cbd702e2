// internal/system/spawner.go
package system

import (
	"bullseye-blitz/internal/component"
	"bullseye-blitz/internal/config"
)

// RandomSource is the slice of utils.PRNGService the spawner needs.
type RandomSource interface {
	IntRange(lo, hi int) int
}

// Spawner creates targets on a fixed interval. Time is fed in explicitly,
// so it has no dependency on a wall clock.
type Spawner struct {
	cfg        *config.Config
	rng        RandomSource
	interval   float64 // seconds
	spawnTimer float64
}

func NewSpawner(cfg *config.Config, rng RandomSource) *Spawner {
	return &Spawner{
		cfg:      cfg,
		rng:      rng,
		interval: cfg.SpawnInterval.Seconds(),
	}
}

// Advance adds deltaTime to the accumulator and returns how many spawns are
// due. Leftover time carries over so the cadence does not drift.
//
// The game loop caps deltaTime at Config.MaxDeltaTime before calling Advance.
// Below roughly 17 TPS each frame counts for less than the wall time it took,
// so spawns then come further apart than SpawnInterval.
func (s *Spawner) Advance(deltaTime float64) int {
	if deltaTime <= 0 {
		return 0
	}
	s.spawnTimer += deltaTime
	due := 0
	for s.spawnTimer >= s.interval {
		s.spawnTimer -= s.interval
		due++
	}
	return due
}

// Spawn creates one target at a random point inside the spawn box.
// Overlap with existing targets is allowed.
func (s *Spawner) Spawn() *component.Target {
	minX, maxX, minY, maxY := s.cfg.SpawnBounds()
	x := s.rng.IntRange(minX, maxX)
	y := s.rng.IntRange(minY, maxY)
	return component.NewTarget(float64(x), float64(y), s.cfg.Target.MaxDiameter, s.cfg.Target.ExpansionRate)
}
