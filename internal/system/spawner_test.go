package system

import (
	"testing"
	"time"

	"bullseye-blitz/internal/config"
	"bullseye-blitz/internal/utils"
)

func TestSpawner_PositionsStayInBounds(t *testing.T) {
	cfg := config.Default()
	s := NewSpawner(cfg, utils.NewPRNGService(12345))
	minX, maxX, minY, maxY := cfg.SpawnBounds()

	for i := 0; i < 20000; i++ {
		tg := s.Spawn()
		if tg.X < float64(minX) || tg.X > float64(maxX) {
			t.Fatalf("trial %d: x = %v outside [%d, %d]", i, tg.X, minX, maxX)
		}
		if tg.Y < float64(minY) || tg.Y > float64(maxY) {
			t.Fatalf("trial %d: y = %v outside [%d, %d]", i, tg.Y, minY, maxY)
		}
		if tg.Y < float64(cfg.HeaderHeight) {
			t.Fatalf("trial %d: target spawned under the header at y = %v", i, tg.Y)
		}
		if tg.Diameter != 0 || !tg.Growing {
			t.Fatalf("trial %d: spawned target not fresh: %+v", i, tg)
		}
	}
}

type fixedSource struct{ pick func(lo, hi int) int }

func (f fixedSource) IntRange(lo, hi int) int { return f.pick(lo, hi) }

func TestSpawner_UsesInclusiveBounds(t *testing.T) {
	cfg := config.Default()

	low := NewSpawner(cfg, fixedSource{func(lo, _ int) int { return lo }}).Spawn()
	if low.X != 30 || low.Y != 80 {
		t.Errorf("lowest spawn = (%v, %v), want (30, 80)", low.X, low.Y)
	}
	high := NewSpawner(cfg, fixedSource{func(_, hi int) int { return hi }}).Spawn()
	if high.X != 770 || high.Y != 570 {
		t.Errorf("highest spawn = (%v, %v), want (770, 570)", high.X, high.Y)
	}
}

func TestSpawner_Advance(t *testing.T) {
	cfg := config.Default()
	cfg.SpawnInterval = 400 * time.Millisecond

	tests := []struct {
		name   string
		deltas []float64
		want   int
	}{
		{"nothing yet", []float64{0.1, 0.1, 0.1}, 0},
		{"exactly one interval", []float64{0.25, 0.25}, 1},
		{"carry over", []float64{0.3, 0.3, 0.3}, 2},
		{"big stall", []float64{1.3}, 3},
		{"negative ignored", []float64{-1, 0.5}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(cfg, utils.NewPRNGService(1))
			got := 0
			for _, d := range tt.deltas {
				got += s.Advance(d)
			}
			if got != tt.want {
				t.Errorf("spawns = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSpawner_SixtyFramesPerSecondCadence(t *testing.T) {
	s := NewSpawner(config.Default(), utils.NewPRNGService(1))
	spawns := 0
	for frame := 0; frame < 60*10; frame++ {
		spawns += s.Advance(1.0 / 60)
	}
	// 10 seconds at one spawn per 400ms
	if spawns < 24 || spawns > 25 {
		t.Errorf("spawns over 10s = %d, want 25 (or 24 with float rounding)", spawns)
	}
}

func TestSpawner_CarriesLeftover(t *testing.T) {
	s := NewSpawner(config.Default(), utils.NewPRNGService(1))
	if n := s.Advance(0.39); n != 0 {
		t.Errorf("Advance(0.39) = %d, want 0", n)
	}
	if n := s.Advance(0.02); n != 1 {
		t.Errorf("Advance(0.02) after 0.39 = %d, want 1", n)
	}
}
