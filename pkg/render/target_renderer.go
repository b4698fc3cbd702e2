// pkg/render/target_renderer.go
package render

import (
	"bullseye-blitz/internal/component"
	"bullseye-blitz/internal/config"
	"bullseye-blitz/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TargetRenderer draws targets as archery bullseyes.
type TargetRenderer struct {
	cfg *config.Config
}

func NewTargetRenderer(cfg *config.Config) *TargetRenderer {
	return &TargetRenderer{cfg: cfg}
}

// Draw renders every target onto screen without touching target state.
func (r *TargetRenderer) Draw(screen *ebiten.Image, targets []*component.Target) {
	for _, t := range targets {
		if t.Diameter <= 0 {
			continue
		}
		for _, ring := range ui.Bullseye(r.cfg, t) {
			vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), ring.Radius, ring.Color, true)
		}
	}
}
