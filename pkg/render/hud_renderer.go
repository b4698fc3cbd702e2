// pkg/render/hud_renderer.go
package render

import (
	"image/color"

	"bullseye-blitz/internal/app"
	"bullseye-blitz/internal/config"
	"bullseye-blitz/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUDRenderer draws the header bar and the end screen.
type HUDRenderer struct {
	cfg      *config.Config
	fontFace font.Face
	ascent   int
}

func NewHUDRenderer(cfg *config.Config, face font.Face) *HUDRenderer {
	return &HUDRenderer{
		cfg:      cfg,
		fontFace: face,
		ascent:   face.Metrics().Ascent.Ceil(),
	}
}

// Measure returns the advance width of s in the HUD face.
func (r *HUDRenderer) Measure(s string) int {
	return font.MeasureString(r.fontFace, s).Ceil()
}

// DrawHeader fills the header bar and draws the running stats on it.
func (r *HUDRenderer) DrawHeader(screen *ebiten.Image, stats app.Stats) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.cfg.ScreenWidth), float32(r.cfg.HeaderHeight), r.cfg.HUD.HeaderColor, false)
	r.drawLabels(screen, ui.HeaderLabels(r.cfg, stats), r.cfg.HUD.HeaderTextColor)
}

// DrawEndScreen clears the screen and draws the final stats centred.
func (r *HUDRenderer) DrawEndScreen(screen *ebiten.Image, stats app.Stats) {
	screen.Fill(r.cfg.BackgroundColor)
	r.drawLabels(screen, ui.EndScreenLabels(r.cfg, stats, r.Measure), r.cfg.HUD.EndTextColor)
}

// text.Draw positions by baseline; labels are positioned by their top edge.
func (r *HUDRenderer) drawLabels(screen *ebiten.Image, labels []ui.Label, clr color.Color) {
	for _, l := range labels {
		text.Draw(screen, l.Text, r.fontFace, l.X, l.Y+r.ascent, clr)
	}
}
