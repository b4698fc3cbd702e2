// internal/ui/bullseye.go
package ui

import (
	"image/color"

	"bullseye-blitz/internal/component"
	"bullseye-blitz/internal/config"
)

var ringScales = [...]float64{1.0, 0.8, 0.6, 0.4}

// Ring is one filled circle of a drawn target.
type Ring struct {
	Radius float32
	Color  color.RGBA
}

// Bullseye returns the rings for t, outermost first, alternating the primary
// and secondary colours.
func Bullseye(cfg *config.Config, t *component.Target) [len(ringScales)]Ring {
	var rings [len(ringScales)]Ring
	for i, scale := range ringScales {
		c := cfg.Target.PrimaryColor
		if i%2 == 1 {
			c = cfg.Target.SecondaryColor
		}
		rings[i] = Ring{Radius: float32(t.Diameter * scale), Color: c}
	}
	return rings
}
