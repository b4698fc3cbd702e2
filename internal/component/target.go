// internal/component/target.go
package component

import "bullseye-blitz/internal/utils"

// Target is an expanding-then-contracting circular hit zone.
//
// Diameter is used as the radius for both hit testing and drawing; the name
// is kept because it is what the player sees grow and shrink.
type Target struct {
	X, Y          float64
	Diameter      float64
	Growing       bool
	MaxDiameter   float64
	ExpansionRate float64
	updated       bool
}

// NewTarget creates a growing target of zero size at (x, y).
func NewTarget(x, y, maxDiameter, expansionRate float64) *Target {
	return &Target{
		X:             x,
		Y:             y,
		Growing:       true,
		MaxDiameter:   maxDiameter,
		ExpansionRate: expansionRate,
	}
}

// Update advances the diameter by one frame.
func (t *Target) Update() {
	if t.Diameter+t.ExpansionRate >= t.MaxDiameter {
		t.Growing = false
	}
	if t.Growing {
		t.Diameter += t.ExpansionRate
	} else {
		t.Diameter -= t.ExpansionRate
	}
	t.Diameter = utils.Clamp(t.Diameter, 0, t.MaxDiameter)
	t.updated = true
}

// Expired reports whether the target has shrunk back to nothing.
func (t *Target) Expired() bool {
	return t.updated && t.Diameter <= 0
}

// Contains reports whether (x, y) lies within the target. Points on the edge count.
func (t *Target) Contains(x, y float64) bool {
	return utils.Distance(x, y, t.X, t.Y) <= t.Diameter
}
