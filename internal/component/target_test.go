package component

import "testing"

func TestNewTarget(t *testing.T) {
	tg := NewTarget(100, 200, 30, 0.2)
	if tg.Diameter != 0 || !tg.Growing {
		t.Errorf("new target: Diameter=%v Growing=%v, want 0 true", tg.Diameter, tg.Growing)
	}
	if tg.Expired() {
		t.Error("a target that was never updated must not be expired")
	}
}

func TestTarget_LifecycleKeepsDiameterInRange(t *testing.T) {
	tg := NewTarget(0, 0, 30, 0.2)
	flipped := false
	frames := 0
	for !tg.Expired() {
		wasGrowing := tg.Growing
		tg.Update()
		frames++
		if tg.Diameter < 0 || tg.Diameter > tg.MaxDiameter {
			t.Fatalf("frame %d: Diameter = %v, outside [0, %v]", frames, tg.Diameter, tg.MaxDiameter)
		}
		if wasGrowing && !tg.Growing {
			if flipped {
				t.Fatal("target switched to shrinking twice")
			}
			flipped = true
		}
		if !wasGrowing && tg.Growing {
			t.Fatalf("frame %d: target started growing again", frames)
		}
		if frames > 1000 {
			t.Fatal("target never expired")
		}
	}
	if !flipped {
		t.Error("target expired without ever shrinking")
	}
	// ~149 frames up and ~149 down at 0.2 per frame
	if frames < 280 || frames > 310 {
		t.Errorf("lifetime = %d frames, want about 300", frames)
	}
}

func TestTarget_UpdateStopsAtMax(t *testing.T) {
	tg := NewTarget(0, 0, 1, 0.4)
	tg.Update() // 0.4
	tg.Update() // 0.8
	if !tg.Growing {
		t.Fatal("should still be growing at 0.8")
	}
	tg.Update() // 0.8+0.4 >= 1 -> shrink to 0.4
	if tg.Growing {
		t.Error("should have switched to shrinking")
	}
	if tg.Diameter > 0.5 {
		t.Errorf("Diameter = %v, want about 0.4", tg.Diameter)
	}
}

func TestTarget_Contains(t *testing.T) {
	tg := NewTarget(100, 100, 30, 0.2)
	tg.Diameter = 10

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 100, 100, true},
		{"inside", 105, 105, true},
		{"on edge", 110, 100, true},
		{"on diagonal edge", 106, 108, true},
		{"just outside", 110.01, 100, false},
		{"far away", 300, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tg.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTarget_ZeroSizeContainsOnlyCentre(t *testing.T) {
	tg := NewTarget(50, 50, 30, 0.2)
	if !tg.Contains(50, 50) {
		t.Error("zero-size target should contain its exact centre")
	}
	if tg.Contains(50, 51) {
		t.Error("zero-size target should not contain a neighbouring pixel")
	}
}
