// internal/state/input.go
package state

import (
	"bullseye-blitz/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var clickButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// pollInput samples the cursor and any button press edge for this tick.
func pollInput() app.Input {
	x, y := ebiten.CursorPosition()
	in := app.Input{CursorX: float64(x), CursorY: float64(y)}
	for _, b := range clickButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			in.Clicked = true
			break
		}
	}
	return in
}

// quitRequested reports a window close request. main enables
// ebiten.SetWindowClosingHandled so the close lands here.
func quitRequested() bool {
	return ebiten.IsWindowBeingClosed()
}

func anyKeyPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}
