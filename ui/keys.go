package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"grid-snake/game/types"
)

var windowKeys = map[int32]types.Input{
	rl.KeyUp:     types.InputUp,
	rl.KeyDown:   types.InputDown,
	rl.KeyLeft:   types.InputLeft,
	rl.KeyRight:  types.InputRight,
	rl.KeyEscape: types.InputRestart,
}

// WindowKey maps a raylib key code to a game input.
func WindowKey(key int32) (types.Input, bool) {
	in, ok := windowKeys[key]
	return in, ok
}

// WindowQuit reports whether key closes the window.
func WindowQuit(key int32) bool {
	return key == rl.KeyQ
}

// PollWindowKeys drains the raylib key queue in press order.
func PollWindowKeys() (inputs []types.Input, quit bool) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if WindowQuit(key) {
			quit = true
			continue
		}
		if in, ok := WindowKey(key); ok {
			inputs = append(inputs, in)
		}
	}
	return inputs, quit
}
