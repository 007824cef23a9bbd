package term

import (
	"github.com/gdamore/tcell/v2"

	"grid-snake/game/types"
)

var keys = map[tcell.Key]types.Input{
	tcell.KeyUp:     types.InputUp,
	tcell.KeyDown:   types.InputDown,
	tcell.KeyLeft:   types.InputLeft,
	tcell.KeyRight:  types.InputRight,
	tcell.KeyEscape: types.InputRestart,
}

// KeyInput maps a tcell key event to a game input. Besides the arrows and
// Escape, r restarts a finished round.
func KeyInput(ev *tcell.EventKey) (types.Input, bool) {
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'r', 'R':
			return types.InputRestart, true
		}
		return 0, false
	}
	in, ok := keys[ev.Key()]
	return in, ok
}

// IsQuit reports whether ev ends the terminal session.
func IsQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}
