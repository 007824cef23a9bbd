package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"grid-snake/game/types"
)

func TestKeyInput(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want types.Input
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.InputUp, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), types.InputDown, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.InputLeft, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.InputRight, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), types.InputRestart, true},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), types.InputRestart, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, tc := range cases {
		got, ok := KeyInput(tc.ev)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("KeyInput(%s) = %s, %v; want %s, %v", tc.ev.Name(), got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsQuit(t *testing.T) {
	if !IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q does not quit")
	}
	if !IsQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("ctrl-c does not quit")
	}
	if IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape quits instead of restarting")
	}
}
