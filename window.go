package main

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"grid-snake/game"
	"grid-snake/game/clock"
	"grid-snake/game/types"
	"grid-snake/ui"
)

const windowFPS = 60

func runWindow(cfg types.Config, assetDir string, sess *session) error {
	grid := cfg.Grid()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.PixelWidth()), int32(grid.PixelHeight()), ui.WindowTitle)
	defer rl.CloseWindow()
	// Escape restarts a round, so it must not close the window.
	rl.SetExitKey(0)
	rl.SetTargetFPS(windowFPS)

	renderer := ui.NewWindowRenderer(grid, assetDir)
	defer renderer.Unload()

	sched := clock.NewPollScheduler()
	g, err := game.NewGame(cfg, renderer, sched)
	if err != nil {
		return errors.Wrap(err, "start window game")
	}
	sess.watch(g)
	g.Start()
	defer g.Stop()

	for !rl.WindowShouldClose() {
		inputs, quit := ui.PollWindowKeys()
		if quit {
			break
		}
		for _, in := range inputs {
			g.HandleInput(in)
		}
		sched.Poll(time.Now())
		renderer.Present()
	}
	return nil
}
