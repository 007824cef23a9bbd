package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"grid-snake/game"
	"grid-snake/game/clock"
	"grid-snake/game/types"
	"grid-snake/ui/term"
)

// terminalFrame is how often the scheduler is polled.
const terminalFrame = 20 * time.Millisecond

func runTerminal(ctx context.Context, cfg types.Config, sess *session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal screen")
	}
	defer screen.Fini()

	w, h := screen.Size()
	if w < cfg.Width+2 || h < cfg.Height+3 {
		glog.Warningf("terminal is %dx%d, the %dx%d grid will be clipped", w, h, cfg.Width, cfg.Height)
	}
	_, err = playTerminal(ctx, screen, cfg, sess)
	return err
}

// playTerminal runs the game on screen until the player quits or ctx is
// cancelled, and returns the final state.
func playTerminal(ctx context.Context, screen tcell.Screen, cfg types.Config, sess *session) (types.Snapshot, error) {
	renderer := term.NewRenderer(screen, cfg.Grid())
	sched := clock.NewPollScheduler()
	g, err := game.NewGame(cfg, renderer, sched)
	if err != nil {
		return types.Snapshot{}, errors.Wrap(err, "start terminal game")
	}
	sess.watch(g)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	frame := time.NewTicker(terminalFrame)
	defer frame.Stop()

	g.Start()
	defer g.Stop()
	for {
		select {
		case <-ctx.Done():
			return g.Snapshot(), nil
		case ev, ok := <-events:
			if !ok {
				return g.Snapshot(), nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if term.IsQuit(ev) {
					return g.Snapshot(), nil
				}
				if in, ok := term.KeyInput(ev); ok {
					g.HandleInput(in)
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.DrawFrame(g.Snapshot())
			}
		case now := <-frame.C:
			sched.Poll(now)
		}
	}
}
