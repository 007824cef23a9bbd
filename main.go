package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
)

func main() {
	configPath := flag.String("config", "", "YAML file with game settings")
	frontend := flag.String("frontend", frontendWindow, "window or terminal")
	assetDir := flag.String("assets", "data", "directory holding the sprite images")
	var opts overrides
	opts.register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		glog.Exitf("%v", err)
	}
	opts.apply(flag.CommandLine, &cfg)
	if err := cfg.Validate(); err != nil {
		glog.Exitf("invalid settings: %v", err)
	}
	glog.V(1).Infof("settings: %+v", cfg)

	var sess session
	switch *frontend {
	case frontendWindow:
		err = runWindow(cfg, *assetDir, &sess)
	case frontendTerminal:
		err = runTerminal(context.Background(), cfg, &sess)
	default:
		glog.Exitf("unknown frontend %q, want %s or %s", *frontend, frontendWindow, frontendTerminal)
	}
	if err != nil {
		glog.Exitf("%v", err)
	}
	glog.Infof("session over: %d rounds, %d won, best length %d", sess.rounds, sess.wins, sess.best)
}

// session tallies finished rounds for the exit summary.
type session struct {
	rounds int
	wins   int
	best   int
}

func (s *session) watch(g *game.Game) {
	g.Events().Subscribe(game.EventRoundOver, func(e game.Event) {
		s.record(e.Stats)
	})
}

func (s *session) record(stats manager.RoundStats) {
	s.rounds++
	if stats.Cause == types.WinCause {
		s.wins++
	}
	if stats.Length > s.best {
		s.best = stats.Length
	}
}
