package main

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"grid-snake/game/types"
)

// loadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func loadConfig(path string) (types.Config, error) {
	cfg := types.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// overrides holds command-line values that take precedence over the file.
type overrides struct {
	width  int
	height int
	cell   int
	period time.Duration
	seed   uint64
}

func (o *overrides) register(fs *flag.FlagSet) {
	fs.IntVar(&o.width, "width", types.DefaultWidth, "grid width in cells")
	fs.IntVar(&o.height, "height", types.DefaultHeight, "grid height in cells")
	fs.IntVar(&o.cell, "cell", types.DefaultCellSize, "cell size in pixels")
	fs.DurationVar(&o.period, "period", types.DefaultTickPeriod, "time between automatic moves")
	fs.Uint64Var(&o.seed, "seed", 0, "food placement seed, 0 seeds from the clock")
}

// apply copies the flags that were set explicitly on fs into cfg.
func (o *overrides) apply(fs *flag.FlagSet, cfg *types.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = o.width
		case "height":
			cfg.Height = o.height
		case "cell":
			cfg.CellSize = o.cell
		case "period":
			cfg.TickPeriod = o.period
		case "seed":
			cfg.Seed = o.seed
		}
	})
}
