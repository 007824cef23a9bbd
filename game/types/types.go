package types

import (
	"time"

	"github.com/pkg/errors"
)

// Grid represents the game grid dimensions
type Grid struct {
	Width    int // cells
	Height   int // cells
	CellSize int // pixels per cell side
}

// Game constants, taken from the classic layout: 30x30 cells of 20px,
// a three segment snake whose head starts at (14,14).
const (
	DefaultCellSize      = 20
	DefaultWidth         = 30
	DefaultHeight        = 30
	DefaultInitialLength = 3
	DefaultHeadCol       = 14
	DefaultHeadRow       = 14
	DefaultTickPeriod    = 900 * time.Millisecond
)

// Config is supplied at construction and never re-derived.
type Config struct {
	CellSize      int           `yaml:"cell_size"`
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	InitialLength int           `yaml:"initial_length"`
	HeadCell      Cell          `yaml:"head_cell"`
	TickPeriod    time.Duration `yaml:"tick_period"`
	// Seed for food placement; 0 seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		CellSize:      DefaultCellSize,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		InitialLength: DefaultInitialLength,
		HeadCell:      Cell{Col: DefaultHeadCol, Row: DefaultHeadRow},
		TickPeriod:    DefaultTickPeriod,
	}
}

// Grid returns the geometry described by the config.
func (c Config) Grid() Grid {
	return Grid{Width: c.Width, Height: c.Height, CellSize: c.CellSize}
}

// Validate reports the first setting that cannot produce a playable round.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Width < 2 || c.Height < 2:
		return errors.Errorf("grid must be at least 2x2 cells, got %dx%d", c.Width, c.Height)
	case c.InitialLength < 1:
		return errors.Errorf("initial length must be at least 1, got %d", c.InitialLength)
	case c.TickPeriod <= 0:
		return errors.Errorf("tick period must be positive, got %s", c.TickPeriod)
	}
	g := c.Grid()
	if !g.ContainsCell(c.HeadCell) {
		return errors.Errorf("head cell %s is outside the %dx%d grid", c.HeadCell, c.Width, c.Height)
	}
	if c.HeadCell.Row+c.InitialLength-1 >= c.Height {
		return errors.Errorf("initial body of %d segments below %s does not fit the grid",
			c.InitialLength, c.HeadCell)
	}
	return nil
}
