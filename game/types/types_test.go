package types

import (
	"strings"
	"testing"
	"time"
)

func TestCellToPixel(t *testing.T) {
	g := DefaultConfig().Grid()
	tests := []struct {
		cell Cell
		want Position
	}{
		{Cell{0, 0}, Position{0, 0}},
		{Cell{14, 14}, Position{280, 280}},
		{Cell{29, 29}, Position{580, 580}},
		{Cell{3, 7}, Position{60, 140}},
	}
	for _, tt := range tests {
		if got := g.CellToPixel(tt.cell); got != tt.want {
			t.Errorf("CellToPixel(%s) = %s, want %s", tt.cell, got, tt.want)
		}
		if back := g.PixelToCell(tt.want); back != tt.cell {
			t.Errorf("PixelToCell(%s) = %s, want %s", tt.want, back, tt.cell)
		}
	}
}

func TestIsWithinBounds(t *testing.T) {
	g := DefaultConfig().Grid()
	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{580, 580}, true},
		{Position{580, 0}, true},
		{Position{600, 280}, false},
		{Position{280, 600}, false},
		{Position{-20, 280}, false},
		{Position{280, -20}, false},
		{Position{-1, 0}, false},
	}
	for _, tt := range tests {
		if got := g.IsWithinBounds(tt.pos); got != tt.want {
			t.Errorf("IsWithinBounds(%s) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestShapeAt(t *testing.T) {
	g := DefaultConfig().Grid()
	s := g.ShapeAt(Position{280, 260})
	if s.Center.X != 290 || s.Center.Y != 270 || s.Radius != 10 {
		t.Errorf("ShapeAt = %+v, want center (290,270) radius 10", s)
	}
	if g.TotalCells() != 900 || g.PixelWidth() != 600 || g.PixelHeight() != 600 {
		t.Errorf("unexpected grid extents: %d cells, %dx%d px", g.TotalCells(), g.PixelWidth(), g.PixelHeight())
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Position
	}{
		{Up, Position{0, -20}},
		{Down, Position{0, 20}},
		{Left, Position{-20, 0}},
		{Right, Position{20, 0}},
	}
	for _, tt := range tests {
		if got := tt.dir.Delta(20); got != tt.want {
			t.Errorf("%s.Delta(20) = %s, want %s", tt.dir, got, tt.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	all := []Direction{Up, Right, Down, Left}
	for _, a := range all {
		for _, b := range all {
			want := (a == Up && b == Down) || (a == Down && b == Up) ||
				(a == Left && b == Right) || (a == Right && b == Left)
			if got := a.IsOpposite(b); got != want {
				t.Errorf("%s.IsOpposite(%s) = %v, want %v", a, b, got, want)
			}
		}
		if a.Opposite().Opposite() != a {
			t.Errorf("%s: double opposite is %s", a, a.Opposite().Opposite())
		}
	}
}

func TestInputDirection(t *testing.T) {
	if d, ok := InputLeft.Direction(); !ok || d != Left {
		t.Errorf("InputLeft.Direction() = %s, %v", d, ok)
	}
	if _, ok := InputRestart.Direction(); ok {
		t.Error("InputRestart should not map to a direction")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"cell size", func(c *Config) { c.CellSize = 0 }, "cell size"},
		{"tiny grid", func(c *Config) { c.Width = 1 }, "at least 2x2"},
		{"length", func(c *Config) { c.InitialLength = 0 }, "initial length"},
		{"period", func(c *Config) { c.TickPeriod = -time.Second }, "tick period"},
		{"head outside", func(c *Config) { c.HeadCell = Cell{30, 2} }, "outside"},
		{"body below grid", func(c *Config) { c.HeadCell = Cell{5, 28} }, "does not fit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
