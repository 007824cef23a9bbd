package types

import (
	"fmt"

	"github.com/joonazan/vec2"
)

// Cell addresses one grid square, 0-indexed.
type Cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Position is the top-left pixel of a cell-sized footprint.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)px", p.X, p.Y)
}

// Shape is the circle inscribed in a segment's square footprint.
type Shape struct {
	Center vec2.Vector
	Radius float64
}

// CellToPixel converts a cell to the pixel position of its top-left corner.
func (g Grid) CellToPixel(c Cell) Position {
	return Position{X: c.Col * g.CellSize, Y: c.Row * g.CellSize}
}

// PixelToCell is the inverse of CellToPixel for aligned positions.
func (g Grid) PixelToCell(p Position) Cell {
	return Cell{Col: floorDiv(p.X, g.CellSize), Row: floorDiv(p.Y, g.CellSize)}
}

// IsWithinBounds reports whether a head at p keeps its top-left corner
// inside the field.
func (g Grid) IsWithinBounds(p Position) bool {
	maxX := (g.Width - 1) * g.CellSize
	maxY := (g.Height - 1) * g.CellSize
	return p.X >= 0 && p.X <= maxX && p.Y >= 0 && p.Y <= maxY
}

func (g Grid) ContainsCell(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// ShapeAt builds the collision shape of a segment whose footprint starts at p.
func (g Grid) ShapeAt(p Position) Shape {
	half := float64(g.CellSize) / 2
	return Shape{
		Center: vec2.Vector{X: float64(p.X) + half, Y: float64(p.Y) + half},
		Radius: half,
	}
}

func (g Grid) TotalCells() int {
	return g.Width * g.Height
}

func (g Grid) PixelWidth() int {
	return g.Width * g.CellSize
}

func (g Grid) PixelHeight() int {
	return g.Height * g.CellSize
}

func floorDiv(a, b int) int {
	q := a / b
	if r := a % b; r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}
