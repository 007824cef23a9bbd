package entity

import (
	"grid-snake/game/types"
)

// Snake holds the ordered body, head first, and one collision shape per
// segment. body[i] and shapes[i] always describe the same segment.
type Snake struct {
	grid   types.Grid
	body   []types.Position
	shapes []types.Shape
	grown  bool
}

func NewSnake(grid types.Grid) *Snake {
	return &Snake{grid: grid}
}

// Reset lays out length segments vertically below head and clears the
// grown flag.
func (s *Snake) Reset(length int, head types.Cell) {
	s.body = s.body[:0]
	s.shapes = s.shapes[:0]
	for i := 0; i < length; i++ {
		p := s.grid.CellToPixel(types.Cell{Col: head.Col, Row: head.Row + i})
		s.body = append(s.body, p)
		s.shapes = append(s.shapes, s.grid.ShapeAt(p))
	}
	s.grown = false
}

// Place replaces the body with the given positions, head first.
func (s *Snake) Place(body []types.Position) {
	s.body = append(s.body[:0], body...)
	s.shapes = s.shapes[:0]
	for _, p := range body {
		s.shapes = append(s.shapes, s.grid.ShapeAt(p))
	}
	s.grown = false
}

// Advance moves the head one cell in dir and returns its new position.
// The tail is kept when the grown flag is set; the flag is consumed.
func (s *Snake) Advance(dir types.Direction) types.Position {
	delta := dir.Delta(s.grid.CellSize)
	head := s.Head()
	next := types.Position{X: head.X + delta.X, Y: head.Y + delta.Y}

	s.body = prepend(s.body, next)
	s.shapes = prepend(s.shapes, s.grid.ShapeAt(next))
	if !s.grown {
		s.body = s.body[:len(s.body)-1]
		s.shapes = s.shapes[:len(s.shapes)-1]
	}
	s.grown = false
	return next
}

// MarkGrown keeps the tail on the next Advance.
func (s *Snake) MarkGrown() {
	s.grown = true
}

func (s *Snake) Grown() bool {
	return s.grown
}

func (s *Snake) Head() types.Position {
	if len(s.body) == 0 {
		return types.Position{}
	}
	return s.body[0]
}

func (s *Snake) HeadShape() types.Shape {
	if len(s.shapes) == 0 {
		return types.Shape{}
	}
	return s.shapes[0]
}

// Body returns a copy of the segment positions.
func (s *Snake) Body() []types.Position {
	out := make([]types.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Shapes exposes the collision shapes; callers must not modify them.
func (s *Snake) Shapes() []types.Shape {
	return s.shapes
}

func (s *Snake) Len() int {
	return len(s.body)
}

func prepend[T any](xs []T, x T) []T {
	xs = append(xs, x)
	copy(xs[1:], xs[:len(xs)-1])
	xs[0] = x
	return xs
}
