package types

import "math"

// Direction represents a cardinal heading
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Angle returns the heading in radians. Screen y grows downwards, so Up is -π/2.
func (d Direction) Angle() float64 {
	switch d {
	case Right:
		return 0
	case Down:
		return math.Pi / 2
	case Left:
		return math.Pi
	default:
		return -math.Pi / 2
	}
}

// Opposite returns the direction 180 degrees away.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// IsOpposite reports whether d would reverse a snake moving in prev.
func (d Direction) IsOpposite(prev Direction) bool {
	return d == prev.Opposite()
}

// Delta rotates a step of size pixels by the heading and rounds each
// component to the nearest pixel.
func (d Direction) Delta(size int) Position {
	a := d.Angle()
	return Position{
		X: int(math.Round(float64(size) * math.Cos(a))),
		Y: int(math.Round(float64(size) * math.Sin(a))),
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}
