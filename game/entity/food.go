package entity

import "grid-snake/game/types"

// Food is the single apple on the field.
type Food struct {
	Position types.Position
	Shape    types.Shape
}

// MoveTo places the food at p and rebuilds its shape.
func (f *Food) MoveTo(grid types.Grid, p types.Position) {
	f.Position = p
	f.Shape = grid.ShapeAt(p)
}
