package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// ShapesOverlap reports whether two circles intersect. Circles that only
// touch (edge-adjacent cells) do not overlap.
func (cm *CollisionManager) ShapesOverlap(a, b types.Shape) bool {
	return a.Center.Minus(b.Center).Length() < a.Radius+b.Radius
}

// WallCollision checks if a head position left the field
func (cm *CollisionManager) WallCollision(head types.Position) bool {
	return !cm.grid.IsWithinBounds(head)
}

// SelfCollision checks the head against every segment from index 2 on.
// Index 1 always touches the head under forward motion and is skipped.
func (cm *CollisionManager) SelfCollision(shapes []types.Shape) bool {
	if len(shapes) < 3 {
		return false
	}
	head := shapes[0]
	for _, s := range shapes[2:] {
		if cm.ShapesOverlap(head, s) {
			return true
		}
	}
	return false
}

// FoodCollision checks if the head touches the food
func (cm *CollisionManager) FoodCollision(head, food types.Shape) bool {
	return cm.ShapesOverlap(head, food)
}

// OverlapsAny reports whether s overlaps any of shapes, head included.
func (cm *CollisionManager) OverlapsAny(s types.Shape, shapes []types.Shape) bool {
	for _, o := range shapes {
		if cm.ShapesOverlap(s, o) {
			return true
		}
	}
	return false
}

// Check evaluates the fatal collisions for the snake's current head:
// walls first, then its own body.
func (cm *CollisionManager) Check(snake *entity.Snake) types.CollisionKind {
	if cm.WallCollision(snake.Head()) {
		return types.WallCollision
	}
	if cm.SelfCollision(snake.Shapes()) {
		return types.SelfCollision
	}
	return types.NoCollision
}
