package manager

import (
	"time"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// relocateAttemptsPerCell bounds rejection sampling before falling back to a
// linear scan for the first free cell.
const relocateAttemptsPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager creates a food manager drawing cells from a PCG generator.
// A zero seed is replaced by the current time.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// MaxRelocateAttempts is the number of random samples tried before the scan.
func (fm *FoodManager) MaxRelocateAttempts() int {
	return relocateAttemptsPerCell * fm.grid.TotalCells()
}

// Relocate moves food to a uniformly random cell whose shape does not overlap
// any body shape. It returns false, leaving food untouched, only when every
// cell is occupied.
func (fm *FoodManager) Relocate(food *entity.Food, body []types.Shape) bool {
	for i := 0; i < fm.MaxRelocateAttempts(); i++ {
		p := fm.grid.CellToPixel(types.Cell{
			Col: fm.rng.Intn(fm.grid.Width),
			Row: fm.rng.Intn(fm.grid.Height),
		})
		if fm.free(p, body) {
			food.MoveTo(fm.grid, p)
			return true
		}
	}

	glog.V(1).Infof("food: %d samples missed, scanning for a free cell", fm.MaxRelocateAttempts())
	for row := 0; row < fm.grid.Height; row++ {
		for col := 0; col < fm.grid.Width; col++ {
			p := fm.grid.CellToPixel(types.Cell{Col: col, Row: row})
			if fm.free(p, body) {
				food.MoveTo(fm.grid, p)
				return true
			}
		}
	}
	glog.Warningf("food: no free cell left on a %dx%d grid", fm.grid.Width, fm.grid.Height)
	return false
}

func (fm *FoodManager) free(p types.Position, body []types.Shape) bool {
	return !fm.collisionMgr.OverlapsAny(fm.grid.ShapeAt(p), body)
}
