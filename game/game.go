package game

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"grid-snake/game/clock"
	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// Renderer is the Render Port. DrawFrame is called synchronously after every
// state change with a snapshot the renderer may keep.
type Renderer interface {
	DrawFrame(s types.Snapshot)
}

type tickerState int

const (
	tickerIdle tickerState = iota
	tickerRunning
)

// Game is the single mutable game state. It is not safe for concurrent use:
// the frontend drives Tick (through the scheduler) and HandleInput from one
// goroutine.
type Game struct {
	cfg  types.Config
	grid types.Grid

	snake *entity.Snake
	food  entity.Food

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	renderer  Renderer
	scheduler clock.Scheduler
	ticker    clock.Handle
	tickState tickerState

	direction     types.Direction
	prevDirection types.Direction // used by the last Advance
	ticks         uint64

	events *EventBus
}

// NewGame validates cfg and sets up the first round in the Playing phase.
// Nothing ticks until Start.
func NewGame(cfg types.Config, renderer Renderer, scheduler clock.Scheduler) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game config")
	}
	if renderer == nil {
		return nil, errors.New("game needs a renderer")
	}
	if scheduler == nil {
		return nil, errors.New("game needs a scheduler")
	}

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		cfg:          cfg,
		grid:         grid,
		snake:        entity.NewSnake(grid),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, cfg.Seed),
		stateMgr:     manager.NewStateManager(),
		renderer:     renderer,
		scheduler:    scheduler,
		events:       NewEventBus(),
	}
	g.newRound()
	return g, nil
}

// Start begins periodic ticking and draws the first frame.
func (g *Game) Start() {
	if g.stateMgr.Playing() {
		g.startTicker()
	}
	g.render()
}

// Stop cancels periodic ticking without touching the round.
func (g *Game) Stop() {
	g.stopTicker()
}

// Tick advances the simulation by one cell.
func (g *Game) Tick() {
	if !g.stateMgr.Playing() {
		glog.V(2).Info("tick ignored: round is over")
		return
	}

	g.ticks++
	head := g.snake.Advance(g.direction)
	g.prevDirection = g.direction
	glog.V(2).Infof("tick %d: head %s heading %s, length %d", g.ticks, head, g.direction, g.snake.Len())

	if kind := g.collisionMgr.Check(g.snake); kind != types.NoCollision {
		g.endRound(types.CollisionCause, kind)
		return
	}

	if g.collisionMgr.FoodCollision(g.snake.HeadShape(), g.food.Shape) {
		g.snake.MarkGrown()
		g.stateMgr.AddScore()
		g.relocateFood()
		glog.V(1).Infof("food eaten at %s, next food at %s", head, g.food.Position)
		g.events.Emit(Event{Type: EventFoodEaten, Round: g.stateMgr.Round(), Food: g.food.Position})
	}

	if g.snake.Len() >= g.grid.TotalCells()-1 {
		g.endRound(types.WinCause, types.NoCollision)
		return
	}

	g.stateMgr.UpdateBest(g.snake.Len())
	g.render()
}

// HandleInput is the Input Port. It returns whether the input was accepted.
func (g *Game) HandleInput(in types.Input) bool {
	if in == types.InputRestart {
		return g.Restart()
	}
	dir, ok := in.Direction()
	if !ok {
		return false
	}
	return g.ChangeDirection(dir)
}

// ChangeDirection accepts dir unless the round is over or dir reverses the
// previous tick's heading. An accepted change ticks immediately and restarts
// the periodic schedule from zero.
func (g *Game) ChangeDirection(dir types.Direction) bool {
	if !g.stateMgr.Playing() {
		glog.V(1).Infof("direction %s rejected: round is over", dir)
		return false
	}
	if dir.IsOpposite(g.prevDirection) {
		glog.V(1).Infof("direction %s rejected: reverses %s", dir, g.prevDirection)
		return false
	}

	g.stopTicker()
	g.direction = dir
	g.Tick()
	if g.stateMgr.Playing() {
		g.startTicker()
	}
	return true
}

// Restart begins a new round. Only accepted once the current round is over.
func (g *Game) Restart() bool {
	if g.stateMgr.Playing() {
		glog.V(1).Info("restart rejected: round in progress")
		return false
	}
	g.newRound()
	g.startTicker()
	g.render()
	return true
}

// Snapshot returns an immutable copy of the current state.
func (g *Game) Snapshot() types.Snapshot {
	return types.Snapshot{
		Grid:      g.grid,
		Body:      g.snake.Body(),
		Food:      g.food.Position,
		Phase:     g.stateMgr.Phase(),
		Cause:     g.stateMgr.Cause(),
		Direction: g.direction,
		Tick:      g.ticks,
		Score:     g.stateMgr.Score(),
		Best:      g.stateMgr.Best(),
		Round:     g.stateMgr.Round(),
	}
}

// Events exposes the bus round and food events are published on.
func (g *Game) Events() *EventBus {
	return g.events
}

func (g *Game) Phase() types.Phase {
	return g.stateMgr.Phase()
}

func (g *Game) Config() types.Config {
	return g.cfg
}

// Ticking reports whether periodic ticks are scheduled.
func (g *Game) Ticking() bool {
	return g.tickState == tickerRunning
}

func (g *Game) newRound() {
	g.snake.Reset(g.cfg.InitialLength, g.cfg.HeadCell)
	g.direction = types.Up
	g.prevDirection = types.Up
	g.ticks = 0
	round := g.stateMgr.Begin()
	g.relocateFood()
	g.stateMgr.UpdateBest(g.snake.Len())
	glog.Infof("round %s started: head %s, food %s", round, g.snake.Head(), g.food.Position)
	g.events.Emit(Event{Type: EventRoundStarted, Round: round, Food: g.food.Position})
}

func (g *Game) endRound(cause types.EndCause, kind types.CollisionKind) {
	stats, ok := g.stateMgr.End(cause, kind, g.snake.Len(), g.ticks)
	if !ok {
		return
	}
	g.stopTicker()
	if cause == types.WinCause {
		glog.Info("win")
	}
	glog.Infof("round %s over: %s (%s), length %d, score %d after %d ticks",
		stats.Round, cause, kind, stats.Length, stats.Score, stats.Ticks)
	g.events.Emit(Event{Type: EventRoundOver, Round: stats.Round, Stats: stats})
	g.render()
}

// relocateFood moves the food off the body. On a full grid the food keeps its
// position.
func (g *Game) relocateFood() bool {
	if g.foodMgr.Relocate(&g.food, g.snake.Shapes()) {
		return true
	}
	glog.Warningf("round %s: no free cell for food, left at %s", g.stateMgr.Round(), g.food.Position)
	return false
}

func (g *Game) startTicker() {
	if g.tickState == tickerRunning {
		return
	}
	g.ticker = g.scheduler.Every(g.cfg.TickPeriod, g.Tick)
	g.tickState = tickerRunning
}

func (g *Game) stopTicker() {
	if g.tickState != tickerRunning {
		return
	}
	g.ticker.Cancel()
	g.ticker = nil
	g.tickState = tickerIdle
}

func (g *Game) render() {
	g.renderer.DrawFrame(g.Snapshot())
}
