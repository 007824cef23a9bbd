package manager

import (
	"time"

	"github.com/google/uuid"

	"grid-snake/game/types"
)

// RoundStats summarizes one finished round. Kept in memory only.
type RoundStats struct {
	Round     string
	Cause     types.EndCause
	Collision types.CollisionKind
	Length    int
	Score     int
	Ticks     uint64
	Duration  time.Duration
}

// StateManager owns the phase machine and the session counters.
type StateManager struct {
	phase     types.Phase
	cause     types.EndCause
	collision types.CollisionKind
	round     string
	startTime time.Time
	score     int
	best      int
	rounds    int
	now       func() time.Time
}

func NewStateManager() *StateManager {
	return &StateManager{
		phase: types.GameOver,
		now:   time.Now,
	}
}

// Begin starts a new round in the Playing phase and returns its id.
func (sm *StateManager) Begin() string {
	sm.phase = types.Playing
	sm.cause = types.NoCause
	sm.collision = types.NoCollision
	sm.round = uuid.NewString()
	sm.startTime = sm.now()
	sm.score = 0
	sm.rounds++
	return sm.round
}

// End moves to GameOver. It is a no-op outside Playing, so a round has
// exactly one cause.
func (sm *StateManager) End(cause types.EndCause, kind types.CollisionKind, length int, ticks uint64) (RoundStats, bool) {
	if sm.phase != types.Playing {
		return RoundStats{}, false
	}
	sm.phase = types.GameOver
	sm.cause = cause
	sm.collision = kind
	sm.UpdateBest(length)
	return RoundStats{
		Round:     sm.round,
		Cause:     cause,
		Collision: kind,
		Length:    length,
		Score:     sm.score,
		Ticks:     ticks,
		Duration:  sm.now().Sub(sm.startTime),
	}, true
}

func (sm *StateManager) AddScore() {
	sm.score++
}

func (sm *StateManager) UpdateBest(length int) {
	if length > sm.best {
		sm.best = length
	}
}

func (sm *StateManager) Phase() types.Phase {
	return sm.phase
}

func (sm *StateManager) Playing() bool {
	return sm.phase == types.Playing
}

func (sm *StateManager) Cause() types.EndCause {
	return sm.cause
}

func (sm *StateManager) Collision() types.CollisionKind {
	return sm.collision
}

func (sm *StateManager) Round() string {
	return sm.round
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) Best() int {
	return sm.best
}

func (sm *StateManager) Rounds() int {
	return sm.rounds
}
