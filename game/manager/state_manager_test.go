package manager

import (
	"testing"
	"time"

	"grid-snake/game/types"
)

func TestStateManagerRounds(t *testing.T) {
	sm := NewStateManager()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return now }

	first := sm.Begin()
	if !sm.Playing() || sm.Cause() != types.NoCause {
		t.Fatalf("Begin left phase %s cause %s", sm.Phase(), sm.Cause())
	}
	sm.AddScore()
	sm.AddScore()
	now = now.Add(3 * time.Second)

	stats, ok := sm.End(types.CollisionCause, types.WallCollision, 5, 12)
	if !ok {
		t.Fatal("End rejected while playing")
	}
	if stats.Round != first || stats.Score != 2 || stats.Length != 5 || stats.Ticks != 12 || stats.Duration != 3*time.Second {
		t.Errorf("unexpected stats %+v", stats)
	}
	if sm.Phase() != types.GameOver || sm.Collision() != types.WallCollision {
		t.Errorf("phase %s collision %s after End", sm.Phase(), sm.Collision())
	}

	if _, ok := sm.End(types.WinCause, types.NoCollision, 9, 13); ok {
		t.Error("second End accepted")
	}
	if sm.Cause() != types.CollisionCause {
		t.Errorf("cause overwritten with %s", sm.Cause())
	}

	second := sm.Begin()
	if second == first {
		t.Error("rounds share an id")
	}
	if sm.Score() != 0 || sm.Best() != 5 || sm.Rounds() != 2 {
		t.Errorf("score %d best %d rounds %d after restart", sm.Score(), sm.Best(), sm.Rounds())
	}
}
