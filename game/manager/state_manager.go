package manager

import (
	"slither/game/types"
)

// StateManager tracks the score and frame rate of one round.
type StateManager struct {
	score      int
	fps        int
	everyScore int
	step       int
}

func NewStateManager(v types.Variant, fps int) *StateManager {
	return &StateManager{
		fps:        fps,
		everyScore: v.SpeedUpEvery,
		step:       v.SpeedUpStep,
	}
}

// AddPoint records one eaten food and applies the speed-up policy.
// It reports whether the frame rate changed.
func (sm *StateManager) AddPoint() bool {
	sm.score++
	if sm.everyScore > 0 && sm.score%sm.everyScore == 0 {
		sm.fps += sm.step
		return true
	}
	return false
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetFPS() int {
	return sm.fps
}
