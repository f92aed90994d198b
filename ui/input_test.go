package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"slither/game"
	"slither/game/types"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  int32
		want types.Key
	}{
		{rl.KeyUp, types.KeyUp},
		{rl.KeyW, types.KeyUp},
		{rl.KeyDown, types.KeyDown},
		{rl.KeyS, types.KeyDown},
		{rl.KeyLeft, types.KeyLeft},
		{rl.KeyA, types.KeyLeft},
		{rl.KeyRight, types.KeyRight},
		{rl.KeyD, types.KeyRight},
		{rl.KeyR, types.KeyRestart},
		{rl.KeyQ, types.KeyQuit},
		{rl.KeyOne, types.DigitKey(1)},
		{rl.KeyFive, types.DigitKey(5)},
		{rl.KeyKp3, types.DigitKey(3)},
		{rl.KeySpace, types.KeyNone},
		{rl.KeyEnter, types.KeyNone},
	}
	for _, tt := range tests {
		if got := translateKey(tt.key); got != tt.want {
			t.Errorf("translateKey(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestWindowSize(t *testing.T) {
	v, _ := types.LookupVariant("classic")
	w, h := WindowSize(v)
	if w != 800 || h != 18*32+hudHeight {
		t.Errorf("WindowSize = %dx%d", w, h)
	}
}

func TestClockSetsTargetOnlyOnChange(t *testing.T) {
	var targets []int32
	c := newClock(game.MenuFPS, func(fps int32) { targets = append(targets, fps) })
	if len(targets) != 1 || targets[0] != game.MenuFPS {
		t.Fatalf("targets after newClock = %v, want [%d]", targets, game.MenuFPS)
	}

	c.Tick(game.MenuFPS)
	c.Tick(10)
	c.Tick(10)
	if len(targets) != 2 || targets[1] != 10 {
		t.Errorf("targets = %v, want [%d 10]", targets, game.MenuFPS)
	}
}
