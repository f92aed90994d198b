package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"slither/game/types"
)

// Input drains raylib's key queue once per frame.
type Input struct{}

func (in *Input) Poll() []types.Event {
	var events []types.Event
	if rl.WindowShouldClose() {
		events = append(events, types.QuitEvent)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if k := translateKey(key); k != types.KeyNone {
			events = append(events, types.Press(k))
		}
	}
	return events
}

func translateKey(key int32) types.Key {
	switch {
	case key >= rl.KeyZero && key <= rl.KeyNine:
		return types.DigitKey(int(key - rl.KeyZero))
	case key >= rl.KeyKp0 && key <= rl.KeyKp9:
		return types.DigitKey(int(key - rl.KeyKp0))
	}

	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.KeyUp
	case rl.KeyDown, rl.KeyS:
		return types.KeyDown
	case rl.KeyLeft, rl.KeyA:
		return types.KeyLeft
	case rl.KeyRight, rl.KeyD:
		return types.KeyRight
	case rl.KeyR:
		return types.KeyRestart
	case rl.KeyQ:
		return types.KeyQuit
	}
	return types.KeyNone
}
