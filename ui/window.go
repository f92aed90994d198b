package ui

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"slither/game"
	"slither/game/types"
)

// ErrWindow is returned when raylib could not create the window.
var ErrWindow = errors.New("window initialization failed")

// Clock throttles the loop through raylib's target FPS. The wait itself
// happens in EndDrawing, so a new rate applies from the next frame on.
type Clock struct {
	fps       int
	setTarget func(int32)
}

// NewClock sets the target to fps right away so the first EndDrawing is
// already throttled.
func NewClock(fps int) *Clock {
	return newClock(fps, rl.SetTargetFPS)
}

func newClock(fps int, setTarget func(int32)) *Clock {
	c := &Clock{setTarget: setTarget}
	c.Tick(fps)
	return c
}

func (c *Clock) Tick(fps int) {
	if fps != c.fps {
		c.setTarget(int32(fps))
		c.fps = fps
	}
}

// Window is the raylib frontend: it renders, polls keys and keeps time.
type Window struct {
	*Renderer
	*Input
	*Clock
	assets *Assets
}

// Open creates the window sized for v and loads assets from assetDir.
// Close must be called once the session ends.
func Open(v types.Variant, assetDir string) (*Window, error) {
	width, height := WindowSize(v)
	rl.InitWindow(width, height, v.Title)
	if !rl.IsWindowReady() {
		return nil, ErrWindow
	}

	assets, err := LoadAssets(assetDir, width, height-hudHeight, int32(v.CellSize))
	if err != nil {
		rl.CloseWindow()
		return nil, err
	}

	return &Window{
		Renderer: NewRenderer(v, assets),
		Input:    &Input{},
		Clock:    NewClock(game.MenuFPS),
		assets:   assets,
	}, nil
}

// Close releases textures, fonts and the window.
func (w *Window) Close() {
	w.assets.Unload()
	rl.CloseWindow()
}
