package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"slither/game"
	"slither/game/types"
)

const (
	hudHeight   = 40 // score bar under the board
	textSpacing = 1
)

var (
	backgroundColor = rl.Color{R: 230, G: 240, B: 255, A: 255}
	snakeHeadColor  = rl.Color{R: 50, G: 150, B: 50, A: 255}
	snakeBodyColor  = rl.Color{R: 80, G: 200, B: 80, A: 255}
	appleColor      = rl.Color{R: 220, G: 40, B: 40, A: 255}
	shadowColor     = rl.Color{R: 150, G: 150, B: 150, A: 60}
	hudColor        = rl.Color{R: 255, G: 200, B: 200, A: 255}
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	boardWidth   int32
	boardHeight  int32
	assets       *Assets
}

func NewRenderer(v types.Variant, assets *Assets) *Renderer {
	r := &Renderer{
		cellSize: int32(v.CellSize),
		assets:   assets,
	}
	r.boardWidth = r.cellSize * int32(v.Grid.Width)
	r.boardHeight = r.cellSize * int32(v.Grid.Height)
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Present draws f. With a target FPS set, EndDrawing also waits out the
// rest of the frame budget.
func (r *Renderer) Present(f game.Frame) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()

	switch f.Phase {
	case game.ChoosingSpeed:
		r.drawMenu(f)
	case game.Playing:
		r.drawBoard(f)
	case game.GameOver:
		r.drawGameOver(f)
	}
}

func (r *Renderer) drawMenu(f game.Frame) {
	rl.ClearBackground(rl.Black)

	title := strings.ToUpper(f.Variant.Name)
	r.drawCentered(title, r.screenHeight/3, 64, snakeHeadColor)

	choices := make([]string, 0, len(f.Variant.Presets))
	for _, k := range f.Variant.PresetKeys() {
		choices = append(choices, fmt.Sprintf("[%d] %d fps", k, f.Variant.Presets[k]))
	}
	r.drawCentered("Choose Speed: "+strings.Join(choices, "  "), r.screenHeight/2, 24, rl.White)
}

func (r *Renderer) drawBoard(f game.Frame) {
	if r.assets.HasTextures() {
		rl.DrawTexture(r.assets.Background, 0, 0, rl.White)
	} else {
		rl.ClearBackground(backgroundColor)
	}

	r.drawFood(f.Food)
	for i, p := range f.Snake {
		r.drawSegment(p, i == 0)
	}

	// HUD
	rl.DrawRectangle(0, r.boardHeight, r.screenWidth, hudHeight, hudColor)
	hud := fmt.Sprintf("score : %d    speed : %d fps", f.Score, f.FPS)
	r.drawText(hud, 10, r.boardHeight+hudHeight/2-12, 24, rl.Black)
}

func (r *Renderer) drawFood(p types.Point) {
	x, y := r.cellOrigin(p)
	if r.assets.HasTextures() {
		rl.DrawTexture(r.assets.Apple, x, y, rl.White)
		return
	}
	half := r.cellSize / 2
	rl.DrawCircle(x+half, y+half+3, float32(half), shadowColor)
	rl.DrawCircle(x+half, y+half, float32(half), appleColor)
}

func (r *Renderer) drawSegment(p types.Point, head bool) {
	x, y := r.cellOrigin(p)
	if r.assets.HasTextures() {
		rl.DrawTexture(r.assets.Segment, x, y, rl.White)
		return
	}
	color := snakeBodyColor
	if head {
		color = snakeHeadColor
	}
	rec := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(r.cellSize), Height: float32(r.cellSize)}
	rl.DrawRectangleRounded(rec, 0.3, 6, color)
}

func (r *Renderer) drawGameOver(f game.Frame) {
	rl.ClearBackground(rl.Black)

	mid := r.screenHeight / 2
	r.drawCentered(fmt.Sprintf("Game Over! Final Score: %d", f.Score), mid-60, 32, rl.White)
	if f.Collision == types.BoardFull {
		r.drawCentered("The board is full.", mid-20, 24, appleColor)
	}
	r.drawCentered(fmt.Sprintf("Best: %d   Games: %d", f.Best, f.Games), mid+10, 24, rl.LightGray)
	r.drawCentered(f.History(), mid+40, 18, rl.LightGray)
	r.drawCentered("Press [R] to Restart or [Q] to Quit", mid+75, 24, rl.Gray)
}

func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return int32(p.X) * r.cellSize, int32(p.Y) * r.cellSize
}

func (r *Renderer) drawText(text string, x, y int32, size float32, color rl.Color) {
	pos := rl.Vector2{X: float32(x), Y: float32(y)}
	rl.DrawTextEx(r.assets.Font, text, pos, size, textSpacing, color)
}

func (r *Renderer) drawCentered(text string, y int32, size float32, color rl.Color) {
	width := rl.MeasureTextEx(r.assets.Font, text, size, textSpacing).X
	r.drawText(text, (r.screenWidth-int32(width))/2, y, size, color)
}

// WindowSize is the pixel size of the board plus the HUD for v.
func WindowSize(v types.Variant) (int32, int32) {
	return int32(v.Grid.Width * v.CellSize), int32(v.Grid.Height*v.CellSize) + hudHeight
}
