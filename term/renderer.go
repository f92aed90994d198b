package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"slither/game"
	"slither/game/types"
)

// Each board cell is two columns wide so cells look square.
const cellWidth = 2

const (
	bodyRune = '█'
	foodRune = '●'
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	wrapStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

// Renderer draws frames onto a tcell screen. The board sits inside a
// one-cell border; the HUD is the line below it.
type Renderer struct {
	screen tcell.Screen
	grid   types.Grid
	mode   types.Mode
}

func NewRenderer(s tcell.Screen, v types.Variant) *Renderer {
	return &Renderer{screen: s, grid: v.Grid, mode: v.Mode}
}

// ScreenSize is the terminal size needed to show the whole board and HUD.
func ScreenSize(v types.Variant) (int, int) {
	return v.Grid.Width*cellWidth + 2, v.Grid.Height + 3
}

// cellPos maps a board cell to the screen column and row of its left half.
func cellPos(p types.Point) (int, int) {
	return 1 + p.X*cellWidth, 1 + p.Y
}

func (r *Renderer) Present(f game.Frame) {
	r.screen.Clear()
	switch f.Phase {
	case game.ChoosingSpeed:
		r.drawMenu(f)
	case game.Playing:
		r.drawBoard(f)
	case game.GameOver:
		r.drawBoard(f)
		r.drawGameOver(f)
	}
	r.screen.Show()
}

func (r *Renderer) drawMenu(f game.Frame) {
	_, h := r.screen.Size()
	choices := make([]string, 0, len(f.Variant.Presets))
	for _, k := range f.Variant.PresetKeys() {
		choices = append(choices, fmt.Sprintf("[%d] %d fps", k, f.Variant.Presets[k]))
	}
	r.drawCentered(h/3, strings.ToUpper(f.Variant.Name), headStyle)
	r.drawCentered(h/3+2, "Choose Speed: "+strings.Join(choices, "  "), textStyle)
	r.drawCentered(h/3+4, "arrows or WASD to steer, Ctrl-C to quit", dimStyle)
}

func (r *Renderer) drawBoard(f game.Frame) {
	r.drawBorder()

	fx, fy := cellPos(f.Food)
	r.screen.SetContent(fx, fy, foodRune, nil, foodStyle)
	r.screen.SetContent(fx+1, fy, ' ', nil, foodStyle)

	// Body first so the head is drawn on top.
	for i := len(f.Snake) - 1; i >= 0; i-- {
		style := bodyStyle
		if i == 0 {
			style = headStyle
		}
		x, y := cellPos(f.Snake[i])
		for dx := 0; dx < cellWidth; dx++ {
			r.screen.SetContent(x+dx, y, bodyRune, nil, style)
		}
	}

	hud := fmt.Sprintf("score : %d   speed : %d fps   %s", f.Score, f.FPS, r.mode)
	r.drawText(1, r.grid.Height+2, hud, textStyle)
}

func (r *Renderer) drawBorder() {
	style := borderStyle
	if r.mode == types.Wrap {
		style = wrapStyle
	}
	right := r.grid.Width*cellWidth + 1
	bottom := r.grid.Height + 1
	for x := 0; x <= right; x++ {
		r.screen.SetContent(x, 0, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := 0; y <= bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(0, 0, '┌', nil, style)
	r.screen.SetContent(right, 0, '┐', nil, style)
	r.screen.SetContent(0, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *Renderer) drawGameOver(f game.Frame) {
	mid := (r.grid.Height + 2) / 2
	r.drawCentered(mid-1, fmt.Sprintf(" Game Over! Final Score: %d ", f.Score), alertStyle)
	if f.Collision == types.BoardFull {
		r.drawCentered(mid, " The board is full. ", foodStyle)
	}
	r.drawCentered(mid+1, fmt.Sprintf(" Best: %d   Games: %d ", f.Best, f.Games), textStyle)
	r.drawCentered(mid+2, " "+f.History()+" ", dimStyle)
	r.drawCentered(mid+3, " Press [R] to Restart or [Q] to Quit ", dimStyle)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}
