package manager

import (
	"errors"

	"golang.org/x/exp/rand"

	"slither/game/types"
)

// ErrBoardFull is returned when every cell of the grid is occupied.
var ErrBoardFull = errors.New("no free cell left for food")

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// GenerateFood picks a cell uniformly at random among the cells not in
// occupied. It walks the free cells instead of retrying, so it returns
// even on a nearly full board.
func (fm *FoodManager) GenerateFood(occupied []types.Point) (types.Point, error) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if fm.grid.Contains(p) {
			taken[p] = struct{}{}
		}
	}

	free := fm.grid.Cells() - len(taken)
	if free <= 0 {
		return types.Point{}, ErrBoardFull
	}

	n := fm.rng.Intn(free)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; ok {
				continue
			}
			if n == 0 {
				return p, nil
			}
			n--
		}
	}
	return types.Point{}, ErrBoardFull
}
