package manager

import (
	"slither/game/entity"
	"slither/game/types"
)

type CollisionManager struct {
	grid types.Grid
	mode types.Mode
}

func NewCollisionManager(grid types.Grid, mode types.Mode) *CollisionManager {
	return &CollisionManager{
		grid: grid,
		mode: mode,
	}
}

// NextHead computes where the head lands this step. In wrap mode the
// result is already reduced into the grid.
func (cm *CollisionManager) NextHead(snake *entity.Snake) types.Point {
	next := snake.GetHead().Add(snake.Direction)
	if cm.mode == types.Wrap {
		next = cm.grid.Wrap(next)
	}
	return next
}

// CheckCollision checks pos against the walls and the snake's body.
// When growing is false the tail cell is vacated in the same step, so
// moving onto it is legal.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, growing bool) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isSelfCollision(pos, snake, growing) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	if cm.mode == types.Wrap {
		return false
	}
	return !cm.grid.Contains(pos)
}

func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake, growing bool) bool {
	body := snake.Body
	if !growing && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if pos == part {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
