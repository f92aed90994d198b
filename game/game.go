package game

import (
	"time"

	"golang.org/x/exp/rand"

	"slither/game/entity"
	"slither/game/manager"
	"slither/game/types"
)

// Game is one round: a snake, a food cell and the score, stepped once per
// frame by Update.
type Game struct {
	Variant   types.Variant
	Grid      types.Grid
	StartTime time.Time
	Steps     int

	snake     *entity.Snake
	food      types.Point
	over      types.CollisionType
	state     *manager.StateManager
	collision *manager.CollisionManager
	foods     *manager.FoodManager
}

// StepResult is what one call to Update observed.
type StepResult struct {
	Ate          bool
	SpeedChanged bool
	Collision    types.CollisionType
}

// Terminal reports whether the step ended the round.
func (r StepResult) Terminal() bool {
	return r.Collision != types.NoCollision
}

// NewGame starts a round of v at fps frames per second.
func NewGame(v types.Variant, fps int, rng *rand.Rand) *Game {
	g := &Game{
		Variant:   v,
		Grid:      v.Grid,
		StartTime: time.Now(),
		snake:     entity.NewSnake(v.Start, v.Heading),
		state:     manager.NewStateManager(v, fps),
		collision: manager.NewCollisionManager(v.Grid, v.Mode),
		foods:     manager.NewFoodManager(v.Grid, rng),
	}

	food, err := g.foods.GenerateFood(g.snake.Body)
	if err != nil {
		g.over = types.BoardFull
	}
	g.food = food
	return g
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

func (g *Game) GetScore() int {
	return g.state.GetScore()
}

func (g *Game) GetFPS() int {
	return g.state.GetFPS()
}

// Over returns the collision that ended the round, or NoCollision.
func (g *Game) Over() types.CollisionType {
	return g.over
}

// SetDirection forwards a steering request to the snake.
func (g *Game) SetDirection(dir types.Direction) {
	if g.over != types.NoCollision {
		return
	}
	g.snake.SetDirection(dir)
}

// Update advances the round by one cell. A terminal step leaves the snake,
// food and score untouched.
func (g *Game) Update() StepResult {
	if g.over != types.NoCollision {
		return StepResult{Collision: g.over}
	}

	g.Steps++

	newHead := g.collision.NextHead(g.snake)
	eating := g.collision.IsFoodCollision(newHead, g.food)

	if c := g.collision.CheckCollision(newHead, g.snake, eating); c != types.NoCollision {
		g.over = c
		return StepResult{Collision: c}
	}

	g.snake.Move(newHead)
	if !eating {
		g.snake.RemoveTail()
		return StepResult{}
	}

	res := StepResult{Ate: true}
	res.SpeedChanged = g.state.AddPoint()

	food, err := g.foods.GenerateFood(g.snake.Body)
	if err != nil {
		// The snake fills the board; nothing left to eat.
		g.over = types.BoardFull
		res.Collision = types.BoardFull
		return res
	}
	g.food = food
	return res
}

// ElapsedTime returns how long the round has been running.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}
