package types

// Point is one grid cell, addressed in cell units.
type Point struct {
	X, Y int
}

// Add returns p moved by the unit vector of d.
func (p Point) Add(d Direction) Point {
	v := d.ToPoint()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Mode is the board topology.
type Mode int

const (
	Bounded Mode = iota // leaving the grid ends the game
	Wrap                // leaving one edge re-enters at the opposite edge
)

func (m Mode) String() string {
	if m == Wrap {
		return "wrap"
	}
	return "bounded"
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside [0,Width) x [0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap reduces p into the grid with a non-negative modulo on both axes.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Cells is the number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}
