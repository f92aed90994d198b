package types

// Direction is a cardinal heading.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// ToPoint converts a Direction into its unit movement vector.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Turn returns requested unless it would reverse current, in which case
// current is kept.
func Turn(current, requested Direction) Direction {
	if requested == current.Opposite() {
		return current
	}
	return requested
}
