package entity

import (
	"slither/game/types"
)

type Snake struct {
	// Body is head-first: Body[0] is the head, the last element the tail.
	Body      []types.Point
	Direction types.Direction

	// heading is the direction of the last completed move. Turns are
	// checked against it so two presses in one frame cannot fold the
	// head back onto the neck.
	heading types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
		heading:   dir,
	}
}

// Move prepends the new head.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	s.heading = s.Direction
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Heading is the direction the snake last moved in.
func (s *Snake) Heading() types.Direction {
	return s.heading
}

// SetDirection queues a turn. A reversal of the last move is ignored and
// leaves any turn already queued in place.
func (s *Snake) SetDirection(dir types.Direction) {
	if types.Turn(s.heading, dir) != dir {
		return
	}
	s.Direction = dir
}

// Occupies reports whether p is part of the body.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body for readers outside the step.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
