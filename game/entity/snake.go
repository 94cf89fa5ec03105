package entity

import (
	"snek/game/types"
)

// Snek is the player controlled creature. Body[0] is the head.
type Snek struct {
	Body      []types.Point
	Direction types.Direction
	Score     int
}

// NewSnek returns a snek in its spawn state: a single segment at spawn
// grown by one batch of stacked segments, not moving, no score.
func NewSnek(spawn types.Point) *Snek {
	s := &Snek{
		Body:      []types.Point{spawn},
		Direction: types.None,
		Score:     0,
	}
	s.Grow(types.GrowthBatch)
	return s
}

func (s *Snek) Head() types.Point {
	return s.Body[0]
}

func (s *Snek) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snek) Len() int {
	return len(s.Body)
}

// NextHead returns where the head would be after one step in dir
func (s *Snek) NextHead(dir types.Direction) types.Point {
	return s.Head().Add(dir.Offset())
}

// Grow appends n copies of the current tail
func (s *Snek) Grow(n int) {
	for i := 0; i < n; i++ {
		s.Body = append(s.Body, s.Tail())
	}
}

// Advance inserts newHead at the front and drops the tail unless the
// snek grew this tick.
func (s *Snek) Advance(newHead types.Point, grew bool) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead

	if !grew {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Steer changes the heading unless dir would reverse it.
func (s *Snek) Steer(dir types.Direction) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
