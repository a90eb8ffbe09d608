package geom

import "iter"

// Direction is one of the four orthogonal headings. Y grows
// downwards, so Up decreases Y.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionOffsets = [...]Offset{
	Up:    {Y: DecreaseBy(1)},
	Right: {X: IncreaseBy(1)},
	Down:  {Y: IncreaseBy(1)},
	Left:  {X: DecreaseBy(1)},
}

// Offset returns the unit step for d.
func (d Direction) Offset() Offset {
	return directionOffsets[d%4]
}

// RotateCW returns the heading a quarter turn clockwise from d.
// Four rotations return to d.
func (d Direction) RotateCW() Direction {
	return (d + 1) % 4
}

// RotateCCW returns the heading a quarter turn counterclockwise from
// d.
func (d Direction) RotateCCW() Direction {
	return (d + 3) % 4
}

// Cycle yields the four headings clockwise, starting with d.
func (d Direction) Cycle() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		c := d % 4
		for range 4 {
			if !yield(c) {
				return
			}
			c = c.RotateCW()
		}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Direction(?)"
	}
}

// Diagonals are the four unit diagonal offsets.
var Diagonals = [...]Offset{
	OffsetOf(-1, -1),
	OffsetOf(1, -1),
	OffsetOf(1, 1),
	OffsetOf(-1, 1),
}

// Compass contains the eight unit offsets around a cell, clockwise
// from Up.
var Compass = [...]Offset{
	OffsetOf(0, -1),
	OffsetOf(1, -1),
	OffsetOf(1, 0),
	OffsetOf(1, 1),
	OffsetOf(0, 1),
	OffsetOf(-1, 1),
	OffsetOf(-1, 0),
	OffsetOf(-1, -1),
}
