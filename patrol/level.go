// Package patrol simulates a guard walking a bounded level, turning
// clockwise whenever an obstacle blocks the way, and searches for
// single obstacle placements that trap the guard in a loop.
package patrol

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"deedles.dev/xlattice/geom"
	"deedles.dev/xlattice/grid"
)

var (
	// ErrNoGuard indicates that a parsed level has no start marker.
	ErrNoGuard = errors.New("patrol: no guard in level")

	// ErrMultipleGuards indicates that a parsed level has more than
	// one start marker.
	ErrMultipleGuards = errors.New("patrol: more than one guard in level")

	// ErrUnknownCell indicates an unrecognized rune in a level.
	ErrUnknownCell = errors.New("patrol: unknown cell")
)

// Guard is the state of a patrol: where the guard stands and which
// way it faces. Two guards are in the same state iff both fields are
// equal.
type Guard struct {
	Position  geom.Point
	Direction geom.Direction
}

// Next returns the cell directly ahead of the guard. It returns false
// if that cell would be off of the lattice.
func (g Guard) Next() (geom.Point, bool) {
	return g.Direction.Offset().Apply(g.Position)
}

func (g Guard) String() string {
	return fmt.Sprintf("%v facing %v", g.Position, g.Direction)
}

// Level is the bounded area a guard patrols along with its
// obstacles. A Level is never modified after construction.
type Level struct {
	Bounds    geom.Rect
	obstacles geom.PointSet
}

// NewLevel returns a level with the given bounds and obstacles.
func NewLevel(bounds geom.Rect, obstacles ...geom.Point) *Level {
	return &Level{
		Bounds:    bounds,
		obstacles: geom.SetOf(obstacles...),
	}
}

// IsObstacle reports whether p blocks the guard.
func (l *Level) IsObstacle(p geom.Point) bool {
	return l.obstacles.Has(p)
}

// Obstacles yields the level's obstacles in row-major order.
func (l *Level) Obstacles() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for _, p := range l.obstacles.Sorted() {
			if !yield(p) {
				return
			}
		}
	}
}

// WithObstacle returns a copy of l with an additional obstacle at p.
// The copy shares no state with l.
func (l *Level) WithObstacle(p geom.Point) *Level {
	obstacles := l.obstacles.Clone()
	obstacles.Add(p)

	return &Level{
		Bounds:    l.Bounds,
		obstacles: obstacles,
	}
}

// MaxSteps returns the number of advances after which a walk in l
// must have repeated a state, saturating at math.MaxInt. It is the
// default budget for [Walk].
func (l *Level) MaxSteps() int {
	area := l.Bounds.Area()
	if area > (math.MaxInt-1)/4 {
		return math.MaxInt
	}
	return 4*int(area) + 1
}

// Parse reads a level. '#' marks an obstacle, '.' an empty cell, and
// one of '^', '>', 'v' or '<' marks the guard's start along with the
// way it faces.
func Parse(lines iter.Seq2[int, string]) (*Level, Guard, error) {
	var (
		guard Guard
		found bool
	)
	obstacles := make(geom.PointSet)

	g, err := grid.Decode(lines, func(p geom.Point, c rune) (struct{}, error) {
		switch c {
		case '.':
		case '#':
			obstacles.Add(p)
		case '^', '>', 'v', '<':
			if found {
				return struct{}{}, ErrMultipleGuards
			}
			guard = Guard{Position: p, Direction: markerDirection(c)}
			found = true
		default:
			return struct{}{}, fmt.Errorf("%w %q", ErrUnknownCell, c)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, Guard{}, fmt.Errorf("parse level: %w", err)
	}
	if !found {
		return nil, Guard{}, ErrNoGuard
	}

	return &Level{Bounds: g.Bounds(), obstacles: obstacles}, guard, nil
}

func markerDirection(c rune) geom.Direction {
	switch c {
	case '>':
		return geom.Right
	case 'v':
		return geom.Down
	case '<':
		return geom.Left
	default:
		return geom.Up
	}
}

// Draw renders l with the guard's start and every point of marks
// shown as mark.
func (l *Level) Draw(start Guard, marks geom.PointSet, mark rune) string {
	return grid.Draw(l.Bounds, func(p geom.Point) rune {
		switch {
		case p == start.Position:
			return [...]rune{'^', '>', 'v', '<'}[start.Direction%4]
		case marks.Has(p):
			return mark
		case l.IsObstacle(p):
			return '#'
		default:
			return '.'
		}
	})
}
