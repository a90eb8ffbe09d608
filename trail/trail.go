// Package trail counts hiking trails on a topographic map. A trail
// starts at elevation 0, ends at elevation 9, and every step moves to
// an orthogonal neighbor exactly one higher than the current cell.
package trail

import (
	"errors"
	"fmt"
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xlattice/geom"
	"deedles.dev/xlattice/grid"
)

const (
	// MinElevation is the elevation of a trailhead.
	MinElevation uint8 = 0

	// MaxElevation is the elevation of a peak.
	MaxElevation uint8 = 9

	// Impassable marks a cell that no trail can enter.
	Impassable uint8 = 0xFF
)

// ErrBadElevation indicates a cell that is neither a digit nor '.'.
var ErrBadElevation = errors.New("trail: bad elevation")

// Map holds the elevation of every cell.
type Map = grid.Grid[uint8]

// Parse reads a map of single-digit elevations. A '.' is impassable.
func Parse(lines iter.Seq2[int, string]) (*Map, error) {
	m, err := grid.Decode(lines, func(_ geom.Point, c rune) (uint8, error) {
		switch {
		case c == '.':
			return Impassable, nil
		case (c >= '0') && (c <= '9'):
			return uint8(c - '0'), nil
		default:
			return 0, fmt.Errorf("%w %q", ErrBadElevation, c)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("parse trail map: %w", err)
	}
	return m, nil
}

// Trailheads yields every point at MinElevation in row-major order.
func Trailheads(m *Map) iter.Seq[geom.Point] {
	return xiter.Filter(m.Rect.All(), func(p geom.Point) bool {
		e, _ := m.At(p)
		return e == MinElevation
	})
}

// Summary describes the trails that begin at a single trailhead.
type Summary struct {
	// Peaks holds the distinct peaks reachable from the trailhead.
	Peaks geom.PointSet

	// Rating is the number of distinct trails from the trailhead to
	// any peak.
	Rating int
}

// Score is the number of distinct peaks reachable.
func (s Summary) Score() int { return s.Peaks.Len() }

// Explore follows every ascending trail from head.
func Explore(m *Map, head geom.Point) Summary {
	s := Summary{Peaks: make(geom.PointSet)}
	e, ok := m.At(head)
	if !ok || (e != MinElevation) {
		return s
	}

	s.Rating = ascend(m, head, geom.Up, e, s.Peaks)
	return s
}

// ascend returns the number of distinct trails from p to a peak,
// adding each peak reached to peaks.
func ascend(m *Map, p geom.Point, heading geom.Direction, elevation uint8, peaks geom.PointSet) int {
	if elevation == MaxElevation {
		peaks.Add(p)
		return 1
	}

	var rating int
	for d := range heading.Cycle() {
		to, ok := d.Offset().Apply(p)
		if !ok {
			continue
		}
		next, ok := m.At(to)
		if !ok || (next != elevation+1) {
			continue
		}
		rating += ascend(m, to, d, next, peaks)
	}
	return rating
}

// Totals sums the summaries of every trailhead on a map.
type Totals struct {
	Trailheads int
	Score      int
	Rating     int
}

// Survey explores every trailhead of m.
func Survey(m *Map) Totals {
	var t Totals
	for head := range Trailheads(m) {
		s := Explore(m, head)
		t.Trailheads++
		t.Score += s.Score()
		t.Rating += s.Rating
	}
	return t
}
